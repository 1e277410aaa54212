package sim

// Fill turns a finished trail into wall and claims the region it closed off.
// finalDir is the heading the player had when it reached the wall. It returns
// the number of cells that became Claimed. An empty trail is a no-op.
func Fill(g *Grid, trail []TrailEntry, finalDir Dir) int {
	if len(trail) == 0 {
		return 0
	}

	for _, pt := range trail {
		g.Set(pt.X, pt.Y, CellBorder)
	}

	claimed := 0
	seed := func(x, y int) {
		if g.At(x, y) == CellEmpty {
			claimed += FloodFill(g, x, y, CellClaimed)
		}
	}

	first := trail[0].Dir
	if trailTurns(trail, finalDir) {
		offset := 2
		if turnSum(trail, finalDir) < 0 {
			offset = -2
		}
		for _, pt := range trail {
			seed(pt.Dir.Turn(offset).Step(pt.X, pt.Y))
		}
		return claimed
	}

	// Straight trail: claim the side facing the nearer field edge.
	if first.Horizontal() {
		dy := 1
		if trail[0].Y < fieldMidY {
			dy = -1
		}
		for _, pt := range trail {
			if pt.Dir == first {
				seed(pt.X, pt.Y+dy)
			}
		}
		return claimed
	}

	dx := 1
	if trail[0].X < fieldMidX {
		dx = -1
	}
	for _, pt := range trail {
		if pt.Dir == first {
			seed(pt.X+dx, pt.Y)
		}
	}
	return claimed
}

// trailTurns reports whether any entry, or the final heading, differs from
// the heading of the first entry.
func trailTurns(trail []TrailEntry, finalDir Dir) bool {
	first := trail[0].Dir
	if finalDir != first {
		return true
	}
	for _, pt := range trail[1:] {
		if pt.Dir != first {
			return true
		}
	}
	return false
}

// turnSum adds up the quarter turns along the trail, including the turn into
// finalDir. Clockwise quarter turns count +2, counter-clockwise -2.
func turnSum(trail []TrailEntry, finalDir Dir) int {
	sum := 0
	prev := trail[0].Dir
	for _, pt := range trail[1:] {
		sum += turnDelta(prev, pt.Dir)
		prev = pt.Dir
	}
	return sum + turnDelta(prev, finalDir)
}

// turnDelta is the signed heading change from a to b. A raw difference of
// +-6 crosses the 7/0 wrap and is the same quarter turn as -+2.
func turnDelta(a, b Dir) int {
	d := int(b) - int(a)
	switch d {
	case 6:
		return -2
	case -6:
		return 2
	}
	return d
}

// FloodFill replaces every Empty cell 4-connected to (x,y) with v and returns
// how many cells changed. It is a no-op when the start cell is not Empty.
func FloodFill(g *Grid, x, y int, v Cell) int {
	if v == CellEmpty || g.At(x, y) != CellEmpty {
		return 0
	}
	g.Set(x, y, v)
	n := 1
	stack := []point{{x, y}}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range [4]point{{c.x - 1, c.y}, {c.x + 1, c.y}, {c.x, c.y - 1}, {c.x, c.y + 1}} {
			if g.At(nb.x, nb.y) == CellEmpty {
				g.Set(nb.x, nb.y, v)
				n++
				stack = append(stack, nb)
			}
		}
	}
	return n
}
