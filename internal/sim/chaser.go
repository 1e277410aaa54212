package sim

// ChooseTurn is the chaser's wall-following rule. left, fwd and right are the
// probed cells at heading -2, 0 and +2. It returns the updated wallSide and
// the turn to apply, in eighth-turns.
func ChooseTurn(left, fwd, right Cell, wallSide int) (int, int) {
	if left != CellBorder {
		switch {
		case right == CellEmpty:
			wallSide = 0
		case right != CellBorder:
			wallSide = 1
		}
	}

	if wallSide == 0 {
		switch {
		case right == CellBorder:
			return wallSide, 2
		case fwd == CellBorder:
			return wallSide, 0
		case left == CellBorder:
			return wallSide, -2
		}
		return wallSide, -4
	}

	switch {
	case left == CellBorder:
		return wallSide, -2
	case fwd == CellBorder:
		return wallSide, 0
	case right == CellBorder:
		return wallSide, 2
	}
	return wallSide, -4
}

// StepChaser advances one active chaser by a single cell. The probe reads
// Trail as Empty so an unfinished trail never looks like wall.
func StepChaser(g *Grid, c *Chaser) {
	if !c.Active {
		return
	}
	probe := func(d Dir) Cell {
		x, y := d.Step(c.X, c.Y)
		return g.Probe(x, y, true)
	}
	left := probe(c.Dir.Turn(-2))
	fwd := probe(c.Dir)
	right := probe(c.Dir.Turn(2))

	var turn int
	c.WallSide, turn = ChooseTurn(left, fwd, right, c.WallSide)
	c.Dir = c.Dir.Turn(turn)
	c.X, c.Y = c.Dir.Step(c.X, c.Y)
}
