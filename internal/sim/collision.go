package sim

// near is the Chebyshev adjacency test used for every enemy contact.
func near(ax, ay, bx, by int) bool {
	return abs(ax-bx) < CollisionDistance && abs(ay-by) < CollisionDistance
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Proximity reports whether the player touches an active chaser or the
// active trail cursor.
func Proximity(p Player, chasers []Chaser, cursor TrailCursor) bool {
	for _, c := range chasers {
		if c.Active && near(p.X, p.Y, c.X, c.Y) {
			return true
		}
	}
	return cursor.Active && near(p.X, p.Y, cursor.X, cursor.Y)
}

// TrailOccupied reports whether any active spark or chaser stands on a
// Trail cell.
func TrailOccupied(g *Grid, sparks []Spark, chasers []Chaser) bool {
	for _, sp := range sparks {
		if sp.Active && g.At(sp.X, sp.Y) == CellTrail {
			return true
		}
	}
	for _, c := range chasers {
		if c.Active && g.At(c.X, c.Y) == CellTrail {
			return true
		}
	}
	return false
}
