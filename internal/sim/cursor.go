package sim

// AdvanceCursor moves an active cursor two entries along the trail. It
// returns true when it runs off the end of the trail, i.e. it has caught
// the player.
func AdvanceCursor(c *TrailCursor, trail []TrailEntry) bool {
	if !c.Active {
		return false
	}
	next := c.Index + cursorStride
	if next >= len(trail) {
		return true
	}
	c.Index = next
	c.X, c.Y = trail[next].X, trail[next].Y
	return false
}
