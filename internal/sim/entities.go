package sim

// Player is the line-drawing cursor controlled by the input vector.
type Player struct {
	X, Y int
	Dir  Dir
	// AxisH is true when the last move was horizontal. It decides which
	// axis is tried first next tick.
	AxisH   bool
	Drawing bool
	// FastMode is set when drawing starts with fire held; while it stays set
	// the player only moves on even frames.
	FastMode bool
	// FillComplete is raised when the trail reconnects to a wall and is
	// consumed by the orchestrator on the same tick.
	FillComplete bool
}

// TrailEntry records one drawn cell and the heading it was entered with.
type TrailEntry struct {
	X, Y int
	Dir  Dir
}

// TrailCursor chases the player along the recorded trail.
type TrailCursor struct {
	X, Y   int
	Active bool
	Index  int
}

// Chaser walks the walls. WallSide is its one bit of memory:
// 0 means it keeps turning toward the right-hand wall, 1 toward the left.
type Chaser struct {
	X, Y     int
	Dir      Dir
	Active   bool
	WallSide int
}

// Spark bounces diagonally through open space.
type Spark struct {
	X, Y   int
	Dir    Dir
	Active bool
}

func (p *Player) moveTo(t moveTarget) {
	p.X, p.Y, p.Dir = t.x, t.y, t.dir
}

func (p *Player) resetToStart() {
	*p = Player{X: FieldMinX, Y: FieldMinY, Dir: DirRight}
}
