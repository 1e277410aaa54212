package sim

// Dir is one of eight headings, clockwise from right. Y grows downward.
type Dir uint8

const (
	DirRight Dir = iota
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
	DirUp
	DirUpRight
)

var (
	dirDX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	dirDY = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

// Turn rotates d by n eighth-turns (positive is clockwise), wrapping mod 8.
func (d Dir) Turn(n int) Dir {
	return Dir((int(d) + n) & 7)
}

// Delta returns the one-step offset for d.
func (d Dir) Delta() (dx, dy int) {
	return dirDX[d&7], dirDY[d&7]
}

// Step returns (x,y) moved one cell along d.
func (d Dir) Step(x, y int) (int, int) {
	dx, dy := d.Delta()
	return x + dx, y + dy
}

// Horizontal reports whether d lies on the left/right axis.
func (d Dir) Horizontal() bool { return d == DirRight || d == DirLeft }

// Cardinal reports whether d is axis-aligned.
func (d Dir) Cardinal() bool { return d&1 == 0 }

func (d Dir) String() string {
	switch d & 7 {
	case DirRight:
		return "right"
	case DirDownRight:
		return "down-right"
	case DirDown:
		return "down"
	case DirDownLeft:
		return "down-left"
	case DirLeft:
		return "left"
	case DirUpLeft:
		return "up-left"
	case DirUp:
		return "up"
	default:
		return "up-right"
	}
}
