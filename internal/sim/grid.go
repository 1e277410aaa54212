package sim

// Cell is the state of one grid cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellClaimed
	CellTrail
	CellBorder
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellClaimed:
		return "claimed"
	case CellTrail:
		return "trail"
	case CellBorder:
		return "border"
	default:
		return "unknown"
	}
}

// Grid is the playfield, indexed [y][x].
type Grid struct {
	cells [GridSize][GridSize]Cell
}

func inBounds(x, y int) bool {
	return x >= 0 && x < GridSize && y >= 0 && y < GridSize
}

// InField reports whether (x,y) lies on or inside the field border rectangle.
func InField(x, y int) bool {
	return x >= FieldMinX && x <= FieldMaxX && y >= FieldMinY && y <= FieldMaxY
}

// At returns the cell at (x,y). Coordinates outside the grid read as Border.
// The margin between the field border and the grid edge stays Empty: chasers
// hugging the border need open space on its outer side.
func (g *Grid) At(x, y int) Cell {
	if !inBounds(x, y) {
		return CellBorder
	}
	return g.cells[y][x]
}

// Set writes a cell. Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !inBounds(x, y) {
		return
	}
	g.cells[y][x] = c
}

// Probe reads a cell the way the enemies see it: with trailAsEmpty set, an
// in-progress trail reads as open space.
func (g *Grid) Probe(x, y int, trailAsEmpty bool) Cell {
	c := g.At(x, y)
	if trailAsEmpty && c == CellTrail {
		return CellEmpty
	}
	return c
}

// Reset clears every cell and draws the field border rectangle.
func (g *Grid) Reset() {
	g.cells = [GridSize][GridSize]Cell{}
	for x := FieldMinX; x <= FieldMaxX; x++ {
		g.cells[FieldMinY][x] = CellBorder
		g.cells[FieldMaxY][x] = CellBorder
	}
	for y := FieldMinY; y <= FieldMaxY; y++ {
		g.cells[y][FieldMinX] = CellBorder
		g.cells[y][FieldMaxX] = CellBorder
	}
}

// Count returns how many cells inside the field rectangle hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for y := FieldMinY; y <= FieldMaxY; y++ {
		for x := FieldMinX; x <= FieldMaxX; x++ {
			if g.cells[y][x] == c {
				n++
			}
		}
	}
	return n
}

// CountNonEmpty returns how many cells inside the field rectangle are not Empty.
func (g *Grid) CountNonEmpty() int {
	n := 0
	for y := FieldMinY; y <= FieldMaxY; y++ {
		for x := FieldMinX; x <= FieldMaxX; x++ {
			if g.cells[y][x] != CellEmpty {
				n++
			}
		}
	}
	return n
}

// ClearTrail turns every Trail cell back into Empty.
func (g *Grid) ClearTrail() {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] == CellTrail {
				g.cells[y][x] = CellEmpty
			}
		}
	}
}
