package render

import (
	"image/color"

	"github.com/Garsondee/zolyx/internal/sim"
)

// The visible window of the grid: the field plus a one-cell margin.
const (
	ViewX0 = sim.FieldMinX - 1
	ViewY0 = sim.FieldMinY - 1
	ViewW  = sim.FieldMaxX - sim.FieldMinX + 3
	ViewH  = sim.FieldMaxY - sim.FieldMinY + 3
)

// HUDRows is the height of the status strip under the field, in cells.
const HUDRows = 10

// Marker is an entity to draw on top of the grid.
type Marker struct {
	X, Y  int
	Glyph byte
	Kind  MarkerKind
}

// MarkerKind identifies what a marker stands for.
type MarkerKind int

const (
	MarkPlayer MarkerKind = iota
	MarkChaser
	MarkSpark
	MarkCursor
)

// Markers lists every visible entity, player last so it draws on top.
func Markers(s *sim.Sim) []Marker {
	var out []Marker
	if c := s.Cursor(); c.Active {
		out = append(out, Marker{c.X, c.Y, 'T', MarkCursor})
	}
	for _, sp := range s.Sparks() {
		if sp.Active {
			out = append(out, Marker{sp.X, sp.Y, '*', MarkSpark})
		}
	}
	for _, c := range s.Chasers() {
		if c.Active {
			out = append(out, Marker{c.X, c.Y, 'C', MarkChaser})
		}
	}
	p := s.Player()
	out = append(out, Marker{p.X, p.Y, 'P', MarkPlayer})
	return out
}

// Color returns the draw colour of a marker kind.
func (k MarkerKind) Color() (r, g, b uint8) {
	var c = PlayerColor
	switch k {
	case MarkChaser:
		c = ChaserColor
	case MarkSpark:
		c = SparkColor
	case MarkCursor:
		c = CursorColor
	}
	return c.R, c.G, c.B
}

// Status is the one-line HUD text shared by every front end.
func Status(s *sim.Sim) string {
	return statusLine(s.Level(), s.Lives(), s.Percentage(), s.DisplayScore(), s.Timer())
}

// Pixels returns the colour of every visible cell, row-major, with entities
// drawn as single cells on top.
func Pixels(s *sim.Sim) []color.RGBA {
	out := make([]color.RGBA, ViewW*ViewH)
	g := s.Grid()
	level := s.Level()
	for vy := 0; vy < ViewH; vy++ {
		for vx := 0; vx < ViewW; vx++ {
			x, y := ViewX0+vx, ViewY0+vy
			out[vy*ViewW+vx] = CellColor(g.At(x, y), x, y, level)
		}
	}
	for _, m := range Markers(s) {
		vx, vy := m.X-ViewX0, m.Y-ViewY0
		if vx < 0 || vx >= ViewW || vy < 0 || vy >= ViewH {
			continue
		}
		r, gr, b := m.Kind.Color()
		out[vy*ViewW+vx] = color.RGBA{r, gr, b, 0xff}
	}
	return out
}
