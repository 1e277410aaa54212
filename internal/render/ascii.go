package render

import (
	"fmt"
	"strings"

	"github.com/Garsondee/zolyx/internal/sim"
)

var cellGlyph = [...]byte{
	sim.CellEmpty:   ' ',
	sim.CellClaimed: ':',
	sim.CellTrail:   '+',
	sim.CellBorder:  '#',
}

func statusLine(level, lives, pct, score, timer int) string {
	return fmt.Sprintf("LEVEL %02d  LIVES %d  %3d%%  SCORE %06d  TIME %3d", level+1, lives, pct, score, timer)
}

// ASCII dumps the visible field with entities as a block of text. The first
// line is the status line.
func ASCII(s *sim.Sim) string {
	rows := make([][]byte, ViewH)
	g := s.Grid()
	for vy := range rows {
		row := make([]byte, ViewW)
		for vx := range row {
			row[vx] = cellGlyph[g.At(ViewX0+vx, ViewY0+vy)&3]
		}
		rows[vy] = row
	}
	for _, m := range Markers(s) {
		vx, vy := m.X-ViewX0, m.Y-ViewY0
		if vx >= 0 && vx < ViewW && vy >= 0 && vy < ViewH {
			rows[vy][vx] = m.Glyph
		}
	}

	var sb strings.Builder
	sb.WriteString(Status(s))
	sb.WriteByte('\n')
	for _, r := range rows {
		sb.Write(r)
		sb.WriteByte('\n')
	}
	return sb.String()
}
