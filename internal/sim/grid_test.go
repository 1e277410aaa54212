package sim

import "testing"

func TestGridReset_BorderOnlyOnFieldEdges(t *testing.T) {
	var g Grid
	g.Reset()

	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			onEdge := InField(x, y) &&
				(x == FieldMinX || x == FieldMaxX || y == FieldMinY || y == FieldMaxY)
			got := g.At(x, y)
			if onEdge && got != CellBorder {
				t.Fatalf("(%d,%d) = %s, want border", x, y, got)
			}
			if !onEdge && got != CellEmpty {
				t.Fatalf("(%d,%d) = %s, want empty", x, y, got)
			}
		}
	}
	if n := g.Count(CellBorder); n != BorderCellCount {
		t.Fatalf("border cells = %d, want %d", n, BorderCellCount)
	}
	if n := g.CountNonEmpty(); n != BorderCellCount {
		t.Fatalf("non-empty cells = %d, want %d", n, BorderCellCount)
	}
}

func TestGridAt_OutOfRangeReadsBorder(t *testing.T) {
	var g Grid
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {GridSize, 5}, {5, GridSize}, {-50, 300}} {
		if got := g.At(c[0], c[1]); got != CellBorder {
			t.Errorf("At(%d,%d) = %s, want border", c[0], c[1], got)
		}
	}
}

func TestGridSet_OutOfRangeIgnored(t *testing.T) {
	var g Grid
	g.Reset()
	g.Set(-1, 40, CellClaimed)
	g.Set(GridSize, 40, CellClaimed)
	if n := g.Count(CellClaimed); n != 0 {
		t.Fatalf("claimed cells = %d after out-of-range writes, want 0", n)
	}
}

func TestGridProbe_TrailAsEmpty(t *testing.T) {
	var g Grid
	g.Reset()
	g.Set(40, 40, CellTrail)
	if got := g.Probe(40, 40, true); got != CellEmpty {
		t.Fatalf("probe with trailAsEmpty = %s, want empty", got)
	}
	if got := g.Probe(40, 40, false); got != CellTrail {
		t.Fatalf("probe without trailAsEmpty = %s, want trail", got)
	}
}

func TestGridClearTrail(t *testing.T) {
	var g Grid
	g.Reset()
	g.Set(30, 30, CellTrail)
	g.Set(31, 30, CellTrail)
	g.Set(32, 30, CellClaimed)
	g.ClearTrail()
	if g.At(30, 30) != CellEmpty || g.At(31, 30) != CellEmpty {
		t.Fatal("trail cells not cleared")
	}
	if g.At(32, 30) != CellClaimed {
		t.Fatal("claimed cell was touched by ClearTrail")
	}
}
