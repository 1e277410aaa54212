package sim

import "strings"

// Input is the 5-bit control vector sampled once per tick.
type Input uint8

const (
	InputFire Input = 1 << iota
	InputDown
	InputUp
	InputRight
	InputLeft
)

// InputNone is the empty vector.
const InputNone Input = 0

// Has reports whether every bit of b is set.
func (in Input) Has(b Input) bool { return in&b == b }

// Fire reports whether the fire bit is set.
func (in Input) Fire() bool { return in&InputFire != 0 }

func (in Input) String() string {
	if in == InputNone {
		return "-"
	}
	var parts []string
	for _, b := range []struct {
		bit  Input
		name string
	}{
		{InputFire, "fire"}, {InputDown, "down"}, {InputUp, "up"},
		{InputRight, "right"}, {InputLeft, "left"},
	} {
		if in&b.bit != 0 {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "+")
}

// moveTarget is a candidate one-cell move.
type moveTarget struct {
	x, y int
	dir  Dir
}

// horizontalCandidate resolves the left/right keys into a move from (px,py).
// Both or neither pressed means no candidate. X is clamped to the field.
func horizontalCandidate(in Input, px, py int) (moveTarget, bool) {
	h := in & (InputLeft | InputRight)
	if h == 0 || h == InputLeft|InputRight {
		return moveTarget{}, false
	}
	t := moveTarget{x: px - 1, y: py, dir: DirLeft}
	if h == InputRight {
		t = moveTarget{x: px + 1, y: py, dir: DirRight}
	}
	t.x = clamp(t.x, FieldMinX, FieldMaxX)
	if t.x == px {
		return moveTarget{}, false
	}
	return t, true
}

// verticalCandidate is the up/down counterpart of horizontalCandidate.
func verticalCandidate(in Input, px, py int) (moveTarget, bool) {
	v := in & (InputUp | InputDown)
	if v == 0 || v == InputUp|InputDown {
		return moveTarget{}, false
	}
	t := moveTarget{x: px, y: py - 1, dir: DirUp}
	if v == InputDown {
		t = moveTarget{x: px, y: py + 1, dir: DirDown}
	}
	t.y = clamp(t.y, FieldMinY, FieldMaxY)
	if t.y == py {
		return moveTarget{}, false
	}
	return t, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
