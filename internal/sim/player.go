package sim

import "fmt"

// movePlayer runs one tick of the walking/drawing state machine.
//
// Walking tries the axis perpendicular to the last move first so the player
// takes corners as soon as they open. Drawing tries the same axis first so
// trails stay straight unless blocked.
func (s *Sim) movePlayer(in Input) {
	p := &s.player

	if p.Drawing {
		if !in.Fire() {
			p.FastMode = false
		}
		if p.FastMode && s.frame&1 == 1 {
			s.trailFrames++
			s.checkCursorActivation()
			return
		}
	}

	h, hok := horizontalCandidate(in, p.X, p.Y)
	v, vok := verticalCandidate(in, p.X, p.Y)

	// Walking with a horizontal last move, or drawing with a vertical one,
	// tries vertical first.
	first, firstOK, second, secondOK := h, hok, v, vok
	if p.AxisH != p.Drawing {
		first, firstOK, second, secondOK = v, vok, h, hok
	}
	if !firstOK || !s.tryMove(first, in) {
		if secondOK {
			s.tryMove(second, in)
		}
	}

	if p.Drawing {
		s.trailFrames++
		s.checkCursorActivation()
	}
}

// tryMove applies the legality table for the player's current state and
// reports whether the player moved.
func (s *Sim) tryMove(t moveTarget, in Input) bool {
	p := &s.player
	cell := s.grid.At(t.x, t.y)

	if !p.Drawing {
		switch {
		case cell == CellBorder:
			p.moveTo(t)
			p.AxisH = t.dir.Horizontal()
			return true
		case cell == CellEmpty && in.Fire():
			p.Drawing = true
			p.FastMode = true
			p.AxisH = t.dir.Horizontal()
			p.moveTo(t)
			s.appendTrail(t)
			s.trailFrames = 1
			s.log.Add(s.frame, "P", "player", "draw_start",
				fmt.Sprintf("(%d,%d) heading %s", t.x, t.y, t.dir), 0)
			return true
		}
		return false
	}

	switch cell {
	case CellEmpty:
		p.moveTo(t)
		p.AxisH = t.dir.Horizontal()
		s.appendTrail(t)
		return true
	case CellBorder:
		p.moveTo(t)
		p.Drawing = false
		p.FillComplete = true
		s.log.Add(s.frame, "P", "player", "draw_end",
			fmt.Sprintf("(%d,%d) after %d cells", t.x, t.y, len(s.trail)), float64(len(s.trail)))
		return true
	}
	return false
}

func (s *Sim) appendTrail(t moveTarget) {
	s.grid.Set(t.x, t.y, CellTrail)
	s.trail = append(s.trail, TrailEntry{X: t.x, Y: t.y, Dir: t.dir})
}

// checkCursorActivation starts the trail cursor at the head of the trail
// once the player has been drawing for TrailCursorThreshold ticks.
func (s *Sim) checkCursorActivation() {
	if s.trailFrames < TrailCursorThreshold || s.cursor.Active || len(s.trail) == 0 {
		return
	}
	first := s.trail[0]
	s.cursor = TrailCursor{X: first.X, Y: first.Y, Active: true}
	s.log.Add(s.frame, "T", "cursor", "activated",
		fmt.Sprintf("(%d,%d) trail=%d", first.X, first.Y, len(s.trail)), float64(len(s.trail)))
}
