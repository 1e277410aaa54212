package sim

import "math/rand"

// InputSource feeds one input vector per tick. It is how the headless
// runner, the autopilot and the tests drive a Sim without a keyboard.
type InputSource interface {
	Next(s *Sim) Input
}

// Hold repeats the same input forever.
type Hold Input

func (h Hold) Next(*Sim) Input { return Input(h) }

// Step is one entry of a Script: In held for Ticks ticks.
type Step struct {
	In    Input
	Ticks int
}

// Script plays a fixed list of steps, then returns InputNone.
type Script struct {
	steps []Step
	pos   int
	used  int
}

// NewScript builds a Script.
func NewScript(steps ...Step) *Script {
	return &Script{steps: steps}
}

func (sc *Script) Next(*Sim) Input {
	for sc.pos < len(sc.steps) && sc.used >= sc.steps[sc.pos].Ticks {
		sc.pos++
		sc.used = 0
	}
	if sc.pos >= len(sc.steps) {
		return InputNone
	}
	sc.used++
	return sc.steps[sc.pos].In
}

// Done reports whether every step has been played.
func (sc *Script) Done() bool {
	return sc.pos >= len(sc.steps) ||
		(sc.pos == len(sc.steps)-1 && sc.used >= sc.steps[sc.pos].Ticks)
}

// RandomWalk is a seeded autopilot. It holds a random direction for a
// random stretch, sometimes with fire, which is enough to draw and close
// trails against the opposite wall.
type RandomWalk struct {
	rng       *rand.Rand
	cur       Input
	left      int
	fireRatio float64
}

// NewRandomWalk returns an autopilot; fireRatio is the chance that a new
// stretch is drawn rather than walked.
func NewRandomWalk(seed int64, fireRatio float64) *RandomWalk {
	return &RandomWalk{
		rng:       rand.New(rand.NewSource(seed)), // #nosec G404 -- autopilot
		fireRatio: fireRatio,
	}
}

var walkDirs = [...]Input{InputRight, InputDown, InputLeft, InputUp}

func (rw *RandomWalk) Next(s *Sim) Input {
	// Once drawing, let go of fire and keep the heading until the trail
	// closes; the cursor outruns a slow draw.
	if s != nil && s.player.Drawing {
		rw.cur &^= InputFire
		if rw.left <= 0 {
			rw.left = 8
		}
	}
	if rw.left <= 0 {
		rw.cur = walkDirs[rw.rng.Intn(len(walkDirs))]
		if rw.rng.Float64() < rw.fireRatio {
			rw.cur |= InputFire
		}
		rw.left = 4 + rw.rng.Intn(40)
	}
	rw.left--
	return rw.cur
}

// Run ticks s n times with inputs from src.
func Run(s *Sim, src InputSource, n int) {
	for i := 0; i < n; i++ {
		s.Tick(src.Next(s))
	}
}

// RunUntil ticks until pred holds or maxTicks is reached and returns the
// number of ticks run.
func RunUntil(s *Sim, src InputSource, pred func(*Sim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		if pred(s) {
			return i
		}
		s.Tick(src.Next(s))
	}
	return maxTicks
}
