package sim

import "time"

// Clock turns wall-clock time into a whole number of simulation ticks.
// Leftover time carries over so jittery frame delivery never changes how
// many ticks run in total.
type Clock struct {
	step    time.Duration
	acc     time.Duration
	maxStep int
}

// NewClock returns a clock producing tps ticks per second. maxCatchUp caps
// how many ticks a single Advance may return after a stall; 0 means 5.
func NewClock(tps, maxCatchUp int) *Clock {
	if tps <= 0 {
		tps = TicksPerSecond
	}
	if maxCatchUp <= 0 {
		maxCatchUp = 5
	}
	return &Clock{step: time.Second / time.Duration(tps), maxStep: maxCatchUp}
}

// Step is the duration of one tick.
func (c *Clock) Step() time.Duration { return c.step }

// Advance adds elapsed time and returns how many ticks are now due.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	n := int(c.acc / c.step)
	c.acc -= time.Duration(n) * c.step
	if n > c.maxStep {
		n = c.maxStep
		c.acc = 0
	}
	return n
}
