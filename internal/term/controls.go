package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/zolyx/internal/sim"
)

// holdTicks is how long a direction key stays down after its last press.
// Terminals report key repeats but never releases.
const holdTicks = 10

// Action is a non-movement command read from the keyboard.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionRestart
	ActionDump
)

// Controls turns tcell key events into the per-tick input vector. Arrow
// keys latch for holdTicks ticks; space toggles fire.
type Controls struct {
	dir  sim.Input
	left int
	fire bool
}

// Key records a key event and returns any command it carries.
func (c *Controls) Key(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		c.press(sim.InputUp)
	case tcell.KeyDown:
		c.press(sim.InputDown)
	case tcell.KeyLeft:
		c.press(sim.InputLeft)
	case tcell.KeyRight:
		c.press(sim.InputRight)
	case tcell.KeyEnter:
		return ActionRestart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			c.fire = !c.fire
		case 'p', 'P':
			return ActionPause
		case 'q', 'Q':
			return ActionQuit
		case 'd', 'D':
			return ActionDump
		case 'x', 'X':
			c.dir, c.left = sim.InputNone, 0
		}
	}
	return ActionNone
}

func (c *Controls) press(d sim.Input) {
	c.dir = d
	c.left = holdTicks
}

// Fire reports whether fire is latched on.
func (c *Controls) Fire() bool { return c.fire }

// Next implements sim.InputSource.
func (c *Controls) Next(*sim.Sim) sim.Input {
	in := sim.InputNone
	if c.left > 0 {
		in = c.dir
		c.left--
	}
	if c.fire {
		in |= sim.InputFire
	}
	return in
}
