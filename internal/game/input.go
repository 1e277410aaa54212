package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/zolyx/internal/sim"
)

// keyBits maps held keys to input bits.
var keyBits = []struct {
	key ebiten.Key
	bit sim.Input
}{
	{ebiten.KeyArrowUp, sim.InputUp},
	{ebiten.KeyArrowDown, sim.InputDown},
	{ebiten.KeyArrowLeft, sim.InputLeft},
	{ebiten.KeyArrowRight, sim.InputRight},
	{ebiten.KeySpace, sim.InputFire},
}

// KeyboardInput builds the input vector from a key-state query, normally
// ebiten.IsKeyPressed.
func KeyboardInput(pressed func(ebiten.Key) bool) sim.Input {
	in := sim.InputNone
	for _, kb := range keyBits {
		if pressed(kb.key) {
			in |= kb.bit
		}
	}
	return in
}

// touchAction is what a touch button does besides steering.
type touchAction int

const (
	touchSteer touchAction = iota
	touchPause
	touchRestart
)

type touchButton struct {
	rect   image.Rectangle
	bit    sim.Input
	action touchAction
}

// touchButtons lays out the on-screen pad in the bottom corners of a
// w x h screen: a d-pad on the left, fire/pause/restart on the right.
func touchButtons(w, h int) []touchButton {
	size := h / 8
	if size < 24 {
		size = 24
	}
	pad := size / 4
	cx, cy := pad+size+size/2, h-pad-size-size/2
	sq := func(x, y int) image.Rectangle {
		return image.Rect(x-size/2, y-size/2, x+size/2, y+size/2)
	}
	rx := w - pad - size/2
	return []touchButton{
		{rect: sq(cx, cy-size), bit: sim.InputUp},
		{rect: sq(cx, cy+size), bit: sim.InputDown},
		{rect: sq(cx-size, cy), bit: sim.InputLeft},
		{rect: sq(cx+size, cy), bit: sim.InputRight},
		{rect: sq(rx, cy), bit: sim.InputFire},
		{rect: sq(rx-size-pad, cy+size), action: touchPause},
		{rect: sq(rx, cy+size), action: touchRestart},
	}
}

// buttonAt returns the button under (x,y).
func buttonAt(buttons []touchButton, x, y int) (touchButton, bool) {
	pt := image.Pt(x, y)
	for _, b := range buttons {
		if pt.In(b.rect) {
			return b, true
		}
	}
	return touchButton{}, false
}

// touchState holds the touch ID buffers reused every frame.
type touchState struct {
	ids     []ebiten.TouchID
	pressed []ebiten.TouchID
	used    bool // any touch seen since start
}

// poll returns the steering bits held by all touches and the actions of
// touches that started this frame.
func (ts *touchState) poll(buttons []touchButton) (sim.Input, []touchAction) {
	ts.ids = ebiten.AppendTouchIDs(ts.ids[:0])
	ts.pressed = inpututil.AppendJustPressedTouchIDs(ts.pressed[:0])
	if len(ts.ids) > 0 {
		ts.used = true
	}

	in := sim.InputNone
	for _, id := range ts.ids {
		x, y := ebiten.TouchPosition(id)
		if b, ok := buttonAt(buttons, x, y); ok {
			in |= b.bit
		}
	}
	return in, tapActions(buttons, ts.pressed, ebiten.TouchPosition)
}

// tapActions maps newly pressed touches to the pause and restart buttons
// under them.
func tapActions(buttons []touchButton, pressed []ebiten.TouchID, pos func(ebiten.TouchID) (int, int)) []touchAction {
	var actions []touchAction
	for _, id := range pressed {
		x, y := pos(id)
		if b, ok := buttonAt(buttons, x, y); ok && b.action != touchSteer {
			actions = append(actions, b.action)
		}
	}
	return actions
}
