package render

import (
	"image/color"

	"github.com/Garsondee/zolyx/internal/sim"
)

// levelAttrs holds the field attribute byte for each level. Bits 5-3 are
// the paper colour.
var levelAttrs = [16]uint8{
	0x70, 0x68, 0x58, 0x60, 0x68, 0x78, 0x68, 0x70,
	0x60, 0x58, 0x78, 0x68, 0x70, 0x50, 0x58, 0x68,
}

// rainbowAttrs is the overlay colour cycle used on level complete and
// game over.
var rainbowAttrs = [8]uint8{0x70, 0x78, 0x40, 0x48, 0x50, 0x58, 0x60, 0x68}

// Bright is the eight-colour bright palette, indexed by paper number.
var Bright = [8]color.RGBA{
	{0x00, 0x00, 0x00, 0xff}, // black
	{0x00, 0x00, 0xff, 0xff}, // blue
	{0xff, 0x00, 0x00, 0xff}, // red
	{0xff, 0x00, 0xff, 0xff}, // magenta
	{0x00, 0xff, 0x00, 0xff}, // green
	{0x00, 0xff, 0xff, 0xff}, // cyan
	{0xff, 0xff, 0x00, 0xff}, // yellow
	{0xff, 0xff, 0xff, 0xff}, // white
}

var (
	Ink         = Bright[0]
	TrailColor  = Bright[7]
	PlayerColor = Bright[7]
	ChaserColor = Bright[2]
	SparkColor  = Bright[6]
	CursorColor = Bright[3]
	TimerOK     = Bright[4]
	TimerLow    = Bright[2]
)

// TimerLowThreshold is where the timer bar turns red.
const TimerLowThreshold = 40

func paper(attr uint8) int { return int(attr>>3) & 7 }

// FieldPaper returns the paper colour index of a level.
func FieldPaper(level int) int {
	return paper(levelAttrs[level&0x0f])
}

// FieldColor is the open-space colour of a level.
func FieldColor(level int) color.RGBA {
	return Bright[FieldPaper(level)]
}

// RainbowColor is the overlay colour on a given animation frame.
func RainbowColor(frame int) color.RGBA {
	return Bright[paper(rainbowAttrs[(frame/2)&7])]
}

// TimerColor picks the timer bar colour.
func TimerColor(timer int) color.RGBA {
	if timer >= TimerLowThreshold {
		return TimerOK
	}
	return TimerLow
}

// CellColor is the colour of one grid cell. Claimed cells are drawn as a
// checker of ink and paper.
func CellColor(c sim.Cell, x, y, level int) color.RGBA {
	switch c {
	case sim.CellBorder:
		return Ink
	case sim.CellTrail:
		return TrailColor
	case sim.CellClaimed:
		if (x+y)&1 == 0 {
			return Ink
		}
	}
	return FieldColor(level)
}
