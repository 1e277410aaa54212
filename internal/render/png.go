package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/Garsondee/zolyx/internal/sim"
)

// Snapshot draws the current frame at the given pixels-per-cell scale and
// returns the gg context holding it.
func Snapshot(s *sim.Sim, scale int) *gg.Context {
	if scale < 1 {
		scale = 1
	}
	w, h := ViewW*scale, (ViewH+HUDRows)*scale
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillGrid(img, s, scale)

	dc := gg.NewContextForRGBA(img)
	cell := float64(scale)
	for _, m := range Markers(s) {
		r, g, b := m.Kind.Color()
		dc.SetColor(color.RGBA{r, g, b, 0xff})
		x, y := float64(m.X-ViewX0)*cell, float64(m.Y-ViewY0)*cell
		if m.Kind == MarkSpark {
			dc.DrawCircle(x+cell/2, y+cell/2, cell*0.75)
		} else {
			dc.DrawRectangle(x-cell/2, y-cell/2, cell*2, cell*2)
		}
		dc.Fill()
	}

	hudY := float64(ViewH * scale)
	dc.SetColor(Ink)
	dc.DrawRectangle(0, hudY, float64(w), float64(HUDRows*scale))
	dc.Fill()

	// Timer bar.
	barW := float64(w-2*scale) * float64(s.Timer()) / float64(sim.InitialTimer)
	dc.SetColor(TimerColor(s.Timer()))
	dc.DrawRectangle(float64(scale), hudY+float64(scale), barW, float64(2*scale))
	dc.Fill()

	dc.SetColor(Bright[7])
	dc.DrawStringAnchored(Status(s), float64(w)/2, hudY+float64(6*scale), 0.5, 0.5)
	if s.GameOver() {
		dc.SetColor(RainbowColor(s.GameOverFrame()))
		dc.DrawStringAnchored(gameOverText(s), float64(w)/2, float64(ViewH*scale)/2, 0.5, 0.5)
	}
	return dc
}

func gameOverText(s *sim.Sim) string {
	if s.OutOfTime() {
		return "OUT OF TIME - GAME OVER"
	}
	return "GAME OVER"
}

// fillGrid paints one scale x scale block per visible cell.
func fillGrid(img *image.RGBA, s *sim.Sim, scale int) {
	px := Pixels(s)
	for vy := 0; vy < ViewH; vy++ {
		for vx := 0; vx < ViewW; vx++ {
			c := px[vy*ViewW+vx]
			rgba := [4]byte{c.R, c.G, c.B, c.A}
			for py := vy * scale; py < (vy+1)*scale; py++ {
				off := img.PixOffset(vx*scale, py)
				for i := 0; i < scale; i++ {
					copy(img.Pix[off+i*4:], rgba[:])
				}
			}
		}
	}
}

// WritePNG encodes a snapshot to w.
func WritePNG(w io.Writer, s *sim.Sim, scale int) error {
	if err := Snapshot(s, scale).EncodePNG(w); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// SavePNG writes a snapshot to path.
func SavePNG(path string, s *sim.Sim, scale int) error {
	if err := Snapshot(s, scale).SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}
