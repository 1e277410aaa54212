package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/zolyx/internal/render"
	"github.com/Garsondee/zolyx/internal/sim"
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Ink)
	g.drawField(screen)
	g.drawHUD(screen)
	g.drawOverlay(screen)
	g.drawButtons(screen)
	g.panel.Draw(screen, g.fieldW, g.height)
}

// drawField uploads the cell colours at one pixel per cell and scales the
// image up with nearest filtering.
func (g *Game) drawField(screen *ebiten.Image) {
	for i, c := range render.Pixels(g.sim) {
		g.pix[i*4] = c.R
		g.pix[i*4+1] = c.G
		g.pix[i*4+2] = c.B
		g.pix[i*4+3] = c.A
	}
	g.field.WritePixels(g.pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.field, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	sc := float32(g.scale)
	top := float32(render.ViewH) * sc
	barW := (float32(g.fieldW) - 2*sc) * float32(g.sim.Timer()) / float32(sim.InitialTimer)
	vector.FillRect(screen, sc, top+sc, barW, 2*sc, render.TimerColor(g.sim.Timer()), false)

	g.drawText(screen, render.Status(g.sim), float64(g.fieldW)/2, float64(top+6*sc), render.Bright[7])
	if g.noteFrames > 0 {
		g.drawText(screen, g.note, float64(g.fieldW)/2, float64(top+8.5*sc), render.Bright[5])
	}
}

// drawOverlay shows the pause, level-complete and game-over banners.
func (g *Game) drawOverlay(screen *ebiten.Image) {
	cx := float64(g.fieldW) / 2
	cy := float64(render.ViewH*g.scale) / 2
	if lc, ok := g.sim.LevelComplete(); ok {
		g.banner(screen, "LEVEL COMPLETE", cx, cy, render.RainbowColor(lc.Frame))
		if lc.Phase != sim.PhaseRainbow {
			g.drawText(screen, timeBonusLine(lc.Remaining), cx, cy+float64(5*g.scale), render.Bright[7])
		}
		return
	}
	switch g.sim.Mode() {
	case sim.ModeGameOver:
		g.banner(screen, "GAME OVER", cx, cy, render.RainbowColor(g.sim.GameOverFrame()))
		g.drawText(screen, "ENTER TO PLAY AGAIN", cx, cy+float64(5*g.scale), render.Bright[7])
	case sim.ModePaused:
		g.banner(screen, "PAUSED", cx, cy, render.Bright[7])
	}
}

func timeBonusLine(remaining int) string {
	return fmt.Sprintf("TIME BONUS %d", remaining)
}

func (g *Game) banner(screen *ebiten.Image, msg string, cx, cy float64, c color.RGBA) {
	w := float32(len(msg)+4) * float32(g.face.Size) * 0.6
	h := float32(g.face.Size) * 2
	vector.FillRect(screen, float32(cx)-w/2, float32(cy)-h/2, w, h, render.Ink, false)
	vector.StrokeRect(screen, float32(cx)-w/2, float32(cy)-h/2, w, h, 2, c, false)
	g.drawText(screen, msg, cx, cy, c)
}

func (g *Game) drawText(screen *ebiten.Image, msg string, cx, cy float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, msg, g.face, op)
}

// drawButtons outlines the touch pad once a touch has been seen.
func (g *Game) drawButtons(screen *ebiten.Image) {
	if !g.touch.used {
		return
	}
	outline := color.RGBA{R: 200, G: 200, B: 200, A: 120}
	for _, b := range g.buttons {
		r := b.rect
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, outline, false)
	}
}
