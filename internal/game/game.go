// Package game is the ebiten front end: one simulation tick per Update,
// the field drawn from render.Pixels, and an event panel beside it.
package game

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/Garsondee/zolyx/internal/config"
	"github.com/Garsondee/zolyx/internal/render"
	"github.com/Garsondee/zolyx/internal/sim"
)

// EventSink receives new simulation events after every tick.
type EventSink interface {
	Handle(events []sim.SimLogEntry)
}

const noteFrames = 120

type Game struct {
	sim   *sim.Sim
	cfg   config.Config
	sink  EventSink
	panel *EventPanel
	seen  int

	scale      int
	fieldW     int // field plus HUD, in window pixels
	fieldH     int
	width      int
	height     int
	field      *ebiten.Image
	pix        []byte
	face       *text.GoTextFace
	touch      touchState
	buttons    []touchButton
	note       string
	noteFrames int
}

// New builds a game from cfg. sink may be nil.
func New(cfg config.Config, sink EventSink) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	s := sim.New(
		sim.WithSeed(seed),
		sim.WithLevel(cfg.StartLevel),
		sim.WithLives(cfg.Lives),
		sim.WithVerboseLog(cfg.VerboseLog),
	)

	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	g := &Game{
		sim:    s,
		cfg:    cfg,
		sink:   sink,
		panel:  NewEventPanel(),
		scale:  scale,
		fieldW: render.ViewW * scale,
		fieldH: (render.ViewH + render.HUDRows) * scale,
		field:  ebiten.NewImage(render.ViewW, render.ViewH),
		pix:    make([]byte, render.ViewW*render.ViewH*4),
		face:   &text.GoTextFace{Source: src, Size: float64(3 * scale)},
	}
	g.width = g.fieldW + panelWidth
	g.height = g.fieldH
	g.buttons = touchButtons(g.fieldW, g.fieldH)
	log.Printf("[game] seed=%d level=%d lives=%d scale=%d", seed, cfg.StartLevel, cfg.Lives, scale)
	return g, nil
}

// Size is the window size the game lays out to.
func (g *Game) Size() (int, int) { return g.width, g.height }

// Sim exposes the running simulation.
func (g *Game) Sim() *sim.Sim { return g.sim }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in, actions := g.touch.poll(g.buttons)
	in |= KeyboardInput(ebiten.IsKeyPressed)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		actions = append(actions, touchPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		actions = append(actions, touchRestart)
	}
	for _, a := range actions {
		switch a {
		case touchPause:
			g.sim.TogglePause()
		case touchRestart:
			if g.sim.Restart() {
				g.panel.Reset()
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyField()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.screenshot()
	}

	g.sim.Tick(in)
	g.forwardEvents()
	if g.noteFrames > 0 {
		g.noteFrames--
	}
	return nil
}

// forwardEvents hands everything logged since the last call to the panel
// and the sink.
func (g *Game) forwardEvents() {
	events := g.sim.Log().Since(g.seen)
	g.seen = g.sim.Log().Len()
	if len(events) == 0 {
		return
	}
	g.panel.Add(events)
	if g.sink != nil {
		g.sink.Handle(events)
	}
}

func (g *Game) copyField() {
	if err := clipboard.WriteAll(render.ASCII(g.sim)); err != nil {
		log.Printf("[game] clipboard: %v", err)
		g.flash("clipboard unavailable")
		return
	}
	g.flash("field copied")
}

func (g *Game) screenshot() {
	name := fmt.Sprintf("zolyx-%s.png", time.Now().Format("20060102-150405"))
	if err := render.SavePNG(name, g.sim, g.scale); err != nil {
		log.Printf("[game] screenshot: %v", err)
		g.flash("screenshot failed")
		return
	}
	g.flash("saved " + name)
}

func (g *Game) flash(msg string) {
	g.note = msg
	g.noteFrames = noteFrames
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
