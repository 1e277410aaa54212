// Package term is the terminal front end. Two grid rows share one text row
// through the upper-half-block glyph.
package term

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/time/rate"

	"github.com/Garsondee/zolyx/internal/render"
	"github.com/Garsondee/zolyx/internal/sim"
)

const upperHalf = '▀'

// EventSink receives new simulation events after every tick.
type EventSink interface {
	Handle(events []sim.SimLogEntry)
}

// App runs a Sim in a tcell screen.
type App struct {
	screen   tcell.Screen
	sim      *sim.Sim
	controls Controls
	sink     EventSink
	clock    *sim.Clock
	limiter  *rate.Limiter
	seen     int
	note     string
}

// New wraps an initialised screen. tps is the simulation rate; sink may be
// nil.
func New(screen tcell.Screen, s *sim.Sim, tps int, sink EventSink) *App {
	if tps <= 0 {
		tps = sim.TicksPerSecond
	}
	return &App{
		screen:  screen,
		sim:     s,
		sink:    sink,
		clock:   sim.NewClock(tps, 0),
		limiter: rate.NewLimiter(rate.Limit(tps), 1),
	}
}

var errQuit = errors.New("quit")

// Run pumps events and ticks until the user quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	last := time.Now()
	for {
		if err := a.limiter.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("pace: %w", err)
		}

	drain:
		for {
			select {
			case ev := <-events:
				if err := a.handle(ev); errors.Is(err, errQuit) {
					return nil
				}
			default:
				break drain
			}
		}

		now := time.Now()
		for n := a.clock.Advance(now.Sub(last)); n > 0; n-- {
			a.Step()
		}
		last = now
		a.Draw()
	}
}

// Step runs one tick and forwards any new events.
func (a *App) Step() {
	a.sim.Tick(a.controls.Next(a.sim))
	l := a.sim.Log()
	if a.sink != nil {
		a.sink.Handle(l.Since(a.seen))
	}
	a.seen = l.Len()
}

func (a *App) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch a.controls.Key(ev) {
		case ActionQuit:
			return errQuit
		case ActionPause:
			a.sim.TogglePause()
		case ActionRestart:
			a.sim.Restart()
		case ActionDump:
			if err := clipboard.WriteAll(render.ASCII(a.sim)); err != nil {
				log.Printf("clipboard: %v", err)
				a.note = "clipboard unavailable"
			} else {
				a.note = "field copied"
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return nil
}

// Notify shows msg on the mode line until replaced.
func (a *App) Notify(msg string) { a.note = msg }

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw paints the field and the status lines.
func (a *App) Draw() {
	a.screen.Clear()
	px := render.Pixels(a.sim)
	for vy := 0; vy < render.ViewH; vy += 2 {
		for vx := 0; vx < render.ViewW; vx++ {
			top := px[vy*render.ViewW+vx]
			bottom := render.Ink
			if vy+1 < render.ViewH {
				bottom = px[(vy+1)*render.ViewW+vx]
			}
			st := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			a.screen.SetContent(vx, vy/2, upperHalf, nil, st)
		}
	}

	row := (render.ViewH + 1) / 2
	a.text(0, row, render.Status(a.sim), tcell.StyleDefault.Foreground(rgb(render.TimerColor(a.sim.Timer()))))
	a.text(0, row+1, a.modeLine(), tcell.StyleDefault)
	a.screen.Show()
}

func (a *App) modeLine() string {
	fire := "off"
	if a.controls.Fire() {
		fire = "ON"
	}
	var mode string
	switch a.sim.Mode() {
	case sim.ModePaused:
		mode = "PAUSED"
	case sim.ModeGameOver:
		mode = "GAME OVER - enter to restart"
		if a.sim.OutOfTime() {
			mode = "OUT OF TIME - enter to restart"
		}
	case sim.ModeLevelComplete:
		mode = "SCREEN COMPLETED"
	default:
		mode = "arrows move  space fire  p pause  d copy  q quit"
	}
	line := fmt.Sprintf("fire:%s  %s", fire, mode)
	if a.note != "" {
		line += "  [" + a.note + "]"
	}
	return line
}

func (a *App) text(x, y int, s string, st tcell.Style) {
	for i, r := range s {
		a.screen.SetContent(x+i, y, r, nil, st)
	}
}
