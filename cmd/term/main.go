package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/zolyx/internal/config"
	"github.com/Garsondee/zolyx/internal/sim"
	"github.com/Garsondee/zolyx/internal/sound"
	"github.com/Garsondee/zolyx/internal/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, _, err := config.Load()
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	player := sound.NewPlayer(cfg.Volume)
	var soundErr error
	if cfg.Sound {
		soundErr = player.Init()
	}
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := sim.New(
		sim.WithSeed(seed),
		sim.WithLevel(cfg.StartLevel),
		sim.WithLives(cfg.Lives),
		sim.WithVerboseLog(cfg.VerboseLog),
	)
	app := term.New(screen, s, cfg.TPS, player)
	if soundErr != nil {
		// log output would scribble over the screen
		app.Notify("sound off: " + soundErr.Error())
	}
	return app.Run(ctx)
}
