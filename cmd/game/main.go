package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/zolyx/internal/config"
	"github.com/Garsondee/zolyx/internal/game"
	"github.com/Garsondee/zolyx/internal/sound"
)

func main() {
	cfg, envFile, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if envFile != "" {
		log.Printf("[config] loaded %s", envFile)
	}

	player := sound.NewPlayer(cfg.Volume)
	if cfg.Sound {
		if err := player.Init(); err != nil {
			log.Printf("[sound] disabled: %v", err)
		}
	}
	defer player.Close()

	g, err := game.New(cfg, player)
	if err != nil {
		log.Fatal(err)
	}
	w, h := g.Size()
	ebiten.SetWindowTitle("Zolyx")
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
