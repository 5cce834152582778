//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"tileworld/internal/app"
	"tileworld/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("tileworld: %v", err)
	}

	s, err := session.New(cfg.Session())
	if err != nil {
		log.Fatalf("tileworld: %v", err)
	}

	game := app.New(s, cfg.TPS, cfg.HUDWidth)

	ebiten.SetWindowTitle("tileworld")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+cfg.HUDWidth, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
