//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gol-canvas/internal/app"
	"gol-canvas/internal/config"
	"gol-canvas/internal/core"
	"gol-canvas/internal/engine"
	"gol-canvas/internal/ui"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	opts, err := cfg.Options()
	if err != nil {
		log.Fatal(err)
	}
	opts.OnError = func(err error) { log.Printf("life: %v", err) }

	surface := app.NewSurface(opts.Palette.Dead)
	clock := core.NewFrameClock()
	eng, err := engine.New(opts, surface, clock, cfg.RNG())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(eng, surface, clock)
	extent := opts.Count * opts.Size

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(extent+ui.PanelWidth, extent)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
