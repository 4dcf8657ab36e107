package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"gol-canvas/internal/config"
	"gol-canvas/internal/core"
	"gol-canvas/internal/engine"
	"gol-canvas/internal/render"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "generations to simulate before the snapshot")
	out := flag.String("out", "life.png", "output PNG path")
	thumb := flag.Bool("thumb", false, "write one pixel per cell instead of the full canvas")
	flag.Parse()

	opts, err := cfg.Options()
	if err != nil {
		log.Fatal(err)
	}
	surface := render.NewRasterSurface(opts.Palette.Dead)
	eng, err := engine.New(opts, surface, core.TickerClock{}, cfg.RNG())
	if err != nil {
		log.Fatal(err)
	}
	if err := eng.Setup(nil); err != nil {
		log.Fatal(err)
	}
	for i := 0; i < *steps; i++ {
		if err := eng.Step(); err != nil {
			log.Fatalf("step %d: %v", i+1, err)
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if *thumb {
		err = png.Encode(f, render.Thumbnail(eng.Grid(), opts.Palette))
	} else {
		err = surface.WritePNG(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("generation %d, population %d -> %s\n", eng.Generations(), eng.Grid().Population(), *out)
}
