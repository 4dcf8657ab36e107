// Package config holds the command-line parameters shared by the commands.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/integrii/flaggy"

	"gol-canvas/internal/core"
	"gol-canvas/internal/engine"
	"gol-canvas/internal/render"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Count     int
	Size      int
	Speed     time.Duration
	Alive     string
	Dead      string
	LineWidth float64
	Seed      int64
}

// NewConfig returns a Config populated with the engine defaults.
func NewConfig() *Config {
	pal := render.DefaultPalette()
	return &Config{
		Count:     core.DefaultCount,
		Size:      core.DefaultSize,
		Speed:     engine.DefaultSpeed,
		Alive:     render.Hex(pal.Alive),
		Dead:      render.Hex(pal.Dead),
		LineWidth: render.DefaultLineWidth,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Count, "count", c.Count, "cells per side")
	fs.IntVar(&c.Size, "size", c.Size, "pixel edge of one cell")
	fs.DurationVar(&c.Speed, "speed", c.Speed, "tick period")
	fs.StringVar(&c.Alive, "alive", c.Alive, "live cell color (#rrggbb)")
	fs.StringVar(&c.Dead, "dead", c.Dead, "dead cell and background color (#rrggbb)")
	fs.Float64Var(&c.LineWidth, "line-width", c.LineWidth, "dead cell outline width in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for time-based")
}

// BindParser attaches the configuration to a flaggy parser.
func (c *Config) BindParser(p *flaggy.Parser) {
	p.Int(&c.Count, "c", "count", "Cells per side")
	p.Int(&c.Size, "z", "size", "Pixel edge of one cell")
	p.Duration(&c.Speed, "i", "speed", "Tick period, for example 50ms")
	p.String(&c.Alive, "", "alive", "Live cell color (#rrggbb)")
	p.String(&c.Dead, "", "dead", "Dead cell and background color (#rrggbb)")
	p.Float64(&c.LineWidth, "", "line-width", "Dead cell outline width in pixels")
	p.Int64(&c.Seed, "s", "seed", "Random seed, 0 for time-based")
}

// Options converts the configuration into engine options.
func (c *Config) Options() (engine.Options, error) {
	alive, err := render.ParseHex(c.Alive)
	if err != nil {
		return engine.Options{}, fmt.Errorf("alive: %w", err)
	}
	dead, err := render.ParseHex(c.Dead)
	if err != nil {
		return engine.Options{}, fmt.Errorf("dead: %w", err)
	}
	opts := engine.DefaultOptions()
	opts.Count = c.Count
	opts.Size = c.Size
	opts.Speed = c.Speed
	opts.Palette = render.Palette{Alive: alive, Dead: dead}
	opts.LineWidth = c.LineWidth
	return opts, nil
}

// RNG returns the random source selected by Seed.
func (c *Config) RNG() *core.RNG {
	return core.NewRNG(c.Seed)
}
