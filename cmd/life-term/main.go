package main

import (
	"log"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"gol-canvas/internal/config"
	"gol-canvas/internal/core"
	"gol-canvas/internal/engine"
	"gol-canvas/internal/term"
)

// termCount fits a default-sized grid into an ordinary terminal window.
const termCount = 48

func main() {
	cfg := config.NewConfig()
	cfg.Count = termCount
	noColor := false

	flaggy.SetName("life-term")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	cfg.BindParser(flaggy.DefaultParser)
	flaggy.Bool(&noColor, "", "no-color", "Disable ANSI colors")
	flaggy.Parse()

	opts, err := cfg.Options()
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	au := aurora.NewAurora(!noColor)
	surface := term.NewSurface(opts.Size, au)
	ui, err := term.New(surface, au)
	if err != nil {
		log.Fatal(err)
	}
	opts.OnError = ui.Report

	eng, err := engine.New(opts, surface, core.TickerClock{Post: ui.Post}, cfg.RNG())
	if err != nil {
		ui.Close()
		log.Fatal(err)
	}
	if err := ui.Attach(eng); err != nil {
		ui.Close()
		log.Fatal(err)
	}
	err = ui.Run()
	ui.Close()
	if err != nil {
		log.Fatal(err)
	}
}
