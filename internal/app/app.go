//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gol-canvas/internal/core"
	"gol-canvas/internal/engine"
	"gol-canvas/internal/ui"
)

// Game adapts an engine to the ebiten.Game interface. Keyboard shortcuts and
// HUD buttons both go through the engine's control panel.
type Game struct {
	eng     *engine.Engine
	surface *Surface
	clock   *core.FrameClock
	panel   *engine.Panel
	hud     *ui.HUD

	ready bool
}

// New constructs a Game. eng must have been built with surface and clock.
func New(eng *engine.Engine, surface *Surface, clock *core.FrameClock) *Game {
	panel := engine.NewControlPanel()
	return &Game{
		eng:     eng,
		surface: surface,
		clock:   clock,
		panel:   panel,
		hud:     ui.NewHUD(eng, panel, ui.PanelWidth),
	}
}

// Update handles input and fires due engine ticks.
func (g *Game) Update() error {
	if !g.ready {
		if err := g.eng.Setup(g.panel); err != nil {
			return err
		}
		g.ready = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.panel.Press(engine.ControlStartStop)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.panel.Press(engine.ControlStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.panel.Press(engine.ControlReset)
	}
	g.hud.Update(g.extent())
	g.clock.Poll()
	return nil
}

// Draw blits the engine's canvas and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.surface.Background)
	if img := g.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	g.hud.Draw(screen, g.extent())
}

// Layout returns the logical screen size: the grid plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.extent() + ui.PanelWidth, g.extent()
}

func (g *Game) extent() int {
	opts := g.eng.Options()
	return opts.Count * opts.Size
}
