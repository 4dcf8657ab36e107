// Package engine drives a Game of Life grid: it seeds, steps and renders it,
// and binds those operations to a host's start-n-stop, step and reset controls.
//
// An Engine is not safe for concurrent use. Hosts deliver control events and
// clock ticks on one goroutine.
package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gol-canvas/internal/core"
	"gol-canvas/internal/life"
	"gol-canvas/internal/render"
)

// ErrNotReady is returned by operations that need Setup to have run.
var ErrNotReady = errors.New("engine: not set up")

// DefaultSpeed is the tick period.
const DefaultSpeed = 50 * time.Millisecond

// State is the engine lifecycle position.
type State int

const (
	Constructed State = iota
	Stopped
	Running
)

func (s State) String() string {
	switch s {
	case Constructed:
		return "constructed"
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configures an Engine.
type Options struct {
	Count     int
	Size      int
	Speed     time.Duration
	Palette   render.Palette
	LineWidth float64

	// OnError receives failures of clock-driven ticks and button handlers,
	// which have no caller to return them to. Defaults to logging.
	OnError func(error)
}

// DefaultOptions returns a 128x128 grid of 5px cells ticking every 50ms.
func DefaultOptions() Options {
	return Options{
		Count:     core.DefaultCount,
		Size:      core.DefaultSize,
		Speed:     DefaultSpeed,
		Palette:   render.DefaultPalette(),
		LineWidth: render.DefaultLineWidth,
	}
}

func (o Options) validate() error {
	switch {
	case o.Count <= 0:
		return fmt.Errorf("count %d: %w", o.Count, core.ErrInvalidArgument)
	case o.Size <= 0:
		return fmt.Errorf("size %d: %w", o.Size, core.ErrInvalidArgument)
	case o.Speed <= 0:
		return fmt.Errorf("speed %v: %w", o.Speed, core.ErrInvalidArgument)
	case o.LineWidth <= 0:
		return fmt.Errorf("line width %v: %w", o.LineWidth, core.ErrInvalidArgument)
	case o.Palette.Alive == nil || o.Palette.Dead == nil:
		return fmt.Errorf("palette missing a color: %w", core.ErrInvalidArgument)
	}
	return nil
}

// Engine owns the grid and the generation counter.
type Engine struct {
	opts     Options
	surface  render.Surface
	clock    core.Clock
	grid     *core.Grid
	stepper  life.Stepper
	seeder   *life.Seeder
	renderer *render.Renderer

	generations int
	state       State
	cancel      func()
}

// New validates opts and returns an engine in the Constructed state. A nil
// rng is replaced by a time-seeded one.
func New(opts Options, surface render.Surface, clock core.Clock, rng *core.RNG) (*Engine, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, fmt.Errorf("nil surface: %w", core.ErrInvalidArgument)
	}
	if clock == nil {
		return nil, fmt.Errorf("nil clock: %w", core.ErrInvalidArgument)
	}
	if rng == nil {
		rng = core.NewRNG(0)
	}
	if opts.OnError == nil {
		opts.OnError = func(err error) { log.Printf("engine: %v", err) }
	}
	return &Engine{
		opts:     opts,
		surface:  surface,
		clock:    clock,
		seeder:   life.NewSeeder(rng),
		renderer: &render.Renderer{Palette: opts.Palette, LineWidth: opts.LineWidth},
	}, nil
}

// Setup wires the engine to host, allocates and seeds the grid and draws the
// first frame. A nil host runs without controls. Calls after a successful
// Setup do nothing.
func (e *Engine) Setup(host Host) error {
	if e.state != Constructed {
		return nil
	}

	var buttons map[string]Button
	if host != nil {
		var err error
		if buttons, err = e.lookup(host); err != nil {
			return err
		}
	}

	grid, err := core.NewGrid(e.opts.Count, e.opts.Size)
	if err != nil {
		return err
	}
	if _, err := e.seeder.Seed(grid); err != nil {
		return err
	}
	if err := e.renderer.Prepare(grid, e.surface); err != nil {
		return err
	}
	if err := e.renderer.Render(grid, e.surface, 0); err != nil {
		return err
	}
	e.grid = grid
	e.generations = 0
	e.state = Stopped

	if buttons != nil {
		buttons[ControlStartStop].OnPress(e.Toggle)
		buttons[ControlStep].OnPress(func() { e.report(e.Step()) })
		buttons[ControlReset].OnPress(func() {
			e.Stop()
			e.report(e.Reset())
		})
	}
	return nil
}

// lookup resolves every control element and installs the generation display.
func (e *Engine) lookup(host Host) (map[string]Button, error) {
	buttons := map[string]Button{}
	for _, name := range []string{ControlStartStop, ControlStep, ControlReset} {
		b, ok := host.Button(name)
		if !ok || b == nil {
			return nil, fmt.Errorf("%w: missing button %q", ErrHostWiring, name)
		}
		buttons[name] = b
	}
	d, ok := host.Display(DisplayGenerations)
	if !ok || d == nil {
		return nil, fmt.Errorf("%w: missing display %q", ErrHostWiring, DisplayGenerations)
	}
	e.renderer.Counter = d.Show
	return buttons, nil
}

// Start ticks the engine every Speed. It does nothing unless Stopped.
func (e *Engine) Start() {
	if e.state != Stopped {
		return
	}
	e.cancel = e.clock.Every(e.opts.Speed, e.tick)
	e.state = Running
}

// Stop cancels ticking. It does nothing unless Running.
func (e *Engine) Stop() {
	if e.state != Running {
		return
	}
	e.cancel()
	e.cancel = nil
	e.state = Stopped
}

// Toggle starts a stopped engine and stops a running one.
func (e *Engine) Toggle() {
	if e.state == Running {
		e.Stop()
		return
	}
	e.Start()
}

// Step advances one generation and draws it. Clock ticks run the same code.
func (e *Engine) Step() error {
	if e.state == Constructed {
		return ErrNotReady
	}
	e.stepper.Step(e.grid)
	e.generations++
	return e.renderer.Render(e.grid, e.surface, e.generations)
}

// Reset reseeds an empty grid, zeroes the generation count and draws the
// result. It leaves ticking as it is; the reset control stops first.
func (e *Engine) Reset() error {
	if e.state == Constructed {
		return ErrNotReady
	}
	e.grid.Clear()
	e.generations = 0
	if _, err := e.seeder.Seed(e.grid); err != nil {
		return err
	}
	return e.renderer.Render(e.grid, e.surface, e.generations)
}

func (e *Engine) tick() {
	e.report(e.Step())
}

func (e *Engine) report(err error) {
	if err != nil {
		e.opts.OnError(err)
	}
}

// Generations returns the number of steps since setup or the last reset.
func (e *Engine) Generations() int { return e.generations }

// Running reports whether the clock is driving the engine.
func (e *Engine) Running() bool { return e.state == Running }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Grid returns the current grid, nil before Setup.
func (e *Engine) Grid() *core.Grid { return e.grid }

// Options returns the configuration the engine was built with.
func (e *Engine) Options() Options { return e.opts }
