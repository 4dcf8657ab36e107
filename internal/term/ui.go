package term

import (
	"errors"
	"fmt"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"gol-canvas/internal/engine"
)

var errNoCanvas = errors.New("terminal surface: canvas not sized")

const (
	gridView   = "grid"
	statusView = "status"
)

type keyBinding struct {
	key     interface{}
	handler func() error
}

// UI runs the engine inside a gocui main loop. Key presses and clock ticks
// both execute on that loop, one at a time.
type UI struct {
	g       *gocui.Gui
	eng     *engine.Engine
	panel   *engine.Panel
	surface *Surface
	au      aurora.Aurora
	lastErr error
}

// New opens the terminal. Call Close when done.
func New(surface *Surface, au aurora.Aurora) (*UI, error) {
	g, err := gocui.NewGui(gocui.Output256)
	if err != nil {
		return nil, err
	}
	u := &UI{g: g, panel: engine.NewControlPanel(), surface: surface, au: au}
	g.SetManagerFunc(u.layout)
	return u, nil
}

// Post schedules fn on the main loop. It is the Post hook of a core.TickerClock.
func (u *UI) Post(fn func()) {
	u.g.Update(func(*gocui.Gui) error {
		fn()
		return nil
	})
}

// Report records an engine error for the status line.
func (u *UI) Report(err error) { u.lastErr = err }

// Attach binds the engine and the keyboard to the control panel.
func (u *UI) Attach(eng *engine.Engine) error {
	u.eng = eng
	press := func(name string) func() error {
		return func() error {
			u.lastErr = nil
			u.panel.Press(name)
			return nil
		}
	}
	quit := func() error { return gocui.ErrQuit }
	bindings := []keyBinding{
		{gocui.KeyCtrlC, quit},
		{'q', quit},
		{gocui.KeySpace, press(engine.ControlStartStop)},
		{'n', press(engine.ControlStep)},
		{'r', press(engine.ControlReset)},
	}
	for _, kb := range bindings {
		h := kb.handler
		if err := u.g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() }); err != nil {
			return err
		}
	}
	return eng.Setup(u.panel)
}

// Run blocks in the main loop until the user quits.
func (u *UI) Run() error {
	if err := u.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// Close stops the engine and restores the terminal.
func (u *UI) Close() {
	if u.eng != nil {
		u.eng.Stop()
	}
	u.g.Close()
}

func (u *UI) layout(g *gocui.Gui) error {
	cols, rows := u.surface.Dims()
	maxX, maxY := g.Size()
	w, h := min(cols+1, maxX-1), min(rows+1, maxY-4)
	if w < 1 || h < 1 {
		return nil
	}

	v, err := g.SetView(gridView, 0, 0, w, h)
	if err != nil && !errors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	v.Title = "Game of Life"
	v.Clear()
	for _, line := range u.surface.Lines() {
		fmt.Fprintln(v, line)
	}

	s, err := g.SetView(statusView, 0, h+1, max(w, 60), h+3)
	if err != nil && !errors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	s.Clear()
	fmt.Fprint(s, u.statusLine())
	return nil
}

func (u *UI) statusLine() string {
	generations, _ := u.panel.Value(engine.DisplayGenerations)
	state := u.au.Colorize("stopped", aurora.BlueFg).String()
	population := 0
	if u.eng != nil {
		if u.eng.Running() {
			state = u.au.Colorize("running", aurora.CyanFg).String()
		}
		if g := u.eng.Grid(); g != nil {
			population = g.Population()
		}
	}
	line := fmt.Sprintf("gen %d  pop %d  %s  [space] start/stop [n] step [r] reset [q] quit",
		generations, population, state)
	if u.lastErr != nil {
		line += "  " + u.au.Red(u.lastErr.Error()).String()
	}
	return line
}
