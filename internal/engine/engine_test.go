package engine

import (
	"errors"
	"testing"
	"time"

	"gol-canvas/internal/core"
	"gol-canvas/internal/life"
	"gol-canvas/internal/render"
)

// manualClock fires its timers only when told to.
type manualClock struct {
	timers map[int]func()
	next   int
	period time.Duration
}

func newManualClock() *manualClock { return &manualClock{timers: map[int]func(){}} }

func (c *manualClock) Every(period time.Duration, fn func()) func() {
	id := c.next
	c.next++
	c.period = period
	c.timers[id] = fn
	return func() { delete(c.timers, id) }
}

func (c *manualClock) fire() {
	for _, fn := range c.timers {
		fn()
	}
}

type fixture struct {
	eng   *Engine
	clock *manualClock
	rec   *render.Recorder
	panel *Panel
	errs  []error
}

func newFixture(t *testing.T, count int) *fixture {
	t.Helper()
	f := &fixture{clock: newManualClock(), rec: &render.Recorder{}, panel: NewControlPanel()}
	opts := DefaultOptions()
	opts.Count = count
	opts.OnError = func(err error) { f.errs = append(f.errs, err) }
	eng, err := New(opts, f.rec, f.clock, core.NewRNG(42))
	if err != nil {
		t.Fatal(err)
	}
	f.eng = eng
	return f
}

func (f *fixture) setup(t *testing.T) {
	t.Helper()
	if err := f.eng.Setup(f.panel); err != nil {
		t.Fatal(err)
	}
}

func (f *fixture) shown(t *testing.T) int {
	t.Helper()
	v, ok := f.panel.Value(DisplayGenerations)
	if !ok {
		t.Fatal("panel lost its generations display")
	}
	return v
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	rec, clock := &render.Recorder{}, newManualClock()
	mutations := map[string]func(*Options){
		"count": func(o *Options) { o.Count = 0 },
		"size":  func(o *Options) { o.Size = -1 },
		"speed": func(o *Options) { o.Speed = 0 },
		"line":  func(o *Options) { o.LineWidth = 0 },
		"color": func(o *Options) { o.Palette.Alive = nil },
	}
	for name, mutate := range mutations {
		opts := DefaultOptions()
		mutate(&opts)
		if _, err := New(opts, rec, clock, nil); !errors.Is(err, core.ErrInvalidArgument) {
			t.Fatalf("%s: err=%v, want ErrInvalidArgument", name, err)
		}
	}
	if _, err := New(DefaultOptions(), nil, clock, nil); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("nil surface err=%v", err)
	}
	if _, err := New(DefaultOptions(), rec, nil, nil); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("nil clock err=%v", err)
	}
}

func TestSetupSeedsAndRenders(t *testing.T) {
	f := newFixture(t, core.DefaultCount)
	if f.eng.State() != Constructed {
		t.Fatalf("state %v before setup", f.eng.State())
	}
	if err := f.eng.Step(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Step before Setup err=%v", err)
	}
	f.setup(t)

	if f.eng.State() != Stopped || f.eng.Running() {
		t.Fatalf("state %v after setup", f.eng.State())
	}
	pop := f.eng.Grid().Population()
	lo, hi := life.DefaultRange(core.DefaultCount)
	if pop == 0 || pop > hi {
		t.Fatalf("population %d after setup, attempts range [%d, %d]", pop, lo, hi)
	}
	if f.rec.Ops[0].Kind != render.OpSetSize || f.rec.Ops[0].W != 640 {
		t.Fatalf("first surface op %+v, want 640px size", f.rec.Ops[0])
	}
	if n := len(f.rec.Rects()); n != core.DefaultCount*core.DefaultCount {
		t.Fatalf("%d rects drawn, want %d", n, core.DefaultCount*core.DefaultCount)
	}
	if f.shown(t) != 0 {
		t.Fatalf("display shows %d after setup", f.shown(t))
	}

	before := f.eng.Grid().Clone()
	f.rec.Reset()
	f.setup(t)
	if len(f.rec.Ops) != 0 || !f.eng.Grid().Equal(before) {
		t.Fatal("second Setup must be a no-op")
	}
}

func TestSetupRequiresEveryControl(t *testing.T) {
	cases := map[string]*Panel{
		ControlStartStop:   NewPanel([]string{ControlStep, ControlReset}, []string{DisplayGenerations}),
		ControlStep:        NewPanel([]string{ControlStartStop, ControlReset}, []string{DisplayGenerations}),
		ControlReset:       NewPanel([]string{ControlStartStop, ControlStep}, []string{DisplayGenerations}),
		DisplayGenerations: NewPanel([]string{ControlStartStop, ControlStep, ControlReset}, nil),
	}
	for missing, panel := range cases {
		f := newFixture(t, 8)
		err := f.eng.Setup(panel)
		if !errors.Is(err, ErrHostWiring) {
			t.Fatalf("missing %s: err=%v, want ErrHostWiring", missing, err)
		}
		if f.eng.State() != Constructed || len(f.rec.Ops) != 0 {
			t.Fatalf("missing %s: engine advanced to %v", missing, f.eng.State())
		}
	}
}

func TestStepAdvancesAndRenders(t *testing.T) {
	f := newFixture(t, 16)
	f.setup(t)
	for i := 1; i <= 5; i++ {
		want := life.Next(f.eng.Grid())
		f.rec.Reset()
		if err := f.eng.Step(); err != nil {
			t.Fatal(err)
		}
		if f.eng.Generations() != i || f.shown(t) != i {
			t.Fatalf("step %d: generations %d shown %d", i, f.eng.Generations(), f.shown(t))
		}
		if !f.eng.Grid().Equal(want) {
			t.Fatalf("step %d: grid differs from life.Next", i)
		}
		if n := len(f.rec.Rects()); n != 16*16 {
			t.Fatalf("step %d: %d rects", i, n)
		}
	}
}

func TestStartStopDriveTheClock(t *testing.T) {
	f := newFixture(t, 8)
	f.eng.Start()
	if f.eng.Running() || len(f.clock.timers) != 0 {
		t.Fatal("Start before Setup must do nothing")
	}
	f.setup(t)

	f.eng.Start()
	f.eng.Start()
	if !f.eng.Running() || len(f.clock.timers) != 1 {
		t.Fatalf("running=%v timers=%d after double Start", f.eng.Running(), len(f.clock.timers))
	}
	if f.clock.period != 50*time.Millisecond {
		t.Fatalf("tick period %v, want 50ms", f.clock.period)
	}
	for i := 0; i < 3; i++ {
		f.clock.fire()
	}
	if f.eng.Generations() != 3 {
		t.Fatalf("generations %d after 3 ticks", f.eng.Generations())
	}

	f.eng.Stop()
	f.eng.Stop()
	if f.eng.Running() || len(f.clock.timers) != 0 {
		t.Fatalf("running=%v timers=%d after Stop", f.eng.Running(), len(f.clock.timers))
	}
	f.clock.fire()
	if f.eng.Generations() != 3 {
		t.Fatal("ticked after Stop")
	}
}

func TestResetAfterSteps(t *testing.T) {
	f := newFixture(t, core.DefaultCount)
	f.setup(t)
	for i := 0; i < 10; i++ {
		if err := f.eng.Step(); err != nil {
			t.Fatal(err)
		}
	}
	stepped := f.eng.Grid().Clone()
	f.rec.Reset()
	if err := f.eng.Reset(); err != nil {
		t.Fatal(err)
	}
	if f.eng.Generations() != 0 || f.shown(t) != 0 {
		t.Fatalf("generations %d shown %d after reset", f.eng.Generations(), f.shown(t))
	}
	if f.eng.Running() {
		t.Fatal("reset started the engine")
	}
	if f.eng.Grid().Equal(stepped) {
		t.Fatal("reset did not reseed the grid")
	}
	if f.rec.Ops[0].Kind != render.OpClearRect || len(f.rec.Rects()) != core.DefaultCount*core.DefaultCount {
		t.Fatal("reset did not render a full frame")
	}
}

func TestPanelControls(t *testing.T) {
	f := newFixture(t, 8)
	f.setup(t)

	f.panel.Press(ControlStep)
	f.panel.Press(ControlStep)
	if f.shown(t) != 2 {
		t.Fatalf("display %d after two step presses", f.shown(t))
	}

	f.panel.Press(ControlStartStop)
	if !f.eng.Running() {
		t.Fatal("start-n-stop did not start")
	}
	f.clock.fire()
	if f.shown(t) != 3 {
		t.Fatalf("display %d after a tick", f.shown(t))
	}

	f.panel.Press(ControlReset)
	if f.eng.Running() || len(f.clock.timers) != 0 {
		t.Fatal("reset control must stop the engine")
	}
	if f.shown(t) != 0 {
		t.Fatalf("display %d after reset", f.shown(t))
	}

	f.panel.Press(ControlStartStop)
	f.panel.Press(ControlStartStop)
	if f.eng.Running() {
		t.Fatal("second start-n-stop press did not stop")
	}
	if len(f.errs) != 0 {
		t.Fatalf("unexpected errors %v", f.errs)
	}
	if f.panel.Press("nope") {
		t.Fatal("pressing an unknown button reported success")
	}
}

func TestTickErrorsReachOnError(t *testing.T) {
	f := newFixture(t, 4)
	f.setup(t)
	f.eng.Start()
	boom := errors.New("context lost")
	f.rec.Err = boom
	f.clock.fire()
	if len(f.errs) != 1 || f.errs[0] != boom {
		t.Fatalf("errors %v, want [%v]", f.errs, boom)
	}
	if f.eng.Generations() != 1 {
		t.Fatalf("generations %d; the grid advances even when drawing fails", f.eng.Generations())
	}
}

func TestHeadlessSetup(t *testing.T) {
	f := newFixture(t, 4)
	if err := f.eng.Setup(nil); err != nil {
		t.Fatal(err)
	}
	if err := f.eng.Step(); err != nil {
		t.Fatal(err)
	}
	if f.eng.Generations() != 1 {
		t.Fatalf("generations %d", f.eng.Generations())
	}
}

func TestStateString(t *testing.T) {
	if Running.String() != "running" || State(9).String() != "State(9)" {
		t.Fatalf("got %q and %q", Running.String(), State(9).String())
	}
}
