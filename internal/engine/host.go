package engine

import "errors"

// ErrHostWiring reports a control element the host failed to provide.
var ErrHostWiring = errors.New("host wiring")

// Names of the host elements the engine binds to.
const (
	ControlStartStop   = "start-n-stop"
	ControlStep        = "step"
	ControlReset       = "reset"
	DisplayGenerations = "generations"
)

// Button is a host control that can invoke a handler.
type Button interface {
	OnPress(fn func())
}

// Display is a host element showing the generation count.
type Display interface {
	Show(generations int)
}

// Host exposes the UI elements an engine wires itself to.
type Host interface {
	Button(name string) (Button, bool)
	Display(name string) (Display, bool)
}

// Panel is an in-memory Host. UIs translate their own events into Press calls
// and read displayed values back with Value.
type Panel struct {
	handlers map[string][]func()
	displays map[string]*Counter
}

// NewPanel returns a Panel offering the named buttons and displays.
func NewPanel(buttons, displays []string) *Panel {
	p := &Panel{handlers: map[string][]func(){}, displays: map[string]*Counter{}}
	for _, name := range buttons {
		p.handlers[name] = nil
	}
	for _, name := range displays {
		p.displays[name] = &Counter{}
	}
	return p
}

// NewControlPanel returns a Panel with every element an Engine needs.
func NewControlPanel() *Panel {
	return NewPanel(
		[]string{ControlStartStop, ControlStep, ControlReset},
		[]string{DisplayGenerations},
	)
}

// Button implements Host.
func (p *Panel) Button(name string) (Button, bool) {
	if _, ok := p.handlers[name]; !ok {
		return nil, false
	}
	return panelButton{p: p, name: name}, true
}

// Display implements Host.
func (p *Panel) Display(name string) (Display, bool) {
	c, ok := p.displays[name]
	if !ok {
		return nil, false
	}
	return c, true
}

// Press runs the handlers bound to the named button and reports whether the
// button exists.
func (p *Panel) Press(name string) bool {
	handlers, ok := p.handlers[name]
	if !ok {
		return false
	}
	for _, fn := range handlers {
		fn()
	}
	return true
}

// Value returns the last number shown on the named display.
func (p *Panel) Value(name string) (int, bool) {
	c, ok := p.displays[name]
	if !ok {
		return 0, false
	}
	return c.Value(), true
}

// Counter returns the named display for hosts that want change notifications.
func (p *Panel) Counter(name string) *Counter {
	return p.displays[name]
}

type panelButton struct {
	p    *Panel
	name string
}

func (b panelButton) OnPress(fn func()) {
	b.p.handlers[b.name] = append(b.p.handlers[b.name], fn)
}

// Counter is a Display holding the most recent value.
type Counter struct {
	value int

	// OnChange, when set, is called with every shown value.
	OnChange func(int)
}

// Show implements Display.
func (c *Counter) Show(n int) {
	c.value = n
	if c.OnChange != nil {
		c.OnChange(n)
	}
}

// Value returns the last shown value.
func (c *Counter) Value() int { return c.value }
