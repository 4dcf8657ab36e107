package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock schedules fn every period until the returned cancel func is called.
type Clock interface {
	Every(period time.Duration, fn func()) (cancel func())
}

// FixedStep gates updates of a frame loop to a steady period. Periods missed
// while the host was busy are dropped rather than replayed.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller firing once per period.
func NewFixedStep(period time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetPeriod(period)
	return fs
}

// SetPeriod changes the tick period. It is safe to call from the main loop.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = time.Second / 60
	}
	f.step = period
}

// Period returns the configured tick period.
func (f *FixedStep) Period() time.Duration { return f.step }

// ShouldStep reports whether the loop should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator = (f.accumulator - f.step) % f.step
		return true
	}
	return false
}

// FrameClock is a Clock for hosts that own a frame loop. Poll must be called
// once per frame from the loop's goroutine; each due timer fires at most once.
type FrameClock struct {
	now    func() time.Time
	timers []*frameTimer
}

type frameTimer struct {
	fs        *FixedStep
	fn        func()
	cancelled bool
}

// NewFrameClock returns a FrameClock reading the wall clock.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Every registers fn to run on the first Poll after each elapsed period.
func (c *FrameClock) Every(period time.Duration, fn func()) func() {
	fs := NewFixedStep(period)
	fs.now = c.now
	fs.last = c.now()
	t := &frameTimer{fs: fs, fn: fn}
	c.timers = append(c.timers, t)
	return func() { t.cancelled = true }
}

// Poll fires due timers and forgets cancelled ones. Timers registered by a
// firing callback join from the next Poll.
func (c *FrameClock) Poll() {
	timers := c.timers
	c.timers = nil
	live := make([]*frameTimer, 0, len(timers))
	for _, t := range timers {
		if t.cancelled {
			continue
		}
		if t.fs.ShouldStep() {
			t.fn()
		}
		if !t.cancelled {
			live = append(live, t)
		}
	}
	c.timers = append(live, c.timers...)
}

// Active reports the number of registered timers.
func (c *FrameClock) Active() int { return len(c.timers) }

// TickerClock drives timers from a background time.Ticker. Post hands each
// tick to the host's event loop so it runs serialised with control events; a
// nil Post runs the tick on the ticker goroutine. A tick that arrives while the
// previous one is still pending is dropped.
type TickerClock struct {
	Post func(func())
}

// Every starts a ticker goroutine that lives until cancel is called.
func (c TickerClock) Every(period time.Duration, fn func()) func() {
	post := c.Post
	if post == nil {
		post = func(f func()) { f() }
	}
	ticker := time.NewTicker(period)
	done := make(chan struct{})
	var pending, stopped atomic.Bool

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if !pending.CompareAndSwap(false, true) {
					continue
				}
				post(func() {
					defer pending.Store(false)
					if stopped.Load() {
						return
					}
					fn()
				})
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			stopped.Store(true)
			close(done)
		})
	}
}
