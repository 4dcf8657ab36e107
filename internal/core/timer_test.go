package core

import (
	"sync/atomic"
	"testing"
	"time"
)

type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time          { return f.t }
func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestFixedStepDropsMissedPeriods(t *testing.T) {
	ft := &fakeTime{t: time.Unix(100, 0)}
	fs := NewFixedStep(50 * time.Millisecond)
	fs.now = ft.now

	if fs.ShouldStep() {
		t.Fatal("first call must not step")
	}
	ft.advance(20 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before a full period")
	}
	ft.advance(30 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after a full period")
	}
	// A long stall yields one step, not a burst of catch-up steps.
	ft.advance(500 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after stall")
	}
	if fs.ShouldStep() {
		t.Fatal("caught up on missed periods")
	}
}

func TestFrameClockFiresAndCancels(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := &FrameClock{now: ft.now}
	fired := 0
	cancel := c.Every(50*time.Millisecond, func() { fired++ })

	c.Poll()
	if fired != 0 {
		t.Fatal("fired before a period elapsed")
	}
	for i := 0; i < 4; i++ {
		ft.advance(50 * time.Millisecond)
		c.Poll()
	}
	if fired != 4 {
		t.Fatalf("fired %d times, want 4", fired)
	}
	cancel()
	ft.advance(50 * time.Millisecond)
	c.Poll()
	if fired != 4 || c.Active() != 0 {
		t.Fatalf("cancelled timer still active: fired=%d active=%d", fired, c.Active())
	}
}

func TestFrameClockCallbackMayReschedule(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := &FrameClock{now: ft.now}
	var cancel func()
	second := 0
	cancel = c.Every(10*time.Millisecond, func() {
		cancel()
		c.Every(10*time.Millisecond, func() { second++ })
	})
	ft.advance(10 * time.Millisecond)
	c.Poll()
	if c.Active() != 1 {
		t.Fatalf("active timers %d, want 1", c.Active())
	}
	ft.advance(10 * time.Millisecond)
	c.Poll()
	if second != 1 {
		t.Fatalf("rescheduled timer fired %d times, want 1", second)
	}
}

func TestTickerClockStopsAfterCancel(t *testing.T) {
	var n atomic.Int32
	cancel := TickerClock{}.Every(time.Millisecond, func() { n.Add(1) })
	deadline := time.Now().Add(2 * time.Second)
	for n.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatal("ticker never fired")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()
	cancel()
	time.Sleep(5 * time.Millisecond)
	after := n.Load()
	time.Sleep(20 * time.Millisecond)
	if n.Load() != after {
		t.Fatalf("ticks after cancel: %d -> %d", after, n.Load())
	}
}

func TestTickerClockDropsWhilePending(t *testing.T) {
	var queued []func()
	posts := make(chan func(), 16)
	cancel := TickerClock{Post: func(f func()) { posts <- f }}.Every(time.Millisecond, func() {})
	defer cancel()

	select {
	case f := <-posts:
		queued = append(queued, f)
	case <-time.After(2 * time.Second):
		t.Fatal("no tick posted")
	}
	time.Sleep(20 * time.Millisecond)
	if len(posts) != 0 {
		t.Fatalf("%d ticks queued behind a pending one", len(posts))
	}
	queued[0]()
	select {
	case <-posts:
	case <-time.After(2 * time.Second):
		t.Fatal("ticking did not resume after the pending tick ran")
	}
}
