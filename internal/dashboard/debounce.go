package dashboard

import (
	"sync"
	"time"
)

// Gate coalesces bursts of calls: fn runs once, after delay has passed
// without another Trigger. Only the last fn of a burst runs.
type Gate struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	gen   uint64
}

func NewGate(delay time.Duration) *Gate {
	return &Gate{delay: delay}
}

func (g *Gate) Trigger(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.gen++
	gen := g.gen
	if g.timer != nil {
		g.timer.Stop()
	}
	g.timer = time.AfterFunc(g.delay, func() { g.fire(gen, fn) })
}

// Cancel drops the pending call, if any, and reports whether there was one.
func (g *Gate) Cancel() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.gen++
	if g.timer == nil {
		return false
	}
	g.timer.Stop()
	g.timer = nil
	return true
}

func (g *Gate) fire(gen uint64, fn func()) {
	g.mu.Lock()
	// a timer that already fired cannot be stopped; a newer Trigger or a
	// Cancel moved gen on, so this run is superseded
	if gen != g.gen {
		g.mu.Unlock()
		return
	}
	g.timer = nil
	g.mu.Unlock()

	fn()
}
