package clock

import (
	"context"
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/storeflow/internal/types"
)

type State struct {
	Override   *types.CalendarDate `json:"override"`
	ResetCount uint64              `json:"resetCount"`
}

// Persister stores the override between restarts. The date is kept as raw
// text so a corrupted value can be dropped on load.
type Persister interface {
	LoadClock(ctx context.Context) (override string, resetCount uint64, err error)
	SaveClock(ctx context.Context, override string, resetCount uint64) error
}

// Clock is the process-wide notion of "now". Everything that computes
// "today", "N days ago" or the age of an order reads it instead of time.Now.
type Clock struct {
	mu         sync.RWMutex
	override   *types.CalendarDate
	resetCount uint64
	listeners  []func(State)
	persister  Persister
	wall       func() time.Time
}

type Option func(*Clock)

func WithPersister(p Persister) Option {
	return func(c *Clock) { c.persister = p }
}

// WithWallClock replaces the real time source.
func WithWallClock(now func() time.Time) Option {
	return func(c *Clock) { c.wall = now }
}

func New(opts ...Option) *Clock {
	c := &Clock{wall: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.override != nil {
		return c.override.Time()
	}
	return c.wall()
}

// AsOfDate returns the override date, if one is active.
func (c *Clock) AsOfDate() (types.CalendarDate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.override == nil {
		return types.CalendarDate{}, false
	}
	return *c.override, true
}

func (c *Clock) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stateLocked()
}

func (c *Clock) stateLocked() State {
	s := State{ResetCount: c.resetCount}
	if c.override != nil {
		d := *c.override
		s.Override = &d
	}
	return s
}

// Subscribe registers fn to be called after every override change.
func (c *Clock) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Clock) SetOverride(ctx context.Context, d types.CalendarDate) {
	c.mu.Lock()
	c.override = &d
	state := c.stateLocked()
	c.mu.Unlock()

	logger.Infof("Virtual clock pinned to %s", d)
	c.changed(ctx, state)
}

// ClearOverride unpins the clock. The reset counter changes even when no
// override was set, so dependents recompute anyway.
func (c *Clock) ClearOverride(ctx context.Context) {
	c.mu.Lock()
	c.override = nil
	c.resetCount++
	state := c.stateLocked()
	c.mu.Unlock()

	logger.Infof("Virtual clock reset to wall time (reset #%d)", state.ResetCount)
	c.changed(ctx, state)
}

// Restore loads a persisted override. A stored date that does not parse is
// discarded and the clock falls back to real time.
func (c *Clock) Restore(ctx context.Context) error {
	if c.persister == nil {
		return nil
	}
	raw, resetCount, err := c.persister.LoadClock(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetCount = resetCount
	c.override = nil
	if raw == "" {
		return nil
	}
	d, err := types.ParseDate(raw)
	if err != nil {
		logger.Warningf("Discarding stored clock override: %s", err.Error())
		return nil
	}
	c.override = &d
	logger.Infof("Restored virtual clock override %s", d)
	return nil
}

func (c *Clock) changed(ctx context.Context, state State) {
	if c.persister != nil {
		raw := ""
		if state.Override != nil {
			raw = state.Override.String()
		}
		if err := c.persister.SaveClock(ctx, raw, state.ResetCount); err != nil {
			logger.Errorf("Could not persist clock state: %s", err.Error())
		}
	}

	c.mu.RLock()
	listeners := make([]func(State), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn(state)
	}
}
