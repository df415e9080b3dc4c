package clock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wellywell/storeflow/internal/types"
)

type memoryPersister struct {
	override   string
	resetCount uint64
	loadErr    error
	saves      int
}

func (p *memoryPersister) LoadClock(ctx context.Context) (string, uint64, error) {
	return p.override, p.resetCount, p.loadErr
}

func (p *memoryPersister) SaveClock(ctx context.Context, override string, resetCount uint64) error {
	p.override = override
	p.resetCount = resetCount
	p.saves++
	return nil
}

func TestNowFollowsOverride(t *testing.T) {
	wall := time.Date(2026, 3, 4, 15, 30, 0, 0, time.Local)
	c := New(WithWallClock(func() time.Time { return wall }))
	ctx := context.Background()

	assert.Equal(t, wall, c.Now())
	_, ok := c.AsOfDate()
	assert.False(t, ok)

	c.SetOverride(ctx, types.CalendarDate{Year: 2025, Month: time.January, Day: 10})
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local), c.Now())
	asOf, ok := c.AsOfDate()
	assert.True(t, ok)
	assert.Equal(t, "2025-01-10", asOf.String())

	c.ClearOverride(ctx)
	assert.Equal(t, wall, c.Now())
	assert.Equal(t, uint64(1), c.State().ResetCount)
}

func TestClearOverrideAlwaysBumpsResetCount(t *testing.T) {
	c := New()
	ctx := context.Background()

	var seen []State
	c.Subscribe(func(s State) { seen = append(seen, s) })

	c.ClearOverride(ctx)
	c.ClearOverride(ctx)

	assert.Len(t, seen, 2)
	assert.Equal(t, uint64(1), seen[0].ResetCount)
	assert.Equal(t, uint64(2), seen[1].ResetCount)
	assert.Nil(t, seen[1].Override)
}

func TestSLAExpiryUsesVirtualNow(t *testing.T) {
	c := New()
	c.SetOverride(context.Background(), types.CalendarDate{Year: 2025, Month: time.January, Day: 10})

	order := types.Order{
		Status:    types.PendingReviewStatus,
		OrderDate: time.Date(2025, 1, 7, 0, 0, 0, 0, time.Local),
	}
	assert.True(t, order.IsExpired(c.Now(), 2*24*time.Hour))

	order.Status = types.ApprovedStatus
	assert.False(t, order.IsExpired(c.Now(), 2*24*time.Hour))
}

func TestRestore(t *testing.T) {
	testCases := []struct {
		name         string
		stored       string
		loadErr      error
		wantOverride string
		wantErr      bool
	}{
		{name: "valid date", stored: "2025-01-10", wantOverride: "2025-01-10"},
		{name: "empty", stored: ""},
		{name: "garbage is discarded", stored: "10/01/2025"},
		{name: "impossible date is discarded", stored: "2025-02-31"},
		{name: "load error", loadErr: errors.New("connection refused"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &memoryPersister{override: tc.stored, resetCount: 4, loadErr: tc.loadErr}
			c := New(WithPersister(p))

			err := c.Restore(context.Background())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			asOf, ok := c.AsOfDate()
			if tc.wantOverride == "" {
				assert.False(t, ok)
			} else {
				assert.True(t, ok)
				assert.Equal(t, tc.wantOverride, asOf.String())
			}
			assert.Equal(t, uint64(4), c.State().ResetCount)
		})
	}
}

func TestChangesArePersisted(t *testing.T) {
	p := &memoryPersister{}
	c := New(WithPersister(p))
	ctx := context.Background()

	c.SetOverride(ctx, types.CalendarDate{Year: 2025, Month: time.March, Day: 1})
	assert.Equal(t, "2025-03-01", p.override)

	c.ClearOverride(ctx)
	assert.Equal(t, "", p.override)
	assert.Equal(t, uint64(1), p.resetCount)
	assert.Equal(t, 2, p.saves)
}
