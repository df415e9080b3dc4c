package filters

import (
	"time"

	"github.com/wellywell/storeflow/internal/types"
)

// DefaultWindowDays is the trailing window the status summary is computed over.
const DefaultWindowDays = 30

// Change classifies which dimensions a delta actually moved.
type Change struct {
	RegionOrCategory bool
	StatusOrSLA      bool
	Other            bool
}

func (c Change) Any() bool {
	return c.RegionOrCategory || c.StatusOrSLA || c.Other
}

// Policy applies filter deltas and keeps the derived date range in line
// with the window the status counts are aggregated over.
type Policy struct {
	WindowDays int
}

func NewPolicy(windowDays int) Policy {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return Policy{WindowDays: windowDays}
}

// Apply is a pure reducer: prev + delta at the given instant.
func (p Policy) Apply(prev types.OrderFilters, delta types.FilterDelta, now time.Time) (types.OrderFilters, Change) {
	next := prev
	var change Change

	if delta.Region != nil && *delta.Region != prev.Region {
		next.Region = *delta.Region
		change.RegionOrCategory = true
	}
	if delta.Category != nil && *delta.Category != prev.Category {
		next.Category = *delta.Category
		change.RegionOrCategory = true
	}
	if delta.Status != nil && *delta.Status != prev.Status {
		next.Status = *delta.Status
		change.StatusOrSLA = true
	}
	if delta.ExpiredSLAOnly != nil && *delta.ExpiredSLAOnly != prev.ExpiredSLAOnly {
		next.ExpiredSLAOnly = *delta.ExpiredSLAOnly
		change.StatusOrSLA = true
	}
	if delta.Search != nil && *delta.Search != prev.Search {
		next.Search = *delta.Search
		change.Other = true
	}
	if delta.ClearStoreID && prev.StoreID != nil {
		next.StoreID = nil
		change.Other = true
	} else if delta.StoreID != nil && (prev.StoreID == nil || *prev.StoreID != *delta.StoreID) {
		id := *delta.StoreID
		next.StoreID = &id
		change.Other = true
	}

	switch {
	case delta.DateRange != nil:
		r := *delta.DateRange
		next.UserRange = &r
		next.DerivedRange = nil
		change.Other = true
	case delta.ClearDateRange:
		if next.Effective() != nil {
			change.Other = true
		}
		next.UserRange = nil
		next.DerivedRange = nil
	case change.StatusOrSLA && !change.RegionOrCategory:
		next.UserRange = nil
		if constrainsStatus(next) {
			next.DerivedRange = p.window(now)
		} else {
			next.DerivedRange = nil
		}
	case change.RegionOrCategory:
		next.UserRange = nil
		next.DerivedRange = nil
	}

	return next, change
}

func (p Policy) window(now time.Time) *types.DateRange {
	today := types.DateOf(now)
	return &types.DateRange{From: today.AddDays(-p.WindowDays), To: today}
}

func constrainsStatus(f types.OrderFilters) bool {
	return !types.IsAll(f.Status) || f.ExpiredSLAOnly
}

// ToggleExpiredSLA builds the delta of a click on the "Expired SLA" card.
func ToggleExpiredSLA(current types.OrderFilters) types.FilterDelta {
	if current.ExpiredSLAOnly {
		return types.FilterDelta{Status: ptr(types.All), ExpiredSLAOnly: ptr(false)}
	}
	return types.FilterDelta{Status: ptr(string(types.PendingReviewStatus)), ExpiredSLAOnly: ptr(true)}
}

// ToggleStatus builds the delta of a click on a status card: selecting the
// active status again goes back to all statuses.
func ToggleStatus(current types.OrderFilters, status types.Status) types.FilterDelta {
	if current.Status == string(status) && !current.ExpiredSLAOnly {
		return types.FilterDelta{Status: ptr(types.All)}
	}
	return types.FilterDelta{Status: ptr(string(status)), ExpiredSLAOnly: ptr(false)}
}

func ptr[T any](v T) *T {
	return &v
}
