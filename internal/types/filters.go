package types

// OrderFilters are the query parameters of the order list.
// UserRange and DerivedRange are never both set.
type OrderFilters struct {
	Region         string     `json:"region"`
	Category       string     `json:"category"`
	Status         string     `json:"status"`
	StoreID        *int64     `json:"storeId,omitempty"`
	Search         string     `json:"search,omitempty"`
	ExpiredSLAOnly bool       `json:"expiredSlaOnly"`
	UserRange      *DateRange `json:"userRange,omitempty"`
	DerivedRange   *DateRange `json:"derivedRange,omitempty"`
}

func DefaultFilters() OrderFilters {
	return OrderFilters{Region: All, Category: All, Status: All}
}

// Effective returns the date range the order list is limited to, if any.
func (f OrderFilters) Effective() *DateRange {
	if f.UserRange != nil {
		return f.UserRange
	}
	return f.DerivedRange
}

// FilterDelta holds the dimensions a single mutation touches; nil means untouched.
type FilterDelta struct {
	Region         *string    `json:"region,omitempty"`
	Category       *string    `json:"category,omitempty"`
	Status         *string    `json:"status,omitempty"`
	StoreID        *int64     `json:"storeId,omitempty"`
	ClearStoreID   bool       `json:"clearStoreId,omitempty"`
	Search         *string    `json:"search,omitempty"`
	ExpiredSLAOnly *bool      `json:"expiredSlaOnly,omitempty"`
	DateRange      *DateRange `json:"dateRange,omitempty"`
	ClearDateRange bool       `json:"clearDateRange,omitempty"`
}

// IsAll reports whether a filter value means "no constraint".
func IsAll(v string) bool {
	return v == "" || v == All
}
