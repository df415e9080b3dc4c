package types

import "time"

type Status string

const (
	PendingReviewStatus Status = "pending_review"
	ApprovedStatus      Status = "approved"
	FulfilledStatus     Status = "fulfilled"
	CancelledStatus     Status = "cancelled"
)

// All is the "no constraint" value of the region, category and status filters.
const All = "all"

func (s Status) Valid() bool {
	switch s {
	case PendingReviewStatus, ApprovedStatus, FulfilledStatus, CancelledStatus:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == FulfilledStatus || s == CancelledStatus
}

// Order is a stock-transfer order as returned by the remote API.
// Name, brand, category and avatar fields are joined in by the server
// and are for display only.
type Order struct {
	OrderID       int64      `json:"order_id"`
	OrderNumber   string     `json:"order_number"`
	FromStoreID   *int64     `json:"from_store_id"`
	ToStoreID     int64      `json:"to_store_id"`
	ProductID     int64      `json:"product_id"`
	QuantityCases int        `json:"quantity_cases"`
	Notes         *string    `json:"notes"`
	Status        Status     `json:"order_status"`
	RequestedBy   int64      `json:"requested_by"`
	ApprovedBy    *int64     `json:"approved_by"`
	OrderDate     time.Time  `json:"order_date"`
	ApprovedDate  *time.Time `json:"approved_date"`
	FulfilledDate *time.Time `json:"fulfilled_date"`
	Version       int        `json:"version"`

	ToStoreName        string `json:"to_store_name,omitempty"`
	FromStoreName      string `json:"from_store_name,omitempty"`
	ProductName        string `json:"product_name,omitempty"`
	Brand              string `json:"brand,omitempty"`
	Category           string `json:"category,omitempty"`
	RequesterName      string `json:"requester_name,omitempty"`
	RequesterAvatarURL string `json:"requester_avatar_url,omitempty"`
	ApproverName       string `json:"approver_name,omitempty"`
	ApproverAvatarURL  string `json:"approver_avatar_url,omitempty"`
}

// IsExpired reports whether a pending order has waited longer than sla.
func (o Order) IsExpired(now time.Time, sla time.Duration) bool {
	if o.Status != PendingReviewStatus {
		return false
	}
	return now.Sub(o.OrderDate) > sla
}

type OrderPage struct {
	Data       []Order `json:"data"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
	Limit      int     `json:"limit"`
}

type StatusCounts struct {
	PendingReview int `json:"pending_review"`
	Approved      int `json:"approved"`
	Fulfilled     int `json:"fulfilled"`
	Cancelled     int `json:"cancelled"`
}

// OrderStatusSummary is only ever replaced as a whole.
type OrderStatusSummary struct {
	StatusCounts    StatusCounts `json:"status_counts"`
	ExpiredSLACount int          `json:"expired_sla_count"`
	TotalCases      int          `json:"total_cases"`
	SummaryPeriod   string       `json:"summary_period"`
}

// BatchProgress flags are true while the sub-operation is in flight.
type BatchProgress struct {
	Orders          bool `json:"orders"`
	StatusSummary   bool `json:"statusSummary"`
	ProductPrefetch bool `json:"productPrefetch"`
}

func (p BatchProgress) Loading() bool {
	return p.Orders || p.StatusSummary || p.ProductPrefetch
}
