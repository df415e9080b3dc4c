package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/storeflow/internal/types"
)

func TestListOrdersQuery(t *testing.T) {
	var got *http.Request
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data": [{"order_id": 42, "order_number": "ORD-1", "product_id": 7, "order_status": "pending_review", "version": 3}], "total": 1, "page": 2, "total_pages": 1}`)
	}))
	defer svr.Close()

	storeID := int64(5)
	asOf := types.CalendarDate{Year: 2025, Month: time.January, Day: 10}
	filters := types.DefaultFilters()
	filters.Region = "West"
	filters.Status = "pending_review"
	filters.ExpiredSLAOnly = true
	filters.StoreID = &storeID
	filters.DerivedRange = &types.DateRange{From: asOf.AddDays(-30), To: asOf}

	c := NewClient(svr.URL, "token", time.Second)
	page, err := c.ListOrders(context.Background(), OrderQuery{Filters: filters, Page: 2, Limit: 20, AsOf: &asOf})
	require.NoError(t, err)

	assert.Equal(t, "/orders", got.URL.Path)
	q := got.URL.Query()
	assert.Equal(t, "West", q.Get("region"))
	assert.False(t, q.Has("category"), "category=all must not be sent")
	assert.Equal(t, "pending_review", q.Get("status"))
	assert.Equal(t, "5", q.Get("store_id"))
	assert.Equal(t, "2024-12-11", q.Get("date_from"))
	assert.Equal(t, "2025-01-10", q.Get("date_to"))
	assert.Equal(t, "true", q.Get("expired_sla_only"))
	assert.Equal(t, "2025-01-10", q.Get("as_of_date"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "20", q.Get("limit"))
	assert.Equal(t, "Bearer token", got.Header.Get("Authorization"))
	assert.NotEmpty(t, got.Header.Get(RequestIDHeader))

	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(42), page.Data[0].OrderID)
	assert.Equal(t, types.PendingReviewStatus, page.Data[0].Status)
	assert.Equal(t, 3, page.Data[0].Version)
	assert.Equal(t, 2, page.Page)
}

func TestStatusSummaryIgnoresStatusDimensions(t *testing.T) {
	var got *http.Request
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		fmt.Fprint(w, `{"status_counts": {"pending_review": 4, "approved": 2, "fulfilled": 9, "cancelled": 1}, "expired_sla_count": 3, "total_cases": 120, "summary_period": "Last 30 days"}`)
	}))
	defer svr.Close()

	c := NewClient(svr.URL, "", time.Second)
	summary, err := c.GetStatusSummary(context.Background(), SummaryQuery{Region: "all", Category: "Dairy"})
	require.NoError(t, err)

	assert.Equal(t, "/orders/status/summary", got.URL.Path)
	assert.Equal(t, "Dairy", got.URL.Query().Get("category"))
	assert.False(t, got.URL.Query().Has("region"))
	assert.False(t, got.URL.Query().Has("as_of_date"))
	assert.Empty(t, got.Header.Get("Authorization"))

	assert.Equal(t, 4, summary.StatusCounts.PendingReview)
	assert.Equal(t, 3, summary.ExpiredSLACount)
	assert.Equal(t, "Last 30 days", summary.SummaryPeriod)
}

func TestMutations(t *testing.T) {
	testCases := []struct {
		name       string
		call       func(c *Client) (*types.Order, error)
		wantMethod string
		wantPath   string
		wantBody   map[string]any
	}{
		{
			name:       "approve",
			call:       func(c *Client) (*types.Order, error) { return c.ApproveOrder(context.Background(), 42, 7, 3) },
			wantMethod: http.MethodPatch,
			wantPath:   "/orders/42/approve",
			wantBody:   map[string]any{"approved_by": float64(7), "version": float64(3)},
		},
		{
			name:       "fulfill",
			call:       func(c *Client) (*types.Order, error) { return c.FulfillOrder(context.Background(), 42, 4) },
			wantMethod: http.MethodPatch,
			wantPath:   "/orders/42/fulfill",
			wantBody:   map[string]any{"version": float64(4)},
		},
		{
			name:       "cancel",
			call:       func(c *Client) (*types.Order, error) { return c.CancelOrder(context.Background(), 42, "duplicate", 3) },
			wantMethod: http.MethodPut,
			wantPath:   "/orders/42/cancel",
			wantBody:   map[string]any{"reason": "duplicate", "version": float64(3)},
		},
		{
			name: "update",
			call: func(c *Client) (*types.Order, error) {
				q := 12
				return c.UpdateOrder(context.Background(), 42, UpdateOrderRequest{QuantityCases: &q, Version: 3})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/orders/42",
			wantBody:   map[string]any{"quantity_cases": float64(12), "version": float64(3)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var method, path string
			var body map[string]any
			svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				method, path = r.Method, r.URL.Path
				raw, _ := io.ReadAll(r.Body)
				_ = json.Unmarshal(raw, &body)
				fmt.Fprint(w, `{"order_id": 42, "order_status": "approved", "approved_by": 7, "version": 4}`)
			}))
			defer svr.Close()

			order, err := tc.call(NewClient(svr.URL, "", time.Second))
			require.NoError(t, err)
			assert.Equal(t, tc.wantMethod, method)
			assert.Equal(t, tc.wantPath, path)
			assert.Equal(t, tc.wantBody, body)
			assert.Equal(t, 4, order.Version)
		})
	}
}

func TestErrorMessagesAreVerbatim(t *testing.T) {
	testCases := []struct {
		body        string
		code        int
		wantMessage string
	}{
		{`{"detail": "Order version conflict"}`, http.StatusConflict, "Order version conflict"},
		{`{"message": "Order not found"}`, http.StatusNotFound, "Order not found"},
		{`{"error": "Invalid transition"}`, http.StatusBadRequest, "Invalid transition"},
		{`{"detail": [{"msg": "field required"}]}`, http.StatusUnprocessableEntity, `[{"msg": "field required"}]`},
		{`upstream unavailable`, http.StatusBadGateway, "upstream unavailable"},
		{``, http.StatusInternalServerError, "Unexpected status 500 Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.wantMessage, func(t *testing.T) {
			svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
				fmt.Fprint(w, tc.body)
			}))
			defer svr.Close()

			_, err := NewClient(svr.URL, "", time.Second).FulfillOrder(context.Background(), 1, 1)
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.code, apiErr.StatusCode)
			assert.EqualError(t, err, tc.wantMessage)
			assert.Equal(t, tc.code == http.StatusConflict, IsConflict(err))
		})
	}
}

func TestGetProductsByIDs(t *testing.T) {
	var ids string
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = r.URL.Query().Get("ids")
		fmt.Fprint(w, `[{"product_id": 1, "product_name": "Cola", "unit_price": 12.5}, {"product_id": 3, "product_name": "Chips", "unit_price": "3.10"}]`)
	}))
	defer svr.Close()

	products, err := NewClient(svr.URL, "", time.Second).GetProductsByIDs(context.Background(), []int64{1, 3})
	require.NoError(t, err)
	assert.Equal(t, "1,3", ids)
	require.Len(t, products, 2)
	assert.Equal(t, "12.5", products[0].UnitPrice.String())
	assert.Equal(t, "3.1", products[1].UnitPrice.String())
}

func TestUnexpectedBody(t *testing.T) {
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "smth")
	}))
	defer svr.Close()

	_, err := NewClient(svr.URL, "", time.Second).ListOrders(context.Background(), OrderQuery{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, ErrUnexpectedBody)
}
