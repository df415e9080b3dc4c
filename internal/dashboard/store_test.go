package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/storeflow/internal/api"
	"github.com/wellywell/storeflow/internal/clock"
	"github.com/wellywell/storeflow/internal/dashboard/mocks"
	"github.com/wellywell/storeflow/internal/filters"
	"github.com/wellywell/storeflow/internal/order"
	"github.com/wellywell/storeflow/internal/types"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

type fixture struct {
	store    *Store
	client   *mocks.Client
	products *mocks.ProductPrefetcher
	clock    *clock.Clock
}

func newFixture(t *testing.T, discardStale bool) fixture {
	return newFixtureWith(t, Config{
		Debounce:     20 * time.Millisecond,
		FetchTimeout: time.Second,
		PageSize:     20,
		MaxQuantity:  1000,
		WindowDays:   30,
		DiscardStale: discardStale,
	})
}

func newFixtureWith(t *testing.T, cfg Config) fixture {
	client := mocks.NewClient(t)
	products := mocks.NewProductPrefetcher(t)
	clk := clock.New(clock.WithWallClock(func() time.Time {
		return time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local)
	}))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	store := NewStore(ctx, client, products, clk, nil, cfg)
	t.Cleanup(store.Close)
	return fixture{store: store, client: client, products: products, clock: clk}
}

func (f fixture) waitIdle(t *testing.T, batch uint64) Snapshot {
	var snap Snapshot
	require.Eventually(t, func() bool {
		snap = f.store.Snapshot()
		return snap.Batch == batch && !snap.IsBatchLoading
	}, waitFor, tick)
	return snap
}

func page(orders ...types.Order) *types.OrderPage {
	return &types.OrderPage{Data: orders, Total: len(orders), Page: 1, TotalPages: 1, Limit: 20}
}

func summary(pending int) *types.OrderStatusSummary {
	return &types.OrderStatusSummary{StatusCounts: types.StatusCounts{PendingReview: pending}}
}

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func TestSelectFor(t *testing.T) {
	testCases := []struct {
		name   string
		change filters.Change
		want   Selection
	}{
		{"nothing changed", filters.Change{}, Selection{}},
		{"region or category", filters.Change{RegionOrCategory: true}, Selection{Orders: true, StatusSummary: true, ProductPrefetch: true}},
		{"status or sla", filters.Change{StatusOrSLA: true}, Selection{Orders: true, ProductPrefetch: true}},
		{"search or store", filters.Change{Other: true}, Selection{Orders: true, ProductPrefetch: true}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SelectFor(tc.change))
		})
	}
}

func TestSetFiltersCoalescesIntoOneBatch(t *testing.T) {
	f := newFixture(t, false)

	f.client.EXPECT().ListOrders(mock.Anything, mock.MatchedBy(func(q api.OrderQuery) bool {
		return q.Filters.Region == "north" && q.Filters.Category == "dairy" && q.Filters.Search == "milk" && q.Page == 1
	})).Return(page(types.Order{OrderID: 1, ProductID: 11}, types.Order{OrderID: 2, ProductID: 12}), nil).Once()
	f.client.EXPECT().GetStatusSummary(mock.Anything, api.SummaryQuery{Region: "north", Category: "dairy"}).Return(summary(4), nil).Once()
	f.products.EXPECT().PrefetchByIDs(mock.Anything, []int64{11, 12}).Return(nil).Once()

	f.store.SetFilters(types.FilterDelta{Region: strPtr("north")})
	f.store.SetFilters(types.FilterDelta{Category: strPtr("dairy")})
	f.store.SetFilters(types.FilterDelta{Search: strPtr("milk")})

	snap := f.waitIdle(t, 1)
	assert.Len(t, snap.Orders, 2)
	assert.Equal(t, 4, snap.StatusSummary.StatusCounts.PendingReview)
	assert.Empty(t, snap.Error)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, uint64(1), f.store.Snapshot().Batch)
}

func TestStatusChangeSkipsSummary(t *testing.T) {
	f := newFixture(t, false)

	f.client.EXPECT().ListOrders(mock.Anything, mock.MatchedBy(func(q api.OrderQuery) bool {
		return q.Filters.ExpiredSLAOnly && q.Filters.DerivedRange != nil
	})).Return(page(), nil).Once()

	f.store.ToggleExpiredSLA()

	snap := f.waitIdle(t, 1)
	assert.Nil(t, snap.StatusSummary)
	assert.Equal(t, "2024-12-11", snap.Filters.DerivedRange.From.String())
	assert.Equal(t, "2025-01-10", snap.Filters.DerivedRange.To.String())
}

func TestUnchangedFiltersDoNotFetch(t *testing.T) {
	f := newFixture(t, false)

	f.store.SetFilters(types.FilterDelta{Region: strPtr(types.All), ExpiredSLAOnly: boolPtr(false)})

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, uint64(0), f.store.Snapshot().Batch)
}

func TestBatchLoadingTracksEverySubOperation(t *testing.T) {
	f := newFixture(t, false)

	release := make(chan struct{})
	f.client.EXPECT().ListOrders(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, api.OrderQuery) (*types.OrderPage, error) {
		<-release
		return page(types.Order{OrderID: 1, ProductID: 3}), nil
	}).Once()
	f.client.EXPECT().GetStatusSummary(mock.Anything, mock.Anything).Return(summary(1), nil).Once()
	f.products.EXPECT().PrefetchByIDs(mock.Anything, []int64{3}).Return(nil).Once()

	f.store.Refresh()

	require.Eventually(t, func() bool {
		p := f.store.Snapshot().BatchLoadingProgress
		return !p.StatusSummary && p.Orders && p.ProductPrefetch
	}, waitFor, tick)
	snap := f.store.Snapshot()
	assert.True(t, snap.IsBatchLoading)
	assert.NotNil(t, snap.StatusSummary)

	close(release)
	snap = f.waitIdle(t, 1)
	assert.Len(t, snap.Orders, 1)
}

func TestFailureDoesNotCancelSiblings(t *testing.T) {
	f := newFixture(t, false)

	f.client.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(nil, &api.Error{StatusCode: 500, Message: "Database unavailable"}).Once()
	f.client.EXPECT().GetStatusSummary(mock.Anything, mock.Anything).Return(summary(2), nil).Once()

	f.store.Refresh()

	snap := f.waitIdle(t, 1)
	assert.Equal(t, "Database unavailable", snap.Error)
	assert.Equal(t, 2, snap.StatusSummary.StatusCounts.PendingReview)
	assert.False(t, snap.BatchLoadingProgress.ProductPrefetch)

	// a later successful batch clears the error
	f.client.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(page(), nil).Once()
	f.client.EXPECT().GetStatusSummary(mock.Anything, mock.Anything).Return(summary(2), nil).Once()
	f.store.Refresh()

	snap = f.waitIdle(t, 2)
	assert.Empty(t, snap.Error)
}

func TestFetchTimeoutFailsSubOperation(t *testing.T) {
	f := newFixtureWith(t, Config{
		Debounce:     20 * time.Millisecond,
		FetchTimeout: 50 * time.Millisecond,
		WindowDays:   30,
	})

	f.client.EXPECT().ListOrders(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, _ api.OrderQuery) (*types.OrderPage, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}).Once()
	f.client.EXPECT().GetStatusSummary(mock.Anything, mock.Anything).Return(summary(3), nil).Once()

	f.store.Refresh()

	snap := f.waitIdle(t, 1)
	assert.False(t, snap.IsBatchLoading)
	assert.Equal(t, types.BatchProgress{}, snap.BatchLoadingProgress)
	assert.Equal(t, "Failed to fetch orders: request timed out", snap.Error)
	assert.Equal(t, 3, snap.StatusSummary.StatusCounts.PendingReview)
}

func TestStaleBatchResults(t *testing.T) {
	testCases := []struct {
		name              string
		discardStale      bool
		wantOrderID       int64
		wantStalePrefetch bool
	}{
		{"late result is merged on arrival", false, 100, true},
		{"late result is dropped", true, 200, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.discardStale)

			started := make(chan struct{})
			release := make(chan struct{})
			staleDone := make(chan struct{})

			staleReturned := make(chan struct{})
			f.client.EXPECT().ListOrders(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, api.OrderQuery) (*types.OrderPage, error) {
				close(started)
				<-release
				close(staleReturned)
				return page(types.Order{OrderID: 100, ProductID: 1}), nil
			}).Once()
			f.client.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(page(types.Order{OrderID: 200, ProductID: 2}), nil).Once()
			f.client.EXPECT().GetStatusSummary(mock.Anything, mock.Anything).Return(summary(0), nil).Times(2)
			f.products.EXPECT().PrefetchByIDs(mock.Anything, []int64{2}).Return(nil).Once()
			if tc.wantStalePrefetch {
				f.products.EXPECT().PrefetchByIDs(mock.Anything, []int64{1}).RunAndReturn(func(context.Context, []int64) error {
					close(staleDone)
					return nil
				}).Once()
			}

			f.store.Refresh()
			<-started
			f.store.Refresh()

			// the newer batch finishing is enough, the stale one is still out
			snap := f.waitIdle(t, 2)
			assert.Equal(t, int64(200), snap.Orders[0].OrderID)

			close(release)
			if tc.wantStalePrefetch {
				<-staleDone
			} else {
				// a dropped page is never prefetched
				<-staleReturned
				time.Sleep(50 * time.Millisecond)
			}
			require.Eventually(t, func() bool {
				return !f.store.Snapshot().IsBatchLoading
			}, waitFor, tick)
			assert.Equal(t, tc.wantOrderID, f.store.Snapshot().Orders[0].OrderID)
		})
	}
}

func TestPageChangeAbsorbsPendingFilters(t *testing.T) {
	f := newFixture(t, false)

	f.client.EXPECT().ListOrders(mock.Anything, mock.MatchedBy(func(q api.OrderQuery) bool {
		return q.Filters.Region == "south" && q.Page == 2 && q.Limit == 20
	})).Return(page(), nil).Once()
	f.client.EXPECT().GetStatusSummary(mock.Anything, mock.Anything).Return(summary(0), nil).Once()

	f.store.SetFilters(types.FilterDelta{Region: strPtr("south")})
	require.NoError(t, f.store.SetPage(2))

	f.waitIdle(t, 1)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, uint64(1), f.store.Snapshot().Batch)

	assert.Error(t, f.store.SetPage(0))
	assert.Error(t, f.store.SetPageSize(101))
}

func TestClockChangeRefreshes(t *testing.T) {
	f := newFixture(t, false)
	pinned := types.CalendarDate{Year: 2025, Month: time.January, Day: 7}

	f.client.EXPECT().ListOrders(mock.Anything, mock.MatchedBy(func(q api.OrderQuery) bool {
		return q.AsOf != nil && *q.AsOf == pinned
	})).Return(page(), nil).Once()
	f.client.EXPECT().GetStatusSummary(mock.Anything, mock.MatchedBy(func(q api.SummaryQuery) bool {
		return q.AsOf != nil && *q.AsOf == pinned
	})).Return(summary(0), nil).Once()

	f.clock.SetOverride(context.Background(), pinned)

	snap := f.waitIdle(t, 1)
	require.NotNil(t, snap.Clock.Override)
	assert.Equal(t, pinned, *snap.Clock.Override)
}

func TestMutationsPatchLoadedOrders(t *testing.T) {
	f := newFixture(t, false)

	pending := types.Order{OrderID: 42, Status: types.PendingReviewStatus, ProductID: 5, Version: 3}
	f.client.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(page(pending), nil).Once()
	f.client.EXPECT().GetStatusSummary(mock.Anything, mock.Anything).Return(summary(1), nil).Once()
	f.products.EXPECT().PrefetchByIDs(mock.Anything, []int64{5}).Return(nil).Once()
	f.store.Refresh()
	f.waitIdle(t, 1)

	_, err := f.store.SelectOrder(42)
	require.NoError(t, err)

	approver := int64(7)
	approved := pending
	approved.Status = types.ApprovedStatus
	approved.ApprovedBy = &approver
	approved.Version = 4
	f.client.EXPECT().ApproveOrder(mock.Anything, int64(42), int64(7), 3).Return(&approved, nil).Once()

	_, err = f.store.Approve(context.Background(), 42, 7)
	require.NoError(t, err)

	snap := f.store.Snapshot()
	assert.Equal(t, types.ApprovedStatus, snap.Orders[0].Status)
	assert.Equal(t, 4, snap.SelectedOrder.Version)

	// rejected locally: no call, shared error untouched
	_, err = f.store.Approve(context.Background(), 42, 7)
	assert.Error(t, err)
	assert.Empty(t, f.store.Snapshot().Error)

	f.client.EXPECT().FulfillOrder(mock.Anything, int64(42), 4).Return(nil, &api.Error{StatusCode: 409, Message: "Version conflict"}).Once()
	_, err = f.store.Fulfill(context.Background(), 42)
	assert.EqualError(t, err, "Version conflict")

	snap = f.store.Snapshot()
	assert.Equal(t, "Version conflict", snap.Error)
	assert.Equal(t, types.ApprovedStatus, snap.Orders[0].Status)

	_, err = f.store.Cancel(context.Background(), 42, "")
	var validationErr *order.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestMutationErrorClearedByInFlightBatch(t *testing.T) {
	f := newFixture(t, false)

	pending := types.Order{OrderID: 42, Status: types.PendingReviewStatus, ProductID: 5, Version: 3}
	f.client.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(page(pending), nil).Once()
	f.client.EXPECT().GetStatusSummary(mock.Anything, mock.Anything).Return(summary(1), nil).Once()
	f.products.EXPECT().PrefetchByIDs(mock.Anything, []int64{5}).Return(nil).Times(2)
	f.store.Refresh()
	f.waitIdle(t, 1)

	release := make(chan struct{})
	f.client.EXPECT().ListOrders(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, api.OrderQuery) (*types.OrderPage, error) {
		<-release
		return page(pending), nil
	}).Once()
	f.client.EXPECT().GetStatusSummary(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, api.SummaryQuery) (*types.OrderStatusSummary, error) {
		<-release
		return summary(1), nil
	}).Once()
	f.store.Refresh()

	f.client.EXPECT().CancelOrder(mock.Anything, int64(42), "duplicate", 3).Return(nil, &api.Error{StatusCode: 503, Message: "Order service is down"}).Once()
	_, err := f.store.Cancel(context.Background(), 42, "duplicate")
	require.Error(t, err)
	assert.Equal(t, "Order service is down", f.store.Snapshot().Error)

	close(release)
	snap := f.waitIdle(t, 2)
	assert.Empty(t, snap.Error)
}

func TestSelectUnknownOrder(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.store.SelectOrder(1)
	var notFound *order.OrderNotFoundError
	assert.ErrorAs(t, err, &notFound)
}
