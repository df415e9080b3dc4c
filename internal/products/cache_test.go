package products

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/storeflow/internal/products/mocks"
	"github.com/wellywell/storeflow/internal/types"
)

func product(id int64) types.Product {
	return types.Product{ProductID: id, ProductName: "Cola", UnitPrice: decimal.RequireFromString("1.25")}
}

func TestPrefetchByIDs(t *testing.T) {
	fetcher := mocks.NewFetcher(t)
	c := NewCache(fetcher)

	fetcher.EXPECT().GetProductsByIDs(mock.Anything, []int64{1, 2, 3}).Return([]types.Product{product(1), product(2), product(3)}, nil).Once()
	require.NoError(t, c.PrefetchByIDs(context.Background(), []int64{3, 1, 2, 1, 3}))
	assert.Equal(t, 3, c.Len())

	// only the new id goes over the wire
	fetcher.EXPECT().GetProductsByIDs(mock.Anything, []int64{4}).Return([]types.Product{product(4)}, nil).Once()
	require.NoError(t, c.PrefetchByIDs(context.Background(), []int64{1, 4, 2}))

	// everything cached: no request at all
	require.NoError(t, c.PrefetchByIDs(context.Background(), []int64{4, 3}))

	p, ok := c.Get(4)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("1.25").Equal(p.UnitPrice))
}

func TestPrefetchFailureCachesNothing(t *testing.T) {
	fetcher := mocks.NewFetcher(t)
	c := NewCache(fetcher)

	fetcher.EXPECT().GetProductsByIDs(mock.Anything, []int64{7}).Return(nil, errors.New("timeout")).Once()
	assert.EqualError(t, c.PrefetchByIDs(context.Background(), []int64{7}), "timeout")
	assert.Equal(t, 0, c.Len())

	fetcher.EXPECT().GetProductsByIDs(mock.Anything, []int64{7}).Return([]types.Product{product(7)}, nil).Once()
	assert.NoError(t, c.PrefetchByIDs(context.Background(), []int64{7}))
}

func TestConcurrentPrefetchSharesRequest(t *testing.T) {
	fetcher := mocks.NewFetcher(t)
	c := NewCache(fetcher)

	started := make(chan struct{})
	release := make(chan struct{})
	fetcher.EXPECT().GetProductsByIDs(mock.Anything, []int64{1, 2}).RunAndReturn(func(context.Context, []int64) ([]types.Product, error) {
		close(started)
		<-release
		return []types.Product{product(1), product(2)}, nil
	}).Once()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, c.PrefetchByIDs(context.Background(), []int64{1, 2}))
	}()
	<-started
	go func() {
		defer wg.Done()
		assert.NoError(t, c.PrefetchByIDs(context.Background(), []int64{2, 1}))
	}()
	close(release)
	wg.Wait()

	assert.Equal(t, 2, c.Len())
}

func TestDistinctProductIDs(t *testing.T) {
	orders := []types.Order{{ProductID: 5}, {ProductID: 2}, {ProductID: 5}, {ProductID: 9}}
	assert.Equal(t, []int64{5, 2, 9}, DistinctProductIDs(orders))
	assert.Empty(t, DistinctProductIDs(nil))
}
