package products

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/storeflow/internal/types"
	"golang.org/x/sync/singleflight"
)

type Fetcher interface {
	GetProductsByIDs(ctx context.Context, ids []int64) ([]types.Product, error)
}

// Cache keeps product metadata referenced by the order table. Ids that are
// already cached are never requested again.
type Cache struct {
	mu       sync.RWMutex
	products map[int64]types.Product
	fetcher  Fetcher
	group    singleflight.Group
}

func NewCache(fetcher Fetcher) *Cache {
	return &Cache{
		products: make(map[int64]types.Product),
		fetcher:  fetcher,
	}
}

func (c *Cache) Get(id int64) (types.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[id]
	return p, ok
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// PrefetchByIDs loads the missing ids in one batched request. Concurrent
// prefetches of the same missing set share a single request.
func (c *Cache) PrefetchByIDs(ctx context.Context, ids []int64) error {
	missing := c.missing(ids)
	if len(missing) == 0 {
		return nil
	}

	_, err, _ := c.group.Do(key(missing), func() (interface{}, error) {
		fetched, err := c.fetcher.GetProductsByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		for _, p := range fetched {
			c.products[p.ProductID] = p
		}
		c.mu.Unlock()
		logger.Debugf("Prefetched %d of %d products", len(fetched), len(missing))
		return nil, nil
	})
	return err
}

func (c *Cache) missing(ids []int64) []int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[int64]struct{}, len(ids))
	var missing []int64
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := c.products[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}

func key(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// DistinctProductIDs returns the product ids referenced by orders, in order
// of first appearance.
func DistinctProductIDs(orders []types.Order) []int64 {
	seen := make(map[int64]struct{}, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.ProductID]; ok {
			continue
		}
		seen[o.ProductID] = struct{}{}
		ids = append(ids, o.ProductID)
	}
	return ids
}
