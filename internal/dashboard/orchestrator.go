package dashboard

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/storeflow/internal/api"
	"github.com/wellywell/storeflow/internal/filters"
	"github.com/wellywell/storeflow/internal/products"
	"github.com/wellywell/storeflow/internal/types"
)

// Selection names the sub-operations a batch has to run.
type Selection struct {
	Orders          bool
	StatusSummary   bool
	ProductPrefetch bool
}

var fullSelection = Selection{Orders: true, StatusSummary: true, ProductPrefetch: true}

// SelectFor picks the sub-operations a filter change requires. The status
// summary is scoped by region and category only, and product metadata
// depends on the order page.
func SelectFor(change filters.Change) Selection {
	if !change.Any() {
		return Selection{}
	}
	return Selection{
		Orders:          true,
		StatusSummary:   change.RegionOrCategory,
		ProductPrefetch: true,
	}
}

func (s Selection) Any() bool {
	return s.Orders || s.StatusSummary || s.ProductPrefetch
}

func (s Selection) Union(o Selection) Selection {
	return Selection{
		Orders:          s.Orders || o.Orders,
		StatusSummary:   s.StatusSummary || o.StatusSummary,
		ProductPrefetch: s.ProductPrefetch || o.ProductPrefetch,
	}
}

// batch is the snapshot one dispatch works on.
type batch struct {
	seq      uint64
	filters  types.OrderFilters
	page     int
	pageSize int
	asOf     *types.CalendarDate
	sel      Selection
}

type operation string

const (
	ordersOp   operation = "orders"
	summaryOp  operation = "status summary"
	productsOp operation = "product prefetch"
)

func (s *Store) dispatch(sel Selection) {
	// prefetch reads the order page, it cannot run on its own
	sel.ProductPrefetch = sel.Orders

	s.mu.Lock()
	s.seq++
	b := batch{
		seq:      s.seq,
		filters:  s.filters,
		page:     s.page,
		pageSize: s.pageSize,
		sel:      sel,
	}
	if d, ok := s.clock.AsOfDate(); ok {
		b.asOf = &d
	}
	s.progress = types.BatchProgress{
		Orders:          sel.Orders,
		StatusSummary:   sel.StatusSummary,
		ProductPrefetch: sel.ProductPrefetch,
	}
	s.mu.Unlock()

	logger.Infof("Dispatching batch %d (orders=%t summary=%t products=%t)", b.seq, sel.Orders, sel.StatusSummary, sel.ProductPrefetch)
	s.notify()

	if sel.Orders {
		go s.fetchOrders(b)
	}
	if sel.StatusSummary {
		go s.fetchSummary(b)
	}
}

func (s *Store) fetchOrders(b batch) {
	ctx, cancel := context.WithTimeout(s.ctx, s.cfg.FetchTimeout)
	defer cancel()

	page, err := s.client.ListOrders(ctx, api.OrderQuery{
		Filters: b.filters,
		Page:    b.page,
		Limit:   b.pageSize,
		AsOf:    b.asOf,
	})

	accepted := s.complete(b, ordersOp, err, func() {
		s.orders = page.Data
		s.totalItems = page.Total
		s.totalPages = page.TotalPages
		s.syncSelectedLocked()
	})

	if !b.sel.ProductPrefetch {
		return
	}
	// no page to prefetch for: the fetch failed or its result was dropped
	if err != nil || !accepted {
		s.complete(b, productsOp, nil, nil)
		return
	}
	s.prefetchProducts(b, products.DistinctProductIDs(page.Data))
}

func (s *Store) fetchSummary(b batch) {
	ctx, cancel := context.WithTimeout(s.ctx, s.cfg.FetchTimeout)
	defer cancel()

	summary, err := s.client.GetStatusSummary(ctx, api.SummaryQuery{
		Region:   b.filters.Region,
		Category: b.filters.Category,
		AsOf:     b.asOf,
	})

	s.complete(b, summaryOp, err, func() {
		s.summary = summary
	})
}

func (s *Store) prefetchProducts(b batch, ids []int64) {
	if len(ids) == 0 {
		s.complete(b, productsOp, nil, nil)
		return
	}
	ctx, cancel := context.WithTimeout(s.ctx, s.cfg.FetchTimeout)
	defer cancel()

	err := s.products.PrefetchByIDs(ctx, ids)
	s.complete(b, productsOp, err, nil)
}

// complete merges one sub-operation's outcome and clears its progress flag.
// Flags belong to the latest batch only; an older batch finishing late must
// not mark the current one as done. It reports whether the outcome was
// applied.
func (s *Store) complete(b batch, op operation, err error, merge func()) bool {
	s.mu.Lock()
	current := b.seq == s.seq
	accepted := current || !s.cfg.DiscardStale

	switch {
	case !accepted:
		logger.Infof("Dropping %s result of stale batch %d (latest %d)", op, b.seq, s.seq)
	case err != nil:
		s.errMsg = fetchErrorMessage(op, err)
		s.errSeq = b.seq
		logger.Errorf("Batch %d %s failed: %s", b.seq, op, err.Error())
	default:
		if merge != nil {
			merge()
		}
		// a sibling's failure in the same batch stays visible
		if s.errSeq < b.seq {
			s.errMsg = ""
		}
	}

	if current {
		switch op {
		case ordersOp:
			s.progress.Orders = false
		case summaryOp:
			s.progress.StatusSummary = false
		case productsOp:
			s.progress.ProductPrefetch = false
		}
		if !s.progress.Loading() {
			logger.Debugf("Batch %d finished", b.seq)
		}
	}
	s.mu.Unlock()

	s.notify()
	return accepted
}

func fetchErrorMessage(op operation, err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("Failed to fetch %s: request timed out", op)
	}
	return fmt.Sprintf("Failed to fetch %s: %s", op, err.Error())
}
