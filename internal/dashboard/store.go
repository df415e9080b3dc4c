package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/storeflow/internal/api"
	"github.com/wellywell/storeflow/internal/clock"
	"github.com/wellywell/storeflow/internal/filters"
	"github.com/wellywell/storeflow/internal/order"
	"github.com/wellywell/storeflow/internal/types"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Client interface {
	ListOrders(ctx context.Context, q api.OrderQuery) (*types.OrderPage, error)
	GetStatusSummary(ctx context.Context, q api.SummaryQuery) (*types.OrderStatusSummary, error)
	order.API
}

type ProductPrefetcher interface {
	PrefetchByIDs(ctx context.Context, ids []int64) error
}

type Config struct {
	Debounce     time.Duration
	FetchTimeout time.Duration
	PageSize     int
	MaxQuantity  int
	WindowDays   int
	DiscardStale bool
}

// Snapshot is a consistent copy of the dashboard state.
type Snapshot struct {
	Orders               []types.Order             `json:"orders"`
	StatusSummary        *types.OrderStatusSummary `json:"statusSummary"`
	Filters              types.OrderFilters        `json:"filters"`
	CurrentPage          int                       `json:"currentPage"`
	TotalPages           int                       `json:"totalPages"`
	TotalItems           int                       `json:"totalItems"`
	PageSize             int                       `json:"pageSize"`
	IsBatchLoading       bool                      `json:"isBatchLoading"`
	BatchLoadingProgress types.BatchProgress       `json:"batchLoadingProgress"`
	Error                string                    `json:"error,omitempty"`
	SelectedOrder        *types.Order              `json:"selectedOrder,omitempty"`
	Clock                clock.State               `json:"clock"`
	Batch                uint64                    `json:"batch"`
}

// Store owns the dashboard state: filters, the current order page, the
// status summary and the progress of the latest fetch batch. Fetches run in
// the background; Subscribe to observe their results.
type Store struct {
	ctx       context.Context
	client    Client
	products  ProductPrefetcher
	clock     *clock.Clock
	policy    filters.Policy
	cfg       Config
	gate      *Gate
	lifecycle *order.Manager

	mu         sync.Mutex
	filters    types.OrderFilters
	orders     []types.Order
	summary    *types.OrderStatusSummary
	page       int
	pageSize   int
	totalPages int
	totalItems int
	progress   types.BatchProgress
	errMsg     string
	errSeq     uint64
	selected   *types.Order
	pending    Selection
	seq        uint64

	lmu       sync.RWMutex
	listeners []func(Snapshot)
}

// NewStore builds the store. ctx bounds every background fetch; cancel it on
// shutdown.
func NewStore(ctx context.Context, client Client, prefetcher ProductPrefetcher, clk *clock.Clock, publisher order.Publisher, cfg Config) *Store {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 15 * time.Second
	}
	s := &Store{
		ctx:      ctx,
		client:   client,
		products: prefetcher,
		clock:    clk,
		policy:   filters.NewPolicy(cfg.WindowDays),
		cfg:      cfg,
		gate:     NewGate(cfg.Debounce),
		filters:  types.DefaultFilters(),
		page:     1,
		pageSize: cfg.PageSize,
	}
	s.lifecycle = order.NewManager(client, s, clk, publisher, cfg.MaxQuantity)

	// "today" moved, so every date-relative result is stale
	clk.Subscribe(func(clock.State) { s.Refresh() })
	return s
}

func (s *Store) Subscribe(fn func(Snapshot)) {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	snap := Snapshot{
		Orders:               append([]types.Order(nil), s.orders...),
		Filters:              s.filters,
		CurrentPage:          s.page,
		TotalPages:           s.totalPages,
		TotalItems:           s.totalItems,
		PageSize:             s.pageSize,
		IsBatchLoading:       s.progress.Loading(),
		BatchLoadingProgress: s.progress,
		Error:                s.errMsg,
		Batch:                s.seq,
	}
	if s.summary != nil {
		summary := *s.summary
		snap.StatusSummary = &summary
	}
	if s.selected != nil {
		selected := *s.selected
		snap.SelectedOrder = &selected
	}
	s.mu.Unlock()

	snap.Clock = s.clock.State()
	return snap
}

// SetFilters applies delta and schedules a fetch after the debounce window.
// Calls inside the window collapse into one batch run with the filters as
// they are when the window closes.
func (s *Store) SetFilters(delta types.FilterDelta) types.OrderFilters {
	now := s.clock.Now()

	s.mu.Lock()
	next, change := s.policy.Apply(s.filters, delta, now)
	if !change.Any() {
		s.mu.Unlock()
		return next
	}
	s.filters = next
	s.page = 1
	s.pending = s.pending.Union(SelectFor(change))
	s.mu.Unlock()

	s.notify()
	s.gate.Trigger(s.flush)
	return next
}

func (s *Store) ToggleExpiredSLA() types.OrderFilters {
	s.mu.Lock()
	delta := filters.ToggleExpiredSLA(s.filters)
	s.mu.Unlock()
	return s.SetFilters(delta)
}

func (s *Store) ToggleStatus(status types.Status) (types.OrderFilters, error) {
	if !status.Valid() {
		return types.OrderFilters{}, &order.ValidationError{Field: "status", Message: fmt.Sprintf("Unknown status %q", status)}
	}
	s.mu.Lock()
	delta := filters.ToggleStatus(s.filters, status)
	s.mu.Unlock()
	return s.SetFilters(delta), nil
}

func (s *Store) SetPage(page int) error {
	if page < 1 {
		return &order.ValidationError{Field: "page", Message: "Page must be at least 1"}
	}
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()

	s.dispatchNow()
	return nil
}

func (s *Store) SetPageSize(size int) error {
	if size < 1 || size > MaxPageSize {
		return &order.ValidationError{Field: "limit", Message: fmt.Sprintf("Page size must be between 1 and %d", MaxPageSize)}
	}
	s.mu.Lock()
	s.pageSize = size
	s.page = 1
	s.mu.Unlock()

	s.dispatchNow()
	return nil
}

// Refresh re-runs all three sub-operations with the current state.
func (s *Store) Refresh() {
	s.dispatchNow()
}

// dispatchNow runs a full batch at once; a pending debounced change is
// folded into it.
func (s *Store) dispatchNow() {
	s.gate.Cancel()
	s.mu.Lock()
	s.pending = Selection{}
	s.mu.Unlock()

	s.dispatch(fullSelection)
}

func (s *Store) flush() {
	s.mu.Lock()
	sel := s.pending
	s.pending = Selection{}
	s.mu.Unlock()

	if sel.Any() {
		s.dispatch(sel)
	}
}

func (s *Store) SelectOrder(orderID int64) (types.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.OrderID == orderID {
			selected := o
			s.selected = &selected
			return o, nil
		}
	}
	return types.Order{}, fmt.Errorf("%w", &order.OrderNotFoundError{OrderID: orderID})
}

func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
	s.notify()
}

// Order implements order.Collection.
func (s *Store) Order(orderID int64) (types.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.OrderID == orderID {
			return o, true
		}
	}
	if s.selected != nil && s.selected.OrderID == orderID {
		return *s.selected, true
	}
	return types.Order{}, false
}

// ReplaceOrder implements order.Collection.
func (s *Store) ReplaceOrder(updated types.Order) {
	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].OrderID == updated.OrderID {
			s.orders[i] = updated
		}
	}
	if s.selected != nil && s.selected.OrderID == updated.OrderID {
		selected := updated
		s.selected = &selected
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) Modify(ctx context.Context, orderID int64, req order.ModifyRequest) (*types.Order, error) {
	return s.mutated(s.lifecycle.Modify(ctx, orderID, req))
}

func (s *Store) Approve(ctx context.Context, orderID int64, approverID int64) (*types.Order, error) {
	return s.mutated(s.lifecycle.Approve(ctx, orderID, approverID))
}

func (s *Store) Fulfill(ctx context.Context, orderID int64) (*types.Order, error) {
	return s.mutated(s.lifecycle.Fulfill(ctx, orderID))
}

func (s *Store) Cancel(ctx context.Context, orderID int64, reason string) (*types.Order, error) {
	return s.mutated(s.lifecycle.Cancel(ctx, orderID, reason))
}

// Create submits a new order and reloads the dashboard so it shows up.
func (s *Store) Create(ctx context.Context, req order.CreateRequest) (*types.Order, error) {
	created, err := s.mutated(s.lifecycle.Create(ctx, req))
	if err != nil {
		return nil, err
	}
	s.Refresh()
	return created, nil
}

// mutated records the outcome of a mutation in the shared error. Rejections
// that never reached the server leave it alone. A mutation error is not tied
// to a batch: the next success of any kind clears it, including one from a
// batch already in flight.
func (s *Store) mutated(o *types.Order, err error) (*types.Order, error) {
	if err != nil && isLocalRejection(err) {
		return nil, err
	}

	s.mu.Lock()
	s.errSeq = 0
	if err != nil {
		s.errMsg = mutationErrorMessage(err)
	} else {
		s.errMsg = ""
	}
	s.mu.Unlock()
	s.notify()

	if err != nil {
		return nil, err
	}
	return o, nil
}

func isLocalRejection(err error) bool {
	var validationErr *order.ValidationError
	var notFoundErr *order.OrderNotFoundError
	var transitionErr *order.IllegalTransitionError
	return errors.As(err, &validationErr) || errors.As(err, &notFoundErr) || errors.As(err, &transitionErr)
}

func mutationErrorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// syncSelectedLocked refreshes the selected order from a newly loaded page.
func (s *Store) syncSelectedLocked() {
	if s.selected == nil {
		return
	}
	for _, o := range s.orders {
		if o.OrderID == s.selected.OrderID {
			selected := o
			s.selected = &selected
			return
		}
	}
}

func (s *Store) notify() {
	s.lmu.RLock()
	listeners := make([]func(Snapshot), len(s.listeners))
	copy(listeners, s.listeners)
	s.lmu.RUnlock()

	if len(listeners) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, fn := range listeners {
		fn(snap)
	}
}

// Close drops a pending debounced fetch.
func (s *Store) Close() {
	if s.gate.Cancel() {
		logger.Info("Dropped pending dashboard fetch")
	}
}
