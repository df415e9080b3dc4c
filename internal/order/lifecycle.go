package order

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/storeflow/internal/api"
	"github.com/wellywell/storeflow/internal/audit"
	"github.com/wellywell/storeflow/internal/types"
)

type Action string

const (
	ModifyAction  Action = "modify"
	ApproveAction Action = "approve"
	FulfillAction Action = "fulfill"
	CancelAction  Action = "cancel"
	CreateAction  Action = "create"
)

// allowedFrom lists the statuses each action may start from.
// Fulfilled and cancelled orders accept nothing.
var allowedFrom = map[Action][]types.Status{
	ModifyAction:  {types.PendingReviewStatus, types.ApprovedStatus},
	ApproveAction: {types.PendingReviewStatus},
	FulfillAction: {types.ApprovedStatus},
	CancelAction:  {types.PendingReviewStatus, types.ApprovedStatus},
}

func CanPerform(action Action, status types.Status) bool {
	for _, s := range allowedFrom[action] {
		if s == status {
			return true
		}
	}
	return false
}

type API interface {
	CreateOrder(ctx context.Context, req api.CreateOrderRequest, asOf *types.CalendarDate) (*types.Order, error)
	UpdateOrder(ctx context.Context, orderID int64, req api.UpdateOrderRequest) (*types.Order, error)
	ApproveOrder(ctx context.Context, orderID int64, approverID int64, version int) (*types.Order, error)
	FulfillOrder(ctx context.Context, orderID int64, version int) (*types.Order, error)
	CancelOrder(ctx context.Context, orderID int64, reason string, version int) (*types.Order, error)
}

// Collection is the in-memory order view the manager reconciles into.
type Collection interface {
	Order(orderID int64) (types.Order, bool)
	ReplaceOrder(order types.Order)
}

type Clock interface {
	Now() time.Time
	AsOfDate() (types.CalendarDate, bool)
}

type Publisher interface {
	Publish(ctx context.Context, e audit.Event) error
}

type ModifyRequest struct {
	QuantityCases *int    `json:"quantity_cases"`
	Notes         *string `json:"notes"`
}

type CreateRequest struct {
	FromStoreID   *int64  `json:"from_store_id"`
	ToStoreID     int64   `json:"to_store_id"`
	ProductID     int64   `json:"product_id"`
	QuantityCases int     `json:"quantity_cases"`
	RequestedBy   int64   `json:"requested_by"`
	Notes         *string `json:"notes"`
}

// Manager validates and executes order transitions. The server stays the
// authority: local checks only save a round trip that would fail anyway.
type Manager struct {
	api         API
	orders      Collection
	clock       Clock
	publisher   Publisher
	maxQuantity int
	validate    *validator.Validate
}

func NewManager(client API, orders Collection, clock Clock, publisher Publisher, maxQuantity int) *Manager {
	if publisher == nil {
		publisher = audit.LogPublisher{}
	}
	return &Manager{
		api:         client,
		orders:      orders,
		clock:       clock,
		publisher:   publisher,
		maxQuantity: maxQuantity,
		validate:    newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (m *Manager) Modify(ctx context.Context, orderID int64, req ModifyRequest) (*types.Order, error) {
	if req.QuantityCases == nil && req.Notes == nil {
		return nil, &ValidationError{Field: "order", Message: "Nothing to update"}
	}
	if req.QuantityCases != nil {
		if err := m.validateQuantity(*req.QuantityCases); err != nil {
			return nil, err
		}
	}
	return m.transition(ctx, orderID, ModifyAction, func(current types.Order) (*types.Order, error) {
		return m.api.UpdateOrder(ctx, orderID, api.UpdateOrderRequest{
			QuantityCases: req.QuantityCases,
			Notes:         req.Notes,
			Version:       current.Version,
		})
	})
}

func (m *Manager) Approve(ctx context.Context, orderID int64, approverID int64) (*types.Order, error) {
	if approverID <= 0 {
		return nil, &ValidationError{Field: "approved_by", Message: "Approver is required"}
	}
	return m.transition(ctx, orderID, ApproveAction, func(current types.Order) (*types.Order, error) {
		return m.api.ApproveOrder(ctx, orderID, approverID, current.Version)
	})
}

func (m *Manager) Fulfill(ctx context.Context, orderID int64) (*types.Order, error) {
	return m.transition(ctx, orderID, FulfillAction, func(current types.Order) (*types.Order, error) {
		return m.api.FulfillOrder(ctx, orderID, current.Version)
	})
}

func (m *Manager) Cancel(ctx context.Context, orderID int64, reason string) (*types.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, &ValidationError{Field: "reason", Message: "Cancellation reason is required"}
	}
	return m.transition(ctx, orderID, CancelAction, func(current types.Order) (*types.Order, error) {
		return m.api.CancelOrder(ctx, orderID, reason, current.Version)
	})
}

// Create submits a new order. It always starts in pending_review; the order
// number and, when the clock is pinned, the order date come from the
// virtual clock.
func (m *Manager) Create(ctx context.Context, req CreateRequest) (*types.Order, error) {
	if err := m.validateQuantity(req.QuantityCases); err != nil {
		return nil, err
	}
	payload := api.CreateOrderRequest{
		OrderNumber:   m.orderNumber(),
		FromStoreID:   req.FromStoreID,
		ToStoreID:     req.ToStoreID,
		ProductID:     req.ProductID,
		QuantityCases: req.QuantityCases,
		RequestedBy:   req.RequestedBy,
		Notes:         req.Notes,
	}
	if err := m.validate.Struct(payload); err != nil {
		return nil, toValidationError(err)
	}
	if req.FromStoreID != nil && *req.FromStoreID == req.ToStoreID {
		return nil, &ValidationError{Field: "from_store_id", Message: "Source and destination store must differ"}
	}

	var asOf *types.CalendarDate
	if d, ok := m.clock.AsOfDate(); ok {
		asOf = &d
		orderDate := m.clock.Now()
		payload.OrderDate = &orderDate
	}

	created, err := m.api.CreateOrder(ctx, payload, asOf)
	if err != nil {
		logger.Warningf("Creating order %s failed: %s", payload.OrderNumber, err.Error())
		return nil, err
	}
	m.publish(ctx, CreateAction, nil, *created)
	return created, nil
}

// transition is the single primitive behind every mutation: local fast-fail,
// exactly one call, replace on success, untouched state on failure.
func (m *Manager) transition(ctx context.Context, orderID int64, action Action, call func(current types.Order) (*types.Order, error)) (*types.Order, error) {
	current, ok := m.orders.Order(orderID)
	if !ok {
		return nil, fmt.Errorf("%w", &OrderNotFoundError{OrderID: orderID})
	}
	if !CanPerform(action, current.Status) {
		return nil, fmt.Errorf("%w", &IllegalTransitionError{OrderID: orderID, Action: action, Status: current.Status})
	}

	updated, err := call(current)
	if err != nil {
		logger.Warningf("Order %d %s failed: %s", orderID, action, err.Error())
		return nil, err
	}
	if updated.Version != current.Version+1 {
		logger.Warningf("Order %d version jumped from %d to %d", orderID, current.Version, updated.Version)
	}

	m.orders.ReplaceOrder(*updated)
	m.publish(ctx, action, &current, *updated)
	return updated, nil
}

func (m *Manager) publish(ctx context.Context, action Action, before *types.Order, after types.Order) {
	event := audit.NewEvent(string(action), before, after, m.clock.Now())
	if err := m.publisher.Publish(ctx, event); err != nil {
		logger.Errorf("Could not publish %s event of order %d: %s", action, after.OrderID, err.Error())
	}
}

func (m *Manager) validateQuantity(q int) error {
	rule := fmt.Sprintf("min=1,max=%d", m.maxQuantity)
	if err := m.validate.Var(q, rule); err != nil {
		return &ValidationError{
			Field:   "quantity_cases",
			Message: fmt.Sprintf("Quantity must be between 1 and %d cases", m.maxQuantity),
		}
	}
	return nil
}

func (m *Manager) orderNumber() string {
	day := m.clock.Now().Format("20060102")
	return fmt.Sprintf("ORD-%s-%s", day, strings.ToUpper(uuid.NewString()[:8]))
}

func toValidationError(err error) error {
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("%s is required", fe.Field()),
		}
	}
	return &ValidationError{Field: "order", Message: err.Error()}
}
