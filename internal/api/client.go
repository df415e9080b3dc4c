package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/wellywell/storeflow/internal/types"
)

const RequestIDHeader = "X-Request-ID"

// Client talks to the remote order/inventory API.
type Client struct {
	http *resty.Client
}

type OrderQuery struct {
	Filters types.OrderFilters
	Page    int
	Limit   int
	AsOf    *types.CalendarDate
}

type SummaryQuery struct {
	Region   string
	Category string
	AsOf     *types.CalendarDate
}

type CreateOrderRequest struct {
	OrderNumber   string     `json:"order_number"`
	FromStoreID   *int64     `json:"from_store_id"`
	ToStoreID     int64      `json:"to_store_id" validate:"gt=0"`
	ProductID     int64      `json:"product_id" validate:"gt=0"`
	QuantityCases int        `json:"quantity_cases"`
	RequestedBy   int64      `json:"requested_by" validate:"gt=0"`
	Notes         *string    `json:"notes"`
	OrderDate     *time.Time `json:"order_date,omitempty"`
}

type UpdateOrderRequest struct {
	QuantityCases *int    `json:"quantity_cases,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Version       int     `json:"version"`
}

func NewClient(address string, token string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(address, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
	if token != "" {
		c.SetAuthToken(token)
	}
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.SetHeader(RequestIDHeader, uuid.NewString())
		}
		return nil
	})
	return &Client{http: c}
}

func (c *Client) ListOrders(ctx context.Context, q OrderQuery) (*types.OrderPage, error) {
	params := map[string]string{
		"page":  strconv.Itoa(q.Page),
		"limit": strconv.Itoa(q.Limit),
	}
	f := q.Filters
	setFilter(params, "region", f.Region)
	setFilter(params, "category", f.Category)
	setFilter(params, "status", f.Status)
	if f.StoreID != nil {
		params["store_id"] = strconv.FormatInt(*f.StoreID, 10)
	}
	if f.Search != "" {
		params["search"] = f.Search
	}
	if r := f.Effective(); r != nil {
		params["date_from"] = r.From.String()
		params["date_to"] = r.To.String()
	}
	if f.ExpiredSLAOnly {
		params["expired_sla_only"] = "true"
	}
	setAsOf(params, q.AsOf)

	var page types.OrderPage
	err := c.do(ctx, c.http.R().SetQueryParams(params), http.MethodGet, "/orders", &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetStatusSummary(ctx context.Context, q SummaryQuery) (*types.OrderStatusSummary, error) {
	params := map[string]string{}
	setFilter(params, "region", q.Region)
	setFilter(params, "category", q.Category)
	setAsOf(params, q.AsOf)

	var summary types.OrderStatusSummary
	err := c.do(ctx, c.http.R().SetQueryParams(params), http.MethodGet, "/orders/status/summary", &summary)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest, asOf *types.CalendarDate) (*types.Order, error) {
	params := map[string]string{}
	setAsOf(params, asOf)
	return c.orderCall(ctx, c.http.R().SetQueryParams(params).SetBody(req), http.MethodPost, "/orders")
}

func (c *Client) UpdateOrder(ctx context.Context, orderID int64, req UpdateOrderRequest) (*types.Order, error) {
	return c.orderCall(ctx, c.http.R().SetBody(req), http.MethodPut, orderPath(orderID, ""))
}

func (c *Client) ApproveOrder(ctx context.Context, orderID int64, approverID int64, version int) (*types.Order, error) {
	body := map[string]any{"approved_by": approverID, "version": version}
	return c.orderCall(ctx, c.http.R().SetBody(body), http.MethodPatch, orderPath(orderID, "approve"))
}

func (c *Client) FulfillOrder(ctx context.Context, orderID int64, version int) (*types.Order, error) {
	body := map[string]any{"version": version}
	return c.orderCall(ctx, c.http.R().SetBody(body), http.MethodPatch, orderPath(orderID, "fulfill"))
}

func (c *Client) CancelOrder(ctx context.Context, orderID int64, reason string, version int) (*types.Order, error) {
	body := map[string]any{"reason": reason, "version": version}
	return c.orderCall(ctx, c.http.R().SetBody(body), http.MethodPut, orderPath(orderID, "cancel"))
}

// GetProductsByIDs fetches metadata of several products in one request.
func (c *Client) GetProductsByIDs(ctx context.Context, ids []int64) ([]types.Product, error) {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	req := c.http.R().SetQueryParam("ids", strings.Join(parts, ","))

	var products []types.Product
	if err := c.do(ctx, req, http.MethodGet, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) orderCall(ctx context.Context, req *resty.Request, method, path string) (*types.Order, error) {
	var order types.Order
	if err := c.do(ctx, req, method, path, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) do(ctx context.Context, req *resty.Request, method, path string, out any) error {
	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	if resp.IsError() {
		return newError(resp.StatusCode(), resp.Body())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %s", ErrUnexpectedBody, err.Error())
	}
	return nil
}

func orderPath(orderID int64, action string) string {
	p := fmt.Sprintf("/orders/%d", orderID)
	if action != "" {
		p += "/" + action
	}
	return p
}

func setFilter(params map[string]string, key, value string) {
	if !types.IsAll(value) {
		params[key] = value
	}
}

func setAsOf(params map[string]string, asOf *types.CalendarDate) {
	if asOf != nil {
		params["as_of_date"] = asOf.String()
	}
}
