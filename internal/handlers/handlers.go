package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/storeflow/internal/api"
	"github.com/wellywell/storeflow/internal/auth"
	"github.com/wellywell/storeflow/internal/clock"
	"github.com/wellywell/storeflow/internal/dashboard"
	"github.com/wellywell/storeflow/internal/order"
	"github.com/wellywell/storeflow/internal/types"
)

type ProductLookup interface {
	Get(id int64) (types.Product, bool)
}

type HandlerSet struct {
	store    *dashboard.Store
	products ProductLookup
	clock    *clock.Clock
	sla      time.Duration
}

var ErrBadOrderID = errors.New("bad order id")

func NewHandlerSet(store *dashboard.Store, products ProductLookup, clk *clock.Clock, sla time.Duration) *HandlerSet {
	return &HandlerSet{
		store:    store,
		products: products,
		clock:    clk,
		sla:      sla,
	}
}

type dashboardResponse struct {
	dashboard.Snapshot
	ExpiredOrderIDs []int64 `json:"expiredOrderIds"`
	// metadata of the products on the loaded page, keyed by product id;
	// ids the prefetch has not resolved yet are absent
	Products map[int64]types.Product `json:"products"`
}

func (h *HandlerSet) HandleGetDashboard(w http.ResponseWriter, req *http.Request) {
	snap := h.store.Snapshot()
	now := h.clock.Now()

	expired := make([]int64, 0)
	products := make(map[int64]types.Product)
	for _, o := range snap.Orders {
		if o.IsExpired(now, h.sla) {
			expired = append(expired, o.OrderID)
		}
		if p, ok := h.products.Get(o.ProductID); ok {
			products[o.ProductID] = p
		}
	}
	writeJSON(w, http.StatusOK, dashboardResponse{Snapshot: snap, ExpiredOrderIDs: expired, Products: products})
}

func (h *HandlerSet) HandleSetFilters(w http.ResponseWriter, req *http.Request) {
	var delta types.FilterDelta
	if err := json.NewDecoder(req.Body).Decode(&delta); err != nil {
		http.Error(w, "Could not parse body", http.StatusBadRequest)
		return
	}
	if delta.Status != nil && !types.IsAll(*delta.Status) && !types.Status(*delta.Status).Valid() {
		http.Error(w, "Unknown status", http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusAccepted, h.store.SetFilters(delta))
}

func (h *HandlerSet) HandleToggleExpiredSLA(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusAccepted, h.store.ToggleExpiredSLA())
}

func (h *HandlerSet) HandleToggleStatus(w http.ResponseWriter, req *http.Request) {
	filters, err := h.store.ToggleStatus(types.Status(chi.URLParam(req, "status")))
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, filters)
}

func (h *HandlerSet) HandleSetPage(w http.ResponseWriter, req *http.Request) {
	var data struct {
		Page int `json:"page"`
	}
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		http.Error(w, "Could not parse body", http.StatusBadRequest)
		return
	}
	if err := h.store.SetPage(data.Page); err != nil {
		writeOrderError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *HandlerSet) HandleSetPageSize(w http.ResponseWriter, req *http.Request) {
	var data struct {
		PageSize int `json:"pageSize"`
	}
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		http.Error(w, "Could not parse body", http.StatusBadRequest)
		return
	}
	if err := h.store.SetPageSize(data.PageSize); err != nil {
		writeOrderError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *HandlerSet) HandleRefresh(w http.ResponseWriter, req *http.Request) {
	h.store.Refresh()
	w.WriteHeader(http.StatusAccepted)
}

func (h *HandlerSet) HandleSelectOrder(w http.ResponseWriter, req *http.Request) {
	orderID, err := parseOrderID(req)
	if err != nil {
		http.Error(w, "Bad order id", http.StatusBadRequest)
		return
	}
	o, err := h.store.SelectOrder(orderID)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *HandlerSet) HandleClearSelection(w http.ResponseWriter, req *http.Request) {
	h.store.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}

func (h *HandlerSet) HandleCreateOrder(w http.ResponseWriter, req *http.Request) {
	user, ok := auth.GetAuthenticatedUser(req)
	if !ok {
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	var data order.CreateRequest
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		http.Error(w, "Could not parse body", http.StatusBadRequest)
		return
	}
	if data.RequestedBy == 0 {
		data.RequestedBy = user.ID
	}

	created, err := h.store.Create(req.Context(), data)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *HandlerSet) HandleModifyOrder(w http.ResponseWriter, req *http.Request) {
	orderID, err := parseOrderID(req)
	if err != nil {
		http.Error(w, "Bad order id", http.StatusBadRequest)
		return
	}
	var data order.ModifyRequest
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		http.Error(w, "Could not parse body", http.StatusBadRequest)
		return
	}

	updated, err := h.store.Modify(req.Context(), orderID, data)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *HandlerSet) HandleApproveOrder(w http.ResponseWriter, req *http.Request) {
	user, orderID, ok := h.managerAction(w, req)
	if !ok {
		return
	}
	updated, err := h.store.Approve(req.Context(), orderID, user.ID)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *HandlerSet) HandleFulfillOrder(w http.ResponseWriter, req *http.Request) {
	_, orderID, ok := h.managerAction(w, req)
	if !ok {
		return
	}
	updated, err := h.store.Fulfill(req.Context(), orderID)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *HandlerSet) HandleCancelOrder(w http.ResponseWriter, req *http.Request) {
	orderID, err := parseOrderID(req)
	if err != nil {
		http.Error(w, "Bad order id", http.StatusBadRequest)
		return
	}
	var data struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		http.Error(w, "Could not parse body", http.StatusBadRequest)
		return
	}

	updated, err := h.store.Cancel(req.Context(), orderID, data.Reason)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// managerAction resolves the order id of an approve/fulfill request made by
// a regional manager; it writes the error response itself.
func (h *HandlerSet) managerAction(w http.ResponseWriter, req *http.Request) (auth.User, int64, bool) {
	user, ok := auth.GetAuthenticatedUser(req)
	if !ok {
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return auth.User{}, 0, false
	}
	if !user.CanApprove() {
		http.Error(w, "Only regional managers can do this", http.StatusForbidden)
		return auth.User{}, 0, false
	}
	orderID, err := parseOrderID(req)
	if err != nil {
		http.Error(w, "Bad order id", http.StatusBadRequest)
		return auth.User{}, 0, false
	}
	return user, orderID, true
}

func (h *HandlerSet) HandleGetClock(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, h.clock.State())
}

func (h *HandlerSet) HandleSetClock(w http.ResponseWriter, req *http.Request) {
	var data struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		http.Error(w, "Could not parse body", http.StatusBadRequest)
		return
	}
	d, err := types.ParseDate(data.Date)
	if err != nil {
		http.Error(w, "Date must be YYYY-MM-DD", http.StatusUnprocessableEntity)
		return
	}
	h.clock.SetOverride(req.Context(), d)
	writeJSON(w, http.StatusOK, h.clock.State())
}

func (h *HandlerSet) HandleResetClock(w http.ResponseWriter, req *http.Request) {
	h.clock.ClearOverride(req.Context())
	writeJSON(w, http.StatusOK, h.clock.State())
}

func parseOrderID(req *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadOrderID
	}
	return id, nil
}

func writeOrderError(w http.ResponseWriter, err error) {
	var validationErr *order.ValidationError
	var transitionErr *order.IllegalTransitionError
	var notFoundErr *order.OrderNotFoundError
	var apiErr *api.Error

	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Message, http.StatusUnprocessableEntity)
	case errors.As(err, &transitionErr):
		http.Error(w, transitionErr.Error(), http.StatusConflict)
	case errors.As(err, &notFoundErr):
		http.Error(w, notFoundErr.Error(), http.StatusNotFound)
	case api.IsConflict(err):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &apiErr):
		http.Error(w, apiErr.Message, http.StatusBadGateway)
	default:
		logger.Error(err)
		http.Error(w, "Order service unavailable", http.StatusBadGateway)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	response, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Could not serialize result",
			http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(response)
	if err != nil {
		logger.Errorf("Could not write response: %s", err.Error())
	}
}
