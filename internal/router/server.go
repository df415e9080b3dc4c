package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/wellywell/storeflow/internal/auth"
	"github.com/wellywell/storeflow/internal/config"
	"github.com/wellywell/storeflow/internal/handlers"
)

const (
	compressLevel = 5
)

type Middleware interface {
	Handle(h http.Handler) http.Handler
}

type Router struct {
	server *http.Server
	router *chi.Mux
}

func NewRouter(conf *config.ServerConfig, h *handlers.HandlerSet, middlewares ...Middleware) *Router {

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	for _, m := range middlewares {
		r.Use(m.Handle)
	}
	r.Use(middleware.Compress(compressLevel))

	authMiddleware := &auth.AuthenticateMiddleware{Secret: conf.Secret}

	r.Group(func(r chi.Router) {

		r.Use(authMiddleware.Handle)

		r.Route("/api/dashboard", func(r chi.Router) {
			r.Get("/", h.HandleGetDashboard)
			r.Post("/filters", h.HandleSetFilters)
			r.Post("/filters/expired-sla", h.HandleToggleExpiredSLA)
			r.Post("/filters/status/{status}", h.HandleToggleStatus)
			r.Post("/page", h.HandleSetPage)
			r.Post("/page-size", h.HandleSetPageSize)
			r.Post("/refresh", h.HandleRefresh)
			r.Post("/select/{id}", h.HandleSelectOrder)
			r.Delete("/select", h.HandleClearSelection)
		})

		r.Route("/api/orders", func(r chi.Router) {
			r.Post("/", h.HandleCreateOrder)
			r.Put("/{id}", h.HandleModifyOrder)
			r.Post("/{id}/approve", h.HandleApproveOrder)
			r.Post("/{id}/fulfill", h.HandleFulfillOrder)
			r.Post("/{id}/cancel", h.HandleCancelOrder)
		})

		r.Get("/api/clock", h.HandleGetClock)
		r.Put("/api/clock", h.HandleSetClock)
		r.Delete("/api/clock", h.HandleResetClock)
	})

	return &Router{
		router: r,
		server: &http.Server{
			Addr:              conf.RunAddress,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (r *Router) Handler() http.Handler {
	return r.router
}

func (r *Router) ListenAndServe() error {
	err := r.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}
