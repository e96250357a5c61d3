package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups the resource handlers mounted by NewRouter.
type Handlers struct {
	Health        *HealthHandler
	Contracts     *ContractHandler
	Tasks         *TaskHandler
	Notifications *NotificationHandler
	Dashboard     *DashboardHandler
	Metrics       http.Handler
}

// RouterOptions carries the middleware stacks.
type RouterOptions struct {
	// Global wraps every route, probes included.
	Global []func(http.Handler) http.Handler
	// API wraps the authenticated resource routes.
	API []func(http.Handler) http.Handler
	// WriteLimit, when set, throttles non-read requests on resource routes.
	WriteLimit func(http.Handler) http.Handler
}

// NewRouter builds the HTTP routing tree.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(opts.Global...)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(opts.API...)
		if opts.WriteLimit != nil {
			r.Use(writesOnly(opts.WriteLimit))
		}

		r.Route("/contracts", func(r chi.Router) {
			h.Contracts.Routes(r)
			r.Route("/{id}/tasks", h.Tasks.ContractRoutes)
		})
		r.Route("/tasks", h.Tasks.Routes)
		r.Route("/notifications", h.Notifications.Routes)
		r.Route("/dashboard", h.Dashboard.Routes)
	})

	return r
}

// writesOnly applies mw to mutating requests and lets reads through.
func writesOnly(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
			default:
				limited.ServeHTTP(w, r)
			}
		})
	}
}
