// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Route("/api", func(r chi.Router) {
		r.Get("/", h.health)
		r.Get("/version", h.version)

		r.Route("/auth/custom", func(r chi.Router) {
			// routes without authorization
			r.Group(func(r chi.Router) {
				r.Use(h.withRateLimit())
				r.Post("/login", h.login)
				r.Post("/signup", h.signup)
				r.Post("/forgot-password", h.forgotPassword)
				r.Post("/reset-password", h.resetPassword)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.With(h.authorize(service.OpViewProfile)).Get("/me", h.me)
				r.With(h.authorize(service.OpLogout)).Post("/logout", h.logout)
			})
		})

		r.Route("/recovery", func(r chi.Router) {
			r.Use(h.withRateLimit())
			r.Post("/request", h.submitRecoveryRequest)
			r.Get("/status", h.recoveryStatus)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.auth)

			r.With(h.authorize(service.OpCreateUser)).Post("/users", h.createUser)
			r.With(h.authorize(service.OpListUsers)).Get("/users", h.listUsers)
			r.With(h.authorize(service.OpGetUser)).Get("/users/{id}", h.getUser)
			r.With(h.authorize(service.OpBanUser)).Patch("/users/{id}/ban", h.banUser)
			r.With(h.authorize(service.OpUnbanUser)).Patch("/users/{id}/unban", h.unbanUser)

			r.With(h.authorize(service.OpListRecoveryQueue)).Get("/recovery-requests", h.listRecoveryRequests)
			r.With(h.authorize(service.OpResolveRecoveryItem)).Patch("/recovery-requests/{id}/approve", h.approveRecoveryRequest)
			r.With(h.authorize(service.OpResolveRecoveryItem)).Patch("/recovery-requests/{id}/reject", h.rejectRecoveryRequest)
		})

		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
	})

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeFailure(w, r, http.StatusNotFound, "Not found", fmt.Sprintf("Route %s %s not found", r.Method, r.URL.Path))
}
