// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows the configured origins to call the API with credentials.
// Without configured origins every origin is allowed.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: len(h.server.AllowedOrigins) > 0,
		MaxAge:           300,
	})
}
