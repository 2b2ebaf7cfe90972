// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
)

// auth is an HTTP middleware that enforces session authentication.
//
// It extracts the bearer token from the "Authorization" header, validates
// it via [service.AuthService.ParseToken] and stores the resulting
// [models.Identity] in the request context with [utils.WithIdentity].
//
// Requests are rejected with 401 when the header is missing or malformed,
// or when the token is invalid, expired or revoked.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := utils.WithIdentity(r.Context(), token.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authorize rejects the request unless the authenticated identity may
// perform op. It must run after auth.
func (h *Handler) authorize(op service.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, _ := utils.IdentityFromContext(r.Context())

			if err := service.Authorize(identity, op); err != nil {
				h.writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// identityFrom returns the identity stored by auth.
func identityFrom(r *http.Request) models.Identity {
	identity, _ := utils.IdentityFromContext(r.Context())
	return identity
}
