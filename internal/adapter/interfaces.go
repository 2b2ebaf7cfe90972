// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the HTTP client of the courses admin API.
//
// [AdminAPI] hides the JSON envelope and bearer token handling from its
// callers. Non-2xx responses are mapped onto the sentinel errors in
// errors.go so that callers can branch with [errors.Is] (for example
// [ErrForbidden] when the stored token does not belong to an ADMIN).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-courses-api/models"
)

// AdminAPI is the operator view of the courses API.
type AdminAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Login signs in with email and password and stores the issued token.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)

	// ListUsers returns the users matching filter.
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)

	// GetUser returns a single user.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// BanUser bans the user with reason.
	BanUser(ctx context.Context, userID, reason string) (models.User, error)

	// UnbanUser lifts the ban of the user.
	UnbanUser(ctx context.Context, userID string) (models.User, error)

	// ListRecoveryRequests returns the pending recovery queue.
	ListRecoveryRequests(ctx context.Context) ([]models.RecoveryRequest, error)

	// ApproveRecoveryRequest approves a pending request. note may be nil.
	ApproveRecoveryRequest(ctx context.Context, requestID string, note *string) error

	// RejectRecoveryRequest rejects a pending request. note may be nil.
	RejectRecoveryRequest(ctx context.Context, requestID string, note *string) error
}
