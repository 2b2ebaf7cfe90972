// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-courses-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DeviceDecider evaluates a login attempt against the locked user row.
type DeviceDecider func(user models.User) models.DeviceDecision

// UserRepository persists users.
type UserRepository interface {
	// CreateUser inserts the user and its credential account in one
	// transaction. A nil passwordHash creates a passwordless account.
	CreateUser(ctx context.Context, user models.User, passwordHash *string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)

	// ApplyDeviceCheck locks the user row, asks decide what to do and applies
	// the bind or ban before committing. It returns the user as stored after
	// the check together with the decision.
	ApplyDeviceCheck(ctx context.Context, userID string, decide DeviceDecider) (models.User, models.DeviceDecision, error)

	SetBan(ctx context.Context, userID, reason string) (models.User, error)
	ClearBan(ctx context.Context, userID string) (models.User, error)
}

// CredentialRepository manages password hashes of credential accounts.
type CredentialRepository interface {
	GetPasswordHash(ctx context.Context, userID string) (string, error)
	SetPasswordHash(ctx context.Context, userID, passwordHash string) error
}

// RecoveryRepository persists recovery requests.
type RecoveryRepository interface {
	// CreatePendingRequest inserts a PENDING request after checking, under a
	// row lock on the user, that the user is banned and has no open request.
	CreatePendingRequest(ctx context.Context, request models.RecoveryRequest) (models.RecoveryRequest, error)
	FindRequestByID(ctx context.Context, requestID string) (models.RecoveryRequest, error)
	FindLatestRequest(ctx context.Context, userID string) (models.RecoveryRequest, error)
	ListRequests(ctx context.Context, filter models.RecoveryFilter) ([]models.RecoveryRequest, error)

	// ResolveRequest moves a PENDING request to the decision status and, on
	// approval, rebinds and unbans the owner in the same transaction.
	ResolveRequest(ctx context.Context, decision models.RecoveryDecision) (models.RecoveryRequest, error)
}

// ProductRepository reads the product catalog.
type ProductRepository interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	FindProductByID(ctx context.Context, productID int64) (models.Product, error)
}

// SessionStore keeps session revocations.
type SessionStore interface {
	RevokeSession(ctx context.Context, sessionID string, ttl time.Duration) error
	IsSessionRevoked(ctx context.Context, sessionID string) (bool, error)
	RevokeAllSessions(ctx context.Context, userID string, at time.Time, ttl time.Duration) error
	SessionsRevokedAt(ctx context.Context, userID string) (time.Time, error)
}

// ResetTokenStore keeps one-time password reset tokens by their hash.
type ResetTokenStore interface {
	SaveResetToken(ctx context.Context, tokenHash, userID string, ttl time.Duration) error
	ConsumeResetToken(ctx context.Context, tokenHash string) (string, error)
}

// IDGenerator issues primary keys for new rows.
type IDGenerator interface {
	Generate() string
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
