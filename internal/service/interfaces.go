// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-courses-api/models"
)

type AuthService interface {
	Signup(ctx context.Context, request models.SignupRequest) (models.User, models.Token, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error)
	ForgotPassword(ctx context.Context, request models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error

	Me(ctx context.Context, identity models.Identity) (models.User, error)
	Logout(ctx context.Context, identity models.Identity) error

	// ParseToken verifies a session JWT and rejects revoked sessions.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// request validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type DeviceService interface {
	// CheckDeviceBinding applies the device-binding rules to a login of
	// userID from deviceID and persists the resulting bind or ban.
	CheckDeviceBinding(ctx context.Context, userID, deviceID string) (models.DeviceCheckResult, error)
}

type RecoveryService interface {
	SubmitRequest(ctx context.Context, request models.RecoverySubmitRequest) (models.RecoveryRequest, error)
	GetStatus(ctx context.Context, email string) (models.RecoveryStatusView, error)
}

type AdminService interface {
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	BanUser(ctx context.Context, userID string, request models.BanUserRequest) (models.User, error)
	UnbanUser(ctx context.Context, userID string) (models.User, error)

	ListPendingRecoveryRequests(ctx context.Context) ([]models.RecoveryRequest, error)
	ApproveRecoveryRequest(ctx context.Context, requestID string, request models.RecoveryActionRequest) (models.RecoveryRequest, error)
	RejectRecoveryRequest(ctx context.Context, requestID string, request models.RecoveryActionRequest) (models.RecoveryRequest, error)

	// EnsureAdmin creates the bootstrap ADMIN account unless a user with
	// that email already exists.
	EnsureAdmin(ctx context.Context, email, name, password string) error
}

type ProductService interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, productID int64) (models.Product, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// Notifier delivers emails. Implementations may send asynchronously; an
// error means the email was not accepted for delivery.
type Notifier interface {
	Notify(ctx context.Context, email models.Email) error
}
