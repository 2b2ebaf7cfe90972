// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request payloads accepted by the HTTP API. The validate tags are checked by
// internal/validators before a payload reaches the services.

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
	DeviceID string `json:"deviceId" validate:"omitempty,max=255"`
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8,max=128,password_strength"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=128,password_strength"`
}

type RecoverySubmitRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Message  string `json:"message" validate:"required,min=10,max=2000"`
	DeviceID string `json:"deviceId" validate:"required,min=1,max=255"`
}

// CreateUserRequest provisions an account from the admin panel. Password is
// accepted for compatibility with older clients; it is validated but never
// stored, the account is created passwordless.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8,max=128,password_strength"`
	Role     Role   `json:"role" validate:"required,oneof=TEACHER USER"`
}

type BanUserRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500"`
}

type RecoveryActionRequest struct {
	AdminNote *string `json:"adminNote,omitempty" validate:"omitempty,max=1000"`
}
