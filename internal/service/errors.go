// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRole         = errors.New("role must be TEACHER or USER")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserAlreadyExists      = errors.New("user with this email already exists")

	ErrAccountBanned    = errors.New("account is banned")
	ErrDeviceMismatch   = errors.New("device mismatch detected")
	ErrDeviceIDRequired = errors.New("deviceId is required for student login")
	ErrAccountNotBanned = errors.New("account is not banned")
	ErrForbidden        = errors.New("forbidden")

	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionRevoked          = errors.New("session has been revoked")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// AccessDeniedError is returned when a login is refused because of the
// account's device or ban state. Reason is shown to the caller; Kind is one
// of [ErrAccountBanned] or [ErrDeviceMismatch].
type AccessDeniedError struct {
	Kind   error
	Reason string
}

func (e *AccessDeniedError) Error() string {
	return e.Reason
}

func (e *AccessDeniedError) Unwrap() error {
	return e.Kind
}
