// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/validators"
)

// errorMapping binds a sentinel to its status and the text clients see.
// An empty public text means the error's own message is shown.
type errorMapping struct {
	target error
	status int
	public string
}

// errorMappings is ordered: the first matching target wins.
var errorMappings = []errorMapping{
	{store.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{store.ErrRecoveryRequestNotFound, http.StatusNotFound, "No recovery request found"},
	{store.ErrProductNotFound, http.StatusNotFound, "Product not found"},

	{service.ErrUserAlreadyExists, http.StatusBadRequest, "User with this email already exists"},
	{service.ErrEmailAlreadyRegistered, http.StatusBadRequest, "Email already registered"},
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, "Email already registered"},
	{store.ErrPendingRecoveryRequestExists, http.StatusBadRequest, "You already have a pending recovery request"},
	{store.ErrRecoveryRequestResolved, http.StatusBadRequest, "Request already processed"},
	{service.ErrAccountNotBanned, http.StatusBadRequest, "Account is not banned"},
	{store.ErrUserNotBanned, http.StatusBadRequest, "Account is not banned"},

	{service.ErrForbidden, http.StatusForbidden, "Admin access required"},
	{service.ErrAccountBanned, http.StatusForbidden, "Account is banned"},
	{service.ErrDeviceMismatch, http.StatusForbidden, "Device not allowed"},

	{validators.ErrValidationFailed, http.StatusBadRequest, ""},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "Invalid data provided"},
	{service.ErrDeviceIDRequired, http.StatusBadRequest, "Device ID is required"},
	{service.ErrInvalidRole, http.StatusBadRequest, "Invalid role"},
	{service.ErrInvalidResetToken, http.StatusBadRequest, "Invalid or expired reset token"},
	{ErrEmailRequired, http.StatusBadRequest, "Email is required"},
	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed"},
	{ErrInvalidPathParam, http.StatusBadRequest, "Invalid path parameter"},
	{ErrInvalidQueryParam, http.StatusBadRequest, ""},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "Invalid or expired session"},
	{service.ErrSessionRevoked, http.StatusUnauthorized, "Session has been revoked"},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, "Unauthorized"},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, "Unauthorized"},

	{ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests, try again later"},
}

// statusMessages is the envelope "message" per status class.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusUnauthorized:        "Authentication required",
	http.StatusForbidden:           "Access denied",
	http.StatusNotFound:            "Resource not found",
	http.StatusTooManyRequests:     "Rate limit exceeded",
	http.StatusInternalServerError: "Internal server error",
}

const internalErrorText = "Something went wrong"

// apiError is the client-facing rendering of an error.
type apiError struct {
	status  int
	message string
	detail  string
}

// mapError resolves err to a status, envelope message and error text.
// Unknown errors are 500 and hide their text unless exposeErrors is set.
func mapError(err error, exposeErrors bool) apiError {
	var denied *service.AccessDeniedError
	if errors.As(err, &denied) {
		message := "Account banned"
		if errors.Is(denied.Kind, service.ErrDeviceMismatch) {
			message = "Device mismatch"
		}
		return apiError{status: http.StatusForbidden, message: message, detail: denied.Reason}
	}

	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}

		detail := m.public
		if detail == "" {
			detail = err.Error()
		}
		return apiError{status: m.status, message: statusMessages[m.status], detail: detail}
	}

	detail := internalErrorText
	if exposeErrors {
		detail = err.Error()
	}
	return apiError{
		status:  http.StatusInternalServerError,
		message: statusMessages[http.StatusInternalServerError],
		detail:  detail,
	}
}
