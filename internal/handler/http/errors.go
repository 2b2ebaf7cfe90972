// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a "Bearer <token>" pair.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrEmailRequired is returned when the recovery status lookup has no
	// email query parameter.
	ErrEmailRequired = errors.New("email is required")

	// ErrInvalidPathParam is returned when a URL parameter has the wrong
	// shape, e.g. a non-numeric product id.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrInvalidQueryParam is returned when a query filter has an
	// unsupported value.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrTooManyRequests is returned by the rate limiter.
	ErrTooManyRequests = errors.New("too many requests")
)
