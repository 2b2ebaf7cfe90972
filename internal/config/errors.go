// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates missing PostgreSQL DSN or Redis address.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates missing signing or hashing keys, an
	// invalid token lifetime or an incomplete bootstrap admin account.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidMailConfigs indicates an SMTP host without a sender address.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero mail workers).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
