// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators validates request payloads before they reach the
// services.
//
// Payload types declare their rules in `validate` struct tags; the
// [RequestValidator] checks them with go-playground/validator and reports
// every failing field in a single [ValidationError].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
