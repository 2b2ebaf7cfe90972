// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeviceState is the device-binding state of a student account.
type DeviceState string

const (
	DeviceStateUnbound DeviceState = "UNBOUND"
	DeviceStateBound   DeviceState = "BOUND"
	DeviceStateBanned  DeviceState = "BANNED"
)

// DeviceAction is the mutation a device check applies to the user row.
type DeviceAction int

const (
	// DeviceActionNone leaves the user untouched.
	DeviceActionNone DeviceAction = iota
	// DeviceActionBind stores the presented device on an unbound account.
	DeviceActionBind
	// DeviceActionBan bans the account after a device mismatch.
	DeviceActionBan
)

// DeviceDecision is the outcome of evaluating a login attempt against the
// current state of the account.
type DeviceDecision struct {
	Action  DeviceAction
	Allowed bool

	// Reason is returned to the caller when Allowed is false.
	Reason string

	// DeviceID is the device to bind when Action is DeviceActionBind.
	DeviceID string

	// BanReason is persisted on the account when Action is DeviceActionBan.
	BanReason string
}

// DeviceCheckResult is what a device-binding check reports to the login flow.
type DeviceCheckResult struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`

	// Bound is true when this check performed the first binding of the account.
	Bound bool `json:"bound,omitempty"`
}
