// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RecoveryStatus is the lifecycle state of a recovery request.
// APPROVED and REJECTED are terminal.
type RecoveryStatus string

const (
	RecoveryStatusPending  RecoveryStatus = "PENDING"
	RecoveryStatusApproved RecoveryStatus = "APPROVED"
	RecoveryStatusRejected RecoveryStatus = "REJECTED"
)

// IsTerminal reports whether the status can no longer change.
func (s RecoveryStatus) IsTerminal() bool {
	return s == RecoveryStatusApproved || s == RecoveryStatusRejected
}

// RecoveryRequest is a banned user's petition to rebind the account to a
// new device.
type RecoveryRequest struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Message     string         `json:"message"`
	NewDeviceID string         `json:"newDeviceId"`
	Status      RecoveryStatus `json:"status"`
	AdminNote   *string        `json:"adminNote"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`

	// User is filled in admin listings only.
	User *UserSummary `json:"user,omitempty"`
}

// TableName returns the name of the database table
// associated with the RecoveryRequest model.
func (r RecoveryRequest) TableName() string {
	return "recovery_requests"
}

// StatusView is the public projection returned by the recovery status lookup.
func (r RecoveryRequest) StatusView() RecoveryStatusView {
	return RecoveryStatusView{
		ID:        r.ID,
		Status:    r.Status,
		AdminNote: r.AdminNote,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// RecoveryStatusView is the part of a recovery request visible to the
// (unauthenticated) requester.
type RecoveryStatusView struct {
	ID        string         `json:"id"`
	Status    RecoveryStatus `json:"status"`
	AdminNote *string        `json:"adminNote"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// RecoveryDecision is an admin resolution of a pending request.
// Status must be APPROVED or REJECTED.
type RecoveryDecision struct {
	RequestID string
	Status    RecoveryStatus
	AdminNote *string
}

// RecoveryFilter narrows recovery request listings. An empty Status means any.
type RecoveryFilter struct {
	Status RecoveryStatus
	UserID string
}
