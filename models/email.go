// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EmailTemplate names a notification template known to the mail package.
type EmailTemplate string

const (
	EmailPasswordReset      EmailTemplate = "password_reset"
	EmailAccountProvisioned EmailTemplate = "account_provisioned"
	EmailRecoveryApproved   EmailTemplate = "recovery_approved"
	EmailRecoveryRejected   EmailTemplate = "recovery_rejected"
)

// Email is a queued notification. Data is rendered into the template.
type Email struct {
	To       string
	Template EmailTemplate
	Data     map[string]string
}
