// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-courses-api/models"

const (
	// BanReasonDeviceMismatch is stored on an account banned by a mismatch.
	BanReasonDeviceMismatch = "Device mismatch detected. Please submit a recovery request."

	// ReasonDeviceMismatch is returned by the login that caused the ban.
	ReasonDeviceMismatch = "Device mismatch detected. Your account has been banned. Please submit a recovery request."

	// ReasonAccountBanned is returned for a banned account with no stored reason.
	ReasonAccountBanned = "Account is banned. Please submit a recovery request."
)

// EvaluateDevice decides the outcome of a login from deviceID against the
// current device-binding state of user:
//
//	UNBOUND          -> bind deviceID, allow
//	BOUND(deviceID)  -> allow
//	BOUND(other)     -> ban, deny
//	BANNED           -> deny with the stored reason
//
// It does not look at the role; callers decide whether the account is
// subject to binding at all.
func EvaluateDevice(user models.User, deviceID string) models.DeviceDecision {
	switch user.DeviceState() {
	case models.DeviceStateBanned:
		return models.DeviceDecision{
			Action: models.DeviceActionNone,
			Reason: BanReason(user),
		}

	case models.DeviceStateUnbound:
		return models.DeviceDecision{
			Action:   models.DeviceActionBind,
			Allowed:  true,
			DeviceID: deviceID,
		}
	}

	if *user.DeviceID == deviceID {
		return models.DeviceDecision{Action: models.DeviceActionNone, Allowed: true}
	}

	return models.DeviceDecision{
		Action:    models.DeviceActionBan,
		Reason:    ReasonDeviceMismatch,
		BanReason: BanReasonDeviceMismatch,
	}
}

// BanReason returns the reason shown to a banned user.
func BanReason(user models.User) string {
	if user.BanReason != nil && *user.BanReason != "" {
		return *user.BanReason
	}
	return ReasonAccountBanned
}
