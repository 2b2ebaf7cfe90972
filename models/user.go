// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role gates which operations an identity may invoke.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleUser    Role = "USER"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleUser:
		return true
	}
	return false
}

// RequiresDeviceBinding reports whether logins with this role go through the
// device-binding check. Only student accounts are bound to a device.
func (r Role) RequiresDeviceBinding() bool {
	return r == RoleUser
}

// User is an account of the platform.
//
// DeviceID, IsBanned and BanReason are meaningful for RoleUser only; ADMIN and
// TEACHER accounts are never bound or banned through login.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          Role      `json:"role"`
	EmailVerified bool      `json:"emailVerified"`
	DeviceID      *string   `json:"deviceId"`
	IsBanned      bool      `json:"isBanned"`
	BanReason     *string   `json:"banReason"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// DeviceState derives the device-binding state of the account.
func (u User) DeviceState() DeviceState {
	switch {
	case u.IsBanned:
		return DeviceStateBanned
	case u.DeviceID == nil:
		return DeviceStateUnbound
	default:
		return DeviceStateBound
	}
}

// Summary returns the short form of the user embedded into recovery requests.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		DeviceID: u.DeviceID,
	}
}

// UserSummary is the subset of user fields shown next to a recovery request.
type UserSummary struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	DeviceID *string `json:"deviceId"`
}

// UserFilter narrows the admin user listing. Zero values mean "any".
type UserFilter struct {
	Role   Role
	Banned *bool
}
