// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-courses-api/models"
)

// Operation names an action guarded by the role policy.
type Operation string

const (
	OpViewProfile Operation = "profile:view"
	OpLogout      Operation = "session:logout"

	OpListUsers           Operation = "admin:users:list"
	OpGetUser             Operation = "admin:users:get"
	OpCreateUser          Operation = "admin:users:create"
	OpBanUser             Operation = "admin:users:ban"
	OpUnbanUser           Operation = "admin:users:unban"
	OpListRecoveryQueue   Operation = "admin:recovery:list"
	OpResolveRecoveryItem Operation = "admin:recovery:resolve"
)

// roleRank orders roles so that a higher role may perform everything a lower
// one may.
var roleRank = map[models.Role]int{
	models.RoleUser:    1,
	models.RoleTeacher: 2,
	models.RoleAdmin:   3,
}

var requiredRoles = map[Operation]models.Role{
	OpViewProfile: models.RoleUser,
	OpLogout:      models.RoleUser,

	OpListUsers:           models.RoleAdmin,
	OpGetUser:             models.RoleAdmin,
	OpCreateUser:          models.RoleAdmin,
	OpBanUser:             models.RoleAdmin,
	OpUnbanUser:           models.RoleAdmin,
	OpListRecoveryQueue:   models.RoleAdmin,
	OpResolveRecoveryItem: models.RoleAdmin,
}

// RequiredRole returns the least role allowed to perform op. Unknown
// operations require ADMIN.
func RequiredRole(op Operation) models.Role {
	if role, ok := requiredRoles[op]; ok {
		return role
	}
	return models.RoleAdmin
}

// Authorize returns [ErrForbidden] unless identity may perform op.
func Authorize(identity models.Identity, op Operation) error {
	if identity.IsZero() {
		return ErrTokenIsExpiredOrInvalid
	}

	if roleRank[identity.Role] < roleRank[RequiredRole(op)] {
		return fmt.Errorf("%w: %s requires role %s", ErrForbidden, op, RequiredRole(op))
	}

	return nil
}
