// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/models"
)

type deviceService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewDeviceService(userRepository store.UserRepository, logger *logger.Logger) DeviceService {
	return &deviceService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// CheckDeviceBinding evaluates the login with [EvaluateDevice] on the locked
// user row. Bound in the result reports that this call performed the first
// binding of the account.
func (s *deviceService) CheckDeviceBinding(ctx context.Context, userID, deviceID string) (models.DeviceCheckResult, error) {
	log := logger.FromContext(ctx)

	if deviceID == "" {
		return models.DeviceCheckResult{}, ErrDeviceIDRequired
	}

	user, decision, err := s.userRepository.ApplyDeviceCheck(ctx, userID, func(user models.User) models.DeviceDecision {
		return EvaluateDevice(user, deviceID)
	})
	if err != nil {
		log.Err(err).Str("func", "*deviceService.CheckDeviceBinding").Str("user_id", userID).Msg("device check failed")
		return models.DeviceCheckResult{}, fmt.Errorf("device check failed: %w", err)
	}

	switch decision.Action {
	case models.DeviceActionBind:
		log.Info().Str("user_id", user.ID).Str("device_id", deviceID).Msg("device bound")
	case models.DeviceActionBan:
		log.Warn().Str("user_id", user.ID).Str("device_id", deviceID).Msg("device mismatch, account banned")
	}

	return models.DeviceCheckResult{
		Allowed: decision.Allowed,
		Reason:  decision.Reason,
		Bound:   decision.Action == models.DeviceActionBind,
	}, nil
}
