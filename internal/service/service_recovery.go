// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/validators"
	"github.com/MKhiriev/go-courses-api/models"
)

// recoveryService lets a banned student ask for their account to be rebound
// to a new device, and check on the answer.
type recoveryService struct {
	userRepository     store.UserRepository
	recoveryRepository store.RecoveryRepository
	validator          validators.Validator
	logger             *logger.Logger
}

func NewRecoveryService(storages *store.Storages, validator validators.Validator, logger *logger.Logger) RecoveryService {
	return &recoveryService{
		userRepository:     storages.UserRepository,
		recoveryRepository: storages.RecoveryRepository,
		validator:          validator,
		logger:             logger,
	}
}

// SubmitRequest creates a PENDING recovery request for the banned account
// registered with request.Email.
//
// Errors: [store.ErrUserNotFound], [ErrAccountNotBanned] and
// [store.ErrPendingRecoveryRequestExists].
func (s *recoveryService) SubmitRequest(ctx context.Context, request models.RecoverySubmitRequest) (models.RecoveryRequest, error) {
	log := logger.FromContext(ctx)

	// length rules apply to the text that is stored
	request.Message = strings.TrimSpace(request.Message)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.RecoveryRequest{}, fmt.Errorf("recovery request validation: %w", err)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return models.RecoveryRequest{}, err
	}

	// the repository re-checks under a row lock
	if !user.IsBanned {
		return models.RecoveryRequest{}, ErrAccountNotBanned
	}

	created, err := s.recoveryRepository.CreatePendingRequest(ctx, models.RecoveryRequest{
		UserID:      user.ID,
		Message:     request.Message,
		NewDeviceID: request.DeviceID,
	})
	if errors.Is(err, store.ErrUserNotBanned) {
		return models.RecoveryRequest{}, ErrAccountNotBanned
	}
	if err != nil {
		log.Err(err).Str("func", "*recoveryService.SubmitRequest").Str("user_id", user.ID).Msg("recovery request was not created")
		return models.RecoveryRequest{}, fmt.Errorf("recovery request was not created: %w", err)
	}

	log.Info().Str("user_id", user.ID).Str("request_id", created.ID).Msg("recovery request submitted")

	return created, nil
}

// GetStatus returns the latest recovery request of the account registered
// with email, [store.ErrUserNotFound] for an unknown email or
// [store.ErrRecoveryRequestNotFound] if the user never asked for recovery.
func (s *recoveryService) GetStatus(ctx context.Context, email string) (models.RecoveryStatusView, error) {
	email = normalizeEmail(email)
	if email == "" {
		return models.RecoveryStatusView{}, fmt.Errorf("%w: email is required", ErrInvalidDataProvided)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.RecoveryStatusView{}, err
	}

	request, err := s.recoveryRepository.FindLatestRequest(ctx, user.ID)
	if err != nil {
		return models.RecoveryStatusView{}, err
	}

	return request.StatusView(), nil
}
