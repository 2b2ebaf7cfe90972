// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/internal/validators"
	"github.com/MKhiriev/go-courses-api/models"
)

// adminService implements the admin panel operations: account provisioning,
// ban overrides and resolution of recovery requests.
//
// Role checks happen before these methods are reached; see [Authorize].
type adminService struct {
	userRepository     store.UserRepository
	recoveryRepository store.RecoveryRepository

	// resetLinks issues the "set your password" link of provisioned accounts.
	resetLinks *resetLinks
	notifier   Notifier
	validator  validators.Validator

	bcryptCost int
	logger     *logger.Logger
}

func NewAdminService(storages *store.Storages, notifier Notifier, validator validators.Validator, cfg config.App, logger *logger.Logger) AdminService {
	return &adminService{
		userRepository:     storages.UserRepository,
		recoveryRepository: storages.RecoveryRepository,
		resetLinks:         newResetLinks(storages.ResetTokenStore, cfg),
		notifier:           notifier,
		validator:          validator,
		bcryptCost:         cfg.BcryptCost,
		logger:             logger,
	}
}

// CreateUser provisions a passwordless, email-verified TEACHER or USER
// account and emails its owner a link to set a password. A password in the
// request is validated but never stored.
func (s *adminService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("create user validation: %w", err)
	}
	if request.Role != models.RoleTeacher && request.Role != models.RoleUser {
		return models.User{}, ErrInvalidRole
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		Email:         normalizeEmail(request.Email),
		Name:          strings.TrimSpace(request.Name),
		Role:          request.Role,
		EmailVerified: true,
	}, nil)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*adminService.CreateUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user provisioned")

	link, err := s.resetLinks.Issue(ctx, user.ID)
	if err != nil {
		// the account exists; the owner can still use forgot-password
		log.Err(err).Str("func", "*adminService.CreateUser").Msg("set-password link was not issued")
		return user, nil
	}

	s.notify(ctx, models.Email{
		To:       user.Email,
		Template: models.EmailAccountProvisioned,
		Data:     map[string]string{"Name": user.Name, "Link": link, "Role": string(user.Role)},
	})

	return user, nil
}

func (s *adminService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx, filter)
}

func (s *adminService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, userID)
}

// BanUser bans the user with the given reason regardless of its device
// state.
func (s *adminService) BanUser(ctx context.Context, userID string, request models.BanUserRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("ban validation: %w", err)
	}

	user, err := s.userRepository.SetBan(ctx, userID, strings.TrimSpace(request.Reason))
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("user banned by admin")

	return user, nil
}

// UnbanUser clears the ban fields of a banned user. The bound device is
// kept, unlike an approved recovery request which rebinds it.
func (s *adminService) UnbanUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.ClearBan(ctx, userID)
	if errors.Is(err, store.ErrUserNotBanned) {
		return models.User{}, ErrAccountNotBanned
	}
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("user unbanned by admin")

	return user, nil
}

func (s *adminService) ListPendingRecoveryRequests(ctx context.Context) ([]models.RecoveryRequest, error) {
	return s.recoveryRepository.ListRequests(ctx, models.RecoveryFilter{Status: models.RecoveryStatusPending})
}

func (s *adminService) ApproveRecoveryRequest(ctx context.Context, requestID string, request models.RecoveryActionRequest) (models.RecoveryRequest, error) {
	return s.resolve(ctx, requestID, models.RecoveryStatusApproved, request)
}

func (s *adminService) RejectRecoveryRequest(ctx context.Context, requestID string, request models.RecoveryActionRequest) (models.RecoveryRequest, error) {
	return s.resolve(ctx, requestID, models.RecoveryStatusRejected, request)
}

func (s *adminService) resolve(ctx context.Context, requestID string, status models.RecoveryStatus, request models.RecoveryActionRequest) (models.RecoveryRequest, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.RecoveryRequest{}, fmt.Errorf("recovery decision validation: %w", err)
	}

	resolved, err := s.recoveryRepository.ResolveRequest(ctx, models.RecoveryDecision{
		RequestID: requestID,
		Status:    status,
		AdminNote: request.AdminNote,
	})
	if err != nil {
		return models.RecoveryRequest{}, err
	}

	logger.FromContext(ctx).Info().
		Str("request_id", requestID).
		Str("user_id", resolved.UserID).
		Str("status", string(status)).
		Msg("recovery request resolved")

	owner, err := s.userRepository.FindUserByID(ctx, resolved.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*adminService.resolve").Msg("owner lookup for notification failed")
		return resolved, nil
	}

	template := models.EmailRecoveryRejected
	if status == models.RecoveryStatusApproved {
		template = models.EmailRecoveryApproved
	}

	data := map[string]string{"Name": owner.Name}
	if request.AdminNote != nil {
		data["AdminNote"] = *request.AdminNote
	}
	s.notify(ctx, models.Email{To: owner.Email, Template: template, Data: data})

	return resolved, nil
}

// EnsureAdmin creates the bootstrap ADMIN account with a password unless the
// email is already registered.
func (s *adminService) EnsureAdmin(ctx context.Context, email, name, password string) error {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return ErrInvalidDataProvided
	}

	_, err := s.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		log.Debug().Str("email", email).Msg("bootstrap admin already exists")
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("bootstrap admin lookup failed: %w", err)
	}

	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if name == "" {
		name = "Administrator"
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		Email:         email,
		Name:          name,
		Role:          models.RoleAdmin,
		EmailVerified: true,
	}, &hash)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		// created concurrently by another instance
		return nil
	}
	if err != nil {
		return fmt.Errorf("bootstrap admin creation failed: %w", err)
	}

	log.Info().Str("user_id", user.ID).Str("email", email).Msg("bootstrap admin created")

	return nil
}

func (s *adminService) notify(ctx context.Context, email models.Email) {
	if err := s.notifier.Notify(ctx, email); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*adminService.notify").
			Str("template", string(email.Template)).
			Msg("notification was not queued")
	}
}
