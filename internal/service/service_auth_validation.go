// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/validators"
	"github.com/MKhiriev/go-courses-api/models"
)

// AuthValidationService validates auth payloads before passing them to the
// wrapped AuthService. Session operations are passed through unchanged.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Signup(ctx context.Context, request models.SignupRequest) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("signup validation: %w", err)
	}

	return v.inner.Signup(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("login validation: %w", err)
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) ForgotPassword(ctx context.Context, request models.ForgotPasswordRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("forgot password validation: %w", err)
	}

	return v.inner.ForgotPassword(ctx, request)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("reset password validation: %w", err)
	}

	return v.inner.ResetPassword(ctx, request)
}

func (v *AuthValidationService) Me(ctx context.Context, identity models.Identity) (models.User, error) {
	return v.inner.Me(ctx, identity)
}

func (v *AuthValidationService) Logout(ctx context.Context, identity models.Identity) error {
	return v.inner.Logout(ctx, identity)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
