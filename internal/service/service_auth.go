// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification with the device-binding check,
// password resets and the JWT session lifecycle.
type authService struct {
	userRepository       store.UserRepository
	credentialRepository store.CredentialRepository
	sessionStore         store.SessionStore
	resetLinks           *resetLinks

	deviceService DeviceService
	notifier      Notifier

	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given storages
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(storages *store.Storages, deviceService DeviceService, notifier Notifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       storages.UserRepository,
		credentialRepository: storages.CredentialRepository,
		sessionStore:         storages.SessionStore,
		resetLinks:           newResetLinks(storages.ResetTokenStore, cfg),
		deviceService:        deviceService,
		notifier:             notifier,
		bcryptCost:           cfg.BcryptCost,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		now:                  time.Now,
		logger:               logger,
	}
}

// Signup registers a student account with a password and opens a session.
// The account is email-verified and unbound.
//
// Returns [ErrEmailAlreadyRegistered] if the email is taken.
func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(request.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:         normalizeEmail(request.Email),
		Name:          strings.TrimSpace(request.Name),
		Role:          models.RoleUser,
		EmailVerified: true,
	}, &hash)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, models.Token{}, ErrEmailAlreadyRegistered
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// Login authenticates an account and, for students, runs the device-binding
// check before a session is issued.
//
// Order of checks:
//  1. unknown email → [ErrInvalidCredentials]
//  2. banned account → [AccessDeniedError] with the ban reason
//  3. wrong or unset password → [ErrInvalidCredentials]
//  4. student without deviceId → [ErrDeviceIDRequired]
//  5. device check denied → [AccessDeniedError] of kind [ErrDeviceMismatch]
//     or [ErrAccountBanned]
//
// The password is checked before the device so that an unauthenticated
// caller cannot get an account banned.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(request.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.IsBanned {
		return models.User{}, models.Token{}, &AccessDeniedError{Kind: ErrAccountBanned, Reason: BanReason(user)}
	}

	if err = a.verifyPassword(ctx, user.ID, request.Password); err != nil {
		return models.User{}, models.Token{}, err
	}

	if user.Role.RequiresDeviceBinding() {
		if request.DeviceID == "" {
			return models.User{}, models.Token{}, ErrDeviceIDRequired
		}

		result, err := a.deviceService.CheckDeviceBinding(ctx, user.ID, request.DeviceID)
		if err != nil {
			return models.User{}, models.Token{}, err
		}

		if !result.Allowed {
			kind := ErrAccountBanned
			if result.Reason == ReasonDeviceMismatch {
				kind = ErrDeviceMismatch
			}
			return models.User{}, models.Token{}, &AccessDeniedError{Kind: kind, Reason: result.Reason}
		}

		if result.Bound {
			user.DeviceID = &request.DeviceID
		}
	}

	token, err := a.createToken(user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")

	return user, token, nil
}

func (a *authService) verifyPassword(ctx context.Context, userID, password string) error {
	hash, err := a.credentialRepository.GetPasswordHash(ctx, userID)
	if errors.Is(err, store.ErrCredentialNotSet) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("password lookup failed: %w", err)
	}

	ok, err := utils.CheckPassword(hash, password)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.verifyPassword").Msg("stored hash is malformed")
		return ErrInvalidCredentials
	}
	if !ok {
		return ErrInvalidCredentials
	}

	return nil
}

// ForgotPassword emails a one-time reset link when the account exists.
// It reports success either way so the response does not reveal whether the
// email is registered.
func (a *authService) ForgotPassword(ctx context.Context, request models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(request.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Msg("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	link, err := a.resetLinks.Issue(ctx, user.ID)
	if err != nil {
		return err
	}

	if err = a.notifier.Notify(ctx, models.Email{
		To:       user.Email,
		Template: models.EmailPasswordReset,
		Data:     map[string]string{"Name": user.Name, "Link": link},
	}); err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("reset email was not queued")
	}

	return nil
}

// ResetPassword redeems a reset token, stores the new password and revokes
// every session issued before the reset.
func (a *authService) ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	userID, err := a.resetLinks.Redeem(ctx, request.Token)
	if errors.Is(err, store.ErrResetTokenNotFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return fmt.Errorf("reset token lookup failed: %w", err)
	}

	hash, err := utils.HashPassword(request.NewPassword, a.bcryptCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.credentialRepository.SetPasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("storing password failed")
		return fmt.Errorf("storing password failed: %w", err)
	}

	// iat has second precision; a token issued later in this second stays valid
	revokedAt := a.now().Truncate(time.Second)
	if err = a.sessionStore.RevokeAllSessions(ctx, userID, revokedAt, a.tokenDuration); err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("revoking sessions failed")
		return fmt.Errorf("revoking sessions failed: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("password reset")

	return nil
}

// Me returns the current user of the session.
func (a *authService) Me(ctx context.Context, identity models.Identity) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, identity.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// Logout revokes the session until the token would have expired anyway.
func (a *authService) Logout(ctx context.Context, identity models.Identity) error {
	ttl := identity.ExpiresAt.Sub(a.now())
	if err := a.sessionStore.RevokeSession(ctx, identity.SessionID, ttl); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Msg("revoking session failed")
		return fmt.Errorf("revoking session failed: %w", err)
	}

	return nil
}

// ParseToken validates and parses a raw JWT string.
//
// Signature, issuer and expiry failures are normalised to
// [ErrTokenIsExpiredOrInvalid]. Tokens revoked by logout or issued before a
// password reset yield [ErrSessionRevoked].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.sessionStore.IsSessionRevoked(ctx, token.SessionID)
	if err != nil {
		return models.Token{}, fmt.Errorf("session lookup failed: %w", err)
	}
	if revoked {
		return models.Token{}, ErrSessionRevoked
	}

	revokedAt, err := a.sessionStore.SessionsRevokedAt(ctx, token.UserID)
	if err != nil {
		return models.Token{}, fmt.Errorf("session lookup failed: %w", err)
	}
	if !revokedAt.IsZero() && token.IssuedAt.Before(revokedAt) {
		return models.Token{}, ErrSessionRevoked
	}

	return token, nil
}

// createToken issues a signed JWT for the given user.
func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
