// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/jackc/pgerrcode"
)

type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// GetPasswordHash returns the bcrypt hash of the user's password.
// Passwordless accounts and users without an account row yield
// [ErrCredentialNotSet].
func (r *credentialRepository) GetPasswordHash(ctx context.Context, userID string) (string, error) {
	var hash sql.NullString

	err := r.db.QueryRowContext(ctx, getPasswordHash, userID).Scan(&hash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrCredentialNotSet
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.GetPasswordHash").Msg("unexpected DB error")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !hash.Valid || hash.String == "" {
		return "", ErrCredentialNotSet
	}

	return hash.String, nil
}

// SetPasswordHash stores hash as the user's password, creating the
// credential account when it does not exist yet.
func (r *credentialRepository) SetPasswordHash(ctx context.Context, userID, passwordHash string) error {
	if _, err := r.db.ExecContext(ctx, setPasswordHash, userID, passwordHash); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrUserNotFound
		}

		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.SetPasswordHash").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
