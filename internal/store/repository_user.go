// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It owns the "users" table and the credential row in "accounts" created
// together with the user.
//
// All methods obtain a context-scoped logger via [logger.FromContext] so that
// database failures carry the request trace id.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by db. ids issues
// the primary keys of new users.
func NewUserRepository(db *DB, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreateUser inserts the user row and its credential account in a single
// transaction and returns the stored user.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User, passwordHash *string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == "" {
		user.ID = r.ids.Generate()
	}

	var created models.User
	err := r.db.inTx(ctx, "*userRepository.CreateUser", func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createUser, user.ID, user.Email, user.Name, string(user.Role), user.EmailVerified)

		var err error
		if created, err = scanUser(row); err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, createAccount, created.ID, passwordHash); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// FindUserByID returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByID, userID))
	if err != nil {
		return models.User{}, r.userError(ctx, "*userRepository.FindUserByID", err)
	}

	return user, nil
}

// FindUserByEmail returns the user registered with email or [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByEmail, email))
	if err != nil {
		return models.User{}, r.userError(ctx, "*userRepository.FindUserByEmail", err)
	}

	return user, nil
}

// ListUsers returns the users matching filter, newest first.
func (r *userRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// ApplyDeviceCheck locks the user row with SELECT ... FOR UPDATE, lets decide
// evaluate the attempt and persists the resulting bind or ban before the
// lock is released. Concurrent checks for the same user are serialised, so
// the first device presented to an unbound account is the one that gets
// bound.
func (r *userRepository) ApplyDeviceCheck(ctx context.Context, userID string, decide DeviceDecider) (models.User, models.DeviceDecision, error) {
	var (
		user     models.User
		decision models.DeviceDecision
	)

	err := r.db.inTx(ctx, "*userRepository.ApplyDeviceCheck", func(tx *sql.Tx) error {
		locked, err := scanUser(tx.QueryRowContext(ctx, lockUserByID, userID))
		if err != nil {
			return err
		}

		decision = decide(locked)

		switch decision.Action {
		case models.DeviceActionBind:
			user, err = scanUser(tx.QueryRowContext(ctx, bindUserDevice, userID, decision.DeviceID))
		case models.DeviceActionBan:
			user, err = scanUser(tx.QueryRowContext(ctx, banUser, userID, decision.BanReason))
		default:
			user = locked
		}

		return err
	})
	if err != nil {
		return models.User{}, models.DeviceDecision{}, r.userError(ctx, "*userRepository.ApplyDeviceCheck", err)
	}

	return user, decision, nil
}

// SetBan bans the user and stores reason.
func (r *userRepository) SetBan(ctx context.Context, userID, reason string) (models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, banUser, userID, reason))
	if err != nil {
		return models.User{}, r.userError(ctx, "*userRepository.SetBan", err)
	}

	return user, nil
}

// ClearBan lifts the ban of a banned user. The device binding is kept.
// Returns [ErrUserNotBanned] if the user is not banned.
func (r *userRepository) ClearBan(ctx context.Context, userID string) (models.User, error) {
	var user models.User

	err := r.db.inTx(ctx, "*userRepository.ClearBan", func(tx *sql.Tx) error {
		locked, err := scanUser(tx.QueryRowContext(ctx, lockUserByID, userID))
		if err != nil {
			return err
		}

		if !locked.IsBanned {
			return ErrUserNotBanned
		}

		user, err = scanUser(tx.QueryRowContext(ctx, unbanUser, userID))
		return err
	})
	if err != nil {
		return models.User{}, r.userError(ctx, "*userRepository.ClearBan", err)
	}

	return user, nil
}

// userError maps a failed user query onto the package sentinels.
func (r *userRepository) userError(ctx context.Context, funcName string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrUserNotFound
	case errors.Is(err, ErrUserNotBanned):
		return err
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("unexpected DB error")

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
