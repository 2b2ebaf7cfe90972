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

// recoveryRepository is the PostgreSQL-backed implementation of
// [RecoveryRepository]. State changes of a request and of its owner happen
// in one transaction holding row locks on both.
type recoveryRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewRecoveryRepository constructs a [RecoveryRepository] backed by db.
func NewRecoveryRepository(db *DB, ids IDGenerator, logger *logger.Logger) RecoveryRepository {
	logger.Debug().Msg("creating recovery repository")
	return &recoveryRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreatePendingRequest stores a new PENDING request for a banned user.
//
// Error handling:
//   - unknown user → [ErrUserNotFound].
//   - user not banned → [ErrUserNotBanned].
//   - open request present (checked under the user lock and enforced by the
//     partial unique index) → [ErrPendingRecoveryRequestExists].
func (r *recoveryRepository) CreatePendingRequest(ctx context.Context, request models.RecoveryRequest) (models.RecoveryRequest, error) {
	if request.ID == "" {
		request.ID = r.ids.Generate()
	}

	var created models.RecoveryRequest
	err := r.db.inTx(ctx, "*recoveryRepository.CreatePendingRequest", func(tx *sql.Tx) error {
		user, err := scanUser(tx.QueryRowContext(ctx, lockUserByID, request.UserID))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		if !user.IsBanned {
			return ErrUserNotBanned
		}

		var pending bool
		if err = tx.QueryRowContext(ctx, hasPendingRecoveryRequest, request.UserID).Scan(&pending); err != nil {
			return err
		}
		if pending {
			return ErrPendingRecoveryRequestExists
		}

		created, err = scanRecoveryRequest(tx.QueryRowContext(ctx, createRecoveryRequest,
			request.ID, request.UserID, request.Message, request.NewDeviceID))
		return err
	})
	if err != nil {
		return models.RecoveryRequest{}, r.recoveryError(ctx, "*recoveryRepository.CreatePendingRequest", err)
	}

	return created, nil
}

// FindRequestByID returns the request or [ErrRecoveryRequestNotFound].
func (r *recoveryRepository) FindRequestByID(ctx context.Context, requestID string) (models.RecoveryRequest, error) {
	request, err := scanRecoveryRequest(r.db.QueryRowContext(ctx, findRecoveryRequestByID, requestID))
	if err != nil {
		return models.RecoveryRequest{}, r.recoveryError(ctx, "*recoveryRepository.FindRequestByID", err)
	}

	return request, nil
}

// FindLatestRequest returns the most recently created request of the user or
// [ErrRecoveryRequestNotFound] if the user never submitted one.
func (r *recoveryRepository) FindLatestRequest(ctx context.Context, userID string) (models.RecoveryRequest, error) {
	request, err := scanRecoveryRequest(r.db.QueryRowContext(ctx, findLatestRecoveryRequest, userID))
	if err != nil {
		return models.RecoveryRequest{}, r.recoveryError(ctx, "*recoveryRepository.FindLatestRequest", err)
	}

	return request, nil
}

// ListRequests returns the requests matching filter with their owner
// summaries, newest first.
func (r *recoveryRepository) ListRequests(ctx context.Context, filter models.RecoveryFilter) ([]models.RecoveryRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecoveryRequestsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*recoveryRepository.ListRequests").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recoveryRepository.ListRequests").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	requests := make([]models.RecoveryRequest, 0)
	for rows.Next() {
		request, err := scanRecoveryRequestWithUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*recoveryRepository.ListRequests").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*recoveryRepository.ListRequests").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return requests, nil
}

// ResolveRequest applies an admin decision to a PENDING request. On approval
// the owner is bound to the request's new device and unbanned in the same
// transaction. The returned request carries the owner summary as stored
// after the decision.
func (r *recoveryRepository) ResolveRequest(ctx context.Context, decision models.RecoveryDecision) (models.RecoveryRequest, error) {
	if !decision.Status.IsTerminal() {
		return models.RecoveryRequest{}, ErrInvalidRecoveryStatus
	}

	var resolved models.RecoveryRequest
	err := r.db.inTx(ctx, "*recoveryRepository.ResolveRequest", func(tx *sql.Tx) error {
		locked, err := scanRecoveryRequest(tx.QueryRowContext(ctx, lockRecoveryRequestByID, decision.RequestID))
		if err != nil {
			return err
		}

		if locked.Status != models.RecoveryStatusPending {
			return ErrRecoveryRequestResolved
		}

		resolved, err = scanRecoveryRequest(tx.QueryRowContext(ctx, resolveRecoveryRequest,
			decision.RequestID, string(decision.Status), decision.AdminNote))
		if err != nil {
			return err
		}

		var owner models.User
		if decision.Status == models.RecoveryStatusApproved {
			owner, err = scanUser(tx.QueryRowContext(ctx, restoreUserDevice, resolved.UserID, resolved.NewDeviceID))
		} else {
			owner, err = scanUser(tx.QueryRowContext(ctx, findUserByID, resolved.UserID))
		}
		if err != nil {
			return err
		}

		summary := owner.Summary()
		resolved.User = &summary

		return nil
	})
	if err != nil {
		return models.RecoveryRequest{}, r.recoveryError(ctx, "*recoveryRepository.ResolveRequest", err)
	}

	return resolved, nil
}

// recoveryError maps a failed recovery query onto the package sentinels.
func (r *recoveryRepository) recoveryError(ctx context.Context, funcName string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrRecoveryRequestNotFound
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrUserNotBanned),
		errors.Is(err, ErrPendingRecoveryRequestExists),
		errors.Is(err, ErrRecoveryRequestResolved):
		return err
	case postgresError(err) == pgerrcode.UniqueViolation:
		return ErrPendingRecoveryRequestExists
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("unexpected DB error")

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
