// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the given id or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotBanned is returned when an operation requires a banned account
	// (recovery request, unban) but the account is not banned.
	ErrUserNotBanned = errors.New("user is not banned")

	// ErrCredentialNotSet is returned when the account has no password, either
	// because it was provisioned by an admin or has no credential row at all.
	ErrCredentialNotSet = errors.New("credential is not set")

	// ErrRecoveryRequestNotFound is returned when no recovery request matches.
	ErrRecoveryRequestNotFound = errors.New("recovery request not found")

	// ErrPendingRecoveryRequestExists is returned when the user already has a
	// PENDING recovery request.
	ErrPendingRecoveryRequestExists = errors.New("a pending recovery request already exists")

	// ErrRecoveryRequestResolved is returned when approving or rejecting a
	// request that is no longer PENDING.
	ErrRecoveryRequestResolved = errors.New("recovery request already resolved")

	// ErrInvalidRecoveryStatus is returned when a decision carries a status
	// other than APPROVED or REJECTED.
	ErrInvalidRecoveryStatus = errors.New("invalid recovery decision status")

	// ErrProductNotFound is returned when no product matches the given id.
	ErrProductNotFound = errors.New("product not found")

	// ErrResetTokenNotFound is returned when a password reset token is
	// unknown, expired or already used.
	ErrResetTokenNotFound = errors.New("reset token not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
