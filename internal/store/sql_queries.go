// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-courses-api/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns = `id, email, name, role, email_verified, device_id, is_banned, ban_reason, created_at, updated_at`

	createUser = `INSERT INTO users (id, email, name, role, email_verified)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1;`

	lockUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		FOR UPDATE;`

	bindUserDevice = `UPDATE users
		SET device_id = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns + `;`

	banUser = `UPDATE users
		SET is_banned = TRUE, ban_reason = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns + `;`

	unbanUser = `UPDATE users
		SET is_banned = FALSE, ban_reason = NULL, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns + `;`

	restoreUserDevice = `UPDATE users
		SET device_id = $2, is_banned = FALSE, ban_reason = NULL, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns + `;`
)

const (
	createAccount = `INSERT INTO accounts (user_id, provider_id, password_hash)
		VALUES ($1, 'credential', $2);`

	getPasswordHash = `SELECT password_hash
		FROM accounts
		WHERE user_id = $1;`

	setPasswordHash = `INSERT INTO accounts (user_id, provider_id, password_hash)
		VALUES ($1, 'credential', $2)
		ON CONFLICT (user_id) DO UPDATE
		SET password_hash = EXCLUDED.password_hash, updated_at = NOW();`
)

const (
	recoveryColumns = `id, user_id, message, new_device_id, status, admin_note, created_at, updated_at`

	hasPendingRecoveryRequest = `SELECT EXISTS (
			SELECT 1 FROM recovery_requests
			WHERE user_id = $1 AND status = 'PENDING'
		);`

	createRecoveryRequest = `INSERT INTO recovery_requests (id, user_id, message, new_device_id, status)
		VALUES ($1, $2, $3, $4, 'PENDING')
		RETURNING ` + recoveryColumns + `;`

	findRecoveryRequestByID = `SELECT ` + recoveryColumns + `
		FROM recovery_requests
		WHERE id = $1;`

	lockRecoveryRequestByID = `SELECT ` + recoveryColumns + `
		FROM recovery_requests
		WHERE id = $1
		FOR UPDATE;`

	findLatestRecoveryRequest = `SELECT ` + recoveryColumns + `
		FROM recovery_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1;`

	resolveRecoveryRequest = `UPDATE recovery_requests
		SET status = $2, admin_note = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + recoveryColumns + `;`
)

const (
	productColumns = `id, name, description, price, image, category, stock`

	findProductByID = `SELECT ` + productColumns + `
		FROM products
		WHERE id = $1;`
)

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// buildListUsersQuery builds the admin user listing, newest first.
func buildListUsersQuery(filter models.UserFilter) (string, []any, error) {
	q := psql().
		Select("id", "email", "name", "role", "email_verified", "device_id",
			"is_banned", "ban_reason", "created_at", "updated_at").
		From("users")

	if filter.Role != "" {
		q = q.Where(sq.Eq{"role": string(filter.Role)})
	}
	if filter.Banned != nil {
		q = q.Where(sq.Eq{"is_banned": *filter.Banned})
	}

	return q.OrderBy("created_at DESC").ToSql()
}

// buildListRecoveryRequestsQuery builds the recovery request listing joined
// with the owner summary, newest first.
func buildListRecoveryRequestsQuery(filter models.RecoveryFilter) (string, []any, error) {
	q := psql().
		Select("r.id", "r.user_id", "r.message", "r.new_device_id", "r.status",
			"r.admin_note", "r.created_at", "r.updated_at",
			"u.email", "u.name", "u.device_id").
		From("recovery_requests r").
		Join("users u ON u.id = r.user_id")

	if filter.Status != "" {
		q = q.Where(sq.Eq{"r.status": string(filter.Status)})
	}
	if filter.UserID != "" {
		q = q.Where(sq.Eq{"r.user_id": filter.UserID})
	}

	return q.OrderBy("r.created_at DESC").ToSql()
}

func buildListProductsQuery(filter models.ProductFilter) (string, []any, error) {
	q := psql().
		Select("id", "name", "description", "price", "image", "category", "stock").
		From("products")

	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}

	return q.OrderBy("id").ToSql()
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user models.User
		role string
	)
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&role,
		&user.EmailVerified,
		&user.DeviceID,
		&user.IsBanned,
		&user.BanReason,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	user.Role = models.Role(role)

	return user, err
}

func scanRecoveryRequest(row rowScanner) (models.RecoveryRequest, error) {
	var (
		request models.RecoveryRequest
		status  string
	)
	err := row.Scan(
		&request.ID,
		&request.UserID,
		&request.Message,
		&request.NewDeviceID,
		&status,
		&request.AdminNote,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	request.Status = models.RecoveryStatus(status)

	return request, err
}

func scanRecoveryRequestWithUser(row rowScanner) (models.RecoveryRequest, error) {
	var (
		request models.RecoveryRequest
		user    models.UserSummary
		status  string
	)
	err := row.Scan(
		&request.ID,
		&request.UserID,
		&request.Message,
		&request.NewDeviceID,
		&status,
		&request.AdminNote,
		&request.CreatedAt,
		&request.UpdatedAt,
		&user.Email,
		&user.Name,
		&user.DeviceID,
	)
	request.Status = models.RecoveryStatus(status)
	user.ID = request.UserID
	request.User = &user

	return request, err
}

func scanProduct(row rowScanner) (models.Product, error) {
	var product models.Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Image,
		&product.Category,
		&product.Stock,
	)

	return product, err
}
