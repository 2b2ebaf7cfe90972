// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func strPtr(s string) *string { return &s }

var userCols = []string{
	"id", "email", "name", "role", "email_verified", "device_id",
	"is_banned", "ban_reason", "created_at", "updated_at",
}

type userRow struct {
	id        string
	role      string
	deviceID  any
	banned    bool
	banReason any
}

func userRows(rows ...userRow) *sqlmock.Rows {
	r := sqlmock.NewRows(userCols)
	for _, u := range rows {
		role := u.role
		if role == "" {
			role = "USER"
		}
		r.AddRow(u.id, u.id+"@example.com", "Name "+u.id, role, true, u.deviceID,
			u.banned, u.banReason, testNow, testNow)
	}
	return r
}

var recoveryCols = []string{
	"id", "user_id", "message", "new_device_id", "status", "admin_note", "created_at", "updated_at",
}

func recoveryRow(id, userID, status string, note any) *sqlmock.Rows {
	return sqlmock.NewRows(recoveryCols).
		AddRow(id, userID, "lost my laptop", "dev-new", status, note, testNow, testNow)
}
