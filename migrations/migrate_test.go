// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: every statement goose issues fails
	_ = mock

	err = Migrate(db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)

	assert.ErrorIs(t, err, ErrNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

// TestEmbeddedMigrations verifies every schema file is embedded and carries
// goose up and down sections.
func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 4)

	for _, name := range files {
		body, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}

// TestEmbeddedMigrations_PendingIndex verifies the partial unique index that
// allows a single PENDING recovery request per user.
func TestEmbeddedMigrations_PendingIndex(t *testing.T) {
	body, err := fs.ReadFile(embedMigrations, "00003_create_recovery_requests.sql")
	require.NoError(t, err)

	assert.Contains(t, string(body), "CREATE UNIQUE INDEX IF NOT EXISTS recovery_requests_one_pending_idx")
	assert.Contains(t, string(body), "WHERE status = 'PENDING'")
}
