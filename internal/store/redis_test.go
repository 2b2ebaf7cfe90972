// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	rdb := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return s, rdb
}

// ── NewRedisClient ────────────────────────────────────────────────────────────

func TestNewRedisClient(t *testing.T) {
	s, _ := newTestRedis(t)

	rdb, err := NewRedisClient(context.Background(), config.Redis{Address: s.Addr()}, logger.Nop())
	require.NoError(t, err)
	defer rdb.Close()

	assert.NoError(t, rdb.Ping(context.Background()).Err())
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	addr := s.Addr()
	s.Close()

	_, err = NewRedisClient(context.Background(), config.Redis{Address: addr}, logger.Nop())

	assert.Error(t, err)
}

// ── SessionStore ──────────────────────────────────────────────────────────────

// TestSessionStore_RevokeSessionExpires verifies that a revoked session is
// reported until its ttl passes.
func TestSessionStore_RevokeSessionExpires(t *testing.T) {
	// Arrange
	s, rdb := newTestRedis(t)
	store := NewSessionStore(rdb)
	ctx := context.Background()

	// Act
	require.NoError(t, store.RevokeSession(ctx, "jti-1", time.Minute))

	// Assert
	revoked, err := store.IsSessionRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	other, err := store.IsSessionRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, other)

	s.FastForward(2 * time.Minute)
	revoked, err = store.IsSessionRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSessionStore_RevokeSessionExpiredTokenIsNoop(t *testing.T) {
	s, rdb := newTestRedis(t)
	store := NewSessionStore(rdb)

	require.NoError(t, store.RevokeSession(context.Background(), "jti-1", 0))
	assert.False(t, s.Exists(revokedSessionPrefix+"jti-1"))
}

func TestSessionStore_RevokeAllSessions(t *testing.T) {
	s, rdb := newTestRedis(t)
	store := NewSessionStore(rdb)
	ctx := context.Background()

	at, err := store.SessionsRevokedAt(ctx, "u-1")
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	require.NoError(t, store.RevokeAllSessions(ctx, "u-1", testNow, time.Hour))

	at, err = store.SessionsRevokedAt(ctx, "u-1")
	require.NoError(t, err)
	assert.True(t, at.Equal(testNow))
	assert.Equal(t, time.Hour, s.TTL(revokedBeforePrefix+"u-1"))
}

// ── ResetTokenStore ───────────────────────────────────────────────────────────

// TestResetTokenStore_ConsumeOnce verifies that a token can be redeemed a
// single time.
func TestResetTokenStore_ConsumeOnce(t *testing.T) {
	s, rdb := newTestRedis(t)
	store := NewResetTokenStore(rdb)
	ctx := context.Background()

	require.NoError(t, store.SaveResetToken(ctx, "hash-1", "u-1", time.Hour))

	userID, err := store.ConsumeResetToken(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.False(t, s.Exists(resetTokenPrefix+"hash-1"), "consumed token must be removed")

	_, err = store.ConsumeResetToken(ctx, "hash-1")
	assert.ErrorIs(t, err, ErrResetTokenNotFound)
}

func TestResetTokenStore_Expired(t *testing.T) {
	s, rdb := newTestRedis(t)
	store := NewResetTokenStore(rdb)
	ctx := context.Background()

	require.NoError(t, store.SaveResetToken(ctx, "hash-1", "u-1", time.Minute))
	s.FastForward(time.Hour)

	_, err := store.ConsumeResetToken(ctx, "hash-1")
	assert.ErrorIs(t, err, ErrResetTokenNotFound)
}

func TestResetTokenStore_UnknownToken(t *testing.T) {
	_, rdb := newTestRedis(t)

	_, err := NewResetTokenStore(rdb).ConsumeResetToken(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrResetTokenNotFound)
}
