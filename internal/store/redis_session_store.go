// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	revokedSessionPrefix = "session:revoked:"
	revokedBeforePrefix  = "session:revoked_before:"
)

// redisSessionStore keeps two kinds of revocations: a single session by its
// token id (logout) and every session of a user issued before a moment
// (password reset). Entries expire once no token they cover can still be
// valid.
type redisSessionStore struct {
	rdb *goredis.Client
}

// NewSessionStore returns a [SessionStore] backed by rdb.
func NewSessionStore(rdb *goredis.Client) SessionStore {
	return &redisSessionStore{rdb: rdb}
}

func (s *redisSessionStore) RevokeSession(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		// token is already expired
		return nil
	}

	if err := s.rdb.Set(ctx, revokedSessionPrefix+sessionID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	return nil
}

func (s *redisSessionStore) IsSessionRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedSessionPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("check session revocation: %w", err)
	}

	return n > 0, nil
}

// RevokeAllSessions records at as the moment before which every token of the
// user is invalid.
func (s *redisSessionStore) RevokeAllSessions(ctx context.Context, userID string, at time.Time, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, revokedBeforePrefix+userID, at.Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("revoke user sessions: %w", err)
	}

	return nil
}

// SessionsRevokedAt returns the moment stored by RevokeAllSessions or the
// zero time when the user's sessions were never revoked.
func (s *redisSessionStore) SessionsRevokedAt(ctx context.Context, userID string) (time.Time, error) {
	raw, err := s.rdb.Get(ctx, revokedBeforePrefix+userID).Result()
	if errors.Is(err, goredis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read user sessions revocation: %w", err)
	}

	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse user sessions revocation: %w", err)
	}

	return time.Unix(unix, 0), nil
}
