// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const resetTokenPrefix = "reset:"

type redisResetTokenStore struct {
	rdb *goredis.Client
}

// NewResetTokenStore returns a [ResetTokenStore] backed by rdb. Tokens are
// stored by hash only.
func NewResetTokenStore(rdb *goredis.Client) ResetTokenStore {
	return &redisResetTokenStore{rdb: rdb}
}

func (s *redisResetTokenStore) SaveResetToken(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, resetTokenPrefix+tokenHash, userID, ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}

	return nil
}

// ConsumeResetToken returns the owner of the token and deletes it with a
// single GETDEL, so a token can be redeemed once. Unknown, expired and
// already consumed tokens yield [ErrResetTokenNotFound].
func (s *redisResetTokenStore) ConsumeResetToken(ctx context.Context, tokenHash string) (string, error) {
	userID, err := s.rdb.GetDel(ctx, resetTokenPrefix+tokenHash).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrResetTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("consume reset token: %w", err)
	}

	return userID, nil
}
