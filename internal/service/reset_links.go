// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/utils"
)

// resetLinks issues one-time password reset links. Only the HMAC of a token
// is stored; the raw token travels in the emailed link.
type resetLinks struct {
	store   store.ResetTokenStore
	hashKey string
	ttl     time.Duration
	baseURL string
}

func newResetLinks(store store.ResetTokenStore, cfg config.App) *resetLinks {
	return &resetLinks{
		store:   store,
		hashKey: cfg.HashKey,
		ttl:     cfg.PasswordResetTTL,
		baseURL: cfg.PasswordResetURL,
	}
}

// Issue stores a fresh token for userID and returns the link redeeming it.
func (r *resetLinks) Issue(ctx context.Context, userID string) (string, error) {
	raw, err := utils.GenerateOpaqueToken(utils.DefaultOpaqueTokenBytes)
	if err != nil {
		return "", fmt.Errorf("reset token generation failed: %w", err)
	}

	if err = r.store.SaveResetToken(ctx, r.tokenHash(raw), userID, r.ttl); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*resetLinks.Issue").Msg("saving reset token failed")
		return "", fmt.Errorf("saving reset token failed: %w", err)
	}

	return r.baseURL + "?token=" + url.QueryEscape(raw), nil
}

// Redeem consumes the token and returns its owner.
func (r *resetLinks) Redeem(ctx context.Context, rawToken string) (string, error) {
	return r.store.ConsumeResetToken(ctx, r.tokenHash(rawToken))
}

func (r *resetLinks) tokenHash(raw string) string {
	return utils.HashString(raw, r.hashKey)
}
