// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
	"github.com/go-resty/resty/v2"
)

// Config locates the API server.
type Config struct {
	// Address is the server base URL. A missing scheme means http.
	Address string
	// Timeout bounds a single request. Zero means no limit.
	Timeout time.Duration
}

type httpAdminAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdminAPI constructs the resty implementation of [AdminAPI].
// Returns an error if cfg.Address is empty or is not a valid URL.
func NewHTTPAdminAPI(cfg Config, logger *logger.Logger) (AdminAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid admin api address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.Timeout)
	client.SetBaseURL(baseURL)

	return &httpAdminAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdminAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAdminAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login posts the credentials to POST /api/auth/custom/login and keeps the
// returned token for later calls.
func (h *httpAdminAPI) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	var env Envelope[models.AuthResponse]

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&env).
		Post("/api/auth/custom/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if env.Data.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%w: login returned no token", ErrUnexpectedResponse)
	}

	h.SetToken(env.Data.Token)
	h.logger.Debug().Str("user_id", env.Data.User.ID).Msg("logged in")

	return env.Data, nil
}

func (h *httpAdminAPI) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	var env Envelope[models.UsersPayload]

	req := h.authedRequest(ctx).SetResult(&env)
	if filter.Role != "" {
		req.SetQueryParam("role", string(filter.Role))
	}
	if filter.Banned != nil {
		req.SetQueryParam("banned", strconv.FormatBool(*filter.Banned))
	}

	resp, err := req.Get("/api/admin/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return env.Data.Users, nil
}

func (h *httpAdminAPI) GetUser(ctx context.Context, userID string) (models.User, error) {
	var env Envelope[models.UserPayload]

	resp, err := h.authedRequest(ctx).
		SetResult(&env).
		SetPathParam("id", userID).
		Get("/api/admin/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return env.Data.User, nil
}

func (h *httpAdminAPI) BanUser(ctx context.Context, userID, reason string) (models.User, error) {
	var env Envelope[models.UserPayload]

	resp, err := h.authedRequest(ctx).
		SetResult(&env).
		SetPathParam("id", userID).
		SetBody(models.BanUserRequest{Reason: reason}).
		Patch("/api/admin/users/{id}/ban")
	if err != nil {
		return models.User{}, fmt.Errorf("ban user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return env.Data.User, nil
}

func (h *httpAdminAPI) UnbanUser(ctx context.Context, userID string) (models.User, error) {
	var env Envelope[models.UserPayload]

	resp, err := h.authedRequest(ctx).
		SetResult(&env).
		SetPathParam("id", userID).
		Patch("/api/admin/users/{id}/unban")
	if err != nil {
		return models.User{}, fmt.Errorf("unban user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return env.Data.User, nil
}

func (h *httpAdminAPI) ListRecoveryRequests(ctx context.Context) ([]models.RecoveryRequest, error) {
	var env Envelope[models.RecoveryRequestsPayload]

	resp, err := h.authedRequest(ctx).
		SetResult(&env).
		Get("/api/admin/recovery-requests")
	if err != nil {
		return nil, fmt.Errorf("list recovery requests request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return env.Data.Requests, nil
}

func (h *httpAdminAPI) ApproveRecoveryRequest(ctx context.Context, requestID string, note *string) error {
	return h.resolveRecoveryRequest(ctx, requestID, "approve", note)
}

func (h *httpAdminAPI) RejectRecoveryRequest(ctx context.Context, requestID string, note *string) error {
	return h.resolveRecoveryRequest(ctx, requestID, "reject", note)
}

func (h *httpAdminAPI) resolveRecoveryRequest(ctx context.Context, requestID, action string, note *string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", requestID).
		SetBody(models.RecoveryActionRequest{AdminNote: note}).
		Patch("/api/admin/recovery-requests/{id}/" + action)
	if err != nil {
		return fmt.Errorf("%s recovery request: %w", action, err)
	}

	return mapHTTPError(resp)
}

func (h *httpAdminAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
