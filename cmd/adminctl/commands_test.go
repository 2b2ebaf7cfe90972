// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-courses-api/internal/adapter"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fake admin API ────────────────────────────────────────────────────────────

type fakeAdminAPI struct {
	token string

	loginFn   func(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)
	usersFn   func(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	userFn    func(ctx context.Context, userID string) (models.User, error)
	banFn     func(ctx context.Context, userID, reason string) (models.User, error)
	unbanFn   func(ctx context.Context, userID string) (models.User, error)
	queueFn   func(ctx context.Context) ([]models.RecoveryRequest, error)
	approveFn func(ctx context.Context, requestID string, note *string) error
	rejectFn  func(ctx context.Context, requestID string, note *string) error
}

func (f *fakeAdminAPI) SetToken(token string) { f.token = token }
func (f *fakeAdminAPI) Token() string         { return f.token }

func (f *fakeAdminAPI) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	return f.loginFn(ctx, request)
}

func (f *fakeAdminAPI) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return f.usersFn(ctx, filter)
}

func (f *fakeAdminAPI) GetUser(ctx context.Context, userID string) (models.User, error) {
	return f.userFn(ctx, userID)
}

func (f *fakeAdminAPI) BanUser(ctx context.Context, userID, reason string) (models.User, error) {
	return f.banFn(ctx, userID, reason)
}

func (f *fakeAdminAPI) UnbanUser(ctx context.Context, userID string) (models.User, error) {
	return f.unbanFn(ctx, userID)
}

func (f *fakeAdminAPI) ListRecoveryRequests(ctx context.Context) ([]models.RecoveryRequest, error) {
	return f.queueFn(ctx)
}

func (f *fakeAdminAPI) ApproveRecoveryRequest(ctx context.Context, requestID string, note *string) error {
	return f.approveFn(ctx, requestID, note)
}

func (f *fakeAdminAPI) RejectRecoveryRequest(ctx context.Context, requestID string, note *string) error {
	return f.rejectFn(ctx, requestID, note)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func runWith(t *testing.T, api *fakeAdminAPI, args ...string) (string, cliConfig, error) {
	t.Helper()
	t.Setenv("ADMINCTL_SERVER", "")
	t.Setenv("ADMINCTL_TOKEN", "")

	var got cliConfig
	factory := func(cfg cliConfig, _ *logger.Logger) (adapter.AdminAPI, error) {
		got = cfg
		return api, nil
	}

	var out bytes.Buffer
	err := run(context.Background(), args, &out, factory, logger.Nop())
	return out.String(), got, err
}

// ── dispatch ──────────────────────────────────────────────────────────────────

func TestRun_NoCommand(t *testing.T) {
	_, _, err := runWith(t, &fakeAdminAPI{})
	assert.ErrorIs(t, err, errNoCommand)
}

func TestRun_UnknownCommand(t *testing.T) {
	_, _, err := runWith(t, &fakeAdminAPI{}, "explode")
	assert.ErrorIs(t, err, errUnknownCommand)
}

// TestRun_TokenRequired verifies that admin commands fail before any request
// when no token is configured.
func TestRun_TokenRequired(t *testing.T) {
	_, _, err := runWith(t, &fakeAdminAPI{}, "users")
	assert.ErrorIs(t, err, errMissingToken)
}

func TestRun_GlobalFlags(t *testing.T) {
	api := &fakeAdminAPI{
		queueFn: func(context.Context) ([]models.RecoveryRequest, error) { return nil, nil },
	}

	_, cfg, err := runWith(t, api, "-server", "api.example.com", "-token", "tok", "requests")

	require.NoError(t, err)
	assert.Equal(t, "api.example.com", cfg.Server)
	assert.Equal(t, "tok", api.Token())
}

func TestRun_TokenFromEnv(t *testing.T) {
	api := &fakeAdminAPI{
		queueFn: func(context.Context) ([]models.RecoveryRequest, error) { return nil, nil },
	}
	t.Setenv("ADMINCTL_TOKEN", "env-tok")

	var out bytes.Buffer
	err := run(context.Background(), []string{"requests"}, &out, func(cliConfig, *logger.Logger) (adapter.AdminAPI, error) {
		return api, nil
	}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "env-tok", api.Token())
}

// ── commands ──────────────────────────────────────────────────────────────────

func TestLogin_PrintsToken(t *testing.T) {
	api := &fakeAdminAPI{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.AuthResponse, error) {
			assert.Equal(t, "admin@example.com", request.Email)
			assert.Equal(t, "secret", request.Password)
			return models.AuthResponse{User: models.User{Role: models.RoleAdmin}, Token: "tok-123"}, nil
		},
	}

	out, _, err := runWith(t, api, "login", "-email", "admin@example.com", "-password", "secret")

	require.NoError(t, err)
	assert.Equal(t, "tok-123\n", out)
}

func TestLogin_WarnsForNonAdmin(t *testing.T) {
	api := &fakeAdminAPI{
		loginFn: func(context.Context, models.LoginRequest) (models.AuthResponse, error) {
			return models.AuthResponse{User: models.User{Email: "t@example.com", Role: models.RoleTeacher}, Token: "tok"}, nil
		},
	}

	out, _, err := runWith(t, api, "login", "-email", "t@example.com", "-password", "x")

	require.NoError(t, err)
	assert.Contains(t, out, "warning: t@example.com is TEACHER")
}

func TestUsers_Filter(t *testing.T) {
	device := "dev-1"
	api := &fakeAdminAPI{
		usersFn: func(_ context.Context, filter models.UserFilter) ([]models.User, error) {
			assert.Equal(t, models.RoleUser, filter.Role)
			require.NotNil(t, filter.Banned)
			assert.False(t, *filter.Banned)
			return []models.User{{ID: "u1", Email: "s@example.com", Role: models.RoleUser, DeviceID: &device}}, nil
		},
	}

	out, _, err := runWith(t, api, "-token", "tok", "users", "-role", "user", "-banned", "false")

	require.NoError(t, err)
	assert.Contains(t, out, "EMAIL")
	assert.Contains(t, out, "s@example.com")
	assert.Contains(t, out, "dev-1")
}

func TestUsers_InvalidBanned(t *testing.T) {
	_, _, err := runWith(t, &fakeAdminAPI{}, "-token", "tok", "users", "-banned", "maybe")
	assert.Error(t, err)
}

func TestBan_RequiresID(t *testing.T) {
	_, _, err := runWith(t, &fakeAdminAPI{}, "-token", "tok", "ban", "-reason", "x")
	assert.ErrorIs(t, err, errMissingID)
}

func TestBan_PrintsUser(t *testing.T) {
	api := &fakeAdminAPI{
		banFn: func(_ context.Context, userID, reason string) (models.User, error) {
			assert.Equal(t, "u1", userID)
			return models.User{ID: userID, IsBanned: true, BanReason: &reason}, nil
		},
	}

	out, _, err := runWith(t, api, "-token", "tok", "ban", "-reason", "cheating", "u1")

	require.NoError(t, err)
	assert.Contains(t, out, "banned:")
	assert.Contains(t, out, "cheating")
}

func TestUnban_PropagatesError(t *testing.T) {
	api := &fakeAdminAPI{
		unbanFn: func(context.Context, string) (models.User, error) {
			return models.User{}, adapter.ErrBadRequest
		},
	}

	_, _, err := runWith(t, api, "-token", "tok", "unban", "u1")

	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

func TestRequests_ShowsUserEmail(t *testing.T) {
	api := &fakeAdminAPI{
		queueFn: func(context.Context) ([]models.RecoveryRequest, error) {
			return []models.RecoveryRequest{{
				ID:          "r1",
				UserID:      "u1",
				NewDeviceID: "dev-2",
				Message:     "lost my laptop",
				User:        &models.UserSummary{Email: "s@example.com"},
			}}, nil
		},
	}

	out, _, err := runWith(t, api, "-token", "tok", "requests")

	require.NoError(t, err)
	assert.Contains(t, out, "s@example.com")
	assert.Contains(t, out, "lost my laptop")
}

func TestResolve(t *testing.T) {
	var approvedNote, rejectedNote *string
	api := &fakeAdminAPI{
		approveFn: func(_ context.Context, requestID string, note *string) error {
			approvedNote = note
			return nil
		},
		rejectFn: func(_ context.Context, requestID string, note *string) error {
			rejectedNote = note
			return nil
		},
	}

	out, _, err := runWith(t, api, "-token", "tok", "approve", "-note", "welcome back", "r1")
	require.NoError(t, err)
	assert.Equal(t, "recovery request r1: approved\n", out)
	require.NotNil(t, approvedNote)
	assert.Equal(t, "welcome back", *approvedNote)

	out, _, err = runWith(t, api, "-token", "tok", "reject", "r2")
	require.NoError(t, err)
	assert.Equal(t, "recovery request r2: rejected\n", out)
	assert.Nil(t, rejectedNote)
}

func TestResolve_Error(t *testing.T) {
	api := &fakeAdminAPI{
		approveFn: func(context.Context, string, *string) error { return errors.New("boom") },
	}

	_, _, err := runWith(t, api, "-token", "tok", "approve", "r1")

	assert.EqualError(t, err, "boom")
}
