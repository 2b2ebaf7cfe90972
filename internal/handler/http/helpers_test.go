// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/MKhiriev/go-courses-api/models"
	"github.com/stretchr/testify/require"
)

const (
	adminToken   = "admin-token"
	studentToken = "student-token"
)

// envelope mirrors models.Response with raw data for typed decoding.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      *string         `json:"error"`
	StatusCode int             `json:"statusCode"`
}

type testServer struct {
	auth     *authServiceMock
	recovery *recoveryServiceMock
	admin    *adminServiceMock
	products *productServiceMock
	appInfo  *appInfoServiceMock

	cfg config.StructuredConfig
}

// newTestServer wires mocks into services. ParseToken knows two tokens: an
// ADMIN and a USER session.
func newTestServer() *testServer {
	ts := &testServer{
		auth:     &authServiceMock{},
		recovery: &recoveryServiceMock{},
		admin:    &adminServiceMock{},
		products: &productServiceMock{},
		appInfo:  &appInfoServiceMock{info: models.AppInfo{Version: "1.2.3", BuildVersion: "v1.2.3", BuildDate: "N/A", BuildCommit: "abc"}},
	}

	ts.auth.parseTokenFn = func(_ context.Context, token string) (models.Token, error) {
		switch token {
		case adminToken:
			return models.Token{UserID: "admin-1", Role: models.RoleAdmin, SessionID: "s-admin"}, nil
		case studentToken:
			return models.Token{UserID: "user-1", Role: models.RoleUser, SessionID: "s-user"}, nil
		default:
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
	}

	return ts
}

func (ts *testServer) router() http.Handler {
	services := &service.Services{
		AuthService:     ts.auth,
		RecoveryService: ts.recovery,
		AdminService:    ts.admin,
		ProductService:  ts.products,
		AppInfoService:  ts.appInfo,
	}

	return NewHandler(services, ts.cfg, logger.Nop()).Init()
}

func (ts *testServer) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.router().ServeHTTP(rr, req)

	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "body: %s", rr.Body.String())
	require.Equal(t, rr.Code, env.StatusCode, "envelope status must match the HTTP status")

	return env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var data T
	require.NoError(t, json.Unmarshal(env.Data, &data))

	return data
}

func errorText(env envelope) string {
	if env.Error == nil {
		return ""
	}
	return *env.Error
}

func newRawRequest(method, path string) (*http.Request, *httptest.ResponseRecorder) {
	return httptest.NewRequest(method, path, nil), httptest.NewRecorder()
}
