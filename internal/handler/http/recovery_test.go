// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-courses-api/internal/service"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recoveryBody = `{"email":"u@example.com","message":"I need access restored please","deviceId":"B"}`

func TestSubmitRecoveryRequest_Created(t *testing.T) {
	ts := newTestServer()
	ts.recovery.submitRequestFn = func(_ context.Context, request models.RecoverySubmitRequest) (models.RecoveryRequest, error) {
		assert.Equal(t, "B", request.DeviceID)
		return models.RecoveryRequest{ID: "r1", Status: models.RecoveryStatusPending}, nil
	}

	rr := ts.do(t, http.MethodPost, "/api/recovery/request", recoveryBody, "")

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "r1", decodeData[models.RecoverySubmitted](t, decodeEnvelope(t, rr)).RequestID)
}

func TestSubmitRecoveryRequest_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"unknown user", store.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"not banned", service.ErrAccountNotBanned, http.StatusBadRequest, "Account is not banned"},
		{"already pending", store.ErrPendingRecoveryRequestExists, http.StatusBadRequest, "You already have a pending recovery request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			ts.recovery.submitRequestFn = func(context.Context, models.RecoverySubmitRequest) (models.RecoveryRequest, error) {
				return models.RecoveryRequest{}, tt.err
			}

			rr := ts.do(t, http.MethodPost, "/api/recovery/request", recoveryBody, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, errorText(decodeEnvelope(t, rr)))
		})
	}
}

func TestRecoveryStatus(t *testing.T) {
	ts := newTestServer()
	ts.recovery.getStatusFn = func(_ context.Context, email string) (models.RecoveryStatusView, error) {
		if email == "ghost@example.com" {
			return models.RecoveryStatusView{}, store.ErrRecoveryRequestNotFound
		}
		return models.RecoveryStatusView{Status: models.RecoveryStatusPending}, nil
	}

	rr := ts.do(t, http.MethodGet, "/api/recovery/status?email=u@example.com", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	status := decodeData[models.RecoveryStatusResponse](t, decodeEnvelope(t, rr)).Status
	assert.Equal(t, models.RecoveryStatusPending, status.Status)

	rr = ts.do(t, http.MethodGet, "/api/recovery/status?email=ghost@example.com", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "No recovery request found", errorText(decodeEnvelope(t, rr)))

	rr = ts.do(t, http.MethodGet, "/api/recovery/status", "", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Email is required", errorText(decodeEnvelope(t, rr)))
}
