// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-courses-api/models"
)

func (h *Handler) submitRecoveryRequest(w http.ResponseWriter, r *http.Request) {
	var request models.RecoverySubmitRequest
	if err := decodeJSON(r, &request, false); err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.services.RecoveryService.SubmitRequest(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusCreated, "Recovery request submitted successfully", models.RecoverySubmitted{RequestID: created.ID})
}

func (h *Handler) recoveryStatus(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		h.writeError(w, r, ErrEmailRequired)
		return
	}

	status, err := h.services.RecoveryService.GetStatus(r.Context(), email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Recovery status retrieved", models.RecoveryStatusResponse{Status: status})
}
