// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
)

// health answers the API root with a bare status document.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	response := models.HealthResponse{Status: "ok", Message: "API is running"}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing health response failed")
	}
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())
	h.writeSuccess(w, r, http.StatusOK, "Version retrieved", info)
}
