// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
)

const maxBodyBytes = 1 << 20

func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	response := models.Response{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: status,
	}

	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	mapped := mapError(err, h.exposeErrors)

	log := logger.FromRequest(r)
	if mapped.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", mapped.status).Msg("request rejected")
	}

	h.writeFailure(w, r, mapped.status, mapped.message, mapped.detail)
}

func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, status int, message, detail string) {
	response := models.Response{
		Success:    false,
		Message:    message,
		Error:      &detail,
		StatusCode: status,
	}

	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

// decodeJSON reads the request body into dst. With allowEmpty an empty body
// leaves dst untouched.
func decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}
