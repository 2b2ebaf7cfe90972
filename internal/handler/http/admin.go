// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-courses-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var request models.CreateUserRequest
	if err := decodeJSON(r, &request, false); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AdminService.CreateUser(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusCreated, "User created successfully", models.UserPayload{User: user})
}

// listUsers accepts the optional filters ?role= and ?banned=true|false.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	filter, err := userFilterFromQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	users, err := h.services.AdminService.ListUsers(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Users retrieved successfully", models.UsersPayload{Users: users})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AdminService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "User retrieved successfully", models.UserPayload{User: user})
}

func (h *Handler) banUser(w http.ResponseWriter, r *http.Request) {
	var request models.BanUserRequest
	if err := decodeJSON(r, &request, false); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AdminService.BanUser(r.Context(), chi.URLParam(r, "id"), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "User banned successfully", models.UserPayload{User: user})
}

func (h *Handler) unbanUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AdminService.UnbanUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "User unbanned successfully", models.UserPayload{User: user})
}

func (h *Handler) listRecoveryRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.services.AdminService.ListPendingRecoveryRequests(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Recovery requests retrieved successfully", models.RecoveryRequestsPayload{Requests: requests})
}

func (h *Handler) approveRecoveryRequest(w http.ResponseWriter, r *http.Request) {
	var request models.RecoveryActionRequest
	if err := decodeJSON(r, &request, true); err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := h.services.AdminService.ApproveRecoveryRequest(r.Context(), chi.URLParam(r, "id"), request); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Recovery request approved", nil)
}

func (h *Handler) rejectRecoveryRequest(w http.ResponseWriter, r *http.Request) {
	var request models.RecoveryActionRequest
	if err := decodeJSON(r, &request, true); err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err := h.services.AdminService.RejectRecoveryRequest(r.Context(), chi.URLParam(r, "id"), request); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Recovery request rejected", nil)
}

func userFilterFromQuery(r *http.Request) (models.UserFilter, error) {
	query := r.URL.Query()
	filter := models.UserFilter{Role: models.Role(query.Get("role"))}

	if filter.Role != "" && !filter.Role.IsValid() {
		return models.UserFilter{}, fmt.Errorf("%w: unknown role %q", ErrInvalidQueryParam, filter.Role)
	}

	if raw := query.Get("banned"); raw != "" {
		banned, err := strconv.ParseBool(raw)
		if err != nil {
			return models.UserFilter{}, fmt.Errorf("%w: banned: %w", ErrInvalidQueryParam, err)
		}
		filter.Banned = &banned
	}

	return filter, nil
}
