// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-courses-api/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if err := decodeJSON(r, &request, false); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Login successful", models.AuthResponse{User: user, Token: token.String()})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var request models.SignupRequest
	if err := decodeJSON(r, &request, false); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Signup(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusCreated, "Account created successfully", models.AuthResponse{User: user, Token: token.String()})
}

// forgotPassword answers identically whether or not the email is known.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var request models.ForgotPasswordRequest
	if err := decodeJSON(r, &request, false); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ForgotPassword(r.Context(), request); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "If email exists, a reset link will be sent", nil)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var request models.ResetPasswordRequest
	if err := decodeJSON(r, &request, false); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), request); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Password has been reset", nil)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.Me(r.Context(), identityFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "User retrieved successfully", models.UserPayload{User: user})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.Logout(r.Context(), identityFrom(r)); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Logged out", nil)
}
