// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the uniform envelope of every API response.
type Response struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	Data       any     `json:"data"`
	Error      *string `json:"error"`
	StatusCode int     `json:"statusCode"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// RecoverySubmitted is returned after a recovery request was created.
type RecoverySubmitted struct {
	RequestID string `json:"requestId"`
}

// RecoveryStatusResponse wraps the latest recovery request of a user.
type RecoveryStatusResponse struct {
	Status RecoveryStatusView `json:"status"`
}

// HealthResponse is returned by the API root.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AppInfo describes the running server build.
type AppInfo struct {
	Version      string `json:"version"`
	BuildVersion string `json:"buildVersion"`
	BuildDate    string `json:"buildDate"`
	BuildCommit  string `json:"buildCommit"`
}

// UserPayload is the data of single-user responses.
type UserPayload struct {
	User User `json:"user"`
}

// UsersPayload is the data of the admin user listing.
type UsersPayload struct {
	Users []User `json:"users"`
}

// RecoveryRequestsPayload is the data of the admin recovery queue.
type RecoveryRequestsPayload struct {
	Requests []RecoveryRequest `json:"requests"`
}

// ProductPayload is the data of a single catalog item.
type ProductPayload struct {
	Product Product `json:"product"`
}

// ProductsPayload is the data of the catalog listing.
type ProductsPayload struct {
	Products []Product `json:"products"`
}
