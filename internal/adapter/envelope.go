// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

// Envelope is the response wrapper of every API endpoint with the payload
// decoded as T.
type Envelope[T any] struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	Data       T       `json:"data"`
	Error      *string `json:"error"`
	StatusCode int     `json:"statusCode"`
}
