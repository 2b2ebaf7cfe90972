// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Tracing, logging, CORS, rate limiting, authentication
// and role checks are handled at this layer before requests are forwarded
// to the service layer.
//
// Every response body is a [models.Response] envelope.
package http
