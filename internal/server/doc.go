// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the courses API.
//
// It owns the listener lifecycle: startup, serving until the run context is
// cancelled, and a graceful shutdown bounded by the configured timeout.
package server
