// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/service"
)

type Handler struct {
	services *service.Services
	server   config.Server

	// exposeErrors puts internal error text into 500 responses.
	exposeErrors bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		server:       cfg.Server,
		exposeErrors: cfg.App.IsDevelopment(),
		logger:       logger,
	}
}
