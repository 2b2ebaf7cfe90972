// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/validators"
	"github.com/MKhiriev/go-courses-api/models"
)

type Services struct {
	AuthService     AuthService
	DeviceService   DeviceService
	RecoveryService RecoveryService
	AdminService    AdminService
	ProductService  ProductService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, notifier Notifier, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	deviceService := NewDeviceService(storages.UserRepository, logger)
	authService := NewAuthValidationService(validator).
		Wrap(NewAuthService(storages, deviceService, notifier, cfg.App, logger))

	return &Services{
		AuthService:     authService,
		DeviceService:   deviceService,
		RecoveryService: NewRecoveryService(storages, validator, logger),
		AdminService:    NewAdminService(storages, notifier, validator, cfg.App, logger),
		ProductService:  NewProductService(storages.ProductRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
