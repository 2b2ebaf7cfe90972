// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/models"
)

type productService struct {
	productRepository store.ProductRepository
	logger            *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	return s.productRepository.ListProducts(ctx, filter)
}

func (s *productService) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	return s.productRepository.FindProductByID(ctx, productID)
}
