// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/models"
)

type productRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProductsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

func (r *productRepository) FindProductByID(ctx context.Context, productID int64) (models.Product, error) {
	product, err := scanProduct(r.db.QueryRowContext(ctx, findProductByID, productID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productRepository.FindProductByID").Msg("unexpected DB error")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return product, nil
}
