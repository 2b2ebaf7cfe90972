// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts_CategoryFilter(t *testing.T) {
	ts := newTestServer()
	ts.products.listProductsFn = func(_ context.Context, filter models.ProductFilter) ([]models.Product, error) {
		assert.Equal(t, "Electronics", filter.Category)
		return []models.Product{{ID: 1, Name: "Wireless Headphones", Category: "Electronics"}}, nil
	}

	rr := ts.do(t, http.MethodGet, "/api/products?category=Electronics", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	products := decodeData[models.ProductsPayload](t, decodeEnvelope(t, rr)).Products
	require.Len(t, products, 1)
	assert.Equal(t, "Wireless Headphones", products[0].Name)
}

func TestGetProduct(t *testing.T) {
	ts := newTestServer()
	ts.products.getProductFn = func(_ context.Context, id int64) (models.Product, error) {
		if id != 1 {
			return models.Product{}, store.ErrProductNotFound
		}
		return models.Product{ID: 1, Name: "Smart Watch"}, nil
	}

	rr := ts.do(t, http.MethodGet, "/api/products/1", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Smart Watch", decodeData[models.ProductPayload](t, decodeEnvelope(t, rr)).Product.Name)

	rr = ts.do(t, http.MethodGet, "/api/products/99", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Product not found", errorText(decodeEnvelope(t, rr)))

	rr = ts.do(t, http.MethodGet, "/api/products/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
