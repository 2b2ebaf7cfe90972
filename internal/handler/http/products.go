// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-courses-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter := models.ProductFilter{Category: r.URL.Query().Get("category")}

	products, err := h.services.ProductService.ListProducts(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Products retrieved successfully", models.ProductsPayload{Products: products})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: product id: %w", ErrInvalidPathParam, err))
		return
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Product retrieved successfully", models.ProductPayload{Product: product})
}
