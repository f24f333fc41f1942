package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/shop-api/internal/api/shared"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/service"
)

// ProductHandler handles product catalog requests.
type ProductHandler struct {
	products service.ProductService
	logger   *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products service.ProductService, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		products: products,
		logger:   logger.With(slog.String("component", "product_handler")),
	}
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req CreateProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	product, err := h.products.Create(r.Context(), req.ToInput(), user)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("product created",
		slog.String("product_id", product.ID.String()),
		slog.String("slug", product.Slug))

	shared.RespondWithJSON(w, r, http.StatusCreated, product)
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePagination(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	products, err := h.products.List(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, products)
}

// Get handles GET /api/products/{id}. The path segment may also be a slug
// or a title.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetPlain(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, product)
}

// Update handles PATCH /api/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	product, err := h.products.Update(r.Context(), id, req.ToPatch(), user)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id}. The deleted product is returned.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	product, err := h.products.Remove(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("product deleted",
		slog.String("product_id", id.String()))

	shared.RespondWithJSON(w, r, http.StatusOK, product)
}
