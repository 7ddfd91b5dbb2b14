package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"stylestore/internal/model"
	"stylestore/internal/service"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests. HEAD requests are answered with
// an empty success so clients can use the endpoint as a reachability probe.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	products, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetByCategory handles GET /api/products/category/{category} requests.
func (h *ProductHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	category := strings.TrimPrefix(r.URL.Path, "/api/products/category/")
	if category == "" {
		writeError(w, http.StatusBadRequest, "category is required", h.logger)
		return
	}

	products, err := h.service.GetByCategory(r.Context(), category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetFeatured handles GET /api/featured-products requests.
func (h *ProductHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	products, err := h.service.GetFeatured(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve featured products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}
