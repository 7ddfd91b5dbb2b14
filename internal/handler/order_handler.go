package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"stylestore/internal/model"
	"stylestore/internal/service"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// GetAll handles GET /api/orders requests.
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		message := "failed to create order"

		switch {
		case errors.Is(err, model.ErrProductNotFound):
			status = http.StatusBadRequest
			message = "one or more products not found"
		case errors.Is(err, model.ErrInvalidQuantity):
			status = http.StatusBadRequest
			message = "invalid quantity"
		default:
			if strings.Contains(err.Error(), "required") ||
				strings.Contains(err.Error(), "must contain") ||
				strings.Contains(err.Error(), "nil") {
				status = http.StatusBadRequest
				message = err.Error()
			}
		}

		writeError(w, status, message, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	orderID := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PUT /api/orders/{id}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	orderID := strings.TrimSuffix(path, "/status")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}

	var req model.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, "status is required", h.logger)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "order not found", h.logger)
		case errors.Is(err, model.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "unknown order status", h.logger)
		default:
			writeError(w, http.StatusInternalServerError, "failed to update order status", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, order)
}
