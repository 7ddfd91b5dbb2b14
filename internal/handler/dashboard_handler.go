package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"stylestore/internal/service"
)

// DashboardHandler handles admin dashboard HTTP requests.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("handler", "dashboard").Logger(),
	}
}

// Stats handles GET /api/dashboard/stats requests.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute dashboard stats", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
