package router

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"stylestore/internal/handler"
	"stylestore/internal/middleware"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	dashboardHandler *handler.DashboardHandler,
	adminKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/products/category/"):
			productHandler.GetByCategory(w, r)
		case r.URL.Path != "/api/products" && r.URL.Path != "/api/products/":
			productHandler.GetByID(w, r)
		default:
			productHandler.GetAll(w, r)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	mux.HandleFunc("/api/featured-products", productHandler.GetFeatured)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		isCollection := r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/"

		switch {
		case r.Method == http.MethodPost && isCollection:
			orderHandler.Create(w, r)
		case r.Method == http.MethodGet && isCollection:
			orderHandler.GetAll(w, r)
		case r.Method == http.MethodPut && strings.HasSuffix(r.URL.Path, "/status"):
			orderHandler.UpdateStatus(w, r)
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/orders/"):
			orderHandler.GetByID(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	mux.HandleFunc("/api/dashboard/stats", dashboardHandler.Stats)

	// The admin surface: order listing, status updates and dashboard stats.
	// Storefront reads and order creation stay public.
	isAdminRequest := func(r *http.Request) bool {
		switch {
		case r.URL.Path == "/api/dashboard/stats":
			return true
		case r.Method == http.MethodGet && (r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/"):
			return true
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/orders/"):
			return true
		}
		return false
	}

	// Apply middleware in order: Recovery -> Logging -> CORS -> AdminKeyAuth
	var h http.Handler = mux
	h = middleware.AdminKeyAuth(adminKey, isAdminRequest, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
