package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"stylestore/internal/catalog"
	"stylestore/internal/config"
	"stylestore/internal/database"
	"stylestore/internal/handler"
	"stylestore/internal/repository"
	"stylestore/internal/router"
	"stylestore/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting stylestore API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the seed catalogue: S3 when configured, falling back to the local
	// file system, falling back to the built-in fixture.
	seed := loadSeed(ctx, cfg, logger)

	// Select the storage backend
	var productRepo repository.ProductRepository
	var orderRepo repository.OrderRepository

	if cfg.Database.Enabled {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		productRepo = repository.NewProductRepository(pool, logger)
		orderRepo = repository.NewOrderRepository(pool, logger)
	} else {
		store, err := repository.NewJSONStore(cfg.Storage.DataFile, seed, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize store data file: %w", err)
		}
		productRepo = store
		orderRepo = store.Orders()
		logger.Info().
			Str("data_file", cfg.Storage.DataFile).
			Msg("using JSON file store (database disabled)")
	}

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, logger)
	dashboardService := service.NewDashboardService(orderRepo, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	// Initialize router
	mux := router.New(productHandler, orderHandler, dashboardHandler, cfg.Auth.AdminKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadSeed resolves the seed catalogue used to initialise the JSON store. A
// configured catalogue file is loaded through the S3/file fallback chain; any
// failure falls back to the built-in fixture.
func loadSeed(ctx context.Context, cfg *config.Config, logger zerolog.Logger) catalog.Document {
	if cfg.Catalog.File == "" {
		return catalog.Fixture()
	}

	fileLoader := catalog.NewFileLoader(logger)
	var loader catalog.Loader = fileLoader

	if cfg.Catalog.S3Enabled {
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.Catalog.S3Bucket, cfg.Catalog.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 catalogue loader, falling back to local file system only")
		} else {
			loader = catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.Catalog.S3Prefix, true, logger)
		}
	}

	seed, err := loader.Load(ctx, cfg.Catalog.File)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("file", cfg.Catalog.File).
			Msg("failed to load catalogue seed, using built-in fixture")
		return catalog.Fixture()
	}

	return seed
}
