package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"stylestore/internal/model"
	"stylestore/internal/repository"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves all products.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")
	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// GetByCategory retrieves all products in the given category.
func (s *productService) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products, err := s.productRepo.GetByCategory(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to get products by category")
		return nil, fmt.Errorf("failed to get products by category: %w", err)
	}

	s.logger.Debug().
		Str("category", category).
		Int("count", len(products)).
		Msg("retrieved products by category")

	return products, nil
}

// GetFeatured retrieves all featured products.
func (s *productService) GetFeatured(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetFeatured(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get featured products")
		return nil, fmt.Errorf("failed to get featured products: %w", err)
	}

	return products, nil
}
