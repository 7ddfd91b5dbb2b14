package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"stylestore/internal/model"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

const productColumns = `id, name, category, price, discounted_price, description, images, sizes, colors, in_stock, featured`

// GetAll retrieves all products.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// GetByCategory retrieves all products in the given category.
func (r *productRepository) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		r.logger.Error().Err(err).Str("category", category).Msg("failed to query products by category")
		return nil, fmt.Errorf("failed to query products by category: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetFeatured retrieves all featured products.
func (r *productRepository) GetFeatured(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE featured
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query featured products")
		return nil, fmt.Errorf("failed to query featured products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// scanProduct scans a single product row.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	var discounted decimal.NullDecimal

	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &discounted,
		&p.Description, &p.Images, &p.Sizes, &p.Colors, &p.InStock, &p.Featured,
	)
	if err != nil {
		return nil, err
	}

	if discounted.Valid {
		d := discounted.Decimal
		p.DiscountedPrice = &d
	}
	return &p, nil
}

// scanProducts scans all product rows.
func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
