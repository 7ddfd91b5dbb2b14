package repository

import (
	"context"

	"stylestore/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. A missing product is
	// returned as (nil, nil).
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByCategory retrieves all products in the given category.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)

	// GetFeatured retrieves all featured products.
	GetFeatured(ctx context.Context) ([]model.Product, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// GetAll retrieves all orders.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves an order by its ID. A missing order is returned as
	// (nil, nil).
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// Create inserts a new order.
	Create(ctx context.Context, order *model.Order) error

	// UpdateStatus sets the status of the order with the given ID and returns
	// the updated order, or (nil, nil) when no such order exists.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}
