package service

import (
	"context"

	"stylestore/internal/model"
)

// ProductService defines operations for the product catalogue.
type ProductService interface {
	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByCategory retrieves all products in the given category.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)

	// GetFeatured retrieves all featured products.
	GetFeatured(ctx context.Context) ([]model.Product, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder creates a new order from the request, recomputing the total
	// from the embedded line items.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// GetAll retrieves all orders.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves an order by its ID.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// UpdateStatus sets the status of an existing order.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// DashboardService computes the admin dashboard statistics.
type DashboardService interface {
	// Stats returns revenue and order statistics plus the demo series.
	Stats(ctx context.Context) (*model.DashboardStats, error)
}
