// Package gateway mediates between the remote storefront API and the local
// catalogue. Every read operation prefers the remote when a reachability
// probe succeeds and degrades to an equivalent local computation otherwise;
// cart operations are always client-local.
package gateway

import (
	"context"

	"stylestore/internal/model"
)

// Source provides the product and order operations of the storefront,
// independent of whether they are served remotely or computed locally.
type Source interface {
	// Products returns every product.
	Products(ctx context.Context) ([]model.Product, error)

	// ProductByID returns the product with the given id, or nil when absent.
	ProductByID(ctx context.Context, id string) (*model.Product, error)

	// ProductsByCategory returns the products in the given category.
	ProductsByCategory(ctx context.Context, category string) ([]model.Product, error)

	// FeaturedProducts returns the products carrying the featured flag.
	FeaturedProducts(ctx context.Context) ([]model.Product, error)

	// Orders returns every order.
	Orders(ctx context.Context) ([]model.Order, error)

	// OrderByID returns the order with the given id, or nil when absent.
	OrderByID(ctx context.Context, id string) (*model.Order, error)

	// CreateOrder creates a new order from the given line items and customer
	// details and returns it.
	CreateOrder(ctx context.Context, items []model.CartItem, customer model.CustomerDetails) (*model.Order, error)

	// UpdateOrderStatus sets the status of the order with the given id and
	// returns the updated order, or nil when no such order exists.
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}
