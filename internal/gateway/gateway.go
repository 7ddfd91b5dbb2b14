package gateway

import (
	"context"

	"github.com/rs/zerolog"

	"stylestore/internal/cart"
	"stylestore/internal/cartstore"
	"stylestore/internal/model"
)

// Gateway provides uniform product, order and cart operations regardless of
// whether the remote API is reachable. Product and order reads are answered
// by the remote source when the reachability probe succeeds and by the local
// source otherwise; a failing remote call also falls through to the local
// computation, never to the caller. Cart state is inherently client-local and
// always goes through the persistence adapter and the cart reducer.
type Gateway struct {
	remote *RemoteSource
	local  *LocalSource
	carts  cartstore.Store
	logger zerolog.Logger
}

// New creates a gateway. remote may be nil, in which case every operation is
// computed locally.
func New(remote *RemoteSource, local *LocalSource, carts cartstore.Store, logger zerolog.Logger) *Gateway {
	return &Gateway{
		remote: remote,
		local:  local,
		carts:  carts,
		logger: logger.With().Str("component", "gateway").Logger(),
	}
}

// remoteAvailable runs the reachability probe.
func (g *Gateway) remoteAvailable(ctx context.Context) bool {
	return g.remote != nil && g.remote.Available(ctx)
}

// fellBack logs a failed remote call before the local fallback runs.
func (g *Gateway) fellBack(op string, err error) {
	g.logger.Warn().Err(err).Str("operation", op).Msg("remote call failed, using local fallback")
}

// Products lists every product.
func (g *Gateway) Products(ctx context.Context) ([]model.Product, error) {
	if g.remoteAvailable(ctx) {
		products, err := g.remote.Products(ctx)
		if err == nil {
			return products, nil
		}
		g.fellBack("products", err)
	}
	return g.local.Products(ctx)
}

// ProductByID returns the product with the given id, or nil when absent.
func (g *Gateway) ProductByID(ctx context.Context, id string) (*model.Product, error) {
	if g.remoteAvailable(ctx) {
		product, err := g.remote.ProductByID(ctx, id)
		if err == nil {
			return product, nil
		}
		g.fellBack("product_by_id", err)
	}
	return g.local.ProductByID(ctx, id)
}

// ProductsByCategory lists the products in the given category.
func (g *Gateway) ProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if g.remoteAvailable(ctx) {
		products, err := g.remote.ProductsByCategory(ctx, category)
		if err == nil {
			return products, nil
		}
		g.fellBack("products_by_category", err)
	}
	return g.local.ProductsByCategory(ctx, category)
}

// FeaturedProducts lists the featured products.
func (g *Gateway) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	if g.remoteAvailable(ctx) {
		products, err := g.remote.FeaturedProducts(ctx)
		if err == nil {
			return products, nil
		}
		g.fellBack("featured_products", err)
	}
	return g.local.FeaturedProducts(ctx)
}

// Orders lists every order.
func (g *Gateway) Orders(ctx context.Context) ([]model.Order, error) {
	if g.remoteAvailable(ctx) {
		orders, err := g.remote.Orders(ctx)
		if err == nil {
			return orders, nil
		}
		g.fellBack("orders", err)
	}
	return g.local.Orders(ctx)
}

// OrderByID returns the order with the given id, or nil when absent.
func (g *Gateway) OrderByID(ctx context.Context, id string) (*model.Order, error) {
	if g.remoteAvailable(ctx) {
		order, err := g.remote.OrderByID(ctx, id)
		if err == nil {
			return order, nil
		}
		g.fellBack("order_by_id", err)
	}
	return g.local.OrderByID(ctx, id)
}

// CreateOrder creates an order remotely when possible and constructs a local
// fallback order otherwise.
func (g *Gateway) CreateOrder(ctx context.Context, items []model.CartItem, customer model.CustomerDetails) (*model.Order, error) {
	if g.remoteAvailable(ctx) {
		order, err := g.remote.CreateOrder(ctx, items, customer)
		if err == nil {
			return order, nil
		}
		g.fellBack("create_order", err)
	}
	return g.local.CreateOrder(ctx, items, customer)
}

// UpdateOrderStatus updates an order's status remotely when possible,
// otherwise against the in-memory collection. A nil order means no order with
// that id exists.
func (g *Gateway) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if g.remoteAvailable(ctx) {
		order, err := g.remote.UpdateOrderStatus(ctx, id, status)
		if err == nil {
			return order, nil
		}
		g.fellBack("update_order_status", err)
	}
	return g.local.UpdateOrderStatus(ctx, id, status)
}

// Cart returns the persisted cart.
func (g *Gateway) Cart(ctx context.Context) ([]model.CartItem, error) {
	return g.carts.Load(ctx)
}

// AddToCart merges the item into the persisted cart and returns the
// post-mutation cart.
func (g *Gateway) AddToCart(ctx context.Context, item model.CartItem) ([]model.CartItem, error) {
	items, err := g.carts.Load(ctx)
	if err != nil {
		return nil, err
	}
	items = cart.Merge(items, item)
	if err := g.carts.Save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateCartItem replaces the quantity of the line item at index and returns
// the post-mutation cart. A quantity of zero or less removes the item; an
// out-of-range index is a no-op.
func (g *Gateway) UpdateCartItem(ctx context.Context, index, quantity int) ([]model.CartItem, error) {
	items, err := g.carts.Load(ctx)
	if err != nil {
		return nil, err
	}
	items = cart.SetQuantity(items, index, quantity)
	if err := g.carts.Save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveFromCart removes the line item at index and returns the post-mutation
// cart. An out-of-range index is a no-op.
func (g *Gateway) RemoveFromCart(ctx context.Context, index int) ([]model.CartItem, error) {
	items, err := g.carts.Load(ctx)
	if err != nil {
		return nil, err
	}
	items = cart.RemoveAt(items, index)
	if err := g.carts.Save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// ClearCart removes the stored cart entirely and returns the empty cart.
func (g *Gateway) ClearCart(ctx context.Context) ([]model.CartItem, error) {
	if err := g.carts.Clear(ctx); err != nil {
		return nil, err
	}
	return cart.Clear(), nil
}
