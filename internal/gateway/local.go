package gateway

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"stylestore/internal/catalog"
	"stylestore/internal/model"
)

// orderIDPrefix is the fixed prefix of locally generated order identifiers.
const orderIDPrefix = "ord-"

// LocalSource implements Source over the in-memory catalogue. Well-formed
// queries never fail; single-item lookup misses return a nil order or
// product.
type LocalSource struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
	now     func() time.Time
}

// NewLocalSource creates a local source backed by the given catalogue.
func NewLocalSource(c *catalog.Catalog, logger zerolog.Logger) *LocalSource {
	return &LocalSource{
		catalog: c,
		logger:  logger.With().Str("component", "local-source").Logger(),
		now:     time.Now,
	}
}

// Products returns every product in the catalogue.
func (l *LocalSource) Products(ctx context.Context) ([]model.Product, error) {
	return l.catalog.Products(), nil
}

// ProductByID returns the product with the given id, or nil when absent.
func (l *LocalSource) ProductByID(ctx context.Context, id string) (*model.Product, error) {
	return l.catalog.ProductByID(id), nil
}

// ProductsByCategory returns the products in the given category.
func (l *LocalSource) ProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return l.catalog.ProductsByCategory(category), nil
}

// FeaturedProducts returns the featured products.
func (l *LocalSource) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	return l.catalog.FeaturedProducts(), nil
}

// Orders returns every order in the catalogue.
func (l *LocalSource) Orders(ctx context.Context) ([]model.Order, error) {
	return l.catalog.Orders(), nil
}

// OrderByID returns the order with the given id, or nil when absent.
func (l *LocalSource) OrderByID(ctx context.Context, id string) (*model.Order, error) {
	return l.catalog.OrderByID(id), nil
}

// CreateOrder constructs a fallback order: a freshly generated identifier,
// pending status, cash on delivery, today's date. The order is appended to
// the in-memory collection.
func (l *LocalSource) CreateOrder(ctx context.Context, items []model.CartItem, customer model.CustomerDetails) (*model.Order, error) {
	order := model.Order{
		ID:              l.newOrderID(),
		Items:           items,
		Total:           model.OrderTotal(items),
		Status:          model.StatusPending,
		CustomerDetails: customer,
		PaymentMethod:   model.PaymentCashOnDelivery,
		Date:            l.now().Format(time.DateOnly),
	}

	l.catalog.AppendOrder(order)

	l.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(items)).
		Str("total", order.Total.String()).
		Msg("fallback order created")

	return &order, nil
}

// UpdateOrderStatus mutates the matching in-memory order in place and returns
// it, or nil when no order with that id exists.
func (l *LocalSource) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return l.catalog.UpdateOrderStatus(id, status), nil
}

// newOrderID generates a zero-padded random order identifier, regenerating
// until it does not collide with an existing order.
func (l *LocalSource) newOrderID() string {
	for {
		id := fmt.Sprintf("%s%03d", orderIDPrefix, rand.IntN(10000))
		if !l.catalog.HasOrder(id) {
			return id
		}
	}
}
