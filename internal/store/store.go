// Package store implements the application-facing cart coordinator: the
// single source of truth for cart state, sequencing mutations through the
// gateway and broadcasting the resulting state to consumers.
package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"stylestore/internal/cart"
	"stylestore/internal/model"
)

// CartGateway is the slice of the gateway the coordinator depends on.
type CartGateway interface {
	Cart(ctx context.Context) ([]model.CartItem, error)
	AddToCart(ctx context.Context, item model.CartItem) ([]model.CartItem, error)
	UpdateCartItem(ctx context.Context, index, quantity int) ([]model.CartItem, error)
	RemoveFromCart(ctx context.Context, index int) ([]model.CartItem, error)
	ClearCart(ctx context.Context) ([]model.CartItem, error)
	CreateOrder(ctx context.Context, items []model.CartItem, customer model.CustomerDetails) (*model.Order, error)
}

// Store coordinates cart state for one session. A single UI issues one
// mutation at a time; the internal mutex additionally serializes mutations so
// that each one operates on the previous mutation's persisted state even if a
// host dispatches concurrently. The published cart always reflects what the
// gateway actually persisted, never locally guessed state.
type Store struct {
	gateway  CartGateway
	notifier Notifier
	logger   zerolog.Logger

	mu          sync.Mutex
	items       []model.CartItem
	loading     bool
	subscribers []func([]model.CartItem)
}

// New creates a coordinator. Call Load once at session start to publish the
// persisted cart.
func New(gateway CartGateway, notifier Notifier, logger zerolog.Logger) *Store {
	return &Store{
		gateway:  gateway,
		notifier: notifier,
		logger:   logger.With().Str("component", "store").Logger(),
		items:    []model.CartItem{},
	}
}

// Load fetches the persisted cart and publishes it. The loading flag is set
// for the duration of the fetch.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	items, err := s.gateway.Cart(ctx)

	s.mu.Lock()
	s.loading = false
	if err == nil {
		s.items = items
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load cart")
		s.notifier.Notify(Notification{
			Title:    "Error",
			Message:  "Failed to load your cart. Please try again.",
			Severity: SeverityError,
		})
		return err
	}

	s.publish()
	return nil
}

// Cart returns a snapshot of the published cart.
func (s *Store) Cart() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Loading reports whether the initial cart load is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Total returns the published cart's total: the sum of effective unit price
// times quantity across all line items.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.Total(s.items)
}

// Subscribe registers a consumer that receives every published cart snapshot.
func (s *Store) Subscribe(fn func([]model.CartItem)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// AddItemToCart merges a new line item into the cart. Failure is surfaced as
// a notification; the published state is left unchanged.
func (s *Store) AddItemToCart(ctx context.Context, product model.Product, quantity int, size, color string) error {
	item := model.CartItem{Product: product, Quantity: quantity, Size: size, Color: color}

	err := s.mutate(ctx, "add item", func(ctx context.Context) ([]model.CartItem, error) {
		return s.gateway.AddToCart(ctx, item)
	})
	if err != nil {
		s.notifier.Notify(Notification{
			Title:    "Error",
			Message:  "Failed to add item to your cart. Please try again.",
			Severity: SeverityError,
		})
		return err
	}

	s.notifier.Notify(Notification{
		Title:   "Added to Cart",
		Message: product.Name + " has been added to your cart.",
	})
	return nil
}

// UpdateItemQuantity replaces the quantity of the line item at index. An
// out-of-range index leaves the cart unchanged.
func (s *Store) UpdateItemQuantity(ctx context.Context, index, quantity int) error {
	err := s.mutate(ctx, "update quantity", func(ctx context.Context) ([]model.CartItem, error) {
		return s.gateway.UpdateCartItem(ctx, index, quantity)
	})
	if err != nil {
		s.notifier.Notify(Notification{
			Title:    "Error",
			Message:  "Failed to update item quantity. Please try again.",
			Severity: SeverityError,
		})
	}
	return err
}

// RemoveItem removes the line item at index. An out-of-range index leaves the
// cart unchanged.
func (s *Store) RemoveItem(ctx context.Context, index int) error {
	err := s.mutate(ctx, "remove item", func(ctx context.Context) ([]model.CartItem, error) {
		return s.gateway.RemoveFromCart(ctx, index)
	})
	if err != nil {
		s.notifier.Notify(Notification{
			Title:    "Error",
			Message:  "Failed to remove item from your cart. Please try again.",
			Severity: SeverityError,
		})
		return err
	}

	s.notifier.Notify(Notification{
		Title:   "Item Removed",
		Message: "The item has been removed from your cart.",
	})
	return nil
}

// ClearAllItems empties the cart.
func (s *Store) ClearAllItems(ctx context.Context) error {
	err := s.mutate(ctx, "clear cart", func(ctx context.Context) ([]model.CartItem, error) {
		return s.gateway.ClearCart(ctx)
	})
	if err != nil {
		s.notifier.Notify(Notification{
			Title:    "Error",
			Message:  "Failed to clear your cart. Please try again.",
			Severity: SeverityError,
		})
	}
	return err
}

// Checkout creates an order from the current cart and clears the cart once
// the order has been created.
func (s *Store) Checkout(ctx context.Context, customer model.CustomerDetails) (*model.Order, error) {
	s.mu.Lock()
	items := make([]model.CartItem, len(s.items))
	copy(items, s.items)
	s.mu.Unlock()

	order, err := s.gateway.CreateOrder(ctx, items, customer)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		s.notifier.Notify(Notification{
			Title:    "Error",
			Message:  "Failed to place your order. Please try again.",
			Severity: SeverityError,
		})
		return nil, err
	}

	if err := s.ClearAllItems(ctx); err != nil {
		return order, err
	}

	s.notifier.Notify(Notification{
		Title:   "Order Placed",
		Message: "Your order " + order.ID + " has been placed.",
	})
	return order, nil
}

// mutate runs one cart mutation under the serialization lock and publishes
// the gateway's post-mutation cart on success.
func (s *Store) mutate(ctx context.Context, op string, fn func(ctx context.Context) ([]model.CartItem, error)) error {
	s.mu.Lock()
	items, err := fn(ctx)
	if err != nil {
		s.mu.Unlock()
		s.logger.Error().Err(err).Str("operation", op).Msg("cart mutation failed")
		return err
	}
	s.items = items
	s.mu.Unlock()

	s.publish()
	return nil
}

// publish broadcasts the current snapshot to all subscribers.
func (s *Store) publish() {
	s.mu.Lock()
	items := make([]model.CartItem, len(s.items))
	copy(items, s.items)
	subscribers := make([]func([]model.CartItem), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(items)
	}
}
