package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylestore/internal/cart"
	"stylestore/internal/model"
)

// fakeGateway implements CartGateway in memory with optional failure
// injection.
type fakeGateway struct {
	items     []model.CartItem
	failNext  error
	lastOrder *model.Order
}

func (f *fakeGateway) fail() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeGateway) Cart(ctx context.Context) ([]model.CartItem, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return f.items, nil
}

func (f *fakeGateway) AddToCart(ctx context.Context, item model.CartItem) ([]model.CartItem, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	f.items = cart.Merge(f.items, item)
	return f.items, nil
}

func (f *fakeGateway) UpdateCartItem(ctx context.Context, index, quantity int) ([]model.CartItem, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	f.items = cart.SetQuantity(f.items, index, quantity)
	return f.items, nil
}

func (f *fakeGateway) RemoveFromCart(ctx context.Context, index int) ([]model.CartItem, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	f.items = cart.RemoveAt(f.items, index)
	return f.items, nil
}

func (f *fakeGateway) ClearCart(ctx context.Context) ([]model.CartItem, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	f.items = cart.Clear()
	return f.items, nil
}

func (f *fakeGateway) CreateOrder(ctx context.Context, items []model.CartItem, customer model.CustomerDetails) (*model.Order, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	order := &model.Order{
		ID:              "ord-042",
		Items:           items,
		Total:           model.OrderTotal(items),
		Status:          model.StatusPending,
		CustomerDetails: customer,
		PaymentMethod:   model.PaymentCashOnDelivery,
	}
	f.lastOrder = order
	return order, nil
}

// recordingNotifier collects every notification in order.
type recordingNotifier struct {
	notifications []Notification
}

func (r *recordingNotifier) Notify(n Notification) {
	r.notifications = append(r.notifications, n)
}

func (r *recordingNotifier) titles() []string {
	out := make([]string, len(r.notifications))
	for i, n := range r.notifications {
		out[i] = n.Title
	}
	return out
}

func newTestStore() (*Store, *fakeGateway, *recordingNotifier) {
	gw := &fakeGateway{items: []model.CartItem{}}
	notifier := &recordingNotifier{}
	return New(gw, notifier, zerolog.Nop()), gw, notifier
}

func testProduct(id, name, price string, discounted string) model.Product {
	p := model.Product{
		ID:      id,
		Name:    name,
		Price:   decimal.RequireFromString(price),
		InStock: true,
	}
	if discounted != "" {
		d := decimal.RequireFromString(discounted)
		p.DiscountedPrice = &d
	}
	return p
}

func TestStore_LoadPublishesPersistedCart(t *testing.T) {
	s, gw, _ := newTestStore()
	gw.items = []model.CartItem{
		{Product: testProduct("1", "Tee", "19.99", ""), Quantity: 2, Size: "M", Color: "white"},
	}

	var published [][]model.CartItem
	s.Subscribe(func(items []model.CartItem) {
		published = append(published, items)
	})

	require.NoError(t, s.Load(context.Background()))

	assert.False(t, s.Loading())
	require.Len(t, published, 1)
	assert.Equal(t, gw.items, published[0])
	assert.Equal(t, gw.items, s.Cart())
}

func TestStore_LoadFailureNotifiesAndKeepsEmptyCart(t *testing.T) {
	s, gw, notifier := newTestStore()
	gw.failNext = errors.New("disk gone")

	err := s.Load(context.Background())

	require.Error(t, err)
	assert.Empty(t, s.Cart())
	assert.False(t, s.Loading())
	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, SeverityError, notifier.notifications[0].Severity)
	assert.Equal(t, "Failed to load your cart. Please try again.", notifier.notifications[0].Message)
}

func TestStore_AddItemToCart(t *testing.T) {
	s, _, notifier := newTestStore()

	err := s.AddItemToCart(context.Background(), testProduct("1", "Tee", "19.99", ""), 2, "M", "white")

	require.NoError(t, err)
	items := s.Cart()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, []string{"Added to Cart"}, notifier.titles())
	assert.Equal(t, "Tee has been added to your cart.", notifier.notifications[0].Message)
}

func TestStore_AddItemToCartFailureLeavesStateUnchanged(t *testing.T) {
	s, gw, notifier := newTestStore()
	require.NoError(t, s.AddItemToCart(context.Background(), testProduct("1", "Tee", "19.99", ""), 1, "M", "white"))
	before := s.Cart()

	gw.failNext = errors.New("write failed")
	err := s.AddItemToCart(context.Background(), testProduct("2", "Jeans", "49.99", "39.99"), 1, "32", "blue")

	require.Error(t, err)
	assert.Equal(t, before, s.Cart())
	last := notifier.notifications[len(notifier.notifications)-1]
	assert.Equal(t, SeverityError, last.Severity)
	assert.Equal(t, "Failed to add item to your cart. Please try again.", last.Message)
}

func TestStore_UpdateItemQuantity(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.AddItemToCart(ctx, testProduct("1", "Tee", "19.99", ""), 1, "M", "white"))

	require.NoError(t, s.UpdateItemQuantity(ctx, 0, 4))
	assert.Equal(t, 4, s.Cart()[0].Quantity)

	// Quantity zero removes the item.
	require.NoError(t, s.UpdateItemQuantity(ctx, 0, 0))
	assert.Empty(t, s.Cart())
}

func TestStore_UpdateItemQuantityOutOfRangeIsNoOp(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.AddItemToCart(ctx, testProduct("1", "Tee", "19.99", ""), 1, "M", "white"))
	before := s.Cart()

	require.NoError(t, s.UpdateItemQuantity(ctx, 7, 3))

	assert.Equal(t, before, s.Cart())
}

func TestStore_RemoveItem(t *testing.T) {
	s, _, notifier := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.AddItemToCart(ctx, testProduct("1", "Tee", "19.99", ""), 1, "M", "white"))
	require.NoError(t, s.AddItemToCart(ctx, testProduct("2", "Jeans", "49.99", "39.99"), 1, "32", "blue"))

	require.NoError(t, s.RemoveItem(ctx, 0))

	items := s.Cart()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].Product.ID)
	assert.Contains(t, notifier.titles(), "Item Removed")
}

func TestStore_ClearAllItems(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.AddItemToCart(ctx, testProduct("1", "Tee", "19.99", ""), 2, "M", "white"))

	require.NoError(t, s.ClearAllItems(ctx))

	assert.Empty(t, s.Cart())
	assert.True(t, s.Total().IsZero())
}

func TestStore_TotalUsesDiscountedPrice(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.AddItemToCart(ctx, testProduct("1", "Tee", "19.99", ""), 1, "M", "white"))
	require.NoError(t, s.AddItemToCart(ctx, testProduct("2", "Jeans", "49.99", "39.99"), 2, "32", "blue"))

	// 19.99 + 2 x 39.99
	assert.True(t, s.Total().Equal(decimal.RequireFromString("99.97")))
}

func TestStore_PublishedStateMatchesGateway(t *testing.T) {
	s, gw, _ := newTestStore()
	ctx := context.Background()

	var last []model.CartItem
	s.Subscribe(func(items []model.CartItem) { last = items })

	require.NoError(t, s.AddItemToCart(ctx, testProduct("1", "Tee", "19.99", ""), 1, "M", "white"))
	require.NoError(t, s.UpdateItemQuantity(ctx, 0, 3))

	assert.Equal(t, gw.items, last)
	assert.Equal(t, gw.items, s.Cart())
}

func TestStore_Checkout(t *testing.T) {
	s, gw, notifier := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.AddItemToCart(ctx, testProduct("2", "Jeans", "49.99", "39.99"), 2, "32", "blue"))

	order, err := s.Checkout(ctx, model.CustomerDetails{Name: "Jane", Email: "jane@example.com", Address: "456 Oak Ave"})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "ord-042", order.ID)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("79.98")))

	// The cart was handed to the gateway before being cleared.
	require.Len(t, gw.lastOrder.Items, 1)
	assert.Empty(t, s.Cart())
	assert.Contains(t, notifier.titles(), "Order Placed")
}

func TestStore_CheckoutFailureKeepsCart(t *testing.T) {
	s, gw, notifier := newTestStore()
	ctx := context.Background()
	require.NoError(t, s.AddItemToCart(ctx, testProduct("1", "Tee", "19.99", ""), 1, "M", "white"))

	gw.failNext = errors.New("remote down")
	order, err := s.Checkout(ctx, model.CustomerDetails{Name: "Jane"})

	require.Error(t, err)
	assert.Nil(t, order)
	require.Len(t, s.Cart(), 1)
	last := notifier.notifications[len(notifier.notifications)-1]
	assert.Equal(t, "Failed to place your order. Please try again.", last.Message)
}
