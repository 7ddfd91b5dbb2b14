// Package catalog provides the in-memory product and order collection used
// whenever the remote API is not reachable. The catalogue is an explicitly
// owned value injected into its consumers, so tests can substitute fixtures
// and parallel runs do not share state.
package catalog

import (
	"sync"

	"stylestore/internal/model"
)

// Document is the serialized form of a catalogue: the shape of the seed files
// loaded at startup.
type Document struct {
	Products []model.Product `json:"products"`
	Orders   []model.Order   `json:"orders"`
}

// Catalog holds products and orders. Products are read-only after
// construction; orders grow through AppendOrder and mutate through
// UpdateOrderStatus.
type Catalog struct {
	mu       sync.RWMutex
	products []model.Product
	orders   []model.Order
}

// New creates a catalogue from the given document. The slices are copied so
// the caller retains no aliases into the catalogue's state.
func New(doc Document) *Catalog {
	c := &Catalog{
		products: make([]model.Product, len(doc.Products)),
		orders:   make([]model.Order, len(doc.Orders)),
	}
	copy(c.products, doc.Products)
	copy(c.orders, doc.Orders)
	return c
}

// Products returns all products.
func (c *Catalog) Products() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyProducts(c.products)
}

// ProductByID returns the product with the given id, or nil when absent.
func (c *Catalog) ProductByID(id string) *model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p
		}
	}
	return nil
}

// ProductsByCategory returns all products in the given category.
func (c *Catalog) ProductsByCategory(category string) []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []model.Product{}
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FeaturedProducts returns all products carrying the featured flag.
func (c *Catalog) FeaturedProducts() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []model.Product{}
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Orders returns all orders.
func (c *Catalog) Orders() []model.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// OrderByID returns the order with the given id, or nil when absent.
func (c *Catalog) OrderByID(id string) *model.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.orders {
		if c.orders[i].ID == id {
			o := c.orders[i]
			return &o
		}
	}
	return nil
}

// HasOrder reports whether an order with the given id exists.
func (c *Catalog) HasOrder(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.orders {
		if c.orders[i].ID == id {
			return true
		}
	}
	return false
}

// AppendOrder adds the order to the collection.
func (c *Catalog) AppendOrder(order model.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders = append(c.orders, order)
}

// UpdateOrderStatus sets the status of the order with the given id and
// returns the updated order, or nil when no such order exists.
func (c *Catalog) UpdateOrderStatus(id string, status model.OrderStatus) *model.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.orders {
		if c.orders[i].ID == id {
			c.orders[i].Status = status
			o := c.orders[i]
			return &o
		}
	}
	return nil
}

func copyProducts(products []model.Product) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)
	return out
}
