// Package cartstore persists the shopping cart as a single serialized value,
// the local equivalent of a browser storage slot.
package cartstore

import (
	"context"

	"stylestore/internal/model"
)

// Store reads and writes the persisted cart. Absence of a stored value loads
// as the empty cart.
type Store interface {
	// Load returns the previously stored cart. A missing or malformed value
	// loads as an empty cart, never as an error.
	Load(ctx context.Context) ([]model.CartItem, error)

	// Save serializes and stores the given cart, fully replacing prior
	// content.
	Save(ctx context.Context, items []model.CartItem) error

	// Clear removes the stored value entirely.
	Clear(ctx context.Context) error
}
