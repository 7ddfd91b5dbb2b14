// Package cart implements the pure merge/update/remove semantics over a list
// of cart line items. Functions never mutate their input; callers persist the
// returned slice.
package cart

import (
	"github.com/shopspring/decimal"

	"stylestore/internal/model"
)

// Merge adds item to the cart. If a line item with the same
// (product id, size, color) slot already exists its quantity is incremented by
// item.Quantity, otherwise item is appended.
func Merge(items []model.CartItem, item model.CartItem) []model.CartItem {
	out := clone(items)
	for i := range out {
		if out[i].SameSlot(item) {
			out[i].Quantity += item.Quantity
			return out
		}
	}
	return append(out, item)
}

// SetQuantity replaces the quantity of the line item at index. A quantity of
// zero or less removes the item. An out-of-range index leaves the cart
// unchanged; this is deliberate tolerant behaviour, not an error.
func SetQuantity(items []model.CartItem, index, quantity int) []model.CartItem {
	if outOfRange(items, index) {
		return items
	}
	if quantity <= 0 {
		return RemoveAt(items, index)
	}
	out := clone(items)
	out[index].Quantity = quantity
	return out
}

// RemoveAt removes the line item at index. An out-of-range index leaves the
// cart unchanged.
func RemoveAt(items []model.CartItem, index int) []model.CartItem {
	if outOfRange(items, index) {
		return items
	}
	out := make([]model.CartItem, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...)
}

// Clear returns the empty cart.
func Clear() []model.CartItem {
	return []model.CartItem{}
}

// Total computes the cart total: the sum of effective unit price times
// quantity across all line items.
func Total(items []model.CartItem) decimal.Decimal {
	return model.OrderTotal(items)
}

func outOfRange(items []model.CartItem, index int) bool {
	return index < 0 || index >= len(items)
}

func clone(items []model.CartItem) []model.CartItem {
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out
}
