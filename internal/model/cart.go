package model

// CartItem represents a single line item in the shopping cart. The product is
// embedded in full so that cart contents survive catalogue changes.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
}

// SameSlot reports whether two line items occupy the same cart slot. Slot
// identity is the (product id, size, color) triple.
func (i CartItem) SameSlot(other CartItem) bool {
	return i.Product.ID == other.Product.ID &&
		i.Size == other.Size &&
		i.Color == other.Color
}
