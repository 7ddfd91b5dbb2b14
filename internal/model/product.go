package model

import "github.com/shopspring/decimal"

// Product represents a clothing product in the catalogue. Products are
// read-only once loaded for the lifetime of a session.
type Product struct {
	ID              string           `json:"id" db:"id"`
	Name            string           `json:"name" db:"name"`
	Category        string           `json:"category" db:"category"`
	Price           decimal.Decimal  `json:"price" db:"price"`
	DiscountedPrice *decimal.Decimal `json:"discountedPrice,omitempty" db:"discounted_price"`
	Description     string           `json:"description" db:"description"`
	Images          []string         `json:"images" db:"images"`
	Sizes           []string         `json:"sizes" db:"sizes"`
	Colors          []string         `json:"colors" db:"colors"`
	InStock         bool             `json:"inStock" db:"in_stock"`
	Featured        bool             `json:"featured" db:"featured"`
}

// EffectivePrice returns the discounted price when one is set, otherwise the
// list price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}
