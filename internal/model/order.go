package model

import "github.com/shopspring/decimal"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order statuses. Newly created orders always start as pending.
const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// PaymentMethod identifies how an order is paid for. Cash on delivery is the
// only supported method and the default in fallback mode.
type PaymentMethod string

const PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"

// CustomerDetails holds the customer information captured at checkout.
type CustomerDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// Order represents a customer order. Line items are embedded in full, not
// referenced, so later catalogue changes do not affect historical orders.
type Order struct {
	ID              string          `json:"id"`
	Items           []CartItem      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	Date            string          `json:"date"`
}

// OrderRequest represents the request payload for creating an order.
type OrderRequest struct {
	Items           []CartItem      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
}

// StatusRequest represents the request payload for updating an order status.
type StatusRequest struct {
	Status OrderStatus `json:"status"`
}

// OrderTotal computes the order total over the given line items: the sum of
// effective unit price times quantity.
func OrderTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
