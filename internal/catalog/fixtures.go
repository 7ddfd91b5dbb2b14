package catalog

import (
	"github.com/shopspring/decimal"

	"stylestore/internal/model"
)

// Fixture returns the built-in seed catalogue used when no catalogue file is
// configured. Products and historical orders mirror the storefront's demo
// data set.
func Fixture() Document {
	products := []model.Product{
		{
			ID:          "1",
			Name:        "Classic White T-Shirt",
			Category:    "t-shirts",
			Price:       price("19.99"),
			Description: "A comfortable and versatile white t-shirt that goes with everything.",
			Images:      []string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?q=80&w=500&auto=format&fit=crop"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"white", "black", "gray"},
			InStock:     true,
			Featured:    true,
		},
		{
			ID:              "2",
			Name:            "Slim Fit Jeans",
			Category:        "pants",
			Price:           price("49.99"),
			DiscountedPrice: pricePtr("39.99"),
			Description:     "Modern slim fit jeans with a comfortable stretch fabric.",
			Images:          []string{"https://images.unsplash.com/photo-1542272604-787c3835535d?q=80&w=500&auto=format&fit=crop"},
			Sizes:           []string{"28", "30", "32", "34", "36"},
			Colors:          []string{"blue", "black", "gray"},
			InStock:         true,
			Featured:        true,
		},
		{
			ID:          "3",
			Name:        "Casual Summer Dress",
			Category:    "dresses",
			Price:       price("39.99"),
			Description: "Light and flowy summer dress perfect for warm days.",
			Images:      []string{"https://images.unsplash.com/photo-1496747611176-843222e1e57c?q=80&w=500&auto=format&fit=crop"},
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"floral", "blue", "white"},
			InStock:     true,
		},
		{
			ID:          "4",
			Name:        "Cotton Hoodie",
			Category:    "hoodies",
			Price:       price("45.99"),
			Description: "Soft cotton hoodie with front pocket and drawstring hood.",
			Images:      []string{"https://images.unsplash.com/photo-1556821840-3a63f95609a7?q=80&w=500&auto=format&fit=crop"},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"gray", "black", "navy"},
			InStock:     true,
			Featured:    true,
		},
		{
			ID:          "5",
			Name:        "Formal Blazer",
			Category:    "jackets",
			Price:       price("89.99"),
			Description: "Elegant blazer suitable for formal occasions and office wear.",
			Images:      []string{"https://images.unsplash.com/photo-1507679799987-c73779587ccf?q=80&w=500&auto=format&fit=crop"},
			Sizes:       []string{"36", "38", "40", "42", "44"},
			Colors:      []string{"black", "navy", "charcoal"},
			InStock:     true,
		},
		{
			ID:          "6",
			Name:        "Summer Shorts",
			Category:    "shorts",
			Price:       price("29.99"),
			Description: "Comfortable cotton shorts perfect for summer days.",
			Images:      []string{"https://images.unsplash.com/photo-1591195853828-11db59a44f6b?q=80&w=500&auto=format&fit=crop"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"beige", "navy", "olive"},
			InStock:     true,
		},
		{
			ID:              "7",
			Name:            "Athletic Sneakers",
			Category:        "shoes",
			Price:           price("79.99"),
			DiscountedPrice: pricePtr("59.99"),
			Description:     "Comfortable athletic sneakers suitable for running and casual wear.",
			Images:          []string{"https://images.unsplash.com/photo-1542291026-7eec264c27ff?q=80&w=500&auto=format&fit=crop"},
			Sizes:           []string{"7", "8", "9", "10", "11", "12"},
			Colors:          []string{"white", "black", "red"},
			InStock:         true,
			Featured:        true,
		},
		{
			ID:          "8",
			Name:        "Knit Sweater",
			Category:    "sweaters",
			Price:       price("54.99"),
			Description: "Warm knit sweater ideal for cooler evenings.",
			Images:      []string{"https://images.unsplash.com/photo-1576871337622-98d48d1cf531?q=80&w=500&auto=format&fit=crop"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"cream", "black", "forest"},
			InStock:     true,
		},
	}

	orders := []model.Order{
		{
			ID: "ord-001",
			Items: []model.CartItem{
				{Product: products[0], Quantity: 2, Size: "M", Color: "white"},
				{Product: products[1], Quantity: 1, Size: "32", Color: "blue"},
			},
			Total:  price("79.97"),
			Status: model.StatusDelivered,
			CustomerDetails: model.CustomerDetails{
				Name:    "John Doe",
				Email:   "john@example.com",
				Address: "123 Main St, Cityville, ST 12345",
				Phone:   "555-123-4567",
			},
			PaymentMethod: model.PaymentCashOnDelivery,
			Date:          "2023-04-15",
		},
		{
			ID: "ord-002",
			Items: []model.CartItem{
				{Product: products[3], Quantity: 1, Size: "L", Color: "black"},
			},
			Total:  price("45.99"),
			Status: model.StatusShipped,
			CustomerDetails: model.CustomerDetails{
				Name:    "Jane Smith",
				Email:   "jane@example.com",
				Address: "456 Oak Ave, Townsville, ST 67890",
				Phone:   "555-987-6543",
			},
			PaymentMethod: model.PaymentCashOnDelivery,
			Date:          "2023-04-17",
		},
		{
			ID: "ord-003",
			Items: []model.CartItem{
				{Product: products[4], Quantity: 1, Size: "40", Color: "navy"},
				{Product: products[6], Quantity: 1, Size: "9", Color: "black"},
			},
			Total:  price("149.98"),
			Status: model.StatusPending,
			CustomerDetails: model.CustomerDetails{
				Name:    "Robert Johnson",
				Email:   "robert@example.com",
				Address: "789 Pine Rd, Villagetown, ST 24680",
				Phone:   "555-456-7890",
			},
			PaymentMethod: model.PaymentCashOnDelivery,
			Date:          "2023-04-18",
		},
	}

	return Document{Products: products, Orders: orders}
}

// SalesSeries returns the static monthly sales series for the dashboard.
func SalesSeries() []model.SalesPoint {
	return []model.SalesPoint{
		{Name: "Jan", Total: 1250},
		{Name: "Feb", Total: 1900},
		{Name: "Mar", Total: 2300},
		{Name: "Apr", Total: 3200},
		{Name: "May", Total: 2800},
		{Name: "Jun", Total: 3500},
		{Name: "Jul", Total: 4000},
	}
}

// CategoryBreakdown returns the static category share series for the
// dashboard.
func CategoryBreakdown() []model.CategoryStat {
	return []model.CategoryStat{
		{Name: "t-shirts", Value: 35},
		{Name: "pants", Value: 25},
		{Name: "dresses", Value: 15},
		{Name: "hoodies", Value: 10},
		{Name: "jackets", Value: 8},
		{Name: "accessories", Value: 7},
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
