package model

import "github.com/shopspring/decimal"

// SalesPoint is one month of the sales series shown on the admin dashboard.
type SalesPoint struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// CategoryStat is one slice of the category breakdown shown on the admin
// dashboard.
type CategoryStat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DashboardStats is the payload of the admin dashboard stats endpoint.
type DashboardStats struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	OrdersCount    int             `json:"ordersCount"`
	AvgOrderValue  decimal.Decimal `json:"avgOrderValue"`
	CustomersCount int             `json:"customersCount"`
	SalesData      []SalesPoint    `json:"salesData"`
	CategoryStats  []CategoryStat  `json:"categoryStats"`
}
