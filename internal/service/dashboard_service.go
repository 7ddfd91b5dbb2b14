package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"stylestore/internal/catalog"
	"stylestore/internal/model"
	"stylestore/internal/repository"
)

// dashboardService implements DashboardService over the order repository.
type dashboardService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(orderRepo repository.OrderRepository, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "dashboard").Logger(),
	}
}

// Stats computes revenue and order statistics across all orders. The sales
// and category series are the static demo data sets.
func (s *dashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get orders for dashboard stats")
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}

	totalRevenue := decimal.Zero
	for _, o := range orders {
		totalRevenue = totalRevenue.Add(o.Total)
	}

	avgOrderValue := decimal.Zero
	if len(orders) > 0 {
		avgOrderValue = totalRevenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}

	return &model.DashboardStats{
		TotalRevenue:   totalRevenue.Round(2),
		OrdersCount:    len(orders),
		AvgOrderValue:  avgOrderValue,
		CustomersCount: len(orders),
		SalesData:      catalog.SalesSeries(),
		CategoryStats:  catalog.CategoryBreakdown(),
	}, nil
}
