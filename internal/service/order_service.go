package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"stylestore/internal/model"
	"stylestore/internal/repository"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
	now         func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
		now:         time.Now,
	}
}

// CreateOrder creates a new order. The total is recomputed server-side from
// the embedded line items so a stale client total is never persisted.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if err := s.validateOrderRequest(ctx, req); err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:              newOrderID(),
		Items:           req.Items,
		Total:           model.OrderTotal(req.Items),
		Status:          model.StatusPending,
		CustomerDetails: req.CustomerDetails,
		PaymentMethod:   model.PaymentCashOnDelivery,
		Date:            s.now().Format(time.DateOnly),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Str("total", order.Total.String()).
		Msg("order created successfully")

	return order, nil
}

// GetAll retrieves all orders.
func (s *orderService) GetAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves an order by its ID.
func (s *orderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

// UpdateStatus sets the status of an existing order.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		s.logger.Warn().Str("status", string(status)).Msg("unknown order status")
		return nil, model.ErrInvalidStatus
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id).Msg("order not found for status update")
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("order_id", id).
		Str("status", string(status)).
		Msg("order status updated")

	return order, nil
}

// validateOrderRequest validates the order request, including that every
// referenced product still exists.
func (s *orderService) validateOrderRequest(ctx context.Context, req *model.OrderRequest) error {
	if req == nil {
		return fmt.Errorf("order request is nil")
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("order must contain at least one item")
	}

	if req.CustomerDetails.Name == "" || req.CustomerDetails.Email == "" || req.CustomerDetails.Address == "" {
		return fmt.Errorf("customer name, email and address are required")
	}

	for i, item := range req.Items {
		if item.Product.ID == "" {
			return fmt.Errorf("item %d: product ID is required", i)
		}

		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.Product.ID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}

		product, err := s.productRepo.GetByID(ctx, item.Product.ID)
		if err != nil {
			return fmt.Errorf("failed to validate product %s: %w", item.Product.ID, err)
		}
		if product == nil {
			s.logger.Warn().Str("product_id", item.Product.ID).Msg("order references unknown product")
			return model.ErrProductNotFound
		}
	}

	return nil
}

// newOrderID generates a prefixed order identifier from a random UUID
// fragment.
func newOrderID() string {
	return "ord-" + uuid.NewString()[:8]
}
