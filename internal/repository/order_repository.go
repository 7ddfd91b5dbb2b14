package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"stylestore/internal/model"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
// Line items and customer details are stored as JSONB documents so historical
// orders are immune to later catalogue changes.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

const orderColumns = `id, items, total, status, customer_details, payment_method, order_date`

// GetAll retrieves all orders.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// GetByID retrieves an order by its ID.
func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", id).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return o, nil
}

// Create inserts a new order.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO orders (id, items, total, status, customer_details, payment_method, order_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}
	customer, err := json.Marshal(order.CustomerDetails)
	if err != nil {
		return fmt.Errorf("failed to encode customer details: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		order.ID, items, order.Total, string(order.Status), customer, string(order.PaymentMethod), order.Date,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().Str("order_id", order.ID).Msg("order created")
	return nil
}

// UpdateStatus sets the status of the order with the given ID and returns the
// updated order.
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns + `
	`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", id).Msg("order not found for status update")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return o, nil
}

// scanOrder scans a single order row, decoding the JSONB item and customer
// documents.
func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var items, customer []byte
	var status, payment string

	err := row.Scan(&o.ID, &items, &o.Total, &status, &customer, &payment, &o.Date)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	if err := json.Unmarshal(customer, &o.CustomerDetails); err != nil {
		return nil, fmt.Errorf("failed to decode customer details: %w", err)
	}

	o.Status = model.OrderStatus(status)
	o.PaymentMethod = model.PaymentMethod(payment)
	return &o, nil
}
