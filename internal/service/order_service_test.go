package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stylestore/internal/model"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func orderItems() []model.CartItem {
	products := testProducts()
	discounted := decimal.RequireFromString("39.99")
	products[1].DiscountedPrice = &discounted
	return []model.CartItem{
		{Product: products[0], Quantity: 2, Size: "M", Color: "white"},
		{Product: products[1], Quantity: 1, Size: "32", Color: "blue"},
	}
}

func orderCustomer() model.CustomerDetails {
	return model.CustomerDetails{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Address: "456 Oak Ave",
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	items := orderItems()
	req := &model.OrderRequest{
		Items:           items,
		Total:           decimal.RequireFromString("1.00"), // stale client total, ignored
		CustomerDetails: orderCustomer(),
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	mockProductRepo.On("GetByID", ctx, "1").Return(&items[0].Product, nil)
	mockProductRepo.On("GetByID", ctx, "2").Return(&items[1].Product, nil)
	mockOrderRepo.On("Create", ctx, mock.AnythingOfType("*model.Order")).Return(nil)

	order, err := service.CreateOrder(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.True(t, strings.HasPrefix(order.ID, "ord-"))
	assert.Equal(t, model.StatusPending, order.Status)
	assert.Equal(t, model.PaymentCashOnDelivery, order.PaymentMethod)
	assert.Equal(t, time.Now().Format(time.DateOnly), order.Date)
	// 2 x 19.99 + 39.99, recomputed server-side from the line items.
	assert.True(t, order.Total.Equal(decimal.RequireFromString("79.97")))

	mockProductRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_ProductNotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.OrderRequest{
		Items:           orderItems()[:1],
		CustomerDetails: orderCustomer(),
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	mockProductRepo.On("GetByID", ctx, "1").Return(nil, nil)

	order, err := service.CreateOrder(ctx, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
	assert.Nil(t, order)

	mockProductRepo.AssertExpectations(t)
	mockOrderRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_CreateOrder_ValidationErrors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	missingID := orderItems()[:1]
	missingID[0].Product.ID = ""

	zeroQty := orderItems()[:1]
	zeroQty[0].Quantity = 0

	negativeQty := orderItems()[:1]
	negativeQty[0].Quantity = -5

	tests := []struct {
		name        string
		req         *model.OrderRequest
		expectedErr error
	}{
		{
			name: "Nil request",
			req:  nil,
		},
		{
			name: "Empty items",
			req:  &model.OrderRequest{Items: []model.CartItem{}, CustomerDetails: orderCustomer()},
		},
		{
			name: "Missing customer details",
			req:  &model.OrderRequest{Items: orderItems()},
		},
		{
			name: "Empty product ID",
			req:  &model.OrderRequest{Items: missingID, CustomerDetails: orderCustomer()},
		},
		{
			name:        "Zero quantity",
			req:         &model.OrderRequest{Items: zeroQty, CustomerDetails: orderCustomer()},
			expectedErr: model.ErrInvalidQuantity,
		},
		{
			name:        "Negative quantity",
			req:         &model.OrderRequest{Items: negativeQty, CustomerDetails: orderCustomer()},
			expectedErr: model.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := service.CreateOrder(ctx, tt.req)

			require.Error(t, err)
			assert.Nil(t, order)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}

	mockOrderRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_CreateOrder_RepositoryError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	items := orderItems()[:1]
	req := &model.OrderRequest{Items: items, CustomerDetails: orderCustomer()}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)

	service := NewOrderService(mockOrderRepo, mockProductRepo, logger)

	mockProductRepo.On("GetByID", ctx, "1").Return(&items[0].Product, nil)
	mockOrderRepo.On("Create", ctx, mock.AnythingOfType("*model.Order")).
		Return(errors.New("database error"))

	order, err := service.CreateOrder(ctx, req)

	require.Error(t, err)
	assert.Nil(t, order)

	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	expected := []model.Order{{ID: "ord-001"}, {ID: "ord-002"}}

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, new(MockProductRepository), logger)

	mockOrderRepo.On("GetAll", ctx).Return(expected, nil)

	orders, err := service.GetAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, orders)
	mockOrderRepo.AssertExpectations(t)
}

func TestOrderService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	order := &model.Order{ID: "ord-001", Status: model.StatusDelivered}

	tests := []struct {
		name        string
		id          string
		mockOrder   *model.Order
		mockError   error
		expectedErr error
	}{
		{
			name:      "Success",
			id:        "ord-001",
			mockOrder: order,
		},
		{
			name:        "Not found",
			id:          "ord-999",
			mockOrder:   nil,
			expectedErr: model.ErrOrderNotFound,
		},
		{
			name:      "Repository error",
			id:        "ord-001",
			mockError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			service := NewOrderService(mockOrderRepo, new(MockProductRepository), logger)

			mockOrderRepo.On("GetByID", ctx, tt.id).Return(tt.mockOrder, tt.mockError)

			result, err := service.GetByID(ctx, tt.id)

			switch {
			case tt.expectedErr != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.mockError != nil:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.mockOrder, result)
			}

			mockOrderRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	updated := &model.Order{ID: "ord-001", Status: model.StatusShipped}

	tests := []struct {
		name        string
		id          string
		status      model.OrderStatus
		mockOrder   *model.Order
		mockError   error
		expectedErr error
		expectCall  bool
	}{
		{
			name:       "Success",
			id:         "ord-001",
			status:     model.StatusShipped,
			mockOrder:  updated,
			expectCall: true,
		},
		{
			name:        "Invalid status",
			id:          "ord-001",
			status:      model.OrderStatus("teleported"),
			expectedErr: model.ErrInvalidStatus,
			expectCall:  false,
		},
		{
			name:        "Order not found",
			id:          "ord-999",
			status:      model.StatusShipped,
			mockOrder:   nil,
			expectedErr: model.ErrOrderNotFound,
			expectCall:  true,
		},
		{
			name:       "Repository error",
			id:         "ord-001",
			status:     model.StatusShipped,
			mockError:  errors.New("database error"),
			expectCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			service := NewOrderService(mockOrderRepo, new(MockProductRepository), logger)

			if tt.expectCall {
				mockOrderRepo.On("UpdateStatus", ctx, tt.id, tt.status).Return(tt.mockOrder, tt.mockError)
			}

			result, err := service.UpdateStatus(ctx, tt.id, tt.status)

			switch {
			case tt.expectedErr != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			case tt.mockError != nil:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.mockOrder, result)
			}

			mockOrderRepo.AssertExpectations(t)
		})
	}
}
