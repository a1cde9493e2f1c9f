package foodee

import (
	"context"

	"github.com/stretchr/testify/mock"

	"foodeebot/clients"
	"foodeebot/models"
)

// MockFoodeeClient is a mock implementation of the clients.FoodeeClient interface
type MockFoodeeClient struct {
	mock.Mock
}

func (m *MockFoodeeClient) Login(
	ctx context.Context,
	username, password string,
) (*clients.FoodeeCredentials, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.FoodeeCredentials), args.Error(1)
}

func (m *MockFoodeeClient) GetFutureOrders(
	ctx context.Context,
	auth clients.FoodeeAuth,
) ([]models.OrderSummary, error) {
	args := m.Called(ctx, auth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderSummary), args.Error(1)
}

func (m *MockFoodeeClient) GetPastOrders(
	ctx context.Context,
	auth clients.FoodeeAuth,
) ([]models.OrderSummary, error) {
	args := m.Called(ctx, auth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderSummary), args.Error(1)
}

func (m *MockFoodeeClient) GetOrder(
	ctx context.Context,
	auth clients.FoodeeAuth,
	uuid string,
) (*models.OrderSummary, error) {
	args := m.Called(ctx, auth, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderSummary), args.Error(1)
}

func (m *MockFoodeeClient) GetOrderMembers(
	ctx context.Context,
	auth clients.FoodeeAuth,
	orderID string,
	limit, offset int,
) ([]models.OrderMember, error) {
	args := m.Called(ctx, auth, orderID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderMember), args.Error(1)
}
