package orders

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"foodeebot/models"
)

// MockOrdersUseCase is a mock implementation of the OrdersUseCaseInterface
type MockOrdersUseCase struct {
	mock.Mock
}

func (m *MockOrdersUseCase) ResolveOrderForDate(
	ctx context.Context,
	session *models.Session,
	date string,
) (mo.Option[*models.OrderDetail], error) {
	args := m.Called(ctx, session, date)
	return args.Get(0).(mo.Option[*models.OrderDetail]), args.Error(1)
}
