package sessions

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"foodeebot/models"
)

// MockSessionsService is a mock implementation of the SessionsService interface
type MockSessionsService struct {
	mock.Mock
}

func (m *MockSessionsService) GetSession(
	ctx context.Context,
	slackTeamID, slackUserID string,
) (mo.Option[*models.Session], error) {
	args := m.Called(ctx, slackTeamID, slackUserID)
	return args.Get(0).(mo.Option[*models.Session]), args.Error(1)
}

func (m *MockSessionsService) UpsertSession(
	ctx context.Context,
	session *models.Session,
) (*models.Session, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionsService) DeleteSession(
	ctx context.Context,
	slackTeamID, slackUserID string,
) error {
	args := m.Called(ctx, slackTeamID, slackUserID)
	return args.Error(0)
}
