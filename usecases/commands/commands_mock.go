package commands

import (
	"context"

	"github.com/stretchr/testify/mock"

	"foodeebot/models"
)

// MockCommandsUseCase is a mock implementation of the CommandsUseCaseInterface
type MockCommandsUseCase struct {
	mock.Mock
}

func (m *MockCommandsUseCase) HandleCommand(
	ctx context.Context,
	command models.SlashCommand,
) *models.CommandResult {
	args := m.Called(ctx, command)
	return args.Get(0).(*models.CommandResult)
}
