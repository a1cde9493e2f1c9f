package usecases

import (
	"context"

	"github.com/samber/mo"

	"foodeebot/models"
)

// OrdersUseCaseInterface defines the interface for order aggregation operations
type OrdersUseCaseInterface interface {
	ResolveOrderForDate(
		ctx context.Context,
		session *models.Session,
		date string,
	) (mo.Option[*models.OrderDetail], error)
}

// CommandsUseCaseInterface defines the interface for slash-command dispatch
type CommandsUseCaseInterface interface {
	HandleCommand(ctx context.Context, command models.SlashCommand) *models.CommandResult
}
