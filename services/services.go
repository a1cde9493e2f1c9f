package services

import (
	"context"

	"github.com/samber/mo"

	"foodeebot/models"
)

// SessionsService defines the interface for Foodee session storage operations
type SessionsService interface {
	GetSession(ctx context.Context, slackTeamID, slackUserID string) (mo.Option[*models.Session], error)
	UpsertSession(ctx context.Context, session *models.Session) (*models.Session, error)
	DeleteSession(ctx context.Context, slackTeamID, slackUserID string) error
}
