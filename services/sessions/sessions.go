package sessions

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"foodeebot/db"
	"foodeebot/models"
)

type SessionsService struct {
	sessionsRepo *db.PostgresSessionsRepository
}

func NewSessionsService(repo *db.PostgresSessionsRepository) *SessionsService {
	return &SessionsService{sessionsRepo: repo}
}

func (s *SessionsService) GetSession(
	ctx context.Context,
	slackTeamID, slackUserID string,
) (mo.Option[*models.Session], error) {
	log.Printf("📋 Starting to get session for team: %s, user: %s", slackTeamID, slackUserID)

	if slackTeamID == "" {
		return mo.None[*models.Session](), fmt.Errorf("slack_team_id cannot be empty")
	}
	if slackUserID == "" {
		return mo.None[*models.Session](), fmt.Errorf("slack_user_id cannot be empty")
	}

	maybeSession, err := s.sessionsRepo.GetSession(ctx, slackTeamID, slackUserID)
	if err != nil {
		return mo.None[*models.Session](), fmt.Errorf("failed to get session: %w", err)
	}

	log.Printf("📋 Completed successfully - session present: %t", maybeSession.IsPresent())
	return maybeSession, nil
}

func (s *SessionsService) UpsertSession(
	ctx context.Context,
	session *models.Session,
) (*models.Session, error) {
	log.Printf("📋 Starting to upsert session for team: %s, user: %s", session.SlackTeamID, session.SlackUserID)

	if session.SlackTeamID == "" {
		return nil, fmt.Errorf("slack_team_id cannot be empty")
	}
	if session.SlackUserID == "" {
		return nil, fmt.Errorf("slack_user_id cannot be empty")
	}
	if session.Username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	stored, err := s.sessionsRepo.UpsertSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert session: %w", err)
	}

	log.Printf("📋 Completed successfully - stored session with ID: %s", stored.ID)
	return stored, nil
}

func (s *SessionsService) DeleteSession(
	ctx context.Context,
	slackTeamID, slackUserID string,
) error {
	log.Printf("📋 Starting to delete session for team: %s, user: %s", slackTeamID, slackUserID)

	if slackTeamID == "" {
		return fmt.Errorf("slack_team_id cannot be empty")
	}
	if slackUserID == "" {
		return fmt.Errorf("slack_user_id cannot be empty")
	}

	if err := s.sessionsRepo.DeleteSession(ctx, slackTeamID, slackUserID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	log.Printf("📋 Completed successfully - deleted session")
	return nil
}
