package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	// necessary import to wire up the postgres driver
	_ "github.com/lib/pq"
	"github.com/samber/mo"

	"foodeebot/core"
	"foodeebot/models"
)

type PostgresSessionsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for foodee_sessions table
var sessionsColumns = []string{
	"id",
	"slack_team_id",
	"slack_user_id",
	"username",
	"password",
	"token",
	"foodee_user_id",
	"email",
	"token_obtained_at",
	"created_at",
	"updated_at",
}

func NewPostgresSessionsRepository(db *sqlx.DB, schema string) *PostgresSessionsRepository {
	return &PostgresSessionsRepository{db: db, schema: schema}
}

func (r *PostgresSessionsRepository) GetSession(
	ctx context.Context,
	slackTeamID, slackUserID string,
) (mo.Option[*models.Session], error) {
	columnsStr := strings.Join(sessionsColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.foodee_sessions
		WHERE slack_team_id = $1 AND slack_user_id = $2`,
		columnsStr, r.schema)

	session := &models.Session{}
	err := r.db.QueryRowxContext(ctx, query, slackTeamID, slackUserID).StructScan(session)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return mo.None[*models.Session](), nil
		}
		return mo.None[*models.Session](), fmt.Errorf("failed to get session: %w", err)
	}

	return mo.Some(session), nil
}

// UpsertSession stores the session for its (team, user) pair, replacing any
// previous login.
func (r *PostgresSessionsRepository) UpsertSession(
	ctx context.Context,
	session *models.Session,
) (*models.Session, error) {
	sessionID := core.NewID("fs")

	insertColumns := []string{
		"id",
		"slack_team_id",
		"slack_user_id",
		"username",
		"password",
		"token",
		"foodee_user_id",
		"email",
		"token_obtained_at",
		"created_at",
		"updated_at",
	}
	columnsStr := strings.Join(insertColumns, ", ")
	returningStr := strings.Join(sessionsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.foodee_sessions (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (slack_team_id, slack_user_id) DO UPDATE SET
			username = EXCLUDED.username,
			password = EXCLUDED.password,
			token = EXCLUDED.token,
			foodee_user_id = EXCLUDED.foodee_user_id,
			email = EXCLUDED.email,
			token_obtained_at = EXCLUDED.token_obtained_at,
			updated_at = NOW()
		RETURNING %s`, r.schema, columnsStr, returningStr)

	stored := &models.Session{}
	err := r.db.QueryRowxContext(
		ctx,
		query,
		sessionID,
		session.SlackTeamID,
		session.SlackUserID,
		session.Username,
		session.Password,
		session.Token,
		session.FoodeeUserID,
		session.Email,
		session.TokenObtainedAt,
	).StructScan(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert session: %w", err)
	}

	return stored, nil
}

func (r *PostgresSessionsRepository) DeleteSession(
	ctx context.Context,
	slackTeamID, slackUserID string,
) error {
	query := fmt.Sprintf(`
		DELETE FROM %s.foodee_sessions
		WHERE slack_team_id = $1 AND slack_user_id = $2`, r.schema)

	if _, err := r.db.ExecContext(ctx, query, slackTeamID, slackUserID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
