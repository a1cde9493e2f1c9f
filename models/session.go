package models

import (
	"time"
)

// Session holds the Foodee credentials and auth token stored for a single
// Slack team + user pair. It is overwritten in full on every successful login.
type Session struct {
	ID              string    `db:"id"                json:"id"`
	SlackTeamID     string    `db:"slack_team_id"     json:"slack_team_id"`
	SlackUserID     string    `db:"slack_user_id"     json:"slack_user_id"`
	Username        string    `db:"username"          json:"username"`
	Password        string    `db:"password"          json:"-"`
	Token           string    `db:"token"             json:"-"`
	FoodeeUserID    string    `db:"foodee_user_id"    json:"foodee_user_id"`
	Email           string    `db:"email"             json:"email"`
	TokenObtainedAt time.Time `db:"token_obtained_at" json:"token_obtained_at"`
	CreatedAt       time.Time `db:"created_at"        json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"        json:"updated_at"`
}

// IsAuthenticated reports whether the session carries everything needed to
// call the Foodee API. A missing token, email or user ID forces a re-login.
func (s *Session) IsAuthenticated() bool {
	return s.Token != "" && s.Email != "" && s.FoodeeUserID != ""
}
