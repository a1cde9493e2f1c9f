package models

import (
	"github.com/slack-go/slack"
)

// Response types understood by the Slack slash-command surface.
const (
	ResponseTypeEphemeral = "ephemeral"
	ResponseTypeInChannel = "in_channel"
)

// SlashCommand is the inbound command after the platform adapter has parsed
// the Slack payload: the subcommand name plus its whitespace-split arguments.
type SlashCommand struct {
	SlackTeamID string   `json:"team_id"`
	SlackUserID string   `json:"user_id"`
	Subcommand  string   `json:"subcommand"`
	Args        []string `json:"args"`
}

// CommandResult is the single reply produced for a slash command. Exactly one
// of Text or Attachments is populated: ephemeral results are always plain
// text, in_channel results carry either text or one rich attachment depending
// on the configured response style.
type CommandResult struct {
	ResponseType string             `json:"response_type"`
	Text         string             `json:"text,omitempty"`
	Attachments  []slack.Attachment `json:"attachments,omitempty"`
}

// NewEphemeralResult builds a private plain-text reply.
func NewEphemeralResult(text string) *CommandResult {
	return &CommandResult{
		ResponseType: ResponseTypeEphemeral,
		Text:         text,
	}
}
