package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/slack-go/slack"

	"foodeebot/models"
	"foodeebot/usecases"
)

// SlackCommandsHandler is the inbound chat-platform adapter: it verifies the
// request signature, parses the slash-command payload and replies with the
// dispatcher's CommandResult as JSON.
type SlackCommandsHandler struct {
	signingSecret   string
	commandsUseCase usecases.CommandsUseCaseInterface
}

func NewSlackCommandsHandler(
	signingSecret string,
	commandsUseCase usecases.CommandsUseCaseInterface,
) *SlackCommandsHandler {
	return &SlackCommandsHandler{
		signingSecret:   signingSecret,
		commandsUseCase: commandsUseCase,
	}
}

func (h *SlackCommandsHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/slack/commands", h.HandleSlackCommand).Methods("POST")
}

func (h *SlackCommandsHandler) HandleSlackCommand(w http.ResponseWriter, r *http.Request) {
	log.Printf("⚡ Slack command received from %s", r.RemoteAddr)
	var buf bytes.Buffer
	tee := io.TeeReader(r.Body, &buf)

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		log.Printf("❌ Invalid secret verifier: %v", err)
		http.Error(w, "invalid secret verifier", http.StatusUnauthorized)
		return
	}

	if _, err := io.Copy(&verifier, tee); err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		http.Error(w, "failed to read body", http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		log.Printf("❌ Slack signature verification failed: %v", err)
		http.Error(w, "signature verification failed", http.StatusUnauthorized)
		return
	}

	r.Body = io.NopCloser(&buf)

	slashCommand, err := slack.SlashCommandParse(r)
	if err != nil {
		log.Printf("❌ Failed to parse slash command: %v", err)
		http.Error(w, "failed to parse slash command", http.StatusInternalServerError)
		return
	}

	command := ParseSlashCommand(slashCommand)
	log.Printf("⚡ Parsed slash command: %s %q from user %s in team %s",
		slashCommand.Command, command.Subcommand, command.SlackUserID, command.SlackTeamID)

	result := h.commandsUseCase.HandleCommand(r.Context(), command)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("❌ Failed to write command response: %v", err)
	}
}

// ParseSlashCommand splits the free-form command text into the subcommand
// name and its whitespace-separated arguments.
func ParseSlashCommand(slashCommand slack.SlashCommand) models.SlashCommand {
	command := models.SlashCommand{
		SlackTeamID: slashCommand.TeamID,
		SlackUserID: slashCommand.UserID,
	}
	fields := strings.Fields(slashCommand.Text)
	if len(fields) > 0 {
		command.Subcommand = fields[0]
		command.Args = fields[1:]
	}
	return command
}
