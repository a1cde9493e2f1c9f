package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"foodeebot/clients"
	"foodeebot/models"
	"foodeebot/services"
	"foodeebot/usecases"
)

const (
	usageText = "Usage:\n" +
		"`/foodee login <username> <password>` - log in with your Foodee account\n" +
		"`/foodee logout` - forget your stored login\n" +
		"`/foodee today` - show today's group order\n" +
		"`/foodee date <YYYY-MM-DD>` - show the group order for a date"

	genericErrorText   = "Something went wrong talking to Foodee. Please try again later."
	notLoggedInText    = "Not logged in. Use `login` first."
	badCredentialsText = "Bad Username or password"
)

// CommandsUseCase is the slash-command dispatcher. It maps a subcommand plus
// its arguments and the stored session state onto exactly one CommandResult;
// no failure escapes without being translated into an ephemeral reply.
type CommandsUseCase struct {
	sessionsService services.SessionsService
	foodeeClient    clients.FoodeeClient
	ordersUseCase   usecases.OrdersUseCaseInterface
	responseStyle   ResponseStyle
	now             func() time.Time
}

func NewCommandsUseCase(
	sessionsService services.SessionsService,
	foodeeClient clients.FoodeeClient,
	ordersUseCase usecases.OrdersUseCaseInterface,
	responseStyle ResponseStyle,
) *CommandsUseCase {
	return &CommandsUseCase{
		sessionsService: sessionsService,
		foodeeClient:    foodeeClient,
		ordersUseCase:   ordersUseCase,
		responseStyle:   responseStyle,
		now:             time.Now,
	}
}

// HandleCommand dispatches a parsed slash command and always returns a result.
func (u *CommandsUseCase) HandleCommand(
	ctx context.Context,
	command models.SlashCommand,
) *models.CommandResult {
	log.Printf("⚡ Dispatching subcommand %q for team %s user %s",
		command.Subcommand, command.SlackTeamID, command.SlackUserID)

	switch command.Subcommand {
	case "login":
		return u.Login(ctx, command)
	case "logout":
		return u.Logout(ctx, command)
	case "date":
		return u.Date(ctx, command)
	case "today":
		command.Args = nil
		return u.Date(ctx, command)
	default:
		// Unrecognized or missing subcommand: plain usage, no error prefix.
		return u.Usage("")
	}
}

// Usage returns the ephemeral usage text, optionally prefixed with a bolded
// error message.
func (u *CommandsUseCase) Usage(errorMessage string) *models.CommandResult {
	if errorMessage == "" {
		return models.NewEphemeralResult(usageText)
	}
	return models.NewEphemeralResult(fmt.Sprintf("*%s*\n%s", errorMessage, usageText))
}

// Login authenticates against Foodee and persists the session on success.
func (u *CommandsUseCase) Login(
	ctx context.Context,
	command models.SlashCommand,
) *models.CommandResult {
	if len(command.Args) == 0 {
		return u.Usage("No username provided")
	}
	if len(command.Args) == 1 {
		return u.Usage("No password provided")
	}
	username, password := command.Args[0], command.Args[1]

	credentials, err := u.foodeeClient.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, clients.ErrBadCredentials) {
			log.Printf("⚠️ Foodee rejected credentials for user %s", command.SlackUserID)
			return models.NewEphemeralResult(badCredentialsText)
		}
		log.Printf("❌ Foodee login failed: %v", err)
		return models.NewEphemeralResult(genericErrorText)
	}

	session := &models.Session{
		SlackTeamID:     command.SlackTeamID,
		SlackUserID:     command.SlackUserID,
		Username:        username,
		Password:        password,
		Token:           credentials.Token,
		FoodeeUserID:    credentials.UserID,
		Email:           credentials.Email,
		TokenObtainedAt: u.now().UTC(),
	}
	if _, err := u.sessionsService.UpsertSession(ctx, session); err != nil {
		log.Printf("❌ Failed to persist session: %v", err)
		return models.NewEphemeralResult(genericErrorText)
	}

	log.Printf("✅ Logged in team %s user %s as %s", command.SlackTeamID, command.SlackUserID, credentials.Email)
	return models.NewEphemeralResult(fmt.Sprintf("Logged in as %s", credentials.Email))
}

// Logout clears the stored session for the requesting team/user pair.
func (u *CommandsUseCase) Logout(
	ctx context.Context,
	command models.SlashCommand,
) *models.CommandResult {
	if err := u.sessionsService.DeleteSession(ctx, command.SlackTeamID, command.SlackUserID); err != nil {
		log.Printf("❌ Failed to delete session: %v", err)
		return models.NewEphemeralResult(genericErrorText)
	}
	return models.NewEphemeralResult("Logged out")
}

// Date resolves the group order for the requested (or current) calendar date
// and renders it in the configured response style.
func (u *CommandsUseCase) Date(
	ctx context.Context,
	command models.SlashCommand,
) *models.CommandResult {
	maybeSession, err := u.sessionsService.GetSession(ctx, command.SlackTeamID, command.SlackUserID)
	if err != nil {
		log.Printf("❌ Failed to look up session: %v", err)
		return models.NewEphemeralResult(genericErrorText)
	}
	if !maybeSession.IsPresent() || !maybeSession.MustGet().IsAuthenticated() {
		return models.NewEphemeralResult(notLoggedInText)
	}
	session := maybeSession.MustGet()

	date, result := u.resolveDateArg(command.Args)
	if result != nil {
		return result
	}

	maybeDetail, err := u.ordersUseCase.ResolveOrderForDate(ctx, session, date)
	if err != nil {
		log.Printf("❌ Failed to resolve order for %s: %v", date, err)
		return models.NewEphemeralResult(genericErrorText)
	}

	return FormatOrderResult(date, maybeDetail, u.responseStyle)
}

// resolveDateArg turns the date arguments into a YYYY-MM-DD string, defaulting
// to today. A non-nil result means the arguments were rejected.
func (u *CommandsUseCase) resolveDateArg(args []string) (string, *models.CommandResult) {
	switch len(args) {
	case 0:
		return u.now().Format("2006-01-02"), nil
	case 1:
		parsed, err := time.Parse("2006-01-02", args[0])
		if err != nil {
			return "", u.Usage(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", args[0]))
		}
		return parsed.Format("2006-01-02"), nil
	default:
		return "", u.Usage("Too many arguments")
	}
}
