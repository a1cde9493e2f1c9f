package clients

import (
	"context"
	"errors"
	"fmt"

	"foodeebot/models"
)

// ErrBadCredentials is returned by Login when Foodee rejects the
// username/password pair.
var ErrBadCredentials = errors.New("bad username or password")

// APIError represents a non-2xx response from the Foodee API that is not a
// credentials failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("foodee API error (status %d): %s", e.StatusCode, e.Message)
}

// FoodeeCredentials is the result of a successful sign-in.
type FoodeeCredentials struct {
	Token  string
	UserID string
	Email  string
}

// FoodeeAuth carries the token pair sent on every authenticated request.
type FoodeeAuth struct {
	Token string
	Email string
}

// FoodeeClient is the external ordering service. Implementations translate a
// 401 on sign-in into ErrBadCredentials and every other failure into an
// *APIError or transport error.
type FoodeeClient interface {
	// Login exchanges a username/password pair for an auth token.
	Login(ctx context.Context, username, password string) (*FoodeeCredentials, error)

	// GetFutureOrders lists upcoming group orders visible to the user.
	GetFutureOrders(ctx context.Context, auth FoodeeAuth) ([]models.OrderSummary, error)

	// GetPastOrders lists already-delivered group orders.
	GetPastOrders(ctx context.Context, auth FoodeeAuth) ([]models.OrderSummary, error)

	// GetOrder fetches the order header for a single group order by its UUID.
	// Returns an error wrapping core.ErrNotFound when the UUID is unknown.
	GetOrder(ctx context.Context, auth FoodeeAuth, uuid string) (*models.OrderSummary, error)

	// GetOrderMembers fetches one page of group-order members with their line
	// items. A page shorter than limit means there are no further pages; the
	// service guarantees no duplicate members across pages.
	GetOrderMembers(
		ctx context.Context,
		auth FoodeeAuth,
		orderID string,
		limit, offset int,
	) ([]models.OrderMember, error)
}
