package testutils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"foodeebot/models"
)

const slackIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomSlackID(prefix string) string {
	suffix := make([]byte, 8)
	for i := range suffix {
		suffix[i] = slackIDAlphabet[rand.Intn(len(slackIDAlphabet))]
	}
	return prefix + string(suffix)
}

// GenerateSlackTeamID returns a random Slack-style team ID
func GenerateSlackTeamID() string {
	return randomSlackID("T")
}

// GenerateSlackUserID returns a random Slack-style user ID
func GenerateSlackUserID() string {
	return randomSlackID("U")
}

// GenerateOrderUUID returns a random UUID-shaped order identifier
func GenerateOrderUUID() string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		rand.Uint32(), rand.Intn(0x10000), rand.Intn(0x10000), rand.Intn(0x10000), rand.Int63n(1<<48))
}

// AuthenticatedSession returns a session that passes IsAuthenticated.
func AuthenticatedSession(teamID, userID string) *models.Session {
	return &models.Session{
		ID:              "fs_01J0TESTSESSION0000000000",
		SlackTeamID:     teamID,
		SlackUserID:     userID,
		Username:        "gavin@example.com",
		Password:        "password",
		Token:           "token-123",
		FoodeeUserID:    "42",
		Email:           "gavin@example.com",
		TokenObtainedAt: time.Date(2016, 9, 18, 12, 0, 0, 0, time.UTC),
	}
}

// OrderSummaryFixture returns a listing entry for the given date.
func OrderSummaryFixture(uuid, date string, deliveredAt time.Time) models.OrderSummary {
	return models.OrderSummary{
		ID:             "105423",
		UUID:           uuid,
		Date:           date,
		RestaurantName: "Finch's Teahouse",
		ThumbnailURL:   "https://uploads.food.ee/uploads/images/restaurants/full_Finches02.jpg",
		DeliveredAt:    deliveredAt,
	}
}

// LineItemFixture builds a quantity-one item with the given name and price.
func LineItemFixture(name, price string) models.LineItem {
	return models.LineItem{
		Name:      name,
		Quantity:  1,
		UnitPrice: decimal.RequireFromString(price),
	}
}
