package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSummary is a single entry from the Foodee order listing. It carries
// just enough to match an order against a requested calendar date.
type OrderSummary struct {
	ID             string    `json:"id"`
	UUID           string    `json:"uuid"`
	Date           string    `json:"date"`
	RestaurantName string    `json:"restaurant_name"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	DeliveredAt    time.Time `json:"delivered_at"`
}

// OrderDetail is a fully resolved group order, with the per-member item
// breakdown fetched across all member pages.
type OrderDetail struct {
	UUID           string        `json:"uuid"`
	RestaurantName string        `json:"restaurant_name"`
	ThumbnailURL   string        `json:"thumbnail_url"`
	DeliveredAt    time.Time     `json:"delivered_at"`
	Members        []OrderMember `json:"members"`
}

// Total sums the line-item prices across all members.
func (d *OrderDetail) Total() decimal.Decimal {
	total := decimal.Zero
	for _, member := range d.Members {
		for _, item := range member.Items {
			total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return total
}

// OrderMember is one participant in a group order.
type OrderMember struct {
	DisplayName string     `json:"display_name"`
	Items       []LineItem `json:"items"`
}

// LineItem is a single ordered menu item plus its add-ons.
type LineItem struct {
	Name                string          `json:"name"`
	Quantity            int             `json:"quantity"`
	Modifiers           []string        `json:"modifiers,omitempty"`
	SpecialInstructions []string        `json:"special_instructions,omitempty"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
}
