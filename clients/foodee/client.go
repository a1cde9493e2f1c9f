package foodee

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"foodeebot/clients"
	"foodeebot/core"
	"foodeebot/models"
)

const (
	// BaseURL is the Foodee API base URL.
	BaseURL = "https://www.food.ee"

	// RateLimit caps outbound requests per second. Foodee serves browsers;
	// the bot stays well under anything that would look like scraping.
	RateLimit = 5.0

	// ListPageSize is the page size used when listing orders.
	ListPageSize = 25

	userAgent = "foodeebot/1.0"
)

// FoodeeHTTPClient implements the clients.FoodeeClient interface against the
// Foodee REST API.
type FoodeeHTTPClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a FoodeeHTTPClient.
type ClientOption func(*FoodeeHTTPClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *FoodeeHTTPClient) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *FoodeeHTTPClient) {
		c.baseURL = url
	}
}

// NewFoodeeClient creates a new rate-limited Foodee API client.
func NewFoodeeClient(opts ...ClientOption) clients.FoodeeClient {
	c := &FoodeeHTTPClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type signInResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Login exchanges the username/password pair for an auth token. A 401
// response maps to clients.ErrBadCredentials.
func (c *FoodeeHTTPClient) Login(
	ctx context.Context,
	username, password string,
) (*clients.FoodeeCredentials, error) {
	form := url.Values{}
	form.Set("user[email]", username)
	form.Set("user[password]", password)

	body, err := c.doForm(ctx, "/api/v2/users/sign_in", form)
	if err != nil {
		return nil, err
	}

	var response signInResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %w", err)
	}

	return &clients.FoodeeCredentials{
		Token:  response.Token,
		UserID: response.UserID,
		Email:  response.Email,
	}, nil
}

// GetFutureOrders lists upcoming group orders.
func (c *FoodeeHTTPClient) GetFutureOrders(
	ctx context.Context,
	auth clients.FoodeeAuth,
) ([]models.OrderSummary, error) {
	return c.listOrders(ctx, auth, "future")
}

// GetPastOrders lists already-delivered group orders.
func (c *FoodeeHTTPClient) GetPastOrders(
	ctx context.Context,
	auth clients.FoodeeAuth,
) ([]models.OrderSummary, error) {
	return c.listOrders(ctx, auth, "past")
}

func (c *FoodeeHTTPClient) listOrders(
	ctx context.Context,
	auth clients.FoodeeAuth,
	when string,
) ([]models.OrderSummary, error) {
	query := url.Values{}
	query.Set("page", "1")
	query.Set("per_page", strconv.Itoa(ListPageSize))
	query.Set("when", when)

	body, err := c.doGet(ctx, auth, "/api/v2/orders", query)
	if err != nil {
		return nil, err
	}

	var response apiOrderList
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode %s orders response: %w", when, err)
	}

	orders := make([]models.OrderSummary, 0, len(response.Data))
	for _, entry := range response.Data {
		orders = append(orders, entry.toOrderSummary())
	}
	return orders, nil
}

// GetOrder fetches the order header for a single group order by UUID.
func (c *FoodeeHTTPClient) GetOrder(
	ctx context.Context,
	auth clients.FoodeeAuth,
	uuid string,
) (*models.OrderSummary, error) {
	query := url.Values{}
	query.Set("filter[uuid]", uuid)
	query.Set("include", "restaurant")

	body, err := c.doGet(ctx, auth, "/api/v3/orders", query)
	if err != nil {
		return nil, err
	}

	var response apiOrderList
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}
	if len(response.Data) == 0 {
		return nil, fmt.Errorf("order %s: %w", uuid, core.ErrNotFound)
	}

	order := response.Data[0].toOrderSummary()
	return &order, nil
}

// GetOrderMembers fetches one page of group-order members with their items.
func (c *FoodeeHTTPClient) GetOrderMembers(
	ctx context.Context,
	auth clients.FoodeeAuth,
	orderID string,
	limit, offset int,
) ([]models.OrderMember, error) {
	query := url.Values{}
	query.Set("page[limit]", strconv.Itoa(limit))
	query.Set("page[offset]", strconv.Itoa(offset))
	query.Set("include", "order-items.menu-item,order-items.menu-option-items,order-items.order,order")

	path := fmt.Sprintf("/api/v3/orders/%s/group-order-members", orderID)
	body, err := c.doGet(ctx, auth, path, query)
	if err != nil {
		return nil, err
	}

	var response apiMemberList
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode group-order-members response: %w", err)
	}

	members := make([]models.OrderMember, 0, len(response.Data))
	for _, entry := range response.Data {
		members = append(members, entry.toOrderMember())
	}
	return members, nil
}

func (c *FoodeeHTTPClient) doForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json, text/javascript")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("User-Agent", userAgent)

	return c.do(req)
}

func (c *FoodeeHTTPClient) doGet(
	ctx context.Context,
	auth clients.FoodeeAuth,
	path string,
	query url.Values,
) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("Content-Type", "application/vnd.api+json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", fmt.Sprintf("Token token=%q, email=%q", auth.Token, auth.Email))

	return c.do(req)
}

func (c *FoodeeHTTPClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, clients.ErrBadCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &clients.APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}
	return body, nil
}

// Wire format for the Foodee JSON API.

type apiOrderList struct {
	Data []apiOrder `json:"data"`
}

type apiOrder struct {
	ID         string `json:"id"`
	Attributes struct {
		UUID           string    `json:"uuid"`
		Date           string    `json:"date"`
		DeliverAt      time.Time `json:"deliver-at"`
		RestaurantName string    `json:"restaurant-name"`
		ThumbnailURL   string    `json:"restaurant-thumbnail-url"`
	} `json:"attributes"`
}

func (o apiOrder) toOrderSummary() models.OrderSummary {
	date := o.Attributes.Date
	if date == "" && !o.Attributes.DeliverAt.IsZero() {
		date = o.Attributes.DeliverAt.Format("2006-01-02")
	}
	return models.OrderSummary{
		ID:             o.ID,
		UUID:           o.Attributes.UUID,
		Date:           date,
		RestaurantName: o.Attributes.RestaurantName,
		ThumbnailURL:   o.Attributes.ThumbnailURL,
		DeliveredAt:    o.Attributes.DeliverAt,
	}
}

type apiMemberList struct {
	Data []apiMember `json:"data"`
}

type apiMember struct {
	ID         string `json:"id"`
	Attributes struct {
		Name string `json:"name"`
	} `json:"attributes"`
	OrderItems []apiOrderItem `json:"order-items"`
}

type apiOrderItem struct {
	Name                string   `json:"name"`
	Quantity            int      `json:"quantity"`
	Price               string   `json:"price"`
	MenuOptionItems     []string `json:"menu-option-items"`
	SpecialInstructions []string `json:"special-instructions"`
}

func (m apiMember) toOrderMember() models.OrderMember {
	items := make([]models.LineItem, 0, len(m.OrderItems))
	for _, item := range m.OrderItems {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			price = decimal.Zero
		}
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		items = append(items, models.LineItem{
			Name:                item.Name,
			Quantity:            quantity,
			Modifiers:           item.MenuOptionItems,
			SpecialInstructions: item.SpecialInstructions,
			UnitPrice:           price,
		})
	}
	return models.OrderMember{
		DisplayName: m.Attributes.Name,
		Items:       items,
	}
}
