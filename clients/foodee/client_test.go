package foodee

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodeebot/clients"
	"foodeebot/core"
)

func newTestClient(handler http.Handler) (clients.FoodeeClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewFoodeeClient(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	return client, server
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v2/users/sign_in", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "gavin@example.com", r.PostForm.Get("user[email]"))
			assert.Equal(t, "password", r.PostForm.Get("user[password]"))
			w.Write([]byte(`{"token":"token-123","user_id":"42","email":"gavin@example.com"}`))
		}))
		defer server.Close()

		credentials, err := client.Login(context.Background(), "gavin@example.com", "password")

		require.NoError(t, err)
		assert.Equal(t, &clients.FoodeeCredentials{
			Token:  "token-123",
			UserID: "42",
			Email:  "gavin@example.com",
		}, credentials)
	})

	t.Run("unauthorized_maps_to_bad_credentials", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Invalid email or password."}`))
		}))
		defer server.Close()

		_, err := client.Login(context.Background(), "gavin@example.com", "wrong")

		assert.ErrorIs(t, err, clients.ErrBadCredentials)
	})

	t.Run("server_error_maps_to_api_error", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := client.Login(context.Background(), "gavin@example.com", "password")

		var apiErr *clients.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	})
}

func TestListOrders(t *testing.T) {
	auth := clients.FoodeeAuth{Token: "token-123", Email: "gavin@example.com"}
	listBody := `{"data":[{"id":"105423","attributes":{
		"uuid":"b7b18cc6-c95f-42e2-9b99-6c1c93440218",
		"date":"2016-09-19",
		"deliver-at":"2016-09-19T18:45:00Z",
		"restaurant-name":"Finch's Teahouse",
		"restaurant-thumbnail-url":"https://uploads.food.ee/x.jpg"}}]}`

	t.Run("future_orders", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/orders", r.URL.Path)
			assert.Equal(t, "future", r.URL.Query().Get("when"))
			assert.Equal(t, `Token token="token-123", email="gavin@example.com"`, r.Header.Get("Authorization"))
			w.Write([]byte(listBody))
		}))
		defer server.Close()

		orders, err := client.GetFutureOrders(context.Background(), auth)

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "105423", orders[0].ID)
		assert.Equal(t, "b7b18cc6-c95f-42e2-9b99-6c1c93440218", orders[0].UUID)
		assert.Equal(t, "2016-09-19", orders[0].Date)
		assert.Equal(t, "Finch's Teahouse", orders[0].RestaurantName)
	})

	t.Run("past_orders", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "past", r.URL.Query().Get("when"))
			w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		orders, err := client.GetPastOrders(context.Background(), auth)

		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("date_falls_back_to_delivery_day", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[{"id":"1","attributes":{
				"uuid":"u","deliver-at":"2016-09-19T18:45:00Z"}}]}`))
		}))
		defer server.Close()

		orders, err := client.GetFutureOrders(context.Background(), auth)

		require.NoError(t, err)
		assert.Equal(t, "2016-09-19", orders[0].Date)
	})
}

func TestGetOrder(t *testing.T) {
	auth := clients.FoodeeAuth{Token: "token-123", Email: "gavin@example.com"}

	t.Run("found", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v3/orders", r.URL.Path)
			assert.Equal(t, "uuid-1", r.URL.Query().Get("filter[uuid]"))
			w.Write([]byte(`{"data":[{"id":"105423","attributes":{
				"uuid":"uuid-1","date":"2016-09-19","deliver-at":"2016-09-19T18:45:00Z",
				"restaurant-name":"Finch's Teahouse"}}]}`))
		}))
		defer server.Close()

		order, err := client.GetOrder(context.Background(), auth, "uuid-1")

		require.NoError(t, err)
		assert.Equal(t, "105423", order.ID)
		assert.Equal(t, "uuid-1", order.UUID)
	})

	t.Run("missing_uuid_is_not_found", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		_, err := client.GetOrder(context.Background(), auth, "uuid-unknown")

		assert.True(t, core.IsNotFoundError(err))
	})
}

func TestGetOrderMembers(t *testing.T) {
	auth := clients.FoodeeAuth{Token: "token-123", Email: "gavin@example.com"}

	t.Run("decodes_members_and_items", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v3/orders/105423/group-order-members", r.URL.Path)
			assert.Equal(t, "300", r.URL.Query().Get("page[limit]"))
			assert.Equal(t, "0", r.URL.Query().Get("page[offset]"))
			w.Write([]byte(`{"data":[
				{"id":"1","attributes":{"name":"User 6"},"order-items":[
					{"name":"Good Drink Mango Iced Tea","quantity":2,"price":"3.50"},
					{"name":"Fish Tacos  (Serves 2-3)","quantity":1,"price":"21.00"}]},
				{"id":"2","attributes":{"name":"User 1"},"order-items":[
					{"name":"Satay Chicken","quantity":1,"price":"12.50","menu-option-items":["df"],
					 "special-instructions":["Plates"]}]}]}`))
		}))
		defer server.Close()

		members, err := client.GetOrderMembers(context.Background(), auth, "105423", 300, 0)

		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "User 6", members[0].DisplayName)
		require.Len(t, members[0].Items, 2)
		assert.Equal(t, 2, members[0].Items[0].Quantity)
		assert.Equal(t, "3.5", members[0].Items[0].UnitPrice.String())
		assert.Equal(t, []string{"df"}, members[1].Items[0].Modifiers)
		assert.Equal(t, []string{"Plates"}, members[1].Items[0].SpecialInstructions)
	})

	t.Run("zero_quantity_defaults_to_one", func(t *testing.T) {
		client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[{"id":"1","attributes":{"name":"User 1"},
				"order-items":[{"name":"Quinoa","price":"8.00"}]}]}`))
		}))
		defer server.Close()

		members, err := client.GetOrderMembers(context.Background(), auth, "105423", 300, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, members[0].Items[0].Quantity)
	})
}
