package orders

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/samber/mo"

	"foodeebot/clients"
	"foodeebot/core"
	"foodeebot/models"
)

// MemberPageSize is the fixed page size used when fetching group-order
// members. A page shorter than this means the last page was reached.
const MemberPageSize = 300

// OrdersUseCase resolves the group order active on a given calendar date and
// assembles its full per-member item breakdown.
type OrdersUseCase struct {
	foodeeClient clients.FoodeeClient
}

func NewOrdersUseCase(foodeeClient clients.FoodeeClient) *OrdersUseCase {
	return &OrdersUseCase{foodeeClient: foodeeClient}
}

type listOrdersResult struct {
	orders []models.OrderSummary
	err    error
}

// ResolveOrderForDate lists future and past orders, picks the single order
// matching the requested date and fetches its full member breakdown. Returns
// None when no order matches. Date comparison is calendar-date equality;
// with multiple matches the earliest delivery wins, ties broken by list order.
func (u *OrdersUseCase) ResolveOrderForDate(
	ctx context.Context,
	session *models.Session,
	date string,
) (mo.Option[*models.OrderDetail], error) {
	log.Printf("📋 Starting to resolve order for date: %s", date)

	auth := clients.FoodeeAuth{Token: session.Token, Email: session.Email}

	// The two listings are independent reads, fetch them concurrently
	futureCh := make(chan listOrdersResult, 1)
	pastCh := make(chan listOrdersResult, 1)
	go func() {
		orders, err := u.foodeeClient.GetFutureOrders(ctx, auth)
		futureCh <- listOrdersResult{orders: orders, err: err}
	}()
	go func() {
		orders, err := u.foodeeClient.GetPastOrders(ctx, auth)
		pastCh <- listOrdersResult{orders: orders, err: err}
	}()

	future := <-futureCh
	past := <-pastCh
	if future.err != nil {
		return mo.None[*models.OrderDetail](), fmt.Errorf("failed to list future orders: %w", future.err)
	}
	if past.err != nil {
		return mo.None[*models.OrderDetail](), fmt.Errorf("failed to list past orders: %w", past.err)
	}

	candidates := append(future.orders, past.orders...)
	maybeMatch := selectOrderForDate(candidates, date)
	if !maybeMatch.IsPresent() {
		log.Printf("📋 No order matches date %s across %d candidates", date, len(candidates))
		return mo.None[*models.OrderDetail](), nil
	}
	match := maybeMatch.MustGet()

	detail, err := u.fetchOrderDetail(ctx, auth, match)
	if err != nil {
		return mo.None[*models.OrderDetail](), err
	}

	log.Printf("📋 Completed successfully - resolved order %s with %d members", detail.UUID, len(detail.Members))
	return mo.Some(detail), nil
}

// selectOrderForDate filters candidates to the requested calendar date and
// picks the one delivered earliest, keeping the first on exact ties.
func selectOrderForDate(candidates []models.OrderSummary, date string) mo.Option[models.OrderSummary] {
	var match mo.Option[models.OrderSummary]
	for _, candidate := range candidates {
		if candidate.Date != date {
			continue
		}
		if !match.IsPresent() || candidate.DeliveredAt.Before(match.MustGet().DeliveredAt) {
			match = mo.Some(candidate)
		}
	}
	return match
}

// fetchOrderDetail fetches the order header by UUID, then pages through all
// group-order members before assembling the detail. The member fetch is a
// blocking dependency: aggregation never proceeds on a partial member list.
func (u *OrdersUseCase) fetchOrderDetail(
	ctx context.Context,
	auth clients.FoodeeAuth,
	summary models.OrderSummary,
) (*models.OrderDetail, error) {
	header, err := u.foodeeClient.GetOrder(ctx, auth, summary.UUID)
	if err != nil {
		if core.IsNotFoundError(err) {
			return nil, fmt.Errorf("order %s vanished between listing and fetch: %w", summary.UUID, err)
		}
		return nil, fmt.Errorf("failed to fetch order %s: %w", summary.UUID, err)
	}

	var members []models.OrderMember
	for offset := 0; ; offset += MemberPageSize {
		page, err := u.foodeeClient.GetOrderMembers(ctx, auth, header.ID, MemberPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch members page at offset %d: %w", offset, err)
		}
		members = append(members, page...)
		if len(page) < MemberPageSize {
			break
		}
	}

	// Natural ordering so "User 2" precedes "User 10". Stable sort keeps the
	// insertion order of items within each member untouched.
	sort.SliceStable(members, func(i, j int) bool {
		return core.NaturalCompare(members[i].DisplayName, members[j].DisplayName) < 0
	})

	return &models.OrderDetail{
		UUID:           header.UUID,
		RestaurantName: header.RestaurantName,
		ThumbnailURL:   header.ThumbnailURL,
		DeliveredAt:    header.DeliveredAt,
		Members:        members,
	}, nil
}
