package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/dineboard/internal/order/domain"
	"github.com/tair/dineboard/internal/order/repository"
	"github.com/tair/dineboard/internal/state"
)

func seedOrders(t *testing.T) domain.OrderRepository {
	t.Helper()
	repo := repository.NewMemoryOrderRepository(state.NewContainer())
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	orders := []domain.Order{
		{ID: "ord-a", OrderNumber: "1001", Type: domain.TypeDineIn, Status: domain.StatusCompleted,
			CustomerName: "Ava Chen", CreatedAt: base},
		{ID: "ord-b", OrderNumber: "1002", Type: domain.TypeDelivery, Status: domain.StatusPending,
			CustomerName: "Ben Ortiz", CreatedAt: base.Add(30 * time.Minute)},
		{ID: "ord-c", OrderNumber: "1003", Type: domain.TypeDineIn, Status: domain.StatusPreparing,
			CustomerName: "Cara Woods", CreatedAt: base.Add(time.Hour)},
		{ID: "ord-d", OrderNumber: "1004", Type: domain.TypeTakeout, Status: domain.StatusPending,
			CustomerName: "Dmitri Volkov", CustomerContact: "dmitri@example.com", CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range orders {
		require.NoError(t, repo.Create(&orders[i]))
	}
	return repo
}

func ids(orders []domain.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestListOrders_FilterDoesNotMutateStore(t *testing.T) {
	repo := seedOrders(t)
	handler := NewListOrdersHandler(repo)

	filtered, err := handler.Handle(ListOrdersQuery{Status: domain.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, []string{"ord-b", "ord-d"}, ids(filtered))

	all, err := handler.Handle(ListOrdersQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 4, "filtering must not remove orders from the store")
}

func TestListOrders_TypeAndDateRange(t *testing.T) {
	repo := seedOrders(t)
	handler := NewListOrdersHandler(repo)

	filtered, err := handler.Handle(ListOrdersQuery{Type: domain.TypeDineIn})
	require.NoError(t, err)
	assert.Equal(t, []string{"ord-a", "ord-c"}, ids(filtered))

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	filtered, err = handler.Handle(ListOrdersQuery{
		From: base.Add(15 * time.Minute),
		To:   base.Add(90 * time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ord-b", "ord-c"}, ids(filtered))
}

func TestListOrders_Search(t *testing.T) {
	repo := seedOrders(t)
	handler := NewListOrdersHandler(repo)

	filtered, err := handler.Handle(ListOrdersQuery{Search: "ava"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ord-a"}, ids(filtered))

	// Matches contact as well as name and order number
	filtered, err = handler.Handle(ListOrdersQuery{Search: "DMITRI@"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ord-d"}, ids(filtered))

	filtered, err = handler.Handle(ListOrdersQuery{Search: "1003"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ord-c"}, ids(filtered))
}

func TestListOrders_ActiveFirstOrdering(t *testing.T) {
	repo := seedOrders(t)
	handler := NewListOrdersHandler(repo)

	sorted, err := handler.Handle(ListOrdersQuery{Sort: SortActiveFirst})
	require.NoError(t, err)

	// Pending before preparing before completed; within a rank, oldest first
	assert.Equal(t, []string{"ord-b", "ord-d", "ord-c", "ord-a"}, ids(sorted))
}

func TestListOrders_ChronologicalIsDeterministic(t *testing.T) {
	repo := seedOrders(t)
	handler := NewListOrdersHandler(repo)

	first, err := handler.Handle(ListOrdersQuery{})
	require.NoError(t, err)
	second, err := handler.Handle(ListOrdersQuery{})
	require.NoError(t, err)
	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, []string{"ord-a", "ord-b", "ord-c", "ord-d"}, ids(first))
}
