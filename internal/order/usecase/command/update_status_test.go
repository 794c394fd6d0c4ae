package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/order/domain"
	"github.com/tair/dineboard/internal/order/repository"
	"github.com/tair/dineboard/internal/state"
)

func seedOrder(t *testing.T, repo domain.OrderRepository, orderType string) *domain.Order {
	t.Helper()
	order := &domain.Order{
		ID:            "ord-test",
		OrderNumber:   "20260830-120000",
		Type:          orderType,
		Status:        domain.StatusPending,
		Items:         []domain.OrderItem{{Name: "Soup", Quantity: 1, UnitPrice: 8}},
		Subtotal:      8, Tax: 0.8, Total: 8.8,
		PaymentStatus: domain.PaymentPending,
	}
	require.NoError(t, repo.Create(order))
	return order
}

func TestUpdateStatus_DeliveryLifecycle(t *testing.T) {
	repo := repository.NewMemoryOrderRepository(state.NewContainer())
	handler := NewUpdateStatusHandler(repo, nil)
	seedOrder(t, repo, domain.TypeDelivery)
	ctx := context.Background()

	for _, next := range []string{
		domain.StatusConfirmed,
		domain.StatusPreparing,
		domain.StatusReady,
		domain.StatusDelivered,
	} {
		order, err := handler.Handle(ctx, UpdateStatusCommand{OrderID: "ord-test", Status: next})
		require.NoError(t, err, next)
		assert.Equal(t, next, order.Status)
	}

	stored, err := repo.FindByID("ord-test")
	require.NoError(t, err)
	assert.NotNil(t, stored.CompletedAt)

	// The order is terminal now; nothing else may be applied
	_, err = handler.Handle(ctx, UpdateStatusCommand{OrderID: "ord-test", Status: domain.StatusCancelled})
	assert.True(t, errors.Is(err, appdomain.ErrInvalidTransition))
}

func TestUpdateStatus_RejectsSkips(t *testing.T) {
	repo := repository.NewMemoryOrderRepository(state.NewContainer())
	handler := NewUpdateStatusHandler(repo, nil)
	seedOrder(t, repo, domain.TypeDineIn)

	_, err := handler.Handle(context.Background(), UpdateStatusCommand{OrderID: "ord-test", Status: domain.StatusReady})
	assert.True(t, errors.Is(err, appdomain.ErrInvalidTransition))

	// The failed transition left the order untouched
	stored, err := repo.FindByID("ord-test")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, int64(1), stored.Version)
}

func TestUpdateStatus_CancelStampsCancelledAt(t *testing.T) {
	repo := repository.NewMemoryOrderRepository(state.NewContainer())
	handler := NewUpdateStatusHandler(repo, nil)
	seedOrder(t, repo, domain.TypeDineIn)

	order, err := handler.Handle(context.Background(), UpdateStatusCommand{OrderID: "ord-test", Status: domain.StatusCancelled})
	require.NoError(t, err)
	assert.NotNil(t, order.CancelledAt)
	assert.Nil(t, order.CompletedAt)
}

func TestUpdateStatus_VersionConflict(t *testing.T) {
	repo := repository.NewMemoryOrderRepository(state.NewContainer())
	handler := NewUpdateStatusHandler(repo, nil)
	seedOrder(t, repo, domain.TypeDineIn)
	ctx := context.Background()

	// Another writer moves the order first
	_, err := handler.Handle(ctx, UpdateStatusCommand{OrderID: "ord-test", Status: domain.StatusConfirmed})
	require.NoError(t, err)

	_, err = handler.Handle(ctx, UpdateStatusCommand{
		OrderID:         "ord-test",
		Status:          domain.StatusPreparing,
		ExpectedVersion: 1,
	})
	assert.True(t, errors.Is(err, appdomain.ErrConflict))
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	repo := repository.NewMemoryOrderRepository(state.NewContainer())
	handler := NewUpdateStatusHandler(repo, nil)

	_, err := handler.Handle(context.Background(), UpdateStatusCommand{OrderID: "missing", Status: domain.StatusConfirmed})
	assert.True(t, errors.Is(err, appdomain.ErrNotFound))
}

func TestSetPaymentStatus(t *testing.T) {
	repo := repository.NewMemoryOrderRepository(state.NewContainer())
	handler := NewSetPaymentStatusHandler(repo)
	seedOrder(t, repo, domain.TypeDineIn)

	order, err := handler.Handle(SetPaymentStatusCommand{OrderID: "ord-test", PaymentStatus: domain.PaymentPaid})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, order.PaymentStatus)

	order, err = handler.Handle(SetPaymentStatusCommand{OrderID: "ord-test", PaymentStatus: domain.PaymentRefunded})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentRefunded, order.PaymentStatus)

	// Refunded is the end of the line
	_, err = handler.Handle(SetPaymentStatusCommand{OrderID: "ord-test", PaymentStatus: domain.PaymentPending})
	assert.True(t, errors.Is(err, appdomain.ErrInvalidTransition))
}

func TestSetPaymentStatus_SkipRejected(t *testing.T) {
	repo := repository.NewMemoryOrderRepository(state.NewContainer())
	handler := NewSetPaymentStatusHandler(repo)
	seedOrder(t, repo, domain.TypeDineIn)

	_, err := handler.Handle(SetPaymentStatusCommand{OrderID: "ord-test", PaymentStatus: domain.PaymentRefunded})
	assert.True(t, errors.Is(err, appdomain.ErrInvalidTransition))
}
