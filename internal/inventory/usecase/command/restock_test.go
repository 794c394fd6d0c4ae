package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/inventory/domain"
	"github.com/tair/dineboard/internal/inventory/repository"
	"github.com/tair/dineboard/internal/state"
)

func seedItem(t *testing.T) domain.ItemRepository {
	t.Helper()
	repo := repository.NewMemoryItemRepository(state.NewContainer())
	require.NoError(t, repo.Create(&domain.Item{
		ID: "inv-02", Name: "Mozzarella", Category: "dairy",
		CurrentStock: 8, MinStock: 10, MaxStock: 40, Unit: "kg",
	}))
	return repo
}

func TestRestock(t *testing.T) {
	repo := seedItem(t)
	handler := NewRestockHandler(repo, nil, false)

	// 8kg with a 10kg minimum is low; adding 5kg clears the flag
	item, err := handler.Handle(context.Background(), RestockCommand{
		ItemID: "inv-02", Quantity: 5, Actor: "dana",
	})
	require.NoError(t, err)

	assert.Equal(t, 13.0, item.CurrentStock)
	assert.False(t, item.LowStock())
	assert.NotNil(t, item.LastRestocked)
	require.Len(t, item.RestockHistory, 1)
	assert.Equal(t, 5.0, item.RestockHistory[0].Quantity)
	assert.Equal(t, "dana", item.RestockHistory[0].Actor)
}

func TestRestock_RejectsNonPositiveQuantity(t *testing.T) {
	repo := seedItem(t)
	handler := NewRestockHandler(repo, nil, false)
	ctx := context.Background()

	for _, qty := range []float64{0, -3} {
		_, err := handler.Handle(ctx, RestockCommand{ItemID: "inv-02", Quantity: qty})
		assert.True(t, errors.Is(err, appdomain.ErrInvalidArgument), "qty %v", qty)
	}

	// The rejected restocks left stock and history untouched
	item, err := repo.FindByID("inv-02")
	require.NoError(t, err)
	assert.Equal(t, 8.0, item.CurrentStock)
	assert.Empty(t, item.RestockHistory)
}

func TestRestock_OverMaxAllowedWhenNotClamping(t *testing.T) {
	repo := seedItem(t)
	handler := NewRestockHandler(repo, nil, false)

	item, err := handler.Handle(context.Background(), RestockCommand{ItemID: "inv-02", Quantity: 50})
	require.NoError(t, err)
	assert.Equal(t, 58.0, item.CurrentStock)
}

func TestRestock_ClampCapsAtMax(t *testing.T) {
	repo := seedItem(t)
	handler := NewRestockHandler(repo, nil, true)

	item, err := handler.Handle(context.Background(), RestockCommand{ItemID: "inv-02", Quantity: 50})
	require.NoError(t, err)
	assert.Equal(t, 40.0, item.CurrentStock)
	// The history records the requested quantity, not the clamped delta
	require.Len(t, item.RestockHistory, 1)
	assert.Equal(t, 50.0, item.RestockHistory[0].Quantity)
}

func TestRestock_VersionConflict(t *testing.T) {
	repo := seedItem(t)
	handler := NewRestockHandler(repo, nil, false)
	ctx := context.Background()

	_, err := handler.Handle(ctx, RestockCommand{ItemID: "inv-02", Quantity: 2})
	require.NoError(t, err)

	_, err = handler.Handle(ctx, RestockCommand{ItemID: "inv-02", Quantity: 2, ExpectedVersion: 1})
	assert.True(t, errors.Is(err, appdomain.ErrConflict))
}

func TestRestock_UnknownItem(t *testing.T) {
	repo := seedItem(t)
	handler := NewRestockHandler(repo, nil, false)

	_, err := handler.Handle(context.Background(), RestockCommand{ItemID: "missing", Quantity: 1})
	assert.True(t, errors.Is(err, appdomain.ErrNotFound))
}
