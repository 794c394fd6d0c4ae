package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/state"
	"github.com/tair/dineboard/internal/table/domain"
	"github.com/tair/dineboard/internal/table/repository"
)

func seedTable(t *testing.T, status string) domain.TableRepository {
	t.Helper()
	repo := repository.NewMemoryTableRepository(state.NewContainer())
	require.NoError(t, repo.Create(&domain.Table{
		ID: "tbl-01", Name: "T-01", Capacity: 2, Area: "window",
		Status: status, GuestCount: 2,
		CurrentOrder: "ord-01", CurrentReservation: "res-01",
	}))
	return repo
}

func TestClearTable(t *testing.T) {
	repo := seedTable(t, domain.StatusOccupied)
	handler := NewClearTableHandler(repo, nil)

	table, err := handler.Handle(context.Background(), ClearTableCommand{TableID: "tbl-01"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCleaning, table.Status)
	assert.Zero(t, table.GuestCount)
	assert.Empty(t, table.CurrentOrder)
	assert.Empty(t, table.CurrentReservation)
	assert.NotNil(t, table.CleaningStartedAt)
}

func TestClearTable_DoubleClearRejected(t *testing.T) {
	repo := seedTable(t, domain.StatusOccupied)
	handler := NewClearTableHandler(repo, nil)
	ctx := context.Background()

	_, err := handler.Handle(ctx, ClearTableCommand{TableID: "tbl-01"})
	require.NoError(t, err)

	_, err = handler.Handle(ctx, ClearTableCommand{TableID: "tbl-01"})
	assert.True(t, errors.Is(err, appdomain.ErrInvalidTransition))
}

func TestClearTable_OnlyFromOccupied(t *testing.T) {
	for _, status := range []string{domain.StatusAvailable, domain.StatusReserved, domain.StatusCleaning} {
		repo := seedTable(t, status)
		handler := NewClearTableHandler(repo, nil)

		_, err := handler.Handle(context.Background(), ClearTableCommand{TableID: "tbl-01"})
		assert.True(t, errors.Is(err, appdomain.ErrInvalidTransition), status)
	}
}

func TestMarkAvailable(t *testing.T) {
	repo := seedTable(t, domain.StatusOccupied)
	clear := NewClearTableHandler(repo, nil)
	mark := NewMarkAvailableHandler(repo)

	// Only a table in cleaning can go back to available
	_, err := mark.Handle(MarkAvailableCommand{TableID: "tbl-01"})
	assert.True(t, errors.Is(err, appdomain.ErrInvalidTransition))

	_, err = clear.Handle(context.Background(), ClearTableCommand{TableID: "tbl-01"})
	require.NoError(t, err)

	table, err := mark.Handle(MarkAvailableCommand{TableID: "tbl-01"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, table.Status)
	assert.Nil(t, table.CleaningStartedAt)
}
