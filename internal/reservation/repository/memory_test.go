package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/reservation/domain"
	"github.com/tair/dineboard/internal/state"
	tabledomain "github.com/tair/dineboard/internal/table/domain"
	tablerepository "github.com/tair/dineboard/internal/table/repository"
)

func TestUpdate_StaleVersionRejected(t *testing.T) {
	repo := NewMemoryReservationRepository(state.NewContainer())
	require.NoError(t, repo.Create(&domain.Reservation{ID: "res-1", Status: domain.StatusPending}))

	stale, err := repo.FindByID("res-1")
	require.NoError(t, err)

	fresh, err := repo.FindByID("res-1")
	require.NoError(t, err)
	fresh.Status = domain.StatusConfirmed
	require.NoError(t, repo.Update(fresh))

	stale.Status = domain.StatusCancelled
	err = repo.Update(stale)
	assert.True(t, errors.Is(err, appdomain.ErrConflict))

	stored, err := repo.FindByID("res-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
}

func TestSeatAtTable_StaleTableAbortsWholeCascade(t *testing.T) {
	c := state.NewContainer()
	reservations := NewMemoryReservationRepository(c)
	tables := tablerepository.NewMemoryTableRepository(c)

	require.NoError(t, reservations.Create(&domain.Reservation{
		ID: "res-1", Status: domain.StatusConfirmed, TableID: "tbl-1", PartySize: 2,
	}))
	require.NoError(t, tables.Create(&tabledomain.Table{
		ID: "tbl-1", Capacity: 4, Status: tabledomain.StatusAvailable,
	}))

	reservation, err := reservations.FindByID("res-1")
	require.NoError(t, err)
	table, err := tables.FindByID("tbl-1")
	require.NoError(t, err)

	// Someone touches the table between the read and the seat
	fresh, err := tables.FindByID("tbl-1")
	require.NoError(t, err)
	fresh.Status = tabledomain.StatusReserved
	require.NoError(t, tables.Update(fresh))

	reservation.Status = domain.StatusSeated
	table.Status = tabledomain.StatusOccupied
	err = reservations.SeatAtTable(reservation, table)
	assert.True(t, errors.Is(err, appdomain.ErrConflict))

	// Neither side was written
	storedRes, err := reservations.FindByID("res-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, storedRes.Status)
	storedTbl, err := tables.FindByID("tbl-1")
	require.NoError(t, err)
	assert.Equal(t, tabledomain.StatusReserved, storedTbl.Status)
}

func TestCreate_DuplicateIDRejected(t *testing.T) {
	repo := NewMemoryReservationRepository(state.NewContainer())
	require.NoError(t, repo.Create(&domain.Reservation{ID: "res-1"}))

	err := repo.Create(&domain.Reservation{ID: "res-1"})
	assert.True(t, errors.Is(err, appdomain.ErrConflict))
}
