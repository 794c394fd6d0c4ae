package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/reservation/domain"
	"github.com/tair/dineboard/internal/reservation/repository"
	"github.com/tair/dineboard/internal/state"
	tabledomain "github.com/tair/dineboard/internal/table/domain"
	tablerepository "github.com/tair/dineboard/internal/table/repository"
)

type fixture struct {
	reservations domain.ReservationRepository
	tables       tabledomain.TableRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := state.NewContainer()
	f := &fixture{
		reservations: repository.NewMemoryReservationRepository(c),
		tables:       tablerepository.NewMemoryTableRepository(c),
	}

	require.NoError(t, f.tables.Create(&tabledomain.Table{
		ID: "tbl-03", Name: "T-03", Capacity: 4, Area: "main",
		Status: tabledomain.StatusAvailable,
	}))
	require.NoError(t, f.reservations.Create(&domain.Reservation{
		ID: "res-test", ConfirmationCode: "DNB-TEST01",
		CustomerName: "Nora Patel", Date: "2026-08-30", Time: "19:00",
		PartySize: 4, Status: domain.StatusConfirmed,
	}))
	return f
}

func (f *fixture) reservation(t *testing.T, id string) *domain.Reservation {
	t.Helper()
	r, err := f.reservations.FindByID(id)
	require.NoError(t, err)
	return r
}

func (f *fixture) table(t *testing.T, id string) *tabledomain.Table {
	t.Helper()
	tbl, err := f.tables.FindByID(id)
	require.NoError(t, err)
	return tbl
}

func TestAssignTable(t *testing.T) {
	f := newFixture(t)
	handler := NewAssignTableHandler(f.reservations, f.tables)

	reservation, err := handler.Handle(AssignTableCommand{ReservationID: "res-test", TableID: "tbl-03"})
	require.NoError(t, err)

	assert.Equal(t, "tbl-03", reservation.TableID)
	assert.Equal(t, "T-03", reservation.TableName)
	// Assignment is a hold; the table itself does not change
	assert.Equal(t, tabledomain.StatusAvailable, f.table(t, "tbl-03").Status)
}

func TestAssignTable_CapacityBoundary(t *testing.T) {
	f := newFixture(t)
	handler := NewAssignTableHandler(f.reservations, f.tables)

	// Party of 4 at a 4-top is allowed; a party of 5 is not
	res := f.reservation(t, "res-test")
	res.PartySize = 5
	require.NoError(t, f.reservations.Update(res))

	_, err := handler.Handle(AssignTableCommand{ReservationID: "res-test", TableID: "tbl-03"})
	assert.True(t, errors.Is(err, appdomain.ErrPreconditionFailed))

	res = f.reservation(t, "res-test")
	res.PartySize = 4
	require.NoError(t, f.reservations.Update(res))

	_, err = handler.Handle(AssignTableCommand{ReservationID: "res-test", TableID: "tbl-03"})
	assert.NoError(t, err)
}

func TestAssignTable_UnassignableTable(t *testing.T) {
	f := newFixture(t)
	handler := NewAssignTableHandler(f.reservations, f.tables)

	tbl := f.table(t, "tbl-03")
	tbl.Status = tabledomain.StatusOccupied
	require.NoError(t, f.tables.Update(tbl))

	_, err := handler.Handle(AssignTableCommand{ReservationID: "res-test", TableID: "tbl-03"})
	assert.True(t, errors.Is(err, appdomain.ErrPreconditionFailed))
}

func TestSeat_Cascade(t *testing.T) {
	f := newFixture(t)
	assign := NewAssignTableHandler(f.reservations, f.tables)
	seat := NewSeatHandler(f.reservations, f.tables, nil)
	ctx := context.Background()

	_, err := assign.Handle(AssignTableCommand{ReservationID: "res-test", TableID: "tbl-03"})
	require.NoError(t, err)

	reservation, err := seat.Handle(ctx, SeatCommand{ReservationID: "res-test"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSeated, reservation.Status)
	assert.NotNil(t, reservation.CheckedInAt)

	table := f.table(t, "tbl-03")
	assert.Equal(t, tabledomain.StatusOccupied, table.Status)
	assert.Equal(t, 4, table.GuestCount)
	assert.Equal(t, "res-test", table.CurrentReservation)
}

func TestSeat_WithoutTableLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	seat := NewSeatHandler(f.reservations, f.tables, nil)

	_, err := seat.Handle(context.Background(), SeatCommand{ReservationID: "res-test"})
	assert.True(t, errors.Is(err, appdomain.ErrPreconditionFailed))

	reservation := f.reservation(t, "res-test")
	assert.Equal(t, domain.StatusConfirmed, reservation.Status)
	assert.Nil(t, reservation.CheckedInAt)
	assert.Equal(t, tabledomain.StatusAvailable, f.table(t, "tbl-03").Status)
}

func TestSeat_RequiresConfirmed(t *testing.T) {
	f := newFixture(t)
	seat := NewSeatHandler(f.reservations, f.tables, nil)

	res := f.reservation(t, "res-test")
	res.Status = domain.StatusPending
	res.TableID = "tbl-03"
	require.NoError(t, f.reservations.Update(res))

	_, err := seat.Handle(context.Background(), SeatCommand{ReservationID: "res-test"})
	assert.True(t, errors.Is(err, appdomain.ErrInvalidTransition))
}

func TestCompleteLeavesTableOccupied(t *testing.T) {
	f := newFixture(t)
	assign := NewAssignTableHandler(f.reservations, f.tables)
	seat := NewSeatHandler(f.reservations, f.tables, nil)
	status := NewUpdateStatusHandler(f.reservations)
	ctx := context.Background()

	_, err := assign.Handle(AssignTableCommand{ReservationID: "res-test", TableID: "tbl-03"})
	require.NoError(t, err)
	_, err = seat.Handle(ctx, SeatCommand{ReservationID: "res-test"})
	require.NoError(t, err)

	reservation, err := status.Handle(UpdateStatusCommand{ReservationID: "res-test", Status: domain.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, reservation.Status)
	assert.NotNil(t, reservation.CompletedAt)

	// The table stays occupied until an operator clears it
	assert.Equal(t, tabledomain.StatusOccupied, f.table(t, "tbl-03").Status)
}

func TestUpdateStatus_SeatedNeedsSeatCommand(t *testing.T) {
	f := newFixture(t)
	status := NewUpdateStatusHandler(f.reservations)

	_, err := status.Handle(UpdateStatusCommand{ReservationID: "res-test", Status: domain.StatusSeated})
	assert.True(t, errors.Is(err, appdomain.ErrInvalidArgument))
}

func TestUpdateStatus_NoShowFromConfirmed(t *testing.T) {
	f := newFixture(t)
	status := NewUpdateStatusHandler(f.reservations)

	reservation, err := status.Handle(UpdateStatusCommand{ReservationID: "res-test", Status: domain.StatusNoShow})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, reservation.Status)

	// Terminal: no way back
	_, err = status.Handle(UpdateStatusCommand{ReservationID: "res-test", Status: domain.StatusConfirmed})
	assert.True(t, errors.Is(err, appdomain.ErrInvalidTransition))
}
