package command

import (
	"fmt"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/reservation/domain"
	tabledomain "github.com/tair/dineboard/internal/table/domain"
)

// AssignTableCommand represents the command to assign a table to a
// reservation
type AssignTableCommand struct {
	ReservationID   string
	TableID         string
	ExpectedVersion int64
}

// AssignTableHandler handles table assignment
type AssignTableHandler struct {
	reservations domain.ReservationRepository
	tables       tabledomain.TableRepository
}

// NewAssignTableHandler creates a new assign table handler
func NewAssignTableHandler(reservations domain.ReservationRepository, tables tabledomain.TableRepository) *AssignTableHandler {
	return &AssignTableHandler{reservations: reservations, tables: tables}
}

// Handle executes the assignment. The table must be available or reserved
// and hold the party; assignment is a pre-occupancy hold and never changes
// the table's status. The denormalized table name is set here, by the
// operation that owns the relationship.
func (h *AssignTableHandler) Handle(cmd AssignTableCommand) (*domain.Reservation, error) {
	if cmd.ReservationID == "" || cmd.TableID == "" {
		return nil, fmt.Errorf("reservation_id and table_id are required: %w", appdomain.ErrInvalidArgument)
	}

	reservation, err := h.reservations.FindByID(cmd.ReservationID)
	if err != nil {
		return nil, err
	}
	if cmd.ExpectedVersion != 0 && cmd.ExpectedVersion != reservation.Version {
		return nil, fmt.Errorf("reservation %s expected version %d, have %d: %w",
			reservation.ID, cmd.ExpectedVersion, reservation.Version, appdomain.ErrConflict)
	}
	if reservation.IsTerminal() || reservation.Status == domain.StatusSeated {
		return nil, fmt.Errorf("reservation %s is %s: %w",
			reservation.ID, reservation.Status, appdomain.ErrInvalidTransition)
	}

	table, err := h.tables.FindByID(cmd.TableID)
	if err != nil {
		return nil, err
	}
	if !table.Assignable() {
		return nil, fmt.Errorf("table %s is %s: %w",
			table.ID, table.Status, appdomain.ErrPreconditionFailed)
	}
	if !table.CanHold(reservation.PartySize) {
		return nil, fmt.Errorf("table %s capacity %d cannot hold party of %d: %w",
			table.ID, table.Capacity, reservation.PartySize, appdomain.ErrPreconditionFailed)
	}

	reservation.TableID = table.ID
	reservation.TableName = table.Name

	if err := h.reservations.Update(reservation); err != nil {
		return nil, fmt.Errorf("failed to assign table: %w", err)
	}
	return reservation, nil
}
