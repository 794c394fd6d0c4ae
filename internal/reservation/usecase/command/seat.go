package command

import (
	"context"
	"fmt"
	"time"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/reservation/domain"
	tabledomain "github.com/tair/dineboard/internal/table/domain"
	"github.com/tair/dineboard/kafka"
	"github.com/tair/dineboard/pkg/logger"
)

// SeatCommand represents the command to seat a confirmed reservation
type SeatCommand struct {
	ReservationID   string
	ExpectedVersion int64
}

// SeatHandler handles the seat cascade
type SeatHandler struct {
	reservations domain.ReservationRepository
	tables       tabledomain.TableRepository
	publisher    *kafka.Publisher
}

// NewSeatHandler creates a new seat handler
func NewSeatHandler(reservations domain.ReservationRepository, tables tabledomain.TableRepository, publisher *kafka.Publisher) *SeatHandler {
	return &SeatHandler{reservations: reservations, tables: tables, publisher: publisher}
}

// Handle seats the party: the reservation becomes seated with checkedInAt
// stamped, and its table becomes occupied with guestCount = partySize.
// Both writes commit atomically. Seating without an assigned table fails
// and leaves both entities untouched.
func (h *SeatHandler) Handle(ctx context.Context, cmd SeatCommand) (*domain.Reservation, error) {
	if cmd.ReservationID == "" {
		return nil, fmt.Errorf("reservation_id is required: %w", appdomain.ErrInvalidArgument)
	}

	reservation, err := h.reservations.FindByID(cmd.ReservationID)
	if err != nil {
		return nil, err
	}
	if cmd.ExpectedVersion != 0 && cmd.ExpectedVersion != reservation.Version {
		return nil, fmt.Errorf("reservation %s expected version %d, have %d: %w",
			reservation.ID, cmd.ExpectedVersion, reservation.Version, appdomain.ErrConflict)
	}
	if reservation.Status != domain.StatusConfirmed {
		return nil, fmt.Errorf("reservation %s is %s, not confirmed: %w",
			reservation.ID, reservation.Status, appdomain.ErrInvalidTransition)
	}
	if reservation.TableID == "" {
		return nil, fmt.Errorf("reservation %s has no table assigned: %w",
			reservation.ID, appdomain.ErrPreconditionFailed)
	}

	table, err := h.tables.FindByID(reservation.TableID)
	if err != nil {
		return nil, err
	}
	if !table.CanHold(reservation.PartySize) {
		return nil, fmt.Errorf("table %s capacity %d cannot hold party of %d: %w",
			table.ID, table.Capacity, reservation.PartySize, appdomain.ErrPreconditionFailed)
	}

	now := time.Now()
	reservation.Status = domain.StatusSeated
	reservation.CheckedInAt = &now
	table.Status = tabledomain.StatusOccupied
	table.GuestCount = reservation.PartySize
	table.CurrentReservation = reservation.ID

	if err := h.reservations.SeatAtTable(reservation, table); err != nil {
		return nil, fmt.Errorf("failed to seat reservation: %w", err)
	}

	if err := h.publisher.PublishReservationSeated(ctx, kafka.ReservationSeatedEvent{
		ReservationID: reservation.ID,
		TableID:       table.ID,
		PartySize:     reservation.PartySize,
	}); err != nil {
		logger.Warn(ctx).Err(err).Str("reservation_id", reservation.ID).Msg("Failed to publish seated event")
	}

	return reservation, nil
}
