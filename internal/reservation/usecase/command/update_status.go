package command

import (
	"fmt"
	"time"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/reservation/domain"
)

// UpdateStatusCommand represents the command to transition a reservation
// (confirm, cancel, no-show, complete). Seating has its own command
// because of the table cascade.
type UpdateStatusCommand struct {
	ReservationID   string
	Status          string
	ExpectedVersion int64
}

// UpdateStatusHandler handles reservation status transitions
type UpdateStatusHandler struct {
	repo domain.ReservationRepository
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(repo domain.ReservationRepository) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo}
}

// Handle executes the status transition. Completing a reservation does not
// free its table; clearing the table is a separate operator action.
func (h *UpdateStatusHandler) Handle(cmd UpdateStatusCommand) (*domain.Reservation, error) {
	if cmd.ReservationID == "" {
		return nil, fmt.Errorf("reservation_id is required: %w", appdomain.ErrInvalidArgument)
	}
	if cmd.Status == domain.StatusSeated {
		return nil, fmt.Errorf("seating requires the seat operation: %w", appdomain.ErrInvalidArgument)
	}

	reservation, err := h.repo.FindByID(cmd.ReservationID)
	if err != nil {
		return nil, err
	}

	if cmd.ExpectedVersion != 0 && cmd.ExpectedVersion != reservation.Version {
		return nil, fmt.Errorf("reservation %s expected version %d, have %d: %w",
			reservation.ID, cmd.ExpectedVersion, reservation.Version, appdomain.ErrConflict)
	}

	if !domain.CanTransition(reservation.Status, cmd.Status) {
		return nil, fmt.Errorf("reservation %s cannot move %s -> %s: %w",
			reservation.ID, reservation.Status, cmd.Status, appdomain.ErrInvalidTransition)
	}

	reservation.Status = cmd.Status
	if cmd.Status == domain.StatusCompleted {
		now := time.Now()
		reservation.CompletedAt = &now
	}

	if err := h.repo.Update(reservation); err != nil {
		return nil, fmt.Errorf("failed to update reservation status: %w", err)
	}
	return reservation, nil
}
