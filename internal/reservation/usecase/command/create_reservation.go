package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/reservation/domain"
)

// CreateReservationCommand represents the command to create a reservation
type CreateReservationCommand struct {
	CustomerName    string
	CustomerContact string
	Date            string // YYYY-MM-DD
	Time            string // HH:MM
	PartySize       int
	Occasion        string
	SpecialRequests string
}

// CreateReservationHandler handles create reservation commands
type CreateReservationHandler struct {
	repo domain.ReservationRepository
}

// NewCreateReservationHandler creates a new create reservation handler
func NewCreateReservationHandler(repo domain.ReservationRepository) *CreateReservationHandler {
	return &CreateReservationHandler{repo: repo}
}

// Handle executes the create reservation command
func (h *CreateReservationHandler) Handle(cmd CreateReservationCommand) (*domain.Reservation, error) {
	if cmd.CustomerName == "" {
		return nil, fmt.Errorf("customer name is required: %w", appdomain.ErrInvalidArgument)
	}
	if cmd.PartySize <= 0 {
		return nil, fmt.Errorf("party size must be positive: %w", appdomain.ErrInvalidArgument)
	}
	if _, err := time.Parse("2006-01-02", cmd.Date); err != nil {
		return nil, fmt.Errorf("malformed date %q: %w", cmd.Date, appdomain.ErrInvalidArgument)
	}
	if _, err := time.Parse("15:04", cmd.Time); err != nil {
		return nil, fmt.Errorf("malformed time %q: %w", cmd.Time, appdomain.ErrInvalidArgument)
	}

	reservation := &domain.Reservation{
		ID:               uuid.NewString(),
		ConfirmationCode: newConfirmationCode(),
		CustomerName:     cmd.CustomerName,
		CustomerContact:  cmd.CustomerContact,
		Date:             cmd.Date,
		Time:             cmd.Time,
		PartySize:        cmd.PartySize,
		Status:           domain.StatusPending,
		Occasion:         cmd.Occasion,
		SpecialRequests:  cmd.SpecialRequests,
		CreatedAt:        time.Now(),
	}

	if err := h.repo.Create(reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	return reservation, nil
}

func newConfirmationCode() string {
	// Short, human-readable: DNB- plus the first uuid block
	return "DNB-" + strings.ToUpper(uuid.NewString()[:8])
}
