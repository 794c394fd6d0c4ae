package command

import (
	"fmt"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/staff/domain"
)

// SetShiftStatusCommand represents the command to change a staff member's
// shift status
type SetShiftStatusCommand struct {
	StaffID         string
	Status          string
	ExpectedVersion int64
}

// SetShiftStatusHandler handles shift status changes
type SetShiftStatusHandler struct {
	repo domain.MemberRepository
}

// NewSetShiftStatusHandler creates a new set shift status handler
func NewSetShiftStatusHandler(repo domain.MemberRepository) *SetShiftStatusHandler {
	return &SetShiftStatusHandler{repo: repo}
}

// Handle executes the shift status change
func (h *SetShiftStatusHandler) Handle(cmd SetShiftStatusCommand) (*domain.Member, error) {
	if cmd.StaffID == "" {
		return nil, fmt.Errorf("staff_id is required: %w", appdomain.ErrInvalidArgument)
	}
	if !domain.ValidStatus(cmd.Status) {
		return nil, fmt.Errorf("shift status %q: %w", cmd.Status, appdomain.ErrInvalidArgument)
	}

	member, err := h.repo.FindByID(cmd.StaffID)
	if err != nil {
		return nil, err
	}
	if cmd.ExpectedVersion != 0 && cmd.ExpectedVersion != member.Version {
		return nil, fmt.Errorf("staff %s expected version %d, have %d: %w",
			member.ID, cmd.ExpectedVersion, member.Version, appdomain.ErrConflict)
	}

	member.Status = cmd.Status
	if err := h.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update shift status: %w", err)
	}
	return member, nil
}
