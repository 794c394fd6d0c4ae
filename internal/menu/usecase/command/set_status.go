package command

import (
	"fmt"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/menu/domain"
)

// SetStatusCommand represents the command to change a menu item's status
type SetStatusCommand struct {
	ItemID          string
	Status          string
	ExpectedVersion int64
}

// SetStatusHandler handles menu status changes
type SetStatusHandler struct {
	repo domain.ItemRepository
}

// NewSetStatusHandler creates a new set status handler
func NewSetStatusHandler(repo domain.ItemRepository) *SetStatusHandler {
	return &SetStatusHandler{repo: repo}
}

// Handle executes the status change
func (h *SetStatusHandler) Handle(cmd SetStatusCommand) (*domain.Item, error) {
	if cmd.ItemID == "" {
		return nil, fmt.Errorf("item_id is required: %w", appdomain.ErrInvalidArgument)
	}
	if !domain.ValidStatus(cmd.Status) {
		return nil, fmt.Errorf("menu status %q: %w", cmd.Status, appdomain.ErrInvalidArgument)
	}

	item, err := h.repo.FindByID(cmd.ItemID)
	if err != nil {
		return nil, err
	}
	if cmd.ExpectedVersion != 0 && cmd.ExpectedVersion != item.Version {
		return nil, fmt.Errorf("menu item %s expected version %d, have %d: %w",
			item.ID, cmd.ExpectedVersion, item.Version, appdomain.ErrConflict)
	}

	item.Status = cmd.Status
	if err := h.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update menu status: %w", err)
	}
	return item, nil
}
