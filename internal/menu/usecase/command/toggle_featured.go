package command

import (
	"fmt"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/menu/domain"
)

// ToggleFeaturedCommand represents the command to flip the featured flag
type ToggleFeaturedCommand struct {
	ItemID          string
	ExpectedVersion int64
}

// ToggleFeaturedHandler handles featured toggles
type ToggleFeaturedHandler struct {
	repo domain.ItemRepository
}

// NewToggleFeaturedHandler creates a new toggle featured handler
func NewToggleFeaturedHandler(repo domain.ItemRepository) *ToggleFeaturedHandler {
	return &ToggleFeaturedHandler{repo: repo}
}

// Handle executes the toggle
func (h *ToggleFeaturedHandler) Handle(cmd ToggleFeaturedCommand) (*domain.Item, error) {
	if cmd.ItemID == "" {
		return nil, fmt.Errorf("item_id is required: %w", appdomain.ErrInvalidArgument)
	}

	item, err := h.repo.FindByID(cmd.ItemID)
	if err != nil {
		return nil, err
	}
	if cmd.ExpectedVersion != 0 && cmd.ExpectedVersion != item.Version {
		return nil, fmt.Errorf("menu item %s expected version %d, have %d: %w",
			item.ID, cmd.ExpectedVersion, item.Version, appdomain.ErrConflict)
	}

	item.Featured = !item.Featured
	if err := h.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to toggle featured: %w", err)
	}
	return item, nil
}
