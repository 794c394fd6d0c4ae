package command

import (
	"fmt"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/table/domain"
)

// MarkAvailableCommand represents the command to finish cleaning a table
type MarkAvailableCommand struct {
	TableID         string
	ExpectedVersion int64
}

// MarkAvailableHandler handles the cleaning -> available transition
type MarkAvailableHandler struct {
	repo domain.TableRepository
}

// NewMarkAvailableHandler creates a new mark available handler
func NewMarkAvailableHandler(repo domain.TableRepository) *MarkAvailableHandler {
	return &MarkAvailableHandler{repo: repo}
}

// Handle marks the table available. Only a table in cleaning can be
// marked available.
func (h *MarkAvailableHandler) Handle(cmd MarkAvailableCommand) (*domain.Table, error) {
	if cmd.TableID == "" {
		return nil, fmt.Errorf("table_id is required: %w", appdomain.ErrInvalidArgument)
	}

	table, err := h.repo.FindByID(cmd.TableID)
	if err != nil {
		return nil, err
	}
	if cmd.ExpectedVersion != 0 && cmd.ExpectedVersion != table.Version {
		return nil, fmt.Errorf("table %s expected version %d, have %d: %w",
			table.ID, cmd.ExpectedVersion, table.Version, appdomain.ErrConflict)
	}
	if table.Status != domain.StatusCleaning {
		return nil, fmt.Errorf("table %s is %s, not cleaning: %w",
			table.ID, table.Status, appdomain.ErrInvalidTransition)
	}

	table.Status = domain.StatusAvailable
	table.CleaningStartedAt = nil

	if err := h.repo.Update(table); err != nil {
		return nil, fmt.Errorf("failed to mark table available: %w", err)
	}
	return table, nil
}
