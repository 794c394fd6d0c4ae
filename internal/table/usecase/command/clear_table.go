package command

import (
	"context"
	"fmt"
	"time"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/table/domain"
	"github.com/tair/dineboard/kafka"
	"github.com/tair/dineboard/pkg/logger"
)

// ClearTableCommand represents the command to clear an occupied table
type ClearTableCommand struct {
	TableID         string
	ExpectedVersion int64
}

// ClearTableHandler handles table clearing
type ClearTableHandler struct {
	repo      domain.TableRepository
	publisher *kafka.Publisher
}

// NewClearTableHandler creates a new clear table handler
func NewClearTableHandler(repo domain.TableRepository, publisher *kafka.Publisher) *ClearTableHandler {
	return &ClearTableHandler{repo: repo, publisher: publisher}
}

// Handle clears the table: occupied -> cleaning, guest count zeroed,
// current order and reservation references broken, cleaningStartedAt
// stamped. Any other source status is an invalid transition.
func (h *ClearTableHandler) Handle(ctx context.Context, cmd ClearTableCommand) (*domain.Table, error) {
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
	if table.Status != domain.StatusOccupied {
		return nil, fmt.Errorf("table %s is %s, not occupied: %w",
			table.ID, table.Status, appdomain.ErrInvalidTransition)
	}

	now := time.Now()
	table.Status = domain.StatusCleaning
	table.GuestCount = 0
	table.CurrentOrder = ""
	table.CurrentReservation = ""
	table.CleaningStartedAt = &now

	if err := h.repo.Update(table); err != nil {
		return nil, fmt.Errorf("failed to clear table: %w", err)
	}

	if err := h.publisher.PublishTableCleared(ctx, kafka.TableClearedEvent{
		TableID:   table.ID,
		TableName: table.Name,
	}); err != nil {
		logger.Warn(ctx).Err(err).Str("table_id", table.ID).Msg("Failed to publish table cleared event")
	}

	return table, nil
}
