package command

import (
	"context"
	"fmt"
	"time"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/inventory/domain"
	"github.com/tair/dineboard/kafka"
	"github.com/tair/dineboard/pkg/logger"
)

// RestockCommand represents the command to restock an inventory item
type RestockCommand struct {
	ItemID          string
	Quantity        float64
	Actor           string
	ExpectedVersion int64
}

// RestockHandler handles restocks
type RestockHandler struct {
	repo      domain.ItemRepository
	publisher *kafka.Publisher
	// clamp caps stock at maxStock; when false, exceeding maxStock is
	// allowed and logged (the source behavior)
	clamp bool
}

// NewRestockHandler creates a new restock handler
func NewRestockHandler(repo domain.ItemRepository, publisher *kafka.Publisher, clamp bool) *RestockHandler {
	return &RestockHandler{repo: repo, publisher: publisher, clamp: clamp}
}

// Handle executes the restock: increments stock, appends a history record
// and stamps lastRestocked. Non-positive quantities are rejected and leave
// stock unchanged.
func (h *RestockHandler) Handle(ctx context.Context, cmd RestockCommand) (*domain.Item, error) {
	if cmd.ItemID == "" {
		return nil, fmt.Errorf("item_id is required: %w", appdomain.ErrInvalidArgument)
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("restock quantity must be positive, got %v: %w",
			cmd.Quantity, appdomain.ErrInvalidArgument)
	}

	item, err := h.repo.FindByID(cmd.ItemID)
	if err != nil {
		return nil, err
	}
	if cmd.ExpectedVersion != 0 && cmd.ExpectedVersion != item.Version {
		return nil, fmt.Errorf("inventory item %s expected version %d, have %d: %w",
			item.ID, cmd.ExpectedVersion, item.Version, appdomain.ErrConflict)
	}

	now := time.Now()
	newStock := item.CurrentStock + cmd.Quantity
	if newStock > item.MaxStock {
		if h.clamp {
			newStock = item.MaxStock
		} else {
			logger.Warn(ctx).
				Str("item_id", item.ID).
				Float64("new_stock", newStock).
				Float64("max_stock", item.MaxStock).
				Msg("Restock exceeds max stock")
		}
	}
	item.CurrentStock = newStock
	item.RestockHistory = append(item.RestockHistory, domain.RestockRecord{
		Date:     now,
		Quantity: cmd.Quantity,
		Actor:    cmd.Actor,
	})
	item.LastRestocked = &now

	if err := h.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to restock item: %w", err)
	}

	if err := h.publisher.PublishInventoryRestocked(ctx, kafka.InventoryRestockedEvent{
		ItemID:   item.ID,
		ItemName: item.Name,
		Quantity: cmd.Quantity,
		NewStock: item.CurrentStock,
		Actor:    cmd.Actor,
	}); err != nil {
		logger.Warn(ctx).Err(err).Str("item_id", item.ID).Msg("Failed to publish restock event")
	}

	// Still below minimum after the restock: raise the alert
	if item.LowStock() {
		if err := h.publisher.PublishInventoryLowStock(ctx, kafka.InventoryLowStockEvent{
			ItemID:       item.ID,
			ItemName:     item.Name,
			CurrentStock: item.CurrentStock,
			MinStock:     item.MinStock,
		}); err != nil {
			logger.Warn(ctx).Err(err).Str("item_id", item.ID).Msg("Failed to publish low-stock event")
		}
	}

	return item, nil
}
