package command

import (
	"context"
	"fmt"
	"time"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/order/domain"
	"github.com/tair/dineboard/kafka"
	"github.com/tair/dineboard/pkg/logger"
)

// UpdateStatusCommand represents the command to transition an order
type UpdateStatusCommand struct {
	OrderID string
	Status  string
	// ExpectedVersion, when non-zero, rejects the write if the stored
	// entity has moved on since the caller read it
	ExpectedVersion int64
}

// UpdateStatusHandler handles order status transitions
type UpdateStatusHandler struct {
	repo      domain.OrderRepository
	publisher *kafka.Publisher
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(repo domain.OrderRepository, publisher *kafka.Publisher) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo, publisher: publisher}
}

// Handle executes the status transition. Transitions out of a terminal
// status are rejected, never silently applied; terminal targets stamp
// completedAt or cancelledAt.
func (h *UpdateStatusHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) (*domain.Order, error) {
	if cmd.OrderID == "" {
		return nil, fmt.Errorf("order_id is required: %w", appdomain.ErrInvalidArgument)
	}

	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if cmd.ExpectedVersion != 0 && cmd.ExpectedVersion != order.Version {
		return nil, fmt.Errorf("order %s expected version %d, have %d: %w",
			order.ID, cmd.ExpectedVersion, order.Version, appdomain.ErrConflict)
	}

	if order.IsTerminal() {
		return nil, fmt.Errorf("order %s is %s: %w", order.ID, order.Status, appdomain.ErrInvalidTransition)
	}
	if !domain.CanTransition(order.Type, order.Status, cmd.Status) {
		return nil, fmt.Errorf("order %s cannot move %s -> %s: %w",
			order.ID, order.Status, cmd.Status, appdomain.ErrInvalidTransition)
	}

	from := order.Status
	now := time.Now()
	order.Status = cmd.Status
	switch cmd.Status {
	case domain.StatusCompleted, domain.StatusDelivered:
		order.CompletedAt = &now
	case domain.StatusCancelled:
		order.CancelledAt = &now
	}

	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if err := h.publisher.PublishOrderStatusChanged(ctx, kafka.OrderStatusChangedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		OrderType:   order.Type,
		FromStatus:  from,
		ToStatus:    order.Status,
		Total:       order.Total,
	}); err != nil {
		// The state change already committed; the event is best-effort
		logger.Warn(ctx).Err(err).Str("order_id", order.ID).Msg("Failed to publish order event")
	}

	return order, nil
}
