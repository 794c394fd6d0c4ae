package command

import (
	"fmt"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/order/domain"
)

// SetPaymentStatusCommand represents the command to move an order's
// payment status
type SetPaymentStatusCommand struct {
	OrderID         string
	PaymentStatus   string
	ExpectedVersion int64
}

// SetPaymentStatusHandler handles payment status changes
type SetPaymentStatusHandler struct {
	repo domain.OrderRepository
}

// NewSetPaymentStatusHandler creates a new set payment status handler
func NewSetPaymentStatusHandler(repo domain.OrderRepository) *SetPaymentStatusHandler {
	return &SetPaymentStatusHandler{repo: repo}
}

// Handle executes the payment status change. Payment moves
// pending -> paid -> refunded; it is independent of the lifecycle status,
// so a completed order can still be refunded.
func (h *SetPaymentStatusHandler) Handle(cmd SetPaymentStatusCommand) (*domain.Order, error) {
	if cmd.OrderID == "" {
		return nil, fmt.Errorf("order_id is required: %w", appdomain.ErrInvalidArgument)
	}
	if !domain.ValidPaymentStatus(cmd.PaymentStatus) {
		return nil, fmt.Errorf("payment status %q: %w", cmd.PaymentStatus, appdomain.ErrInvalidArgument)
	}

	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if cmd.ExpectedVersion != 0 && cmd.ExpectedVersion != order.Version {
		return nil, fmt.Errorf("order %s expected version %d, have %d: %w",
			order.ID, cmd.ExpectedVersion, order.Version, appdomain.ErrConflict)
	}

	valid := (order.PaymentStatus == domain.PaymentPending && cmd.PaymentStatus == domain.PaymentPaid) ||
		(order.PaymentStatus == domain.PaymentPaid && cmd.PaymentStatus == domain.PaymentRefunded)
	if !valid {
		return nil, fmt.Errorf("payment cannot move %s -> %s: %w",
			order.PaymentStatus, cmd.PaymentStatus, appdomain.ErrInvalidTransition)
	}

	order.PaymentStatus = cmd.PaymentStatus
	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	return order, nil
}
