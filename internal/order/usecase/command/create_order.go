package command

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/order/domain"
)

// DefaultTaxRate applies when no rate is configured
const DefaultTaxRate = 0.10

// CreateOrderCommand represents the command to create an order
type CreateOrderCommand struct {
	Type            string
	Items           []domain.OrderItem
	CustomerName    string
	CustomerContact string
	TableID         string
	DeliveryFee     float64
}

// CreateOrderHandler handles create order commands
type CreateOrderHandler struct {
	repo    domain.OrderRepository
	taxRate float64
	nextNum func() string
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(repo domain.OrderRepository, taxRate float64) *CreateOrderHandler {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return &CreateOrderHandler{
		repo:    repo,
		taxRate: taxRate,
		nextNum: func() string { return time.Now().Format("20060102-150405") },
	}
}

// Handle executes the create order command. The monetary invariant
// total = subtotal + tax + deliveryFee holds on the stored order.
func (h *CreateOrderHandler) Handle(cmd CreateOrderCommand) (*domain.Order, error) {
	if !domain.ValidType(cmd.Type) {
		return nil, fmt.Errorf("order type %q: %w", cmd.Type, appdomain.ErrInvalidArgument)
	}
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("at least one item is required: %w", appdomain.ErrInvalidArgument)
	}
	for _, item := range cmd.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity for item %s: %w", item.Name, appdomain.ErrInvalidArgument)
		}
		if item.UnitPrice < 0 {
			return nil, fmt.Errorf("invalid price for item %s: %w", item.Name, appdomain.ErrInvalidArgument)
		}
	}
	if cmd.DeliveryFee < 0 {
		return nil, fmt.Errorf("negative delivery fee: %w", appdomain.ErrInvalidArgument)
	}
	if cmd.TableID != "" && cmd.Type != domain.TypeDineIn {
		return nil, fmt.Errorf("table assignment on %s order: %w", cmd.Type, appdomain.ErrInvalidArgument)
	}

	subtotal := 0.0
	for _, item := range cmd.Items {
		subtotal += float64(item.Quantity) * item.UnitPrice
	}
	subtotal = round2(subtotal)
	tax := round2(subtotal * h.taxRate)

	deliveryFee := 0.0
	if cmd.Type == domain.TypeDelivery {
		deliveryFee = round2(cmd.DeliveryFee)
	}

	order := &domain.Order{
		ID:              uuid.NewString(),
		OrderNumber:     h.nextNum(),
		Type:            cmd.Type,
		Status:          domain.StatusPending,
		Items:           cmd.Items,
		Subtotal:        subtotal,
		Tax:             tax,
		DeliveryFee:     deliveryFee,
		Total:           round2(subtotal + tax + deliveryFee),
		CustomerName:    cmd.CustomerName,
		CustomerContact: cmd.CustomerContact,
		TableID:         cmd.TableID,
		PaymentStatus:   domain.PaymentPending,
		CreatedAt:       time.Now(),
	}

	if err := h.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
