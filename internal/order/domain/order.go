package domain

import (
	"time"
)

// Order types
const (
	TypeDineIn   = "dine-in"
	TypeTakeout  = "takeout"
	TypeDelivery = "delivery"
)

// Order statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Payment statuses
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// OrderItem is one line of an order
type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order represents the order entity
type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"order_number"`
	Type            string      `json:"type"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Tax             float64     `json:"tax"`
	DeliveryFee     float64     `json:"delivery_fee,omitempty"`
	Total           float64     `json:"total"`
	CustomerName    string      `json:"customer_name"`
	CustomerContact string      `json:"customer_contact"`
	TableID         string      `json:"table_id,omitempty"`
	PaymentStatus   string      `json:"payment_status"`
	Version         int64       `json:"version"`
	CreatedAt       time.Time   `json:"created_at"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	CancelledAt     *time.Time  `json:"cancelled_at,omitempty"`
}

// TerminalStatus returns the terminal success status for the order's type.
// Delivery orders end in delivered, dine-in and takeout in completed.
func (o *Order) TerminalStatus() string {
	if o.Type == TypeDelivery {
		return StatusDelivered
	}
	return StatusCompleted
}

// IsTerminal reports whether the order can no longer transition
func (o *Order) IsTerminal() bool {
	return o.Status == StatusCompleted || o.Status == StatusDelivered || o.Status == StatusCancelled
}

// validNext maps each status to the statuses reachable from it. Cancelled is
// reachable from every non-terminal state.
var validNext = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted, StatusDelivered, StatusCancelled},
	StatusCompleted: {},
	StatusDelivered: {},
	StatusCancelled: {},
}

// CanTransition reports whether an order of the given type may move from
// one status to another
func CanTransition(orderType, from, to string) bool {
	for _, next := range validNext[from] {
		if next != to {
			continue
		}
		// The success terminal depends on the order type
		if to == StatusDelivered && orderType != TypeDelivery {
			return false
		}
		if to == StatusCompleted && orderType == TypeDelivery {
			return false
		}
		return true
	}
	return false
}

// ValidTransitionsFrom returns all statuses reachable from the given status
// for the given order type
func ValidTransitionsFrom(orderType, from string) []string {
	var nexts []string
	for _, next := range validNext[from] {
		if CanTransition(orderType, from, next) {
			nexts = append(nexts, next)
		}
	}
	return nexts
}

// ValidType reports whether the order type is known
func ValidType(orderType string) bool {
	return orderType == TypeDineIn || orderType == TypeTakeout || orderType == TypeDelivery
}

// ValidPaymentStatus reports whether the payment status is known
func ValidPaymentStatus(status string) bool {
	return status == PaymentPending || status == PaymentPaid || status == PaymentRefunded
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id string) (*Order, error)
	FindAll() ([]Order, error)
	Update(order *Order) error
}
