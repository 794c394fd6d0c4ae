package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/order/domain"
	"github.com/tair/dineboard/internal/order/repository"
	"github.com/tair/dineboard/internal/state"
)

func newCreateHandler(t *testing.T) (*CreateOrderHandler, domain.OrderRepository) {
	t.Helper()
	repo := repository.NewMemoryOrderRepository(state.NewContainer())
	return NewCreateOrderHandler(repo, 0.10), repo
}

func TestCreateOrder_DeliveryTotals(t *testing.T) {
	handler, _ := newCreateHandler(t)

	// Two pastas at 18.50 and a dessert at 23, plus a 5.00 delivery fee
	order, err := handler.Handle(CreateOrderCommand{
		Type: domain.TypeDelivery,
		Items: []domain.OrderItem{
			{Name: "Tagliatelle", Quantity: 2, UnitPrice: 18.50},
			{Name: "Tiramisu", Quantity: 1, UnitPrice: 23.00},
		},
		CustomerName:    "Ava Chen",
		CustomerContact: "555-0199",
		DeliveryFee:     5.00,
	})
	require.NoError(t, err)

	assert.Equal(t, 60.00, order.Subtotal)
	assert.Equal(t, 6.00, order.Tax)
	assert.Equal(t, 5.00, order.DeliveryFee)
	assert.Equal(t, 71.00, order.Total)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)
	assert.NotEmpty(t, order.ID)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, int64(1), order.Version)
}

func TestCreateOrder_DeliveryFeeOnlyForDelivery(t *testing.T) {
	handler, _ := newCreateHandler(t)

	order, err := handler.Handle(CreateOrderCommand{
		Type:  domain.TypeTakeout,
		Items: []domain.OrderItem{{Name: "Margherita", Quantity: 1, UnitPrice: 14.00}},
		// A fee supplied on a takeout order is ignored
		DeliveryFee: 5.00,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, order.DeliveryFee)
	assert.Equal(t, 15.40, order.Total)
}

func TestCreateOrder_Validation(t *testing.T) {
	handler, _ := newCreateHandler(t)

	tests := []struct {
		name string
		cmd  CreateOrderCommand
	}{
		{
			name: "unknown_type",
			cmd: CreateOrderCommand{
				Type:  "drive-through",
				Items: []domain.OrderItem{{Name: "Soup", Quantity: 1, UnitPrice: 8}},
			},
		},
		{
			name: "no_items",
			cmd:  CreateOrderCommand{Type: domain.TypeDineIn},
		},
		{
			name: "zero_quantity",
			cmd: CreateOrderCommand{
				Type:  domain.TypeDineIn,
				Items: []domain.OrderItem{{Name: "Soup", Quantity: 0, UnitPrice: 8}},
			},
		},
		{
			name: "negative_price",
			cmd: CreateOrderCommand{
				Type:  domain.TypeDineIn,
				Items: []domain.OrderItem{{Name: "Soup", Quantity: 1, UnitPrice: -8}},
			},
		},
		{
			name: "negative_delivery_fee",
			cmd: CreateOrderCommand{
				Type:        domain.TypeDelivery,
				Items:       []domain.OrderItem{{Name: "Soup", Quantity: 1, UnitPrice: 8}},
				DeliveryFee: -1,
			},
		},
		{
			name: "table_on_takeout",
			cmd: CreateOrderCommand{
				Type:    domain.TypeTakeout,
				Items:   []domain.OrderItem{{Name: "Soup", Quantity: 1, UnitPrice: 8}},
				TableID: "tbl-01",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(tt.cmd)
			assert.True(t, errors.Is(err, appdomain.ErrInvalidArgument), "got %v", err)
		})
	}
}
