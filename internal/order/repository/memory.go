package repository

import (
	"fmt"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/order/domain"
	"github.com/tair/dineboard/internal/state"
)

// MemoryOrderRepository stores orders in the shared state container.
// Reads return copies; writes are optimistic, rejecting stale versions.
type MemoryOrderRepository struct {
	c *state.Container
}

// NewMemoryOrderRepository creates a new order repository
func NewMemoryOrderRepository(c *state.Container) *MemoryOrderRepository {
	return &MemoryOrderRepository{c: c}
}

func (r *MemoryOrderRepository) Create(order *domain.Order) error {
	return r.c.Update(func(d *state.Data) error {
		if _, exists := d.Orders[order.ID]; exists {
			return fmt.Errorf("order %s: %w", order.ID, appdomain.ErrConflict)
		}
		order.Version = 1
		d.Orders[order.ID] = *order
		return nil
	})
}

func (r *MemoryOrderRepository) FindByID(id string) (*domain.Order, error) {
	var order domain.Order
	err := r.c.View(func(d *state.Data) error {
		stored, ok := d.Orders[id]
		if !ok {
			return fmt.Errorf("order %s: %w", id, appdomain.ErrNotFound)
		}
		order = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MemoryOrderRepository) FindAll() ([]domain.Order, error) {
	var orders []domain.Order
	err := r.c.View(func(d *state.Data) error {
		orders = make([]domain.Order, 0, len(d.Orders))
		for _, id := range state.SortedIDs(d.Orders) {
			orders = append(orders, d.Orders[id])
		}
		return nil
	})
	return orders, err
}

func (r *MemoryOrderRepository) Update(order *domain.Order) error {
	return r.c.Update(func(d *state.Data) error {
		stored, ok := d.Orders[order.ID]
		if !ok {
			return fmt.Errorf("order %s: %w", order.ID, appdomain.ErrNotFound)
		}
		if stored.Version != order.Version {
			return fmt.Errorf("order %s: %w", order.ID, appdomain.ErrConflict)
		}
		order.Version++
		d.Orders[order.ID] = *order
		return nil
	})
}
