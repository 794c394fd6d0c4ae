package repository

import (
	"fmt"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/inventory/domain"
	"github.com/tair/dineboard/internal/state"
)

// MemoryItemRepository stores inventory items in the shared state container
type MemoryItemRepository struct {
	c *state.Container
}

// NewMemoryItemRepository creates a new inventory repository
func NewMemoryItemRepository(c *state.Container) *MemoryItemRepository {
	return &MemoryItemRepository{c: c}
}

func (r *MemoryItemRepository) Create(item *domain.Item) error {
	return r.c.Update(func(d *state.Data) error {
		if _, exists := d.Inventory[item.ID]; exists {
			return fmt.Errorf("inventory item %s: %w", item.ID, appdomain.ErrConflict)
		}
		item.Version = 1
		d.Inventory[item.ID] = *item
		return nil
	})
}

func (r *MemoryItemRepository) FindByID(id string) (*domain.Item, error) {
	var item domain.Item
	err := r.c.View(func(d *state.Data) error {
		stored, ok := d.Inventory[id]
		if !ok {
			return fmt.Errorf("inventory item %s: %w", id, appdomain.ErrNotFound)
		}
		item = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MemoryItemRepository) FindAll() ([]domain.Item, error) {
	var items []domain.Item
	err := r.c.View(func(d *state.Data) error {
		items = make([]domain.Item, 0, len(d.Inventory))
		for _, id := range state.SortedIDs(d.Inventory) {
			items = append(items, d.Inventory[id])
		}
		return nil
	})
	return items, err
}

func (r *MemoryItemRepository) Update(item *domain.Item) error {
	return r.c.Update(func(d *state.Data) error {
		stored, ok := d.Inventory[item.ID]
		if !ok {
			return fmt.Errorf("inventory item %s: %w", item.ID, appdomain.ErrNotFound)
		}
		if stored.Version != item.Version {
			return fmt.Errorf("inventory item %s: %w", item.ID, appdomain.ErrConflict)
		}
		item.Version++
		d.Inventory[item.ID] = *item
		return nil
	})
}
