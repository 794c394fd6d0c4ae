package repository

import (
	"fmt"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/state"
	"github.com/tair/dineboard/internal/table/domain"
)

// MemoryTableRepository stores tables in the shared state container
type MemoryTableRepository struct {
	c *state.Container
}

// NewMemoryTableRepository creates a new table repository
func NewMemoryTableRepository(c *state.Container) *MemoryTableRepository {
	return &MemoryTableRepository{c: c}
}

func (r *MemoryTableRepository) Create(table *domain.Table) error {
	return r.c.Update(func(d *state.Data) error {
		if _, exists := d.Tables[table.ID]; exists {
			return fmt.Errorf("table %s: %w", table.ID, appdomain.ErrConflict)
		}
		table.Version = 1
		d.Tables[table.ID] = *table
		return nil
	})
}

func (r *MemoryTableRepository) FindByID(id string) (*domain.Table, error) {
	var table domain.Table
	err := r.c.View(func(d *state.Data) error {
		stored, ok := d.Tables[id]
		if !ok {
			return fmt.Errorf("table %s: %w", id, appdomain.ErrNotFound)
		}
		table = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *MemoryTableRepository) FindAll() ([]domain.Table, error) {
	var tables []domain.Table
	err := r.c.View(func(d *state.Data) error {
		tables = make([]domain.Table, 0, len(d.Tables))
		for _, id := range state.SortedIDs(d.Tables) {
			tables = append(tables, d.Tables[id])
		}
		return nil
	})
	return tables, err
}

func (r *MemoryTableRepository) Update(table *domain.Table) error {
	return r.c.Update(func(d *state.Data) error {
		stored, ok := d.Tables[table.ID]
		if !ok {
			return fmt.Errorf("table %s: %w", table.ID, appdomain.ErrNotFound)
		}
		if stored.Version != table.Version {
			return fmt.Errorf("table %s: %w", table.ID, appdomain.ErrConflict)
		}
		table.Version++
		d.Tables[table.ID] = *table
		return nil
	})
}
