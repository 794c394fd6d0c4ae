package repository

import (
	"fmt"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/reservation/domain"
	"github.com/tair/dineboard/internal/state"
	tabledomain "github.com/tair/dineboard/internal/table/domain"
)

// MemoryReservationRepository stores reservations in the shared state
// container
type MemoryReservationRepository struct {
	c *state.Container
}

// NewMemoryReservationRepository creates a new reservation repository
func NewMemoryReservationRepository(c *state.Container) *MemoryReservationRepository {
	return &MemoryReservationRepository{c: c}
}

func (r *MemoryReservationRepository) Create(reservation *domain.Reservation) error {
	return r.c.Update(func(d *state.Data) error {
		if _, exists := d.Reservations[reservation.ID]; exists {
			return fmt.Errorf("reservation %s: %w", reservation.ID, appdomain.ErrConflict)
		}
		reservation.Version = 1
		d.Reservations[reservation.ID] = *reservation
		return nil
	})
}

func (r *MemoryReservationRepository) FindByID(id string) (*domain.Reservation, error) {
	var reservation domain.Reservation
	err := r.c.View(func(d *state.Data) error {
		stored, ok := d.Reservations[id]
		if !ok {
			return fmt.Errorf("reservation %s: %w", id, appdomain.ErrNotFound)
		}
		reservation = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *MemoryReservationRepository) FindByCode(code string) (*domain.Reservation, error) {
	var reservation domain.Reservation
	err := r.c.View(func(d *state.Data) error {
		for _, stored := range d.Reservations {
			if stored.ConfirmationCode == code {
				reservation = stored
				return nil
			}
		}
		return fmt.Errorf("reservation code %s: %w", code, appdomain.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *MemoryReservationRepository) FindAll() ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	err := r.c.View(func(d *state.Data) error {
		reservations = make([]domain.Reservation, 0, len(d.Reservations))
		for _, id := range state.SortedIDs(d.Reservations) {
			reservations = append(reservations, d.Reservations[id])
		}
		return nil
	})
	return reservations, err
}

func (r *MemoryReservationRepository) Update(reservation *domain.Reservation) error {
	return r.c.Update(func(d *state.Data) error {
		stored, ok := d.Reservations[reservation.ID]
		if !ok {
			return fmt.Errorf("reservation %s: %w", reservation.ID, appdomain.ErrNotFound)
		}
		if stored.Version != reservation.Version {
			return fmt.Errorf("reservation %s: %w", reservation.ID, appdomain.ErrConflict)
		}
		reservation.Version++
		d.Reservations[reservation.ID] = *reservation
		return nil
	})
}

// SeatAtTable writes the seated reservation and its occupied table in one
// locked update so the cascade can never be observed half-applied.
func (r *MemoryReservationRepository) SeatAtTable(reservation *domain.Reservation, table *tabledomain.Table) error {
	return r.c.Update(func(d *state.Data) error {
		storedRes, ok := d.Reservations[reservation.ID]
		if !ok {
			return fmt.Errorf("reservation %s: %w", reservation.ID, appdomain.ErrNotFound)
		}
		if storedRes.Version != reservation.Version {
			return fmt.Errorf("reservation %s: %w", reservation.ID, appdomain.ErrConflict)
		}

		storedTbl, ok := d.Tables[table.ID]
		if !ok {
			return fmt.Errorf("table %s: %w", table.ID, appdomain.ErrNotFound)
		}
		if storedTbl.Version != table.Version {
			return fmt.Errorf("table %s: %w", table.ID, appdomain.ErrConflict)
		}

		reservation.Version++
		table.Version++
		d.Reservations[reservation.ID] = *reservation
		d.Tables[table.ID] = *table
		return nil
	})
}
