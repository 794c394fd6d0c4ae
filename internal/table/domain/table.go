package domain

import "time"

// Table statuses
const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
	StatusReserved  = "reserved"
	StatusCleaning  = "cleaning"
)

// Table represents the dining table entity
type Table struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Capacity           int        `json:"capacity"`
	Area               string     `json:"area"`
	Status             string     `json:"status"`
	GuestCount         int        `json:"guest_count"`
	CurrentOrder       string     `json:"current_order,omitempty"`
	CurrentReservation string     `json:"current_reservation,omitempty"`
	Version            int64      `json:"version"`
	CleaningStartedAt  *time.Time `json:"cleaning_started_at,omitempty"`
}

// CanHold reports whether the table can seat a party of the given size
func (t *Table) CanHold(partySize int) bool {
	return partySize > 0 && partySize <= t.Capacity
}

// Assignable reports whether a reservation may be assigned to the table.
// Assignment is a pre-occupancy hold and does not change the table status.
func (t *Table) Assignable() bool {
	return t.Status == StatusAvailable || t.Status == StatusReserved
}

// TableRepository defines the contract for table data access
type TableRepository interface {
	Create(table *Table) error
	FindByID(id string) (*Table, error)
	FindAll() ([]Table, error)
	Update(table *Table) error
}
