package domain

import (
	"time"

	tabledomain "github.com/tair/dineboard/internal/table/domain"
)

// Reservation statuses
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusSeated    = "seated"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

// Reservation represents the reservation entity
type Reservation struct {
	ID               string     `json:"id"`
	ConfirmationCode string     `json:"confirmation_code"`
	CustomerName     string     `json:"customer_name"`
	CustomerContact  string     `json:"customer_contact"`
	Date             string     `json:"date"` // YYYY-MM-DD
	Time             string     `json:"time"` // HH:MM
	PartySize        int        `json:"party_size"`
	TableID          string     `json:"table_id,omitempty"`
	TableName        string     `json:"table_name,omitempty"`
	Status           string     `json:"status"`
	Occasion         string     `json:"occasion,omitempty"`
	SpecialRequests  string     `json:"special_requests,omitempty"`
	Version          int64      `json:"version"`
	CreatedAt        time.Time  `json:"created_at"`
	CheckedInAt      *time.Time `json:"checked_in_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// IsTerminal reports whether the reservation can no longer transition
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusCancelled || r.Status == StatusNoShow
}

// validNext maps each status to the statuses reachable from it. Cancelled
// and no-show are only reachable before the party is seated.
var validNext = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusSeated, StatusCancelled, StatusNoShow},
	StatusSeated:    {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// CanTransition reports whether a reservation may move between two statuses
func CanTransition(from, to string) bool {
	for _, next := range validNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ReservationRepository defines the contract for reservation data access.
// SeatAtTable commits the seat cascade (reservation and table) atomically.
type ReservationRepository interface {
	Create(reservation *Reservation) error
	FindByID(id string) (*Reservation, error)
	FindByCode(code string) (*Reservation, error)
	FindAll() ([]Reservation, error)
	Update(reservation *Reservation) error
	SeatAtTable(reservation *Reservation, table *tabledomain.Table) error
}
