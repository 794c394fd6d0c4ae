package query

import (
	"github.com/tair/dineboard/internal/reservation/domain"
)

// GetReservationQuery represents the query to fetch one reservation by id
// or confirmation code
type GetReservationQuery struct {
	ReservationID    string
	ConfirmationCode string
}

// GetReservationHandler handles get reservation queries
type GetReservationHandler struct {
	repo domain.ReservationRepository
}

// NewGetReservationHandler creates a new get reservation handler
func NewGetReservationHandler(repo domain.ReservationRepository) *GetReservationHandler {
	return &GetReservationHandler{repo: repo}
}

// Handle executes the get reservation query
func (h *GetReservationHandler) Handle(query GetReservationQuery) (*domain.Reservation, error) {
	if query.ReservationID != "" {
		return h.repo.FindByID(query.ReservationID)
	}
	return h.repo.FindByCode(query.ConfirmationCode)
}
