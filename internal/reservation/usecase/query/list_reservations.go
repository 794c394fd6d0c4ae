package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tair/dineboard/internal/reservation/domain"
)

// ListReservationsQuery represents the query to list reservations with
// filters
type ListReservationsQuery struct {
	Status   string
	Date     string // exact date, YYYY-MM-DD
	DateFrom string
	DateTo   string
	Search   string // case-insensitive match on name, contact, confirmation code
}

// ListReservationsHandler handles list reservations queries
type ListReservationsHandler struct {
	repo domain.ReservationRepository
}

// NewListReservationsHandler creates a new list reservations handler
func NewListReservationsHandler(repo domain.ReservationRepository) *ListReservationsHandler {
	return &ListReservationsHandler{repo: repo}
}

// Handle executes the list query: fresh slice, chronological by date and
// time, ties broken on customer name then id.
func (h *ListReservationsHandler) Handle(query ListReservationsQuery) ([]domain.Reservation, error) {
	all, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(query.Search))
	filtered := make([]domain.Reservation, 0, len(all))
	for _, r := range all {
		if query.Status != "" && r.Status != query.Status {
			continue
		}
		if query.Date != "" && r.Date != query.Date {
			continue
		}
		// Date strings are ISO-formatted, so lexicographic comparison is
		// chronological
		if query.DateFrom != "" && r.Date < query.DateFrom {
			continue
		}
		if query.DateTo != "" && r.Date > query.DateTo {
			continue
		}
		if needle != "" && !matchesReservation(&r, needle) {
			continue
		}
		filtered = append(filtered, r)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		if a.CustomerName != b.CustomerName {
			return a.CustomerName < b.CustomerName
		}
		return a.ID < b.ID
	})

	return filtered, nil
}

func matchesReservation(r *domain.Reservation, needle string) bool {
	return strings.Contains(strings.ToLower(r.CustomerName), needle) ||
		strings.Contains(strings.ToLower(r.CustomerContact), needle) ||
		strings.Contains(strings.ToLower(r.ConfirmationCode), needle)
}
