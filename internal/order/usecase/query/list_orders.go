package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tair/dineboard/internal/order/domain"
)

// Sort modes for order listings
const (
	SortChronological = "chronological"
	SortActiveFirst   = "active-first"
)

// statusRank is the fixed status-priority ranking used by the
// active-orders-first view
var statusRank = map[string]int{
	domain.StatusPending:   0,
	domain.StatusConfirmed: 1,
	domain.StatusPreparing: 2,
	domain.StatusReady:     3,
	domain.StatusCompleted: 4,
	domain.StatusDelivered: 4,
	domain.StatusCancelled: 5,
}

// ListOrdersQuery represents the query to list orders with filters
type ListOrdersQuery struct {
	Status string
	Type   string
	Search string // case-insensitive match on order number, customer name, contact
	From   time.Time
	To     time.Time
	Sort   string // chronological (default) or active-first
}

// ListOrdersHandler handles list orders queries
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list query. The result is a fresh slice; the store
// is never mutated. Ordering is deterministic: comparators break ties on
// id ascending.
func (h *ListOrdersHandler) Handle(query ListOrdersQuery) ([]domain.Order, error) {
	all, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(query.Search))
	filtered := make([]domain.Order, 0, len(all))
	for _, o := range all {
		if query.Status != "" && o.Status != query.Status {
			continue
		}
		if query.Type != "" && o.Type != query.Type {
			continue
		}
		if !query.From.IsZero() && o.CreatedAt.Before(query.From) {
			continue
		}
		if !query.To.IsZero() && o.CreatedAt.After(query.To) {
			continue
		}
		if needle != "" && !matchesOrder(&o, needle) {
			continue
		}
		filtered = append(filtered, o)
	}

	switch query.Sort {
	case SortActiveFirst:
		sort.SliceStable(filtered, func(i, j int) bool {
			ri, rj := statusRank[filtered[i].Status], statusRank[filtered[j].Status]
			if ri != rj {
				return ri < rj
			}
			if !filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
				return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
			}
			return filtered[i].ID < filtered[j].ID
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			if !filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
				return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
			}
			return filtered[i].ID < filtered[j].ID
		})
	}

	return filtered, nil
}

func matchesOrder(o *domain.Order, needle string) bool {
	return strings.Contains(strings.ToLower(o.OrderNumber), needle) ||
		strings.Contains(strings.ToLower(o.CustomerName), needle) ||
		strings.Contains(strings.ToLower(o.CustomerContact), needle)
}
