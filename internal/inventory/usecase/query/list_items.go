package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tair/dineboard/internal/inventory/domain"
)

// ItemView is an inventory item with its derived flags. The flags are
// computed on read, never stored.
type ItemView struct {
	domain.Item
	LowStock bool `json:"low_stock"`
	Expiring bool `json:"expiring"`
}

// ListItemsQuery represents the query to list inventory with filters
type ListItemsQuery struct {
	Category string
	Search   string // case-insensitive match on name and category
	LowOnly  bool
}

// ListItemsHandler handles list inventory queries
type ListItemsHandler struct {
	repo    domain.ItemRepository
	horizon time.Duration
	now     func() time.Time
}

// NewListItemsHandler creates a new list inventory handler. The horizon
// bounds the "expiring" flag.
func NewListItemsHandler(repo domain.ItemRepository, horizon time.Duration) *ListItemsHandler {
	return &ListItemsHandler{repo: repo, horizon: horizon, now: time.Now}
}

// Handle executes the list query, ordered by name then id
func (h *ListItemsHandler) Handle(query ListItemsQuery) ([]ItemView, error) {
	all, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	now := h.now()
	needle := strings.ToLower(strings.TrimSpace(query.Search))
	views := make([]ItemView, 0, len(all))
	for _, item := range all {
		if query.Category != "" && item.Category != query.Category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.Category), needle) {
			continue
		}
		view := ItemView{
			Item:     item,
			LowStock: item.LowStock(),
			Expiring: item.ExpiringWithin(h.horizon, now),
		}
		if query.LowOnly && !view.LowStock {
			continue
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Name != views[j].Name {
			return views[i].Name < views[j].Name
		}
		return views[i].ID < views[j].ID
	})

	return views, nil
}
