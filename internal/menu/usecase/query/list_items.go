package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tair/dineboard/internal/menu/domain"
)

// ListItemsQuery represents the query to list menu items with filters
type ListItemsQuery struct {
	Category     string
	Status       string
	Search       string // case-insensitive match on name and category
	FeaturedOnly bool
}

// ListItemsHandler handles list menu queries
type ListItemsHandler struct {
	repo domain.ItemRepository
}

// NewListItemsHandler creates a new list menu handler
func NewListItemsHandler(repo domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle executes the list query, ordered by name then id
func (h *ListItemsHandler) Handle(query ListItemsQuery) ([]domain.Item, error) {
	all, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(query.Search))
	filtered := make([]domain.Item, 0, len(all))
	for _, item := range all {
		if query.Category != "" && item.Category != query.Category {
			continue
		}
		if query.Status != "" && item.Status != query.Status {
			continue
		}
		if query.FeaturedOnly && !item.Featured {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.Category), needle) {
			continue
		}
		filtered = append(filtered, item)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Name != filtered[j].Name {
			return filtered[i].Name < filtered[j].Name
		}
		return filtered[i].ID < filtered[j].ID
	})

	return filtered, nil
}
