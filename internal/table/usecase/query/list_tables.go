package query

import (
	"fmt"
	"sort"

	"github.com/tair/dineboard/internal/table/domain"
)

// ListTablesQuery represents the query to list tables with filters
type ListTablesQuery struct {
	Status string
	Area   string
}

// ListTablesHandler handles list tables queries
type ListTablesHandler struct {
	repo domain.TableRepository
}

// NewListTablesHandler creates a new list tables handler
func NewListTablesHandler(repo domain.TableRepository) *ListTablesHandler {
	return &ListTablesHandler{repo: repo}
}

// Handle executes the list query, ordered by name then id
func (h *ListTablesHandler) Handle(query ListTablesQuery) ([]domain.Table, error) {
	all, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	filtered := make([]domain.Table, 0, len(all))
	for _, t := range all {
		if query.Status != "" && t.Status != query.Status {
			continue
		}
		if query.Area != "" && t.Area != query.Area {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Name != filtered[j].Name {
			return filtered[i].Name < filtered[j].Name
		}
		return filtered[i].ID < filtered[j].ID
	})

	return filtered, nil
}
