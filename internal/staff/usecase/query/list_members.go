package query

import (
	"fmt"
	"sort"

	"github.com/tair/dineboard/internal/staff/domain"
)

// ListMembersQuery represents the query to list staff with filters
type ListMembersQuery struct {
	Role       string
	Department string
	Status     string
}

// ListMembersHandler handles list staff queries
type ListMembersHandler struct {
	repo domain.MemberRepository
}

// NewListMembersHandler creates a new list staff handler
func NewListMembersHandler(repo domain.MemberRepository) *ListMembersHandler {
	return &ListMembersHandler{repo: repo}
}

// Handle executes the list query, ordered by name then id
func (h *ListMembersHandler) Handle(query ListMembersQuery) ([]domain.Member, error) {
	all, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	filtered := make([]domain.Member, 0, len(all))
	for _, m := range all {
		if query.Role != "" && m.Role != query.Role {
			continue
		}
		if query.Department != "" && m.Department != query.Department {
			continue
		}
		if query.Status != "" && m.Status != query.Status {
			continue
		}
		filtered = append(filtered, m)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Name != filtered[j].Name {
			return filtered[i].Name < filtered[j].Name
		}
		return filtered[i].ID < filtered[j].ID
	})

	return filtered, nil
}
