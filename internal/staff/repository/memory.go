package repository

import (
	"fmt"

	appdomain "github.com/tair/dineboard/internal/domain"
	"github.com/tair/dineboard/internal/staff/domain"
	"github.com/tair/dineboard/internal/state"
)

// MemoryMemberRepository stores staff members in the shared state container
type MemoryMemberRepository struct {
	c *state.Container
}

// NewMemoryMemberRepository creates a new staff repository
func NewMemoryMemberRepository(c *state.Container) *MemoryMemberRepository {
	return &MemoryMemberRepository{c: c}
}

func (r *MemoryMemberRepository) Create(member *domain.Member) error {
	return r.c.Update(func(d *state.Data) error {
		if _, exists := d.Staff[member.ID]; exists {
			return fmt.Errorf("staff %s: %w", member.ID, appdomain.ErrConflict)
		}
		for _, stored := range d.Staff {
			if stored.Username == member.Username {
				return fmt.Errorf("username %s: %w", member.Username, appdomain.ErrConflict)
			}
		}
		member.Version = 1
		d.Staff[member.ID] = *member
		return nil
	})
}

func (r *MemoryMemberRepository) FindByID(id string) (*domain.Member, error) {
	var member domain.Member
	err := r.c.View(func(d *state.Data) error {
		stored, ok := d.Staff[id]
		if !ok {
			return fmt.Errorf("staff %s: %w", id, appdomain.ErrNotFound)
		}
		member = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemoryMemberRepository) FindByUsername(username string) (*domain.Member, error) {
	var member domain.Member
	err := r.c.View(func(d *state.Data) error {
		for _, stored := range d.Staff {
			if stored.Username == username {
				member = stored
				return nil
			}
		}
		return fmt.Errorf("staff username %s: %w", username, appdomain.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemoryMemberRepository) FindAll() ([]domain.Member, error) {
	var members []domain.Member
	err := r.c.View(func(d *state.Data) error {
		members = make([]domain.Member, 0, len(d.Staff))
		for _, id := range state.SortedIDs(d.Staff) {
			members = append(members, d.Staff[id])
		}
		return nil
	})
	return members, err
}

func (r *MemoryMemberRepository) Update(member *domain.Member) error {
	return r.c.Update(func(d *state.Data) error {
		stored, ok := d.Staff[member.ID]
		if !ok {
			return fmt.Errorf("staff %s: %w", member.ID, appdomain.ErrNotFound)
		}
		if stored.Version != member.Version {
			return fmt.Errorf("staff %s: %w", member.ID, appdomain.ErrConflict)
		}
		member.Version++
		d.Staff[member.ID] = *member
		return nil
	})
}
