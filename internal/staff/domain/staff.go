package domain

import "time"

// Shift statuses
const (
	StatusOnShift  = "on-shift"
	StatusOffShift = "off-shift"
	StatusBreak    = "break"
)

// Roles
const (
	RoleManager = "manager"
	RoleServer  = "server"
	RoleKitchen = "kitchen"
	RoleHost    = "host"
)

// Member represents the staff member entity. Staff members are also the
// dashboard's login principals.
type Member struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Password   string    `json:"-"` // bcrypt hash, never exposed in JSON
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Status     string    `json:"status"`
	Version    int64     `json:"version"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsManager reports whether the member holds the manager role
func (m *Member) IsManager() bool {
	return m.Role == RoleManager
}

// ValidStatus reports whether the shift status is known
func ValidStatus(status string) bool {
	return status == StatusOnShift || status == StatusOffShift || status == StatusBreak
}

// MemberRepository defines the contract for staff data access
type MemberRepository interface {
	Create(member *Member) error
	FindByID(id string) (*Member, error)
	FindByUsername(username string) (*Member, error)
	FindAll() ([]Member, error)
	Update(member *Member) error
}
