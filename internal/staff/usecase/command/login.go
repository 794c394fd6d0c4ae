package command

import (
	"fmt"

	"github.com/tair/dineboard/internal/staff/domain"
	"github.com/tair/dineboard/pkg/auth"
)

// LoginCommand represents the command to log a staff member in
type LoginCommand struct {
	Username string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token string         `json:"token"`
	Staff *domain.Member `json:"staff"`
}

// LoginHandler handles staff login
type LoginHandler struct {
	repo domain.MemberRepository
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(repo domain.MemberRepository) *LoginHandler {
	return &LoginHandler{repo: repo}
}

// Handle executes the login command
func (h *LoginHandler) Handle(cmd LoginCommand) (*LoginResponse, error) {
	if cmd.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	member, err := h.repo.FindByUsername(cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if !auth.CheckPassword(member.Password, cmd.Password) {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := auth.GenerateToken(member.ID, member.Username, member.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token: token,
		Staff: member,
	}, nil
}
