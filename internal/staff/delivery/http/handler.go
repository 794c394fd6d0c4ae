package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/dineboard/internal/httpx"
	"github.com/tair/dineboard/internal/staff/usecase/command"
	"github.com/tair/dineboard/internal/staff/usecase/query"
)

// StaffHandler handles HTTP requests for staff
type StaffHandler struct {
	loginHandler *command.LoginHandler
	shiftHandler *command.SetShiftStatusHandler
	listHandler  *query.ListMembersHandler
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(
	loginHandler *command.LoginHandler,
	shiftHandler *command.SetShiftStatusHandler,
	listHandler *query.ListMembersHandler,
) *StaffHandler {
	return &StaffHandler{
		loginHandler: loginHandler,
		shiftHandler: shiftHandler,
		listHandler:  listHandler,
	}
}

// RegisterRoutes registers staff routes. Login is public, the roster is
// readable by any signed-in staff, and shift changes are manager-only.
func (h *StaffHandler) RegisterRoutes(public, read, manage *mux.Router) {
	public.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	read.HandleFunc("/api/staff", h.ListMembers).Methods("GET")
	manage.HandleFunc("/api/staff/{id}/shift", h.SetShiftStatus).Methods("PATCH")
}

// Login handles POST /api/auth/login
func (h *StaffHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
		return
	}

	resp, err := h.loginHandler.Handle(command.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		// Always the same message, regardless of which check failed
		httpx.RespondJSON(w, http.StatusUnauthorized, httpx.Response{Success: false, Error: "invalid credentials"})
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Login successful", resp)
}

// ListMembers handles GET /api/staff
func (h *StaffHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	members, err := h.listHandler.Handle(query.ListMembersQuery{
		Role:       q.Get("role"),
		Department: q.Get("department"),
		Status:     q.Get("status"),
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "", members)
}

// SetShiftStatus handles PATCH /api/staff/{id}/shift
func (h *StaffHandler) SetShiftStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status          string `json:"status"`
		ExpectedVersion int64  `json:"expectedVersion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
		return
	}

	member, err := h.shiftHandler.Handle(command.SetShiftStatusCommand{
		StaffID:         mux.Vars(r)["id"],
		Status:          req.Status,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Shift status updated", member)
}
