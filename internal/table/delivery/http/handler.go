package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/dineboard/internal/httpx"
	"github.com/tair/dineboard/internal/table/usecase/command"
	"github.com/tair/dineboard/internal/table/usecase/query"
)

// TableHandler handles HTTP requests for floor tables
type TableHandler struct {
	clearHandler     *command.ClearTableHandler
	availHandler     *command.MarkAvailableHandler
	listHandler      *query.ListTablesHandler
	occupancyHandler *query.GetOccupancyHandler
}

// NewTableHandler creates a new table handler
func NewTableHandler(
	clearHandler *command.ClearTableHandler,
	availHandler *command.MarkAvailableHandler,
	listHandler *query.ListTablesHandler,
	occupancyHandler *query.GetOccupancyHandler,
) *TableHandler {
	return &TableHandler{
		clearHandler:     clearHandler,
		availHandler:     availHandler,
		listHandler:      listHandler,
		occupancyHandler: occupancyHandler,
	}
}

// RegisterRoutes registers table routes on the router
func (h *TableHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/tables", h.ListTables).Methods("GET")
	router.HandleFunc("/api/tables/occupancy", h.GetOccupancy).Methods("GET")
	router.HandleFunc("/api/tables/{id}/clear", h.ClearTable).Methods("POST")
	router.HandleFunc("/api/tables/{id}/available", h.MarkAvailable).Methods("POST")
}

// ListTables handles GET /api/tables
func (h *TableHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tables, err := h.listHandler.Handle(query.ListTablesQuery{
		Status: q.Get("status"),
		Area:   q.Get("area"),
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "", tables)
}

// GetOccupancy handles GET /api/tables/occupancy
func (h *TableHandler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	summary, err := h.occupancyHandler.Handle()
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "", summary)
}

// ClearTable handles POST /api/tables/{id}/clear
func (h *TableHandler) ClearTable(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExpectedVersion int64 `json:"expectedVersion"`
	}
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
			return
		}
	}

	table, err := h.clearHandler.Handle(r.Context(), command.ClearTableCommand{
		TableID:         mux.Vars(r)["id"],
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Table cleared", table)
}

// MarkAvailable handles POST /api/tables/{id}/available
func (h *TableHandler) MarkAvailable(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExpectedVersion int64 `json:"expectedVersion"`
	}
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
			return
		}
	}

	table, err := h.availHandler.Handle(command.MarkAvailableCommand{
		TableID:         mux.Vars(r)["id"],
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Table available", table)
}
