package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/dineboard/internal/httpx"
	"github.com/tair/dineboard/internal/menu/usecase/command"
	"github.com/tair/dineboard/internal/menu/usecase/query"
)

// MenuHandler handles HTTP requests for the menu
type MenuHandler struct {
	statusHandler   *command.SetStatusHandler
	featuredHandler *command.ToggleFeaturedHandler
	listHandler     *query.ListItemsHandler
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(
	statusHandler *command.SetStatusHandler,
	featuredHandler *command.ToggleFeaturedHandler,
	listHandler *query.ListItemsHandler,
) *MenuHandler {
	return &MenuHandler{
		statusHandler:   statusHandler,
		featuredHandler: featuredHandler,
		listHandler:     listHandler,
	}
}

// RegisterRoutes registers menu routes. Reads are open to any signed-in
// staff; mutations go on the manager-only router.
func (h *MenuHandler) RegisterRoutes(read, manage *mux.Router) {
	read.HandleFunc("/api/menu", h.ListItems).Methods("GET")
	manage.HandleFunc("/api/menu/{id}/status", h.SetStatus).Methods("PATCH")
	manage.HandleFunc("/api/menu/{id}/featured", h.ToggleFeatured).Methods("POST")
}

// ListItems handles GET /api/menu
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	items, err := h.listHandler.Handle(query.ListItemsQuery{
		Category:     q.Get("category"),
		Status:       q.Get("status"),
		Search:       q.Get("search"),
		FeaturedOnly: q.Get("featured") == "true",
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "", items)
}

// SetStatus handles PATCH /api/menu/{id}/status
func (h *MenuHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status          string `json:"status"`
		ExpectedVersion int64  `json:"expectedVersion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
		return
	}

	item, err := h.statusHandler.Handle(command.SetStatusCommand{
		ItemID:          mux.Vars(r)["id"],
		Status:          req.Status,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Menu item status updated", item)
}

// ToggleFeatured handles POST /api/menu/{id}/featured
func (h *MenuHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExpectedVersion int64 `json:"expectedVersion"`
	}
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
			return
		}
	}

	item, err := h.featuredHandler.Handle(command.ToggleFeaturedCommand{
		ItemID:          mux.Vars(r)["id"],
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Menu item updated", item)
}
