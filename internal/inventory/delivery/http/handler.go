package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/dineboard/internal/httpx"
	"github.com/tair/dineboard/internal/inventory/usecase/command"
	"github.com/tair/dineboard/internal/inventory/usecase/query"
)

// InventoryHandler handles HTTP requests for inventory
type InventoryHandler struct {
	restockHandler *command.RestockHandler
	listHandler    *query.ListItemsHandler
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(restockHandler *command.RestockHandler, listHandler *query.ListItemsHandler) *InventoryHandler {
	return &InventoryHandler{restockHandler: restockHandler, listHandler: listHandler}
}

// RegisterRoutes registers inventory routes on the router
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory", h.ListItems).Methods("GET")
	router.HandleFunc("/api/inventory/{id}/restock", h.Restock).Methods("POST")
}

// ListItems handles GET /api/inventory
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	items, err := h.listHandler.Handle(query.ListItemsQuery{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		LowOnly:  q.Get("low") == "true",
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "", items)
}

// Restock handles POST /api/inventory/{id}/restock
func (h *InventoryHandler) Restock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity        float64 `json:"quantity"`
		ExpectedVersion int64   `json:"expectedVersion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
		return
	}

	actor, _ := httpx.UsernameFromContext(r.Context())

	item, err := h.restockHandler.Handle(r.Context(), command.RestockCommand{
		ItemID:          mux.Vars(r)["id"],
		Quantity:        req.Quantity,
		Actor:           actor,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Item restocked", item)
}
