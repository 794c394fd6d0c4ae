package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/dineboard/internal/dashboard/query"
	"github.com/tair/dineboard/internal/httpx"
)

// DashboardHandler handles HTTP requests for the dashboard KPIs
type DashboardHandler struct {
	kpiHandler *query.GetKPIsHandler
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(kpiHandler *query.GetKPIsHandler) *DashboardHandler {
	return &DashboardHandler{kpiHandler: kpiHandler}
}

// RegisterRoutes registers dashboard routes on the router
func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/dashboard/kpis", h.GetKPIs).Methods("GET")
}

// GetKPIs handles GET /api/dashboard/kpis
func (h *DashboardHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.kpiHandler.Handle(query.GetKPIsQuery{})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "", kpis)
}
