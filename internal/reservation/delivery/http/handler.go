package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"

	"github.com/tair/dineboard/internal/httpx"
	"github.com/tair/dineboard/internal/reservation/usecase/command"
	"github.com/tair/dineboard/internal/reservation/usecase/query"
)

// ReservationHandler handles HTTP requests for reservations
type ReservationHandler struct {
	createHandler *command.CreateReservationHandler
	statusHandler *command.UpdateStatusHandler
	assignHandler *command.AssignTableHandler
	seatHandler   *command.SeatHandler
	getHandler    *query.GetReservationHandler
	listHandler   *query.ListReservationsHandler
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(
	createHandler *command.CreateReservationHandler,
	statusHandler *command.UpdateStatusHandler,
	assignHandler *command.AssignTableHandler,
	seatHandler *command.SeatHandler,
	getHandler *query.GetReservationHandler,
	listHandler *query.ListReservationsHandler,
) *ReservationHandler {
	return &ReservationHandler{
		createHandler: createHandler,
		statusHandler: statusHandler,
		assignHandler: assignHandler,
		seatHandler:   seatHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

// RegisterRoutes registers reservation routes on the router
func (h *ReservationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reservations", h.CreateReservation).Methods("POST")
	router.HandleFunc("/api/reservations", h.ListReservations).Methods("GET")
	router.HandleFunc("/api/reservations/{id}", h.GetReservation).Methods("GET")
	router.HandleFunc("/api/reservations/{id}/status", h.UpdateStatus).Methods("PATCH")
	router.HandleFunc("/api/reservations/{id}/table", h.AssignTable).Methods("PATCH")
	router.HandleFunc("/api/reservations/{id}/seat", h.Seat).Methods("POST")
	router.HandleFunc("/api/reservations/{id}/qr", h.ConfirmationQR).Methods("GET")
}

// CreateReservation handles POST /api/reservations
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerName    string `json:"customerName"`
		CustomerContact string `json:"customerContact"`
		Date            string `json:"date"`
		Time            string `json:"time"`
		PartySize       int    `json:"partySize"`
		Occasion        string `json:"occasion"`
		SpecialRequests string `json:"specialRequests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
		return
	}

	reservation, err := h.createHandler.Handle(command.CreateReservationCommand{
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		Date:            req.Date,
		Time:            req.Time,
		PartySize:       req.PartySize,
		Occasion:        req.Occasion,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusCreated, "Reservation created successfully", reservation)
}

// ListReservations handles GET /api/reservations
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	reservations, err := h.listHandler.Handle(query.ListReservationsQuery{
		Status:   q.Get("status"),
		Date:     q.Get("date"),
		DateFrom: q.Get("dateFrom"),
		DateTo:   q.Get("dateTo"),
		Search:   q.Get("search"),
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "", reservations)
}

// GetReservation handles GET /api/reservations/{id}. A confirmation code
// can stand in for the id.
func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	reservation, err := h.getHandler.Handle(query.GetReservationQuery{
		ReservationID:    id,
		ConfirmationCode: id,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "", reservation)
}

// UpdateStatus handles PATCH /api/reservations/{id}/status
func (h *ReservationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status          string `json:"status"`
		ExpectedVersion int64  `json:"expectedVersion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
		return
	}

	reservation, err := h.statusHandler.Handle(command.UpdateStatusCommand{
		ReservationID:   mux.Vars(r)["id"],
		Status:          req.Status,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Reservation status updated", reservation)
}

// AssignTable handles PATCH /api/reservations/{id}/table
func (h *ReservationHandler) AssignTable(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TableID         string `json:"tableId"`
		ExpectedVersion int64  `json:"expectedVersion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
		return
	}

	reservation, err := h.assignHandler.Handle(command.AssignTableCommand{
		ReservationID:   mux.Vars(r)["id"],
		TableID:         req.TableID,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Table assigned", reservation)
}

// Seat handles POST /api/reservations/{id}/seat
func (h *ReservationHandler) Seat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExpectedVersion int64 `json:"expectedVersion"`
	}
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
			return
		}
	}

	reservation, err := h.seatHandler.Handle(r.Context(), command.SeatCommand{
		ReservationID:   mux.Vars(r)["id"],
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Party seated", reservation)
}

// ConfirmationQR handles GET /api/reservations/{id}/qr and returns a PNG
// QR code of the confirmation code for front-desk check-in
func (h *ReservationHandler) ConfirmationQR(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	reservation, err := h.getHandler.Handle(query.GetReservationQuery{
		ReservationID:    id,
		ConfirmationCode: id,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	png, err := qrcode.Encode(reservation.ConfirmationCode, qrcode.Medium, 256)
	if err != nil {
		httpx.RespondJSON(w, http.StatusInternalServerError, httpx.Response{Success: false, Error: "Failed to generate QR code"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
