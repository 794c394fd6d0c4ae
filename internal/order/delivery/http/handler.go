package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/dineboard/internal/httpx"
	"github.com/tair/dineboard/internal/order/domain"
	"github.com/tair/dineboard/internal/order/usecase/command"
	"github.com/tair/dineboard/internal/order/usecase/query"
)

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	createHandler  *command.CreateOrderHandler
	statusHandler  *command.UpdateStatusHandler
	paymentHandler *command.SetPaymentStatusHandler
	getHandler     *query.GetOrderHandler
	listHandler    *query.ListOrdersHandler
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	createHandler *command.CreateOrderHandler,
	statusHandler *command.UpdateStatusHandler,
	paymentHandler *command.SetPaymentStatusHandler,
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
) *OrderHandler {
	return &OrderHandler{
		createHandler:  createHandler,
		statusHandler:  statusHandler,
		paymentHandler: paymentHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
	}
}

// RegisterRoutes registers order routes on the router
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.CreateOrder).Methods("POST")
	router.HandleFunc("/api/orders", h.ListOrders).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.GetOrder).Methods("GET")
	router.HandleFunc("/api/orders/{id}/status", h.UpdateStatus).Methods("PATCH")
	router.HandleFunc("/api/orders/{id}/payment", h.UpdatePaymentStatus).Methods("PATCH")
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type            string             `json:"type"`
		Items           []domain.OrderItem `json:"items"`
		CustomerName    string             `json:"customerName"`
		CustomerContact string             `json:"customerContact"`
		TableID         string             `json:"tableId"`
		DeliveryFee     float64            `json:"deliveryFee"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
		return
	}

	order, err := h.createHandler.Handle(command.CreateOrderCommand{
		Type:            req.Type,
		Items:           req.Items,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		TableID:         req.TableID,
		DeliveryFee:     req.DeliveryFee,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusCreated, "Order created successfully", order)
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	listQuery := query.ListOrdersQuery{
		Status: q.Get("status"),
		Type:   q.Get("type"),
		Search: q.Get("search"),
		Sort:   q.Get("sort"),
	}
	if from := q.Get("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid from timestamp"})
			return
		}
		listQuery.From = t
	}
	if to := q.Get("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid to timestamp"})
			return
		}
		listQuery.To = t
	}

	orders, err := h.listHandler.Handle(listQuery)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "", orders)
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.getHandler.Handle(query.GetOrderQuery{OrderID: mux.Vars(r)["id"]})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "", order)
}

// UpdateStatus handles PATCH /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status          string `json:"status"`
		ExpectedVersion int64  `json:"expectedVersion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
		return
	}

	order, err := h.statusHandler.Handle(r.Context(), command.UpdateStatusCommand{
		OrderID:         mux.Vars(r)["id"],
		Status:          req.Status,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Order status updated", order)
}

// UpdatePaymentStatus handles PATCH /api/orders/{id}/payment
func (h *OrderHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentStatus   string `json:"paymentStatus"`
		ExpectedVersion int64  `json:"expectedVersion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, httpx.Response{Success: false, Error: "Invalid request body"})
		return
	}

	order, err := h.paymentHandler.Handle(command.SetPaymentStatusCommand{
		OrderID:         mux.Vars(r)["id"],
		PaymentStatus:   req.PaymentStatus,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Payment status updated", order)
}
