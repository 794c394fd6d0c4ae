package query

import (
	"github.com/tair/dineboard/internal/order/domain"
)

// GetOrderQuery represents the query to fetch one order
type GetOrderQuery struct {
	OrderID string
}

// GetOrderHandler handles get order queries
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(query GetOrderQuery) (*domain.Order, error) {
	return h.repo.FindByID(query.OrderID)
}
