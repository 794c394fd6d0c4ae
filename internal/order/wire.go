//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"

	"github.com/tair/dineboard/internal/order/delivery/http"
	"github.com/tair/dineboard/internal/order/domain"
	"github.com/tair/dineboard/internal/order/repository"
	"github.com/tair/dineboard/internal/order/usecase/command"
	"github.com/tair/dineboard/internal/order/usecase/query"
	"github.com/tair/dineboard/internal/state"
	"github.com/tair/dineboard/kafka"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(c *state.Container) domain.OrderRepository {
	return repository.NewMemoryOrderRepository(c)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
)

var HandlerSet = wire.NewSet(
	command.NewCreateOrderHandler,
	command.NewUpdateStatusHandler,
	command.NewSetPaymentStatusHandler,
	query.NewGetOrderHandler,
	query.NewListOrdersHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(c *state.Container, taxRate float64, publisher *kafka.Publisher) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewOrderHandler,
	)
	return nil, nil
}
