//go:build wireinject
// +build wireinject

package reservation

import (
	"github.com/google/wire"

	"github.com/tair/dineboard/internal/reservation/delivery/http"
	"github.com/tair/dineboard/internal/reservation/domain"
	"github.com/tair/dineboard/internal/reservation/repository"
	"github.com/tair/dineboard/internal/reservation/usecase/command"
	"github.com/tair/dineboard/internal/reservation/usecase/query"
	"github.com/tair/dineboard/internal/state"
	tabledomain "github.com/tair/dineboard/internal/table/domain"
	tablerepository "github.com/tair/dineboard/internal/table/repository"
	"github.com/tair/dineboard/kafka"
)

// ProvideReservationRepository provides the reservation repository
func ProvideReservationRepository(c *state.Container) domain.ReservationRepository {
	return repository.NewMemoryReservationRepository(c)
}

// ProvideTableRepository provides the table repository the seat cascade
// writes through
func ProvideTableRepository(c *state.Container) tabledomain.TableRepository {
	return tablerepository.NewMemoryTableRepository(c)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideReservationRepository,
	ProvideTableRepository,
)

var HandlerSet = wire.NewSet(
	command.NewCreateReservationHandler,
	command.NewUpdateStatusHandler,
	command.NewAssignTableHandler,
	command.NewSeatHandler,
	query.NewGetReservationHandler,
	query.NewListReservationsHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(c *state.Container, publisher *kafka.Publisher) (*http.ReservationHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewReservationHandler,
	)
	return nil, nil
}
