package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tair/dineboard/internal/config"
	dashboardHTTP "github.com/tair/dineboard/internal/dashboard/delivery/http"
	dashboardquery "github.com/tair/dineboard/internal/dashboard/query"
	"github.com/tair/dineboard/internal/httpx"
	inventoryHTTP "github.com/tair/dineboard/internal/inventory/delivery/http"
	inventoryrepo "github.com/tair/dineboard/internal/inventory/repository"
	inventorycommand "github.com/tair/dineboard/internal/inventory/usecase/command"
	inventoryquery "github.com/tair/dineboard/internal/inventory/usecase/query"
	menuHTTP "github.com/tair/dineboard/internal/menu/delivery/http"
	menurepo "github.com/tair/dineboard/internal/menu/repository"
	menucommand "github.com/tair/dineboard/internal/menu/usecase/command"
	menuquery "github.com/tair/dineboard/internal/menu/usecase/query"
	"github.com/tair/dineboard/internal/order"
	orderrepo "github.com/tair/dineboard/internal/order/repository"
	ordercommand "github.com/tair/dineboard/internal/order/usecase/command"
	"github.com/tair/dineboard/internal/reservation"
	reservationrepo "github.com/tair/dineboard/internal/reservation/repository"
	staffHTTP "github.com/tair/dineboard/internal/staff/delivery/http"
	staffrepo "github.com/tair/dineboard/internal/staff/repository"
	staffcommand "github.com/tair/dineboard/internal/staff/usecase/command"
	staffquery "github.com/tair/dineboard/internal/staff/usecase/query"
	"github.com/tair/dineboard/internal/state"
	"github.com/tair/dineboard/internal/state/snapshot"
	tableHTTP "github.com/tair/dineboard/internal/table/delivery/http"
	tablerepo "github.com/tair/dineboard/internal/table/repository"
	tablecommand "github.com/tair/dineboard/internal/table/usecase/command"
	tablequery "github.com/tair/dineboard/internal/table/usecase/query"
	"github.com/tair/dineboard/kafka"
	"github.com/tair/dineboard/pkg/database"
	"github.com/tair/dineboard/pkg/logger"
	"github.com/tair/dineboard/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.Environment == "development")
	logger.SetLevel(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.EnableTracing {
		tp, err := tracing.InitTracer(cfg.ServiceName)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer tracing.Shutdown(context.Background(), tp)
	}

	// State container: restore from snapshot if one exists, seed otherwise
	container := state.NewContainer()
	store := openSnapshotStore(cfg)
	defer store.Close()

	snap, err := store.Load(ctx)
	switch {
	case err == nil:
		container.Restore(snap)
		logger.Logger.Info().Str("backend", cfg.SnapshotBackend).Msg("State restored from snapshot")
	case errors.Is(err, snapshot.ErrNoSnapshot):
		if err := container.Seed(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to seed state")
		}
		logger.Logger.Info().Msg("No snapshot found, state seeded")
	default:
		logger.Logger.Fatal().Err(err).Msg("Failed to load snapshot")
	}
	// The menu is reference data, rebuilt on every boot
	container.SeedMenu()

	writer := snapshot.NewWriter(container, store, cfg.SnapshotInterval)
	go writer.Run(ctx)

	// Kafka is optional; a nil publisher publishes nothing
	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
		}
		defer publisher.Close()
	}

	router := buildRouter(cfg, container, publisher)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Logger.Info().Str("port", cfg.HTTPPort).Msg("Admin API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
}

func openSnapshotStore(cfg *config.Config) snapshot.Store {
	switch cfg.SnapshotBackend {
	case config.SnapshotBackendRedis:
		store, err := snapshot.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.SnapshotKey)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		return store
	case config.SnapshotBackendPostgres:
		db, err := database.NewGormConnection(cfg.Database)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
		}
		store, err := snapshot.NewPostgresStore(db, cfg.SnapshotKey)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to prepare snapshot table")
		}
		return store
	default:
		return snapshot.NewNoop()
	}
}

func buildRouter(cfg *config.Config, container *state.Container, publisher *kafka.Publisher) http.Handler {
	router := mux.NewRouter()

	middlewareCfg := httpx.DefaultMiddlewareConfig()
	middlewareCfg.EnableTracing = cfg.EnableTracing
	httpx.RegisterMiddlewares(router, middlewareCfg)

	router.HandleFunc("/health", healthHandler).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())

	// Everything under the auth subrouter requires a valid token;
	// the manager subrouter additionally requires the manager role
	protected := router.NewRoute().Subrouter()
	protected.Use(httpx.AuthMiddleware)
	managers := protected.NewRoute().Subrouter()
	managers.Use(httpx.ManagerMiddleware)

	expiryHorizon := time.Duration(cfg.ExpiryHorizonDays) * 24 * time.Hour

	orderHandler, err := order.InitializeHTTPHandler(container, ordercommand.DefaultTaxRate, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}
	orderHandler.RegisterRoutes(protected)

	reservationHandler, err := reservation.InitializeHTTPHandler(container, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize reservation handler")
	}
	reservationHandler.RegisterRoutes(protected)

	tableRepo := tablerepo.NewMemoryTableRepository(container)
	tableHandler := tableHTTP.NewTableHandler(
		tablecommand.NewClearTableHandler(tableRepo, publisher),
		tablecommand.NewMarkAvailableHandler(tableRepo),
		tablequery.NewListTablesHandler(tableRepo),
		tablequery.NewGetOccupancyHandler(tableRepo),
	)
	tableHandler.RegisterRoutes(protected)

	inventoryRepo := inventoryrepo.NewMemoryItemRepository(container)
	inventoryHandler := inventoryHTTP.NewInventoryHandler(
		inventorycommand.NewRestockHandler(inventoryRepo, publisher, cfg.RestockClamp),
		inventoryquery.NewListItemsHandler(inventoryRepo, expiryHorizon),
	)
	inventoryHandler.RegisterRoutes(protected)

	menuRepo := menurepo.NewMemoryItemRepository(container)
	menuHandler := menuHTTP.NewMenuHandler(
		menucommand.NewSetStatusHandler(menuRepo),
		menucommand.NewToggleFeaturedHandler(menuRepo),
		menuquery.NewListItemsHandler(menuRepo),
	)
	menuHandler.RegisterRoutes(protected, managers)

	staffRepo := staffrepo.NewMemoryMemberRepository(container)
	staffHandler := staffHTTP.NewStaffHandler(
		staffcommand.NewLoginHandler(staffRepo),
		staffcommand.NewSetShiftStatusHandler(staffRepo),
		staffquery.NewListMembersHandler(staffRepo),
	)
	staffHandler.RegisterRoutes(router, protected, managers)

	dashboardHandler := dashboardHTTP.NewDashboardHandler(
		dashboardquery.NewGetKPIsHandler(
			orderrepo.NewMemoryOrderRepository(container),
			reservationrepo.NewMemoryReservationRepository(container),
			tableRepo,
			inventoryRepo,
			staffRepo,
			expiryHorizon,
		),
	)
	dashboardHandler.RegisterRoutes(protected)

	return httpx.SetupCORS(middlewareCfg)(router)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	httpx.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
