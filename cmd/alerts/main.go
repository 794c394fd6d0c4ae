package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/tair/dineboard/internal/config"
	"github.com/tair/dineboard/kafka"
	"github.com/tair/dineboard/pkg/logger"
)

// alerts tails the event topics and surfaces the conditions an operator
// should react to: items running low and orders reaching the kitchen.
func main() {
	cfg := config.Load()

	logger.Init("dineboard-alerts", cfg.Environment == "development")
	logger.SetLevel(cfg.LogLevel)

	if len(cfg.KafkaBrokers) == 0 {
		logger.Logger.Fatal().Msg("KAFKA_BROKERS is required")
	}

	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, "dineboard-alerts", []string{
		kafka.TopicOrderEvents,
		kafka.TopicFloorEvents,
		kafka.TopicInventoryEvents,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeInventoryLowStock, handleLowStock)
	consumer.RegisterHandler(kafka.EventTypeOrderStatusChanged, handleOrderStatusChanged)
	consumer.RegisterHandler(kafka.EventTypeReservationSeated, handleReservationSeated)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := consumer.Start(ctx); err != nil {
			logger.Logger.Error().Err(err).Msg("Consumer stopped")
		}
	}()

	logger.Logger.Info().Strs("brokers", cfg.KafkaBrokers).Msg("Alerts consumer running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down")
	cancel()
}

func handleLowStock(ctx context.Context, eventID string, payload []byte) error {
	var event kafka.InventoryLowStockEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}

	logger.Warn(ctx).
		Str("event_id", eventID).
		Str("item_id", event.ItemID).
		Str("item_name", event.ItemName).
		Float64("current_stock", event.CurrentStock).
		Float64("min_stock", event.MinStock).
		Msg("ALERT: inventory item low on stock")
	return nil
}

func handleOrderStatusChanged(ctx context.Context, eventID string, payload []byte) error {
	var event kafka.OrderStatusChangedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}

	logger.Info(ctx).
		Str("event_id", eventID).
		Str("order_id", event.OrderID).
		Str("order_number", event.OrderNumber).
		Str("from", event.FromStatus).
		Str("to", event.ToStatus).
		Msg("Order status changed")
	return nil
}

func handleReservationSeated(ctx context.Context, eventID string, payload []byte) error {
	var event kafka.ReservationSeatedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}

	logger.Info(ctx).
		Str("event_id", eventID).
		Str("reservation_id", event.ReservationID).
		Str("table_id", event.TableID).
		Int("party_size", event.PartySize).
		Msg("Party seated")
	return nil
}
