package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/dineboard/pkg/logger"
)

// Publisher wraps a Kafka sync producer. A nil *Publisher is valid and
// publishes nothing, so event publishing can be switched off by leaving
// the broker list empty.
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishOrderStatusChanged publishes an order status transition
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error {
	event.EventType = EventTypeOrderStatusChanged
	return p.publish(ctx, TopicOrderEvents, "order_"+event.OrderID, event.EventType, &event.EventID, &event.Timestamp, &event)
}

// PublishReservationSeated publishes a seated reservation
func (p *Publisher) PublishReservationSeated(ctx context.Context, event ReservationSeatedEvent) error {
	event.EventType = EventTypeReservationSeated
	return p.publish(ctx, TopicFloorEvents, "reservation_"+event.ReservationID, event.EventType, &event.EventID, &event.Timestamp, &event)
}

// PublishTableCleared publishes a cleared table
func (p *Publisher) PublishTableCleared(ctx context.Context, event TableClearedEvent) error {
	event.EventType = EventTypeTableCleared
	return p.publish(ctx, TopicFloorEvents, "table_"+event.TableID, event.EventType, &event.EventID, &event.Timestamp, &event)
}

// PublishInventoryRestocked publishes a restock
func (p *Publisher) PublishInventoryRestocked(ctx context.Context, event InventoryRestockedEvent) error {
	event.EventType = EventTypeInventoryRestocked
	return p.publish(ctx, TopicInventoryEvents, "item_"+event.ItemID, event.EventType, &event.EventID, &event.Timestamp, &event)
}

// PublishInventoryLowStock publishes a low-stock alert
func (p *Publisher) PublishInventoryLowStock(ctx context.Context, event InventoryLowStockEvent) error {
	event.EventType = EventTypeInventoryLowStock
	return p.publish(ctx, TopicInventoryEvents, "item_"+event.ItemID, event.EventType, &event.EventID, &event.Timestamp, &event)
}

func (p *Publisher) publish(ctx context.Context, topic, key, eventType string, eventID *string, timestamp *time.Time, event interface{}) error {
	if p == nil {
		return nil
	}

	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("event.type", eventType),
		),
	)
	defer span.End()

	if *eventID == "" {
		*eventID = uuid.NewString()
	}
	*timestamp = time.Now()
	span.SetAttributes(attribute.String("event.id", *eventID))

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(*eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(v),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Str("event_type", eventType).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Logger.Info().
		Str("event_id", *eventID).
		Str("event_type", eventType).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
