package kafka

import "time"

// Event types
const (
	EventTypeOrderStatusChanged = "order.status_changed"
	EventTypeReservationSeated  = "reservation.seated"
	EventTypeTableCleared       = "table.cleared"
	EventTypeInventoryRestocked = "inventory.restocked"
	EventTypeInventoryLowStock  = "inventory.low_stock"
)

// Kafka topics
const (
	TopicOrderEvents     = "order-events"
	TopicFloorEvents     = "floor-events"
	TopicInventoryEvents = "inventory-events"
)

// OrderStatusChangedEvent is published on every order status transition
type OrderStatusChangedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	OrderType   string    `json:"order_type"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	Total       float64   `json:"total"`
	Timestamp   time.Time `json:"timestamp"`
}

// ReservationSeatedEvent is published when a reservation party is seated
type ReservationSeatedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	ReservationID string    `json:"reservation_id"`
	TableID       string    `json:"table_id"`
	PartySize     int       `json:"party_size"`
	Timestamp     time.Time `json:"timestamp"`
}

// TableClearedEvent is published when an occupied table is cleared
type TableClearedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	TableID   string    `json:"table_id"`
	TableName string    `json:"table_name"`
	Timestamp time.Time `json:"timestamp"`
}

// InventoryRestockedEvent is published after a successful restock
type InventoryRestockedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Quantity  float64   `json:"quantity"`
	NewStock  float64   `json:"new_stock"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

// InventoryLowStockEvent is published when an item sits at or below its
// minimum stock level after a mutation
type InventoryLowStockEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	ItemID       string    `json:"item_id"`
	ItemName     string    `json:"item_name"`
	CurrentStock float64   `json:"current_stock"`
	MinStock     float64   `json:"min_stock"`
	Timestamp    time.Time `json:"timestamp"`
}
