package domain

import "time"

// RestockRecord is one entry of an item's restock history
type RestockRecord struct {
	Date     time.Time `json:"date"`
	Quantity float64   `json:"quantity"`
	Actor    string    `json:"actor"`
}

// Item represents the inventory item entity
type Item struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	CurrentStock   float64         `json:"current_stock"`
	MinStock       float64         `json:"min_stock"`
	MaxStock       float64         `json:"max_stock"`
	Unit           string          `json:"unit"`
	CostPerUnit    float64         `json:"cost_per_unit"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	RestockHistory []RestockRecord `json:"restock_history,omitempty"`
	Version        int64           `json:"version"`
	LastRestocked  *time.Time      `json:"last_restocked,omitempty"`
}

// LowStock reports whether the item is at or below its minimum stock level
func (i *Item) LowStock() bool {
	return i.CurrentStock <= i.MinStock
}

// ExpiringWithin reports whether the item expires within the given horizon
// from now. Items without an expiration date never expire.
func (i *Item) ExpiringWithin(horizon time.Duration, now time.Time) bool {
	if i.ExpirationDate == nil {
		return false
	}
	return !i.ExpirationDate.After(now.Add(horizon))
}

// ItemRepository defines the contract for inventory data access
type ItemRepository interface {
	Create(item *Item) error
	FindByID(id string) (*Item, error)
	FindAll() ([]Item, error)
	Update(item *Item) error
}
