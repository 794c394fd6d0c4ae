package domain

// Menu item statuses
const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusOutOfStock = "out-of-stock"
)

// Item represents the menu item entity
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
	Featured bool    `json:"featured"`
	Version  int64   `json:"version"`
}

// ValidStatus reports whether the menu status is known
func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive || status == StatusOutOfStock
}

// ItemRepository defines the contract for menu data access
type ItemRepository interface {
	Create(item *Item) error
	FindByID(id string) (*Item, error)
	FindAll() ([]Item, error)
	Update(item *Item) error
}
