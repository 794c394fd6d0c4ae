package state

import (
	"time"

	inventorydomain "github.com/tair/dineboard/internal/inventory/domain"
	menudomain "github.com/tair/dineboard/internal/menu/domain"
	orderdomain "github.com/tair/dineboard/internal/order/domain"
	reservationdomain "github.com/tair/dineboard/internal/reservation/domain"
	staffdomain "github.com/tair/dineboard/internal/staff/domain"
	tabledomain "github.com/tair/dineboard/internal/table/domain"
	"github.com/tair/dineboard/pkg/auth"
)

// SeedMenu loads the bundled menu dataset. The menu is outside the
// persisted snapshot, so this runs on every boot.
func (c *Container) SeedMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range seedMenuItems() {
		c.data.Menu[item.ID] = item
	}
}

// Seed loads the bundled fixed dataset for every other collection. It is
// applied only when no snapshot exists under the configured key.
func (c *Container) Seed() error {
	now := time.Now()
	today := now.Format("2006-01-02")

	managerHash, err := auth.HashPassword("manager123")
	if err != nil {
		return err
	}
	serverHash, err := auth.HashPassword("server123")
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range []tabledomain.Table{
		{ID: "tbl-01", Name: "T-01", Capacity: 2, Area: "window", Status: tabledomain.StatusAvailable},
		{ID: "tbl-02", Name: "T-02", Capacity: 2, Area: "window", Status: tabledomain.StatusAvailable},
		{ID: "tbl-03", Name: "T-03", Capacity: 4, Area: "main", Status: tabledomain.StatusAvailable},
		{ID: "tbl-04", Name: "T-04", Capacity: 4, Area: "main", Status: tabledomain.StatusAvailable},
		{ID: "tbl-05", Name: "T-05", Capacity: 6, Area: "main", Status: tabledomain.StatusAvailable},
		{ID: "tbl-06", Name: "T-06", Capacity: 8, Area: "patio", Status: tabledomain.StatusAvailable},
	} {
		c.data.Tables[t.ID] = t
	}

	expSoon := now.Add(3 * 24 * time.Hour)
	expLater := now.Add(30 * 24 * time.Hour)
	for _, i := range []inventorydomain.Item{
		{ID: "inv-01", Name: "Tomatoes", Category: "produce", CurrentStock: 24, MinStock: 10, MaxStock: 60, Unit: "kg", CostPerUnit: 2.4, ExpirationDate: &expSoon},
		{ID: "inv-02", Name: "Mozzarella", Category: "dairy", CurrentStock: 8, MinStock: 10, MaxStock: 40, Unit: "kg", CostPerUnit: 7.9, ExpirationDate: &expSoon},
		{ID: "inv-03", Name: "Flour", Category: "dry goods", CurrentStock: 45, MinStock: 20, MaxStock: 100, Unit: "kg", CostPerUnit: 1.1, ExpirationDate: &expLater},
		{ID: "inv-04", Name: "Olive Oil", Category: "dry goods", CurrentStock: 12, MinStock: 5, MaxStock: 30, Unit: "l", CostPerUnit: 9.5},
		{ID: "inv-05", Name: "Espresso Beans", Category: "beverage", CurrentStock: 4, MinStock: 6, MaxStock: 25, Unit: "kg", CostPerUnit: 18.0},
	} {
		c.data.Inventory[i.ID] = i
	}

	for _, m := range []staffdomain.Member{
		{ID: "stf-01", Name: "Dana Reyes", Username: "dana", Password: managerHash, Role: staffdomain.RoleManager, Department: "front-of-house", Status: staffdomain.StatusOnShift, CreatedAt: now},
		{ID: "stf-02", Name: "Milo Tan", Username: "milo", Password: serverHash, Role: staffdomain.RoleServer, Department: "front-of-house", Status: staffdomain.StatusOnShift, CreatedAt: now},
		{ID: "stf-03", Name: "Ines Duarte", Username: "ines", Password: serverHash, Role: staffdomain.RoleKitchen, Department: "kitchen", Status: staffdomain.StatusOffShift, CreatedAt: now},
	} {
		c.data.Staff[m.ID] = m
	}

	c.data.Reservations["res-01"] = reservationdomain.Reservation{
		ID:               "res-01",
		ConfirmationCode: "DNB-4821",
		CustomerName:     "Priya Shah",
		CustomerContact:  "priya@example.com",
		Date:             today,
		Time:             "19:00",
		PartySize:        4,
		Status:           reservationdomain.StatusConfirmed,
		CreatedAt:        now.Add(-48 * time.Hour),
	}

	c.data.Orders["ord-01"] = orderdomain.Order{
		ID:           "ord-01",
		OrderNumber:  "1001",
		Type:         orderdomain.TypeDineIn,
		Status:       orderdomain.StatusPending,
		Items:        []orderdomain.OrderItem{{Name: "Margherita", Quantity: 2, UnitPrice: 14.5}},
		Subtotal:     29.0,
		Tax:          2.9,
		Total:        31.9,
		CustomerName: "Walk-in",
		TableID:      "tbl-03",
		PaymentStatus: orderdomain.PaymentPending,
		CreatedAt:    now.Add(-20 * time.Minute),
	}

	c.data.LastUpdated = now
	return nil
}

func seedMenuItems() []menudomain.Item {
	return []menudomain.Item{
		{ID: "mnu-01", Name: "Margherita", Category: "pizza", Price: 14.5, Status: menudomain.StatusActive, Featured: true},
		{ID: "mnu-02", Name: "Diavola", Category: "pizza", Price: 16.0, Status: menudomain.StatusActive},
		{ID: "mnu-03", Name: "Caesar Salad", Category: "salad", Price: 11.0, Status: menudomain.StatusActive},
		{ID: "mnu-04", Name: "Tiramisu", Category: "dessert", Price: 8.5, Status: menudomain.StatusActive, Featured: true},
		{ID: "mnu-05", Name: "Burrata", Category: "starter", Price: 12.0, Status: menudomain.StatusOutOfStock},
		{ID: "mnu-06", Name: "House Red", Category: "beverage", Price: 7.0, Status: menudomain.StatusActive},
	}
}
