package state

import (
	"time"

	inventorydomain "github.com/tair/dineboard/internal/inventory/domain"
	orderdomain "github.com/tair/dineboard/internal/order/domain"
	reservationdomain "github.com/tair/dineboard/internal/reservation/domain"
	staffdomain "github.com/tair/dineboard/internal/staff/domain"
	tabledomain "github.com/tair/dineboard/internal/table/domain"
)

// StaffRecord wraps a staff member so the bcrypt hash survives snapshot
// serialization. Member itself never exposes it over the API.
type StaffRecord struct {
	staffdomain.Member
	PasswordHash string `json:"password_hash,omitempty"`
}

// Snapshot is the persisted whole-state payload. It is written as a single
// JSON document under one fixed key: whole-object overwrite, never
// incremental. Menu items are intentionally absent.
type Snapshot struct {
	Orders       []orderdomain.Order               `json:"orders"`
	Reservations []reservationdomain.Reservation   `json:"reservations"`
	Inventory    []inventorydomain.Item            `json:"inventory"`
	Tables       []tabledomain.Table               `json:"tables"`
	Staff        []StaffRecord                     `json:"staff"`
	LastUpdated  time.Time                         `json:"lastUpdated"`
}

// Snapshot captures the current state as a persistable payload. Collections
// are emitted id-sorted for deterministic output.
func (c *Container) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := &Snapshot{LastUpdated: c.data.LastUpdated}

	for _, id := range SortedIDs(c.data.Orders) {
		snap.Orders = append(snap.Orders, c.data.Orders[id])
	}
	for _, id := range SortedIDs(c.data.Reservations) {
		snap.Reservations = append(snap.Reservations, c.data.Reservations[id])
	}
	for _, id := range SortedIDs(c.data.Inventory) {
		snap.Inventory = append(snap.Inventory, c.data.Inventory[id])
	}
	for _, id := range SortedIDs(c.data.Tables) {
		snap.Tables = append(snap.Tables, c.data.Tables[id])
	}
	for _, id := range SortedIDs(c.data.Staff) {
		member := c.data.Staff[id]
		record := StaffRecord{Member: member, PasswordHash: member.Password}
		record.Member.Password = ""
		snap.Staff = append(snap.Staff, record)
	}

	return snap
}

// Restore replaces the container's collections with the snapshot contents.
// Menu items are untouched; they come from the seed dataset.
func (c *Container) Restore(snap *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data.Orders = make(map[string]orderdomain.Order, len(snap.Orders))
	for _, o := range snap.Orders {
		c.data.Orders[o.ID] = o
	}
	c.data.Reservations = make(map[string]reservationdomain.Reservation, len(snap.Reservations))
	for _, r := range snap.Reservations {
		c.data.Reservations[r.ID] = r
	}
	c.data.Inventory = make(map[string]inventorydomain.Item, len(snap.Inventory))
	for _, i := range snap.Inventory {
		c.data.Inventory[i.ID] = i
	}
	c.data.Tables = make(map[string]tabledomain.Table, len(snap.Tables))
	for _, t := range snap.Tables {
		c.data.Tables[t.ID] = t
	}
	c.data.Staff = make(map[string]staffdomain.Member, len(snap.Staff))
	for _, s := range snap.Staff {
		member := s.Member
		member.Password = s.PasswordHash
		c.data.Staff[member.ID] = member
	}
	c.data.LastUpdated = snap.LastUpdated
}
