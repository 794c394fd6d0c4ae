// Package state holds the application-state container: one in-memory
// collection per entity type, guarded by a single lock so that cascading
// mutations (seating a reservation also updates its table) commit
// atomically. There are no package-level singletons; callers own a
// *Container handle.
package state

import (
	"sort"
	"sync"
	"time"

	inventorydomain "github.com/tair/dineboard/internal/inventory/domain"
	menudomain "github.com/tair/dineboard/internal/menu/domain"
	orderdomain "github.com/tair/dineboard/internal/order/domain"
	reservationdomain "github.com/tair/dineboard/internal/reservation/domain"
	staffdomain "github.com/tair/dineboard/internal/staff/domain"
	tabledomain "github.com/tair/dineboard/internal/table/domain"
)

// Data is the full set of entity collections, keyed by id. The menu
// collection is rebuilt from the seed dataset on boot and is not part of
// the persisted snapshot.
type Data struct {
	Orders       map[string]orderdomain.Order
	Reservations map[string]reservationdomain.Reservation
	Tables       map[string]tabledomain.Table
	Inventory    map[string]inventorydomain.Item
	Menu         map[string]menudomain.Item
	Staff        map[string]staffdomain.Member
	LastUpdated  time.Time
}

func newData() Data {
	return Data{
		Orders:       make(map[string]orderdomain.Order),
		Reservations: make(map[string]reservationdomain.Reservation),
		Tables:       make(map[string]tabledomain.Table),
		Inventory:    make(map[string]inventorydomain.Item),
		Menu:         make(map[string]menudomain.Item),
		Staff:        make(map[string]staffdomain.Member),
	}
}

// Container owns the mutable application state
type Container struct {
	mu    sync.RWMutex
	data  Data
	dirty chan struct{}
}

// NewContainer creates an empty state container
func NewContainer() *Container {
	return &Container{
		data:  newData(),
		dirty: make(chan struct{}, 1),
	}
}

// View runs fn with shared read access to the state
func (c *Container) View(fn func(d *Data) error) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fn(&c.data)
}

// Update runs fn with exclusive write access. On success the container is
// marked dirty so the snapshot writer picks up the change.
func (c *Container) Update(fn func(d *Data) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := fn(&c.data); err != nil {
		return err
	}

	c.data.LastUpdated = time.Now()
	select {
	case c.dirty <- struct{}{}:
	default:
	}
	return nil
}

// Dirty signals after each committed mutation. The channel has capacity
// one; coalesced signals are fine because the snapshot is a whole-object
// overwrite.
func (c *Container) Dirty() <-chan struct{} {
	return c.dirty
}

// SortedIDs returns map keys in ascending order for deterministic reads
func SortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
