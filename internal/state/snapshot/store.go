// Package snapshot persists the whole application state as one JSON
// document under a single fixed key. The contract is a whole-object
// overwrite on every save; loads of an absent key report ErrNoSnapshot so
// the caller can fall back to the seed dataset.
package snapshot

import (
	"context"
	"errors"

	"github.com/tair/dineboard/internal/state"
)

// ErrNoSnapshot indicates no snapshot has been saved under the key yet
var ErrNoSnapshot = errors.New("no snapshot")

// Store defines the snapshot persistence contract
type Store interface {
	Load(ctx context.Context) (*state.Snapshot, error)
	Save(ctx context.Context, snap *state.Snapshot) error
	Close() error
}

// Noop discards saves and never has a snapshot to load
type Noop struct{}

// NewNoop creates a snapshot store that persists nothing
func NewNoop() *Noop { return &Noop{} }

func (*Noop) Load(ctx context.Context) (*state.Snapshot, error) { return nil, ErrNoSnapshot }

func (*Noop) Save(ctx context.Context, snap *state.Snapshot) error { return nil }

func (*Noop) Close() error { return nil }
