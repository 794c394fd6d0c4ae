package snapshot

import (
	"context"
	"time"

	"github.com/tair/dineboard/internal/state"
	"github.com/tair/dineboard/pkg/logger"
)

// Writer flushes the container state to the store after mutations. Dirty
// signals are debounced by the interval so bursts of mutations collapse
// into one whole-object write.
type Writer struct {
	container *state.Container
	store     Store
	interval  time.Duration
}

// NewWriter creates a write-behind snapshot writer
func NewWriter(container *state.Container, store Store, interval time.Duration) *Writer {
	return &Writer{container: container, store: store, interval: interval}
}

// Run blocks until ctx is cancelled, saving a snapshot after each dirty
// signal. A final flush runs on shutdown.
func (w *Writer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.flush(context.Background())
			return
		case <-w.container.Dirty():
			// Debounce: let the burst finish before writing
			timer := time.NewTimer(w.interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				w.flush(context.Background())
				return
			case <-timer.C:
			}
			w.flush(ctx)
		}
	}
}

func (w *Writer) flush(ctx context.Context) {
	snap := w.container.Snapshot()
	if err := w.store.Save(ctx, snap); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to save state snapshot")
		return
	}
	logger.Logger.Debug().
		Time("last_updated", snap.LastUpdated).
		Msg("State snapshot saved")
}
