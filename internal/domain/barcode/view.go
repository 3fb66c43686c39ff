package barcode

import (
	"context"
	"sync"

	"golang.org/x/exp/slog"
)

type watchable interface {
	List(ctx context.Context) ([]Record, error)
	Subscribe(fn func(Event)) (unsubscribe func())
}

// View is a read-only, self-refreshing snapshot of the store, sorted by payload.
type View struct {
	src         watchable
	log         *slog.Logger
	unsubscribe func()

	mu      sync.RWMutex
	records []Record
	err     error
}

// NewView loads the current records and keeps them fresh until Close.
func NewView(ctx context.Context, src watchable, log *slog.Logger) (*View, error) {
	v := &View{
		src: src,
		log: log.With("component", "barcode_view"),
	}

	if err := v.refresh(ctx); err != nil {
		return nil, err
	}

	v.unsubscribe = src.Subscribe(func(ev Event) {
		v.log.Debug("store changed, refreshing", "kind", ev.Kind, "ids", len(ev.IDs))
		if err := v.refresh(context.WithoutCancel(ctx)); err != nil {
			v.log.Error("failed to refresh view", "error", err)
		}
	})

	return v, nil
}

func (v *View) refresh(ctx context.Context) error {
	records, err := v.src.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.err = err
	if err != nil {
		return err
	}
	v.records = records
	return nil
}

// Records returns a copy of the latest snapshot.
func (v *View) Records() []Record {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]Record, len(v.records))
	copy(out, v.records)
	return out
}

// Err returns the error of the last refresh, if any.
func (v *View) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.err
}

// Close stops refreshing.
func (v *View) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
	}
}
