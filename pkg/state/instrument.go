package state

import (
	"context"
	"time"

	"github.com/seatwise/seatwise/pkg/observability"
)

// instrumentedStore wraps a Store and emits observability events for
// every operation. Open wraps all backends with it.
type instrumentedStore struct {
	backend string
	next    Store
}

// Instrument wraps store so its operations report to the registered
// observability hooks. The backend name tags every event.
func Instrument(backend string, store Store) Store {
	return &instrumentedStore{backend: backend, next: store}
}

func (s *instrumentedStore) Save(ctx context.Context, snap *Snapshot) error {
	start := time.Now()
	err := s.next.Save(ctx, snap)
	observability.Store().OnSave(ctx, s.backend, snap.ID, time.Since(start), err)
	return err
}

func (s *instrumentedStore) Latest(ctx context.Context) (*Snapshot, error) {
	start := time.Now()
	snap, err := s.next.Latest(ctx)
	id := ""
	if snap != nil {
		id = snap.ID
	}
	observability.Store().OnLoad(ctx, s.backend, id, time.Since(start), err)
	return snap, err
}

func (s *instrumentedStore) Get(ctx context.Context, id string) (*Snapshot, error) {
	start := time.Now()
	snap, err := s.next.Get(ctx, id)
	observability.Store().OnLoad(ctx, s.backend, id, time.Since(start), err)
	return snap, err
}

func (s *instrumentedStore) List(ctx context.Context) ([]*Snapshot, error) {
	return s.next.List(ctx)
}

func (s *instrumentedStore) Delete(ctx context.Context, id string) error {
	err := s.next.Delete(ctx, id)
	observability.Store().OnDelete(ctx, s.backend, id, err)
	return err
}

func (s *instrumentedStore) Close() error {
	return s.next.Close()
}

var _ Store = (*instrumentedStore)(nil)
