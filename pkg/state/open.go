package state

import (
	"context"

	"github.com/seatwise/seatwise/pkg/errors"
)

// NullStore is a no-op store that never persists anything.
// Useful when snapshotting should be disabled.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return &NullStore{}
}

// Save does nothing.
func (s *NullStore) Save(ctx context.Context, snap *Snapshot) error { return nil }

// Latest always reports no snapshot.
func (s *NullStore) Latest(ctx context.Context) (*Snapshot, error) { return nil, ErrNotFound }

// Get always reports no snapshot.
func (s *NullStore) Get(ctx context.Context, id string) (*Snapshot, error) { return nil, ErrNotFound }

// List returns nothing.
func (s *NullStore) List(ctx context.Context) ([]*Snapshot, error) { return nil, nil }

// Delete does nothing.
func (s *NullStore) Delete(ctx context.Context, id string) error { return nil }

// Close does nothing.
func (s *NullStore) Close() error { return nil }

var _ Store = (*NullStore)(nil)

// Open builds a store from a configured kind and URL. Supported kinds
// are "none", "file" (url is an optional directory), "redis", and
// "mongo" (url is the connection string). An empty kind means "file".
func Open(ctx context.Context, kind, url string) (Store, error) {
	switch kind {
	case "none":
		return NewNullStore(), nil
	case "", "file":
		store, err := NewFileStore(url)
		if err != nil {
			return nil, err
		}
		return Instrument("file", store), nil
	case "redis":
		store, err := NewRedisStore(ctx, url)
		if err != nil {
			return nil, err
		}
		return Instrument("redis", store), nil
	case "mongo":
		store, err := NewMongoStore(ctx, url)
		if err != nil {
			return nil, err
		}
		return Instrument("mongo", store), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown store kind: %s", kind)
	}
}
