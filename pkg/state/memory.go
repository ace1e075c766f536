package state

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps snapshots in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps map[string]*Snapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]*Snapshot)}
}

// Save stores a copy of snap.
func (s *MemoryStore) Save(_ context.Context, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *snap
	s.snaps[snap.ID] = &cp
	return nil
}

// Latest returns the most recently saved snapshot.
func (s *MemoryStore) Latest(_ context.Context) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *Snapshot
	for _, snap := range s.snaps {
		if latest == nil || snap.SavedAt.After(latest.SavedAt) {
			latest = snap
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

// Get returns the snapshot with the given ID.
func (s *MemoryStore) Get(_ context.Context, id string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snaps[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *snap
	return &cp, nil
}

// List returns all snapshots, newest first.
func (s *MemoryStore) List(_ context.Context) ([]*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Snapshot, 0, len(s.snaps))
	for _, snap := range s.snaps {
		cp := *snap
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })
	return out, nil
}

// Delete removes a snapshot if present.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, id)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
