package state

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/seatwise/seatwise/pkg/errors"
)

// FileStore keeps snapshots as JSON files in a directory.
// Snapshots are stored one file per ID, plus a "latest" marker file
// holding the ID of the most recent save.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based snapshot store.
// If baseDir is empty, defaults to ~/.config/seatwise/snapshots/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "get home dir")
		}
		baseDir = filepath.Join(home, ".config", "seatwise", "snapshots")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "create snapshot dir")
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) snapshotPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) latestPath() string {
	return filepath.Join(s.baseDir, "latest")
}

// Save writes snap to disk and updates the latest marker.
func (s *FileStore) Save(_ context.Context, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal snapshot")
	}
	if err := os.WriteFile(s.snapshotPath(snap.ID), data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "write snapshot file")
	}
	if err := os.WriteFile(s.latestPath(), []byte(snap.ID), 0600); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "write latest marker")
	}
	return nil
}

// Latest returns the snapshot named by the latest marker.
func (s *FileStore) Latest(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	id, err := os.ReadFile(s.latestPath())
	s.mu.RUnlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read latest marker")
	}
	return s.Get(ctx, strings.TrimSpace(string(id)))
}

// Get reads the snapshot with the given ID.
func (s *FileStore) Get(_ context.Context, id string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.snapshotPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read snapshot file")
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "parse snapshot")
	}
	return &snap, nil
}

// List reads every snapshot in the directory, newest first.
func (s *FileStore) List(_ context.Context) ([]*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read snapshot dir")
	}

	var out []*Snapshot
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			continue
		}
		out = append(out, &snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })
	return out, nil
}

// Delete removes a snapshot file. The latest marker is cleared if it
// pointed at the deleted snapshot.
func (s *FileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.snapshotPath(id)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStore, err, "remove snapshot file")
	}
	if latest, err := os.ReadFile(s.latestPath()); err == nil && strings.TrimSpace(string(latest)) == id {
		os.Remove(s.latestPath())
	}
	return nil
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }

// Path returns the base directory for snapshot files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
