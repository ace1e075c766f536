// Package state persists seating snapshots between runs.
//
// A snapshot is the durable form of an organiser's arrangement: the
// tables with their occupants plus the clustering outcome that produced
// them. Loading the latest snapshot and re-organising persistently keeps
// people in their seats across process restarts.
//
// The [Store] interface has four implementations:
//   - [MemoryStore]: in-process, for tests and throwaway sessions
//   - [FileStore]: JSON files under the user config directory (CLI default)
//   - [RedisStore]: shared store for multi-host setups
//   - [MongoStore]: document store when snapshots feed other tooling
package state

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/seatwise/seatwise/pkg/errors"
	"github.com/seatwise/seatwise/pkg/seating"
)

// ErrNotFound is returned when a requested snapshot does not exist.
var ErrNotFound = errors.New(errors.ErrCodeSnapshotNotFound, "snapshot not found")

// Snapshot is a persisted seating arrangement.
type Snapshot struct {
	ID       string                 `json:"id" bson:"id"`
	SavedAt  time.Time              `json:"saved_at" bson:"saved_at"`
	Tables   []seating.TableSeating `json:"tables" bson:"tables"`
	Clusters [][]string             `json:"clusters,omitempty" bson:"clusters,omitempty"`
	Removed  []seating.Pair         `json:"removed,omitempty" bson:"removed,omitempty"`
}

// NewSnapshot captures the organiser's current outcome under a fresh UUID.
func NewSnapshot(o *seating.Organiser) *Snapshot {
	return &Snapshot{
		ID:       uuid.NewString(),
		SavedAt:  time.Now().UTC(),
		Tables:   o.Seating(),
		Clusters: o.Clusters(),
		Removed:  o.RemovedEdges(),
	}
}

// Store persists snapshots. Backends are safe for use from a single
// CLI process; network backends honor context cancellation.
type Store interface {
	// Save persists snap and marks it as the latest.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recently saved snapshot, or ErrNotFound.
	Latest(ctx context.Context) (*Snapshot, error)

	// Get returns the snapshot with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Snapshot, error)

	// List returns all snapshots, newest first.
	List(ctx context.Context) ([]*Snapshot, error)

	// Delete removes a snapshot. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}
