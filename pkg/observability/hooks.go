// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about seating runs and snapshot store operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSeatingHooks(&mySeatingHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Seating().OnOrganiseStart(ctx, len(people), persistent)
//	// ... run the pipeline ...
//	observability.Seating().OnOrganiseComplete(ctx, tableCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Seating Hooks
// =============================================================================

// SeatingHooks receives events from seating runs.
type SeatingHooks interface {
	// Organise events
	OnOrganiseStart(ctx context.Context, people int, persistent bool)
	OnOrganiseComplete(ctx context.Context, tables int, duration time.Duration, err error)

	// OnClustersFormed records the clustering outcome of a run.
	OnClustersFormed(ctx context.Context, clusters int, severedEdges int)

	// OnTableCreated records a table added beyond the initial layout.
	OnTableCreated(ctx context.Context, name string, capacity int)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from snapshot store operations.
type StoreHooks interface {
	// OnSave records a snapshot write.
	OnSave(ctx context.Context, backend, id string, duration time.Duration, err error)

	// OnLoad records a snapshot read.
	OnLoad(ctx context.Context, backend, id string, duration time.Duration, err error)

	// OnDelete records a snapshot removal.
	OnDelete(ctx context.Context, backend, id string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSeatingHooks is a no-op implementation of SeatingHooks.
type NoopSeatingHooks struct{}

func (NoopSeatingHooks) OnOrganiseStart(context.Context, int, bool)                   {}
func (NoopSeatingHooks) OnOrganiseComplete(context.Context, int, time.Duration, error) {}
func (NoopSeatingHooks) OnClustersFormed(context.Context, int, int)                   {}
func (NoopSeatingHooks) OnTableCreated(context.Context, string, int)                  {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnSave(context.Context, string, string, time.Duration, error) {}
func (NoopStoreHooks) OnLoad(context.Context, string, string, time.Duration, error) {}
func (NoopStoreHooks) OnDelete(context.Context, string, string, error)              {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	seatingHooks SeatingHooks = NoopSeatingHooks{}
	storeHooks   StoreHooks   = NoopStoreHooks{}
	hooksMu      sync.RWMutex
)

// SetSeatingHooks registers custom seating hooks.
// This should be called once at application startup before any seating runs.
func SetSeatingHooks(h SeatingHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		seatingHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Seating returns the registered seating hooks.
func Seating() SeatingHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return seatingHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	seatingHooks = NoopSeatingHooks{}
	storeHooks = NoopStoreHooks{}
}
