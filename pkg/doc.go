// Package pkg provides the core libraries for Seatwise seating organisation.
//
// # Overview
//
// Seatwise assigns named people to fixed-capacity tables, honoring who
// wants to sit with whom and who must be kept apart. The pkg directory
// is organized into:
//
//  1. [seating] - The organisation engine (clustering, placement, balancing)
//  2. [config] - TOML configuration and preference persistence
//  3. [roster] - CSV roster import and seating/report exports
//  4. [render] - Preference graph export (DOT, SVG)
//  5. [state] - Snapshot persistence (file, memory, Redis, MongoDB)
//  6. [observability] - Optional instrumentation hooks
//  7. [errors] - Structured error codes and input validation
//
// # Architecture
//
// The typical data flow through Seatwise:
//
//	Roster CSV + Preferences (TOML)
//	         ↓
//	    [seating] package (cluster → place → balance)
//	         ↓
//	    [roster] exports / [render] graphs / [state] snapshots
//
// # Quick Start
//
// Organise a roster and inspect the arrangement:
//
//	import "github.com/seatwise/seatwise/pkg/seating"
//
//	org, _ := seating.New(seating.Config{Tables: 2, Capacity: 5})
//	prefs := seating.Preferences{
//	    With:    map[string][]string{"Alice": {"Bob"}},
//	    Without: map[string][]string{"Carol": {"Dave"}},
//	}
//	_ = org.Organise([]string{"Alice", "Bob", "Carol", "Dave"}, prefs, false)
//	for _, t := range org.Seating() {
//	    fmt.Println(t.Table, t.Occupants)
//	}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/seating/...  # Specific package
//	go test -run Example       # Examples only
//
// [seating]: https://pkg.go.dev/github.com/seatwise/seatwise/pkg/seating
// [config]: https://pkg.go.dev/github.com/seatwise/seatwise/pkg/config
// [roster]: https://pkg.go.dev/github.com/seatwise/seatwise/pkg/roster
// [render]: https://pkg.go.dev/github.com/seatwise/seatwise/pkg/render
// [state]: https://pkg.go.dev/github.com/seatwise/seatwise/pkg/state
// [observability]: https://pkg.go.dev/github.com/seatwise/seatwise/pkg/observability
// [errors]: https://pkg.go.dev/github.com/seatwise/seatwise/pkg/errors
package pkg
