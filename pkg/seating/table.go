package seating

import "fmt"

// Seat is a single position at a table. Occupancy is explicit rather than
// a sentinel empty string, so "no occupant" and an empty name never collide.
type Seat struct {
	occupant string
	occupied bool
}

// Occupant returns the seated person's name and whether the seat is taken.
func (s Seat) Occupant() (string, bool) {
	return s.occupant, s.occupied
}

// Free reports whether the seat is available.
func (s Seat) Free() bool { return !s.occupied }

// Table is a fixed-capacity group of seats. Capacity is set at creation
// and never shrinks; during an organisation run tables are only added,
// never removed.
type Table struct {
	name  string
	seats []Seat
}

// NewTable creates an empty table with the given name and capacity.
// Capacity must be validated by the caller; see errors.ValidateCapacity.
func NewTable(name string, capacity int) *Table {
	return &Table{
		name:  name,
		seats: make([]Seat, capacity),
	}
}

// Name returns the table's display name.
func (t *Table) Name() string { return t.name }

// Capacity returns the total number of seats.
func (t *Table) Capacity() int { return len(t.seats) }

// FreeSeats returns the number of unoccupied seats.
func (t *Table) FreeSeats() int {
	n := 0
	for _, s := range t.seats {
		if s.Free() {
			n++
		}
	}
	return n
}

// HasFreeSeat reports whether at least one seat is available.
func (t *Table) HasFreeSeat() bool { return t.FreeSeats() > 0 }

// Assign seats a person at the first free seat and returns its index.
// Returns false if the table is full.
func (t *Table) Assign(name string) (int, bool) {
	for i := range t.seats {
		if t.seats[i].Free() {
			t.seats[i] = Seat{occupant: name, occupied: true}
			return i, true
		}
	}
	return 0, false
}

// Remove clears the seat holding name and reports whether anyone was removed.
// With duplicate names only the first matching seat is cleared.
func (t *Table) Remove(name string) bool {
	for i := range t.seats {
		if t.seats[i].occupied && t.seats[i].occupant == name {
			t.seats[i] = Seat{}
			return true
		}
	}
	return false
}

// Occupants returns the names of seated people in seat order.
func (t *Table) Occupants() []string {
	out := make([]string, 0, len(t.seats))
	for _, s := range t.seats {
		if s.occupied {
			out = append(out, s.occupant)
		}
	}
	return out
}

// Seats returns a copy of the seat slice, including empty seats.
func (t *Table) Seats() []Seat {
	out := make([]Seat, len(t.seats))
	copy(out, t.seats)
	return out
}

// Hosts reports whether name is currently seated at this table.
func (t *Table) Hosts(name string) bool {
	for _, s := range t.seats {
		if s.occupied && s.occupant == name {
			return true
		}
	}
	return false
}

// Clear empties every seat, retaining capacity.
func (t *Table) Clear() {
	for i := range t.seats {
		t.seats[i] = Seat{}
	}
}

// Factory creates tables on demand when placement overflows.
// Injecting the factory keeps naming and default capacity in one place
// instead of scattering table construction through the placement loop.
type Factory interface {
	// NewTable returns an empty table. ordinal is the 1-based position the
	// table will occupy; minCapacity is the smallest capacity that can host
	// the pending cluster (0 for individual placement).
	NewTable(ordinal, minCapacity int) *Table
}

// NamedFactory builds tables named "<Prefix> <ordinal>" with a default
// capacity. When a cluster is larger than the default, the new table is
// sized to fit it: clusters are never split, and no one may be dropped.
type NamedFactory struct {
	Prefix   string // display prefix, e.g. "Table"
	Capacity int    // default seats per table
}

// NewTable implements Factory.
func (f NamedFactory) NewTable(ordinal, minCapacity int) *Table {
	capacity := f.Capacity
	if minCapacity > capacity {
		capacity = minCapacity
	}
	return NewTable(fmt.Sprintf("%s %d", f.Prefix, ordinal), capacity)
}
