package seating_test

import (
	"fmt"
	"strings"

	"github.com/seatwise/seatwise/pkg/seating"
)

// Organising a roster where everyone belongs to a cluster is fully
// deterministic: clusters are placed first-fit in discovery order.
func ExampleOrganiser_Organise() {
	o, err := seating.New(seating.Config{Tables: 1, Capacity: 4})
	if err != nil {
		panic(err)
	}

	prefs := seating.Preferences{
		With: map[string][]string{
			"Alice": {"Bob"},
			"Carol": {"Dave"},
		},
	}
	if err := o.Organise([]string{"Alice", "Bob", "Carol", "Dave"}, prefs, false); err != nil {
		panic(err)
	}

	for _, ts := range o.Seating() {
		fmt.Printf("%s: %s\n", ts.Table, strings.Join(ts.Occupants, ", "))
	}
	// Output:
	// Table 1: Alice, Bob, Carol, Dave
}

// A "without" constraint severs a conflicting "with" edge; the pair is
// reported and ends up in separate clusters.
func ExampleOrganiser_RemovedEdges() {
	o, err := seating.New(seating.Config{Tables: 2, Capacity: 2})
	if err != nil {
		panic(err)
	}

	prefs := seating.Preferences{
		With:    map[string][]string{"Alice": {"Bob"}},
		Without: map[string][]string{"Alice": {"Bob"}},
	}
	if err := o.Organise([]string{"Alice", "Bob"}, prefs, false); err != nil {
		panic(err)
	}

	for _, pair := range o.RemovedEdges() {
		fmt.Printf("%s cannot sit with %s\n", pair.A, pair.B)
	}
	for i, cluster := range o.Clusters() {
		fmt.Printf("group %d: %s\n", i+1, strings.Join(cluster, ", "))
	}
	// Output:
	// Alice cannot sit with Bob
	// group 1: Alice
	// group 2: Bob
}
