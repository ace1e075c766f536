package seating

import (
	"reflect"
	"testing"

	"github.com/seatwise/seatwise/pkg/errors"
)

func mustOrganiser(t *testing.T, cfg Config) *Organiser {
	t.Helper()
	o, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v) = %v", cfg, err)
	}
	return o
}

// checkSeating verifies the structural invariants every organisation
// must satisfy: everyone seated exactly once, no overfilled table.
func checkSeating(t *testing.T, o *Organiser, people []string) {
	t.Helper()
	seen := make(map[string]int)
	for _, ts := range o.Seating() {
		if len(ts.Occupants) > ts.Capacity {
			t.Errorf("table %s holds %d people, capacity %d", ts.Table, len(ts.Occupants), ts.Capacity)
		}
		for _, name := range ts.Occupants {
			seen[name]++
		}
	}
	for _, name := range people {
		if seen[name] != 1 {
			t.Errorf("person %s seated %d times, want exactly 1", name, seen[name])
		}
	}
}

// tableOf returns the table name hosting name, or "".
func tableOf(o *Organiser, name string) string {
	p, ok := o.Locate(name)
	if !ok {
		return ""
	}
	return p.Table
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{Tables: -1, Capacity: 3}); !errors.Is(err, errors.ErrCodeInvalidTableCount) {
		t.Errorf("negative table count: err = %v, want INVALID_TABLE_COUNT", err)
	}
	if _, err := New(Config{Tables: 2, Capacity: -2}); !errors.Is(err, errors.ErrCodeInvalidCapacity) {
		t.Errorf("negative capacity: err = %v, want INVALID_CAPACITY", err)
	}

	// Zero capacity falls back to the default rather than erroring.
	o := mustOrganiser(t, Config{Tables: 1})
	if got := o.Seating()[0].Capacity; got != DefaultCapacity {
		t.Errorf("default capacity = %d, want %d", got, DefaultCapacity)
	}
}

func TestOrganiseRejectsMalformedNamesBeforePlacement(t *testing.T) {
	o := mustOrganiser(t, Config{Tables: 1, Capacity: 3})
	if err := o.Organise([]string{"Alice", "Bob"}, Preferences{}, false); err != nil {
		t.Fatal(err)
	}
	before := o.Seating()

	err := o.Organise([]string{"Carol", ""}, Preferences{}, false)
	if !errors.Is(err, errors.ErrCodeInvalidName) {
		t.Fatalf("err = %v, want INVALID_NAME", err)
	}
	// Prior state untouched.
	if !reflect.DeepEqual(o.Seating(), before) {
		t.Error("failed Organise mutated existing seating")
	}
}

// Example scenario from the design discussion: roster [A..E], two tables
// of capacity 3, A with B, C without D.
func TestOrganiseWithAndWithout(t *testing.T) {
	people := []string{"A", "B", "C", "D", "E"}
	prefs := Preferences{
		With:    map[string][]string{"A": {"B"}},
		Without: map[string][]string{"C": {"D"}},
	}

	for seed := uint64(1); seed <= 20; seed++ {
		o := mustOrganiser(t, Config{Tables: 2, Capacity: 3, Seed: seed})
		if err := o.Organise(people, prefs, false); err != nil {
			t.Fatal(err)
		}

		checkSeating(t, o, people)
		if tableOf(o, "A") != tableOf(o, "B") {
			t.Errorf("seed %d: A and B split across tables", seed)
		}
		if tableOf(o, "C") == tableOf(o, "D") {
			t.Errorf("seed %d: C and D share a table despite without", seed)
		}
	}
}

// Example scenario: 7 people, one table of capacity 3, no preferences.
// The engine grows to 3 tables and balancing settles on sizes 3,2,2.
func TestOrganiseOverflowAndBalance(t *testing.T) {
	people := []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7"}

	o := mustOrganiser(t, Config{Tables: 1, Capacity: 3})
	if err := o.Organise(people, Preferences{}, false); err != nil {
		t.Fatal(err)
	}

	checkSeating(t, o, people)
	if got := o.TableCount(); got != 3 {
		t.Fatalf("TableCount = %d, want 3", got)
	}

	var sizes []int
	for _, ts := range o.Seating() {
		sizes = append(sizes, len(ts.Occupants))
	}
	if !reflect.DeepEqual(sizes, []int{3, 2, 2}) {
		t.Errorf("table sizes = %v, want [3 2 2]", sizes)
	}
}

func TestBalanceBoundOnFreeRoster(t *testing.T) {
	// Strict ≤1 bound is only guaranteed when everyone is free.
	people := make([]string, 11)
	for i := range people {
		people[i] = string(rune('A' + i))
	}

	o := mustOrganiser(t, Config{Tables: 4, Capacity: 5})
	if err := o.Organise(people, Preferences{}, false); err != nil {
		t.Fatal(err)
	}

	lo, hi := len(people), 0
	for _, ts := range o.Seating() {
		n := len(ts.Occupants)
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	if hi-lo > 1 {
		t.Errorf("occupancy spread %d..%d exceeds balance bound", lo, hi)
	}
}

func TestWithoutOverridesWith(t *testing.T) {
	people := []string{"A", "B", "C"}
	prefs := Preferences{
		With:    map[string][]string{"A": {"B"}},
		Without: map[string][]string{"A": {"B"}},
	}

	o := mustOrganiser(t, Config{Tables: 2, Capacity: 2})
	if err := o.Organise(people, prefs, false); err != nil {
		t.Fatal(err)
	}

	checkSeating(t, o, people)
	if tableOf(o, "A") == tableOf(o, "B") {
		t.Error("A and B share a table; without must override with")
	}

	removed := o.RemovedEdges()
	if len(removed) != 1 || removed[0] != (Pair{A: "A", B: "B"}) {
		t.Errorf("RemovedEdges = %v, want [{A B}]", removed)
	}

	// The severed pair lands in different clusters.
	for _, cluster := range o.Clusters() {
		hasA, hasB := false, false
		for _, m := range cluster {
			hasA = hasA || m == "A"
			hasB = hasB || m == "B"
		}
		if hasA && hasB {
			t.Errorf("cluster %v still joins A and B", cluster)
		}
	}
}

func TestWithoutIsEnforcedSymmetrically(t *testing.T) {
	// Only A lists B, but neither direction may co-seat them regardless
	// of placement order.
	people := []string{"A", "B"}
	prefs := Preferences{Without: map[string][]string{"A": {"B"}}}

	for seed := uint64(1); seed <= 20; seed++ {
		o := mustOrganiser(t, Config{Tables: 1, Capacity: 4, Seed: seed})
		if err := o.Organise(people, prefs, false); err != nil {
			t.Fatal(err)
		}
		checkSeating(t, o, people)
		if tableOf(o, "A") == tableOf(o, "B") {
			t.Fatalf("seed %d: A and B share a table", seed)
		}
	}
}

func TestClusterAtomicity(t *testing.T) {
	people := []string{"A", "B", "C", "D", "E", "F", "G"}
	prefs := Preferences{
		With: map[string][]string{
			"A": {"B"},
			"B": {"C"},
			"C": {"D"}, // chain of four
			"E": {"F"},
		},
	}

	o := mustOrganiser(t, Config{Tables: 2, Capacity: 3})
	if err := o.Organise(people, prefs, false); err != nil {
		t.Fatal(err)
	}

	checkSeating(t, o, people)
	for _, cluster := range o.Clusters() {
		if len(cluster) < 2 {
			continue
		}
		home := tableOf(o, cluster[0])
		for _, member := range cluster[1:] {
			if tableOf(o, member) != home {
				t.Errorf("cluster %v split: %s not at %s", cluster, member, home)
			}
		}
	}
	// The chain of four cannot fit a capacity-3 table: a grown table must
	// have been created rather than splitting the cluster.
	if o.TableCount() < 3 {
		t.Errorf("TableCount = %d, want a new table for the oversized cluster", o.TableCount())
	}
}

func TestPersistenceStability(t *testing.T) {
	people := []string{"A", "B", "C", "D", "E", "F"}
	prefs := Preferences{
		With:    map[string][]string{"A": {"B"}},
		Without: map[string][]string{"C": {"D"}},
	}

	o := mustOrganiser(t, Config{Tables: 2, Capacity: 4})
	if err := o.Organise(people, prefs, true); err != nil {
		t.Fatal(err)
	}
	first := o.Seating()

	if err := o.Organise(people, prefs, true); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(o.Seating(), first) {
		t.Errorf("persistent re-organise moved people:\nfirst  %v\nsecond %v", first, o.Seating())
	}
}

func TestPersistentOrganiseSeatsOnlyNewcomers(t *testing.T) {
	o := mustOrganiser(t, Config{Tables: 2, Capacity: 3})
	if err := o.Organise([]string{"A", "B", "C"}, Preferences{}, false); err != nil {
		t.Fatal(err)
	}
	before := map[string]Placement{}
	for _, name := range []string{"A", "B", "C"} {
		before[name], _ = o.Locate(name)
	}

	if err := o.Organise([]string{"A", "B", "C", "D", "E"}, Preferences{}, true); err != nil {
		t.Fatal(err)
	}

	checkSeating(t, o, []string{"A", "B", "C", "D", "E"})
	for name, want := range before {
		if got, _ := o.Locate(name); got != want {
			t.Errorf("%s moved from %v to %v in persistent mode", name, want, got)
		}
	}
}

func TestPersistentClusterKeepsGroupTogether(t *testing.T) {
	o := mustOrganiser(t, Config{Tables: 2, Capacity: 4})
	prefs := Preferences{With: map[string][]string{"A": {"B"}}}
	if err := o.Organise([]string{"A", "B"}, prefs, false); err != nil {
		t.Fatal(err)
	}
	home := tableOf(o, "A")

	// C joins the cluster later; the newcomer lands at the group's table.
	grown := Preferences{With: map[string][]string{"A": {"B"}, "B": {"C"}}}
	if err := o.Organise([]string{"A", "B", "C"}, grown, true); err != nil {
		t.Fatal(err)
	}

	if got := tableOf(o, "C"); got != home {
		t.Errorf("C seated at %s, want clustermates' table %s", got, home)
	}
	if got := tableOf(o, "A"); got != home {
		t.Errorf("A moved to %s in persistent mode", got)
	}
}

func TestSeededShuffleReproducible(t *testing.T) {
	people := []string{"A", "B", "C", "D", "E", "F", "G", "H"}

	run := func() []TableSeating {
		o := mustOrganiser(t, Config{Tables: 3, Capacity: 3, Seed: 7})
		if err := o.Organise(people, Preferences{}, false); err != nil {
			t.Fatal(err)
		}
		return o.Seating()
	}

	first := run()
	for i := 0; i < 5; i++ {
		if got := run(); !reflect.DeepEqual(got, first) {
			t.Fatalf("same seed produced different seatings:\n%v\n%v", first, got)
		}
	}
}

func TestAddPerson(t *testing.T) {
	o := mustOrganiser(t, Config{Tables: 1, Capacity: 2})
	if err := o.Organise([]string{"A", "B"}, Preferences{}, false); err != nil {
		t.Fatal(err)
	}

	// Table full: a new table appears.
	if err := o.AddPerson("C"); err != nil {
		t.Fatal(err)
	}
	if got := o.TableCount(); got != 2 {
		t.Errorf("TableCount = %d, want 2", got)
	}
	if _, ok := o.Locate("C"); !ok {
		t.Error("C not seated after AddPerson")
	}

	if err := o.AddPerson(""); !errors.Is(err, errors.ErrCodeInvalidName) {
		t.Errorf("AddPerson(\"\") err = %v, want INVALID_NAME", err)
	}
}

func TestAddTable(t *testing.T) {
	o := mustOrganiser(t, Config{Tables: 1, Capacity: 3})
	if err := o.Organise([]string{"A"}, Preferences{}, false); err != nil {
		t.Fatal(err)
	}
	before, _ := o.Locate("A")

	name := o.AddTable()
	if name != "Table 2" {
		t.Errorf("AddTable name = %q, want %q", name, "Table 2")
	}
	if got := o.TableCount(); got != 2 {
		t.Errorf("TableCount = %d, want 2", got)
	}
	// Nobody is reseated.
	if got, _ := o.Locate("A"); got != before {
		t.Errorf("A moved from %v to %v after AddTable", before, got)
	}
}

func TestBalancerNeverMovesConstrainedPeople(t *testing.T) {
	people := []string{"A", "B", "C", "D", "E"}
	prefs := Preferences{With: map[string][]string{"A": {"B", "C"}}}

	o := mustOrganiser(t, Config{Tables: 2, Capacity: 5})
	if err := o.Organise(people, prefs, false); err != nil {
		t.Fatal(err)
	}

	home := tableOf(o, "A")
	for _, member := range []string{"B", "C"} {
		if tableOf(o, member) != home {
			t.Errorf("balancer separated cluster member %s from A", member)
		}
	}
	checkSeating(t, o, people)
}
