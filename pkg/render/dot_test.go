package render

import (
	"strings"
	"testing"

	"github.com/seatwise/seatwise/pkg/seating"
)

func TestToDOTBasics(t *testing.T) {
	people := []string{"Alice", "Bob", "Carol"}
	prefs := seating.Preferences{
		With: map[string][]string{"Alice": {"Bob"}},
	}

	dot := ToDOT(people, prefs, nil, Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("DOT should be an undirected graph:\n%s", dot)
	}
	for _, want := range []string{`"Alice";`, `"Bob";`, `"Carol";`, `"Alice" -- "Bob";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDeduplicatesSymmetricEdges(t *testing.T) {
	prefs := seating.Preferences{
		With: map[string][]string{
			"Alice": {"Bob"},
			"Bob":   {"Alice"},
		},
	}

	dot := ToDOT([]string{"Alice", "Bob"}, prefs, nil, Options{})

	if got := strings.Count(dot, `"Alice" -- "Bob"`); got != 1 {
		t.Errorf("edge rendered %d times, want 1:\n%s", got, dot)
	}
	if strings.Contains(dot, `"Bob" -- "Alice"`) {
		t.Errorf("mirrored duplicate edge present:\n%s", dot)
	}
}

func TestToDOTSeveredEdges(t *testing.T) {
	prefs := seating.Preferences{
		With:    map[string][]string{"Alice": {"Bob"}},
		Without: map[string][]string{"Alice": {"Bob"}},
	}
	removed := []seating.Pair{{A: "Alice", B: "Bob"}}

	dot := ToDOT([]string{"Alice", "Bob"}, prefs, removed, Options{})
	if !strings.Contains(dot, "style=dashed") {
		t.Errorf("severed edge not dashed:\n%s", dot)
	}
	// The severed pair must not also appear as a solid edge.
	if strings.Contains(dot, `"Alice" -- "Bob";`) {
		t.Errorf("severed edge also rendered solid:\n%s", dot)
	}

	hidden := ToDOT([]string{"Alice", "Bob"}, prefs, removed, Options{HideSevered: true})
	if strings.Contains(hidden, "dashed") {
		t.Errorf("HideSevered still renders severed edges:\n%s", hidden)
	}
}

func TestToDOTIncludesPreferenceOnlyPeople(t *testing.T) {
	prefs := seating.Preferences{
		With: map[string][]string{"Alice": {"Dana"}},
	}

	dot := ToDOT([]string{"Alice"}, prefs, nil, Options{})
	if !strings.Contains(dot, `"Dana";`) {
		t.Errorf("preference-only person missing from DOT:\n%s", dot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	people := []string{"Zoe", "Alice", "Mia"}
	prefs := seating.Preferences{
		With: map[string][]string{"Zoe": {"Alice"}, "Mia": {"Zoe"}},
	}

	first := ToDOT(people, prefs, nil, Options{})
	for i := 0; i < 10; i++ {
		if got := ToDOT(people, prefs, nil, Options{}); got != first {
			t.Fatal("ToDOT output is not deterministic")
		}
	}
}
