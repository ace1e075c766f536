package seating

import (
	"reflect"
	"testing"
)

func TestBuildWithGraphForcesSymmetry(t *testing.T) {
	g := buildWithGraph(map[string][]string{
		"Alice": {"Bob"},
	})

	if !g["Alice"]["Bob"] {
		t.Error("edge Alice→Bob missing")
	}
	if !g["Bob"]["Alice"] {
		t.Error("edge Bob→Alice missing: with relation must be symmetric")
	}
}

func TestPruneWithoutRemovesBothDirections(t *testing.T) {
	g := buildWithGraph(map[string][]string{
		"Alice": {"Bob", "Carol"},
	})

	removed := g.pruneWithout(map[string][]string{
		"Alice": {"Bob"},
	})

	if g["Alice"]["Bob"] || g["Bob"]["Alice"] {
		t.Error("pruned edge still present in an adjacency set")
	}
	if !g["Alice"]["Carol"] {
		t.Error("unrelated edge was removed")
	}
	want := []Pair{{A: "Alice", B: "Bob"}}
	if !reflect.DeepEqual(removed, want) {
		t.Errorf("removed = %v, want %v", removed, want)
	}
	// Nodes survive edge removal.
	if _, ok := g["Bob"]; !ok {
		t.Error("node Bob removed along with its edge")
	}
}

func TestPruneWithoutRecordsPairOnce(t *testing.T) {
	g := buildWithGraph(map[string][]string{
		"Alice": {"Bob"},
		"Bob":   {"Alice"},
	})

	// Both sides exclude each other; the pair must still appear once.
	removed := g.pruneWithout(map[string][]string{
		"Alice": {"Bob"},
		"Bob":   {"Alice"},
	})

	if len(removed) != 1 {
		t.Fatalf("removed %d pairs, want 1: %v", len(removed), removed)
	}
}

func TestPruneWithoutIgnoresMissingEdges(t *testing.T) {
	g := buildWithGraph(map[string][]string{
		"Alice": {"Bob"},
	})

	removed := g.pruneWithout(map[string][]string{
		"Carol": {"Dave"}, // no such edge
	})

	if len(removed) != 0 {
		t.Errorf("removed = %v, want none", removed)
	}
}

func TestPruneWithoutDeterministicOrder(t *testing.T) {
	build := func() graph {
		return buildWithGraph(map[string][]string{
			"Zoe":   {"Yann"},
			"Alice": {"Bob"},
			"Mia":   {"Noah"},
		})
	}
	without := map[string][]string{
		"Zoe":   {"Yann"},
		"Alice": {"Bob"},
		"Mia":   {"Noah"},
	}

	first := build().pruneWithout(without)
	for i := 0; i < 10; i++ {
		if got := build().pruneWithout(without); !reflect.DeepEqual(got, first) {
			t.Fatalf("non-deterministic removal order: %v vs %v", got, first)
		}
	}
	// Sorted key order.
	want := []Pair{{A: "Alice", B: "Bob"}, {A: "Mia", B: "Noah"}, {A: "Zoe", B: "Yann"}}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("removed = %v, want %v", first, want)
	}
}
