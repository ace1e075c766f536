package seating

import (
	"maps"
	"slices"
)

// graph is an undirected compatibility graph stored as adjacency sets.
// Keys exist for every person mentioned on either side of a "with"
// preference; pruning removes edges but never nodes.
type graph map[string]map[string]bool

// buildWithGraph turns the "with" preference map into an undirected
// graph. For every with[a] containing b the edge (a,b) is added in both
// directions, regardless of whether b's own list mentions a: the
// relation is forced symmetric. Pure function of the input map.
func buildWithGraph(with map[string][]string) graph {
	g := make(graph)
	for person, others := range with {
		for _, other := range others {
			g.addEdge(person, other)
		}
	}
	return g
}

// pruneWithout removes every graph edge forbidden by a "without" entry
// and returns the severed pairs. A "without" constraint strictly
// overrides a "with" constraint between the same pair. Nodes are never
// removed; both endpoints stay in the graph, possibly in different
// components afterwards.
//
// Keys are visited in sorted order so the removed-edge list is
// deterministic for identical inputs. Each pair is recorded once: the
// first removal deletes both adjacency entries, so the mirrored entry
// finds no edge.
func (g graph) pruneWithout(without map[string][]string) []Pair {
	var removed []Pair
	for _, person := range slices.Sorted(maps.Keys(without)) {
		for _, forbidden := range without[person] {
			if g[person][forbidden] {
				delete(g[person], forbidden)
				delete(g[forbidden], person)
				removed = append(removed, Pair{A: person, B: forbidden})
			}
		}
	}
	return removed
}

// neighbors returns the adjacency of person, ordered by roster position
// (people absent from the roster sort after it, lexicographically).
// Stable ordering keeps component membership order reproducible.
func (g graph) neighbors(person string, rosterIndex map[string]int) []string {
	adj := g[person]
	if len(adj) == 0 {
		return nil
	}
	out := slices.Sorted(maps.Keys(adj))
	slices.SortStableFunc(out, func(a, b string) int {
		ia, aok := rosterIndex[a]
		ib, bok := rosterIndex[b]
		switch {
		case aok && bok:
			return ia - ib
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
	return out
}

func (g graph) addEdge(a, b string) {
	if g[a] == nil {
		g[a] = make(map[string]bool)
	}
	if g[b] == nil {
		g[b] = make(map[string]bool)
	}
	g[a][b] = true
	g[b][a] = true
}
