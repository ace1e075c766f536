package seating

// components computes the connected components of the pruned graph by
// breadth-first traversal, visiting roots in roster order. The result
// covers every roster member exactly once; people with no graph edges
// form singleton components. People who appear only in preferences (not
// in the roster) are pulled into the component of whoever named them,
// matching the contract that a cluster is seated as a unit.
//
// Determinism: roots follow the input roster, neighbor expansion follows
// roster position. Identical inputs always produce identical clustering.
func components(g graph, people []string) [][]string {
	rosterIndex := make(map[string]int, len(people))
	for i, p := range people {
		if _, seen := rosterIndex[p]; !seen {
			rosterIndex[p] = i
		}
	}

	visited := make(map[string]bool, len(people))
	var comps [][]string

	for _, person := range people {
		if visited[person] {
			continue
		}
		visited[person] = true
		comp := []string{person}
		queue := []string{person}

		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			for _, neighbor := range g.neighbors(node, rosterIndex) {
				if visited[neighbor] {
					continue
				}
				visited[neighbor] = true
				comp = append(comp, neighbor)
				queue = append(queue, neighbor)
			}
		}

		comps = append(comps, comp)
	}

	return comps
}
