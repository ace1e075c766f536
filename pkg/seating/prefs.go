package seating

// Preferences holds the pairwise seating constraints supplied per
// organisation run. Both maps may be asymmetric on input: the engine
// symmetrizes "with" when building the compatibility graph and enforces
// "without" in both directions at placement time.
//
// Preferences are not owned by the engine; callers may mutate them
// between Organise calls.
type Preferences struct {
	With    map[string][]string `json:"with" toml:"with"`
	Without map[string][]string `json:"without" toml:"without"`
}

// Pair is an unordered person pair, used to report severed "with" edges.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Forbids reports whether a and b may not share a table. The check is
// symmetric: a listing b or b listing a both count.
func (p Preferences) Forbids(a, b string) bool {
	return listed(p.Without, a, b) || listed(p.Without, b, a)
}

// Constrained returns every person who is party to any preference,
// including as someone else's target. Everyone else is a "free
// individual" and eligible for balancing moves.
func (p Preferences) Constrained() map[string]bool {
	out := make(map[string]bool)
	collect := func(m map[string][]string) {
		for person, others := range m {
			out[person] = true
			for _, other := range others {
				out[other] = true
			}
		}
	}
	collect(p.With)
	collect(p.Without)
	return out
}

// IsFree reports whether name is party to no preference at all.
func (p Preferences) IsFree(name string) bool {
	return !p.Constrained()[name]
}

// Empty reports whether no preferences are set.
func (p Preferences) Empty() bool {
	return len(p.With) == 0 && len(p.Without) == 0
}

func listed(m map[string][]string, key, target string) bool {
	for _, v := range m[key] {
		if v == target {
			return true
		}
	}
	return false
}
