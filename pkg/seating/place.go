package seating

import "slices"

// placeClusters seats multi-member clusters, largest first (ties keep
// discovery order). Each cluster goes atomically into the first table in
// creation order with enough free seats; when none fits, a new table is
// created sized to hold it. A cluster is never split across tables.
//
// Already-seated members keep their seats: in persistent mode only the
// unseated remainder of a cluster is placed, preferring the table that
// already hosts a clustermate when it has room.
func (o *Organiser) placeClusters(clusters [][]string) {
	ordered := slices.Clone(clusters)
	slices.SortStableFunc(ordered, func(a, b []string) int { return len(b) - len(a) })

	seated := seatedSet(o.tables)
	for _, cluster := range ordered {
		pending := make([]string, 0, len(cluster))
		for _, member := range cluster {
			if !seated[member] {
				pending = append(pending, member)
				seated[member] = true
			}
		}
		if len(pending) == 0 {
			continue
		}
		o.seatGroup(cluster, pending)
	}
}

// seatGroup places pending members of cluster at a single table.
func (o *Organiser) seatGroup(cluster, pending []string) {
	// A table already hosting clustermates keeps the group together
	// across persistent reruns.
	for _, t := range o.tables {
		if t.FreeSeats() >= len(pending) && hostsAny(t, cluster) {
			assignAll(t, pending)
			return
		}
	}
	for _, t := range o.tables {
		if t.FreeSeats() >= len(pending) {
			assignAll(t, pending)
			return
		}
	}
	assignAll(o.newTable(len(pending)), pending)
}

// placeIndividuals seats the remaining unclustered people one at a time.
// The order is shuffled with the organiser's seeded source for fairness,
// so no roster position is systematically favoured. A table qualifies if
// it has a free seat and hosts nobody from the person's "without" set
// (checked in both directions); when no table qualifies, a new one is
// created.
func (o *Organiser) placeIndividuals(people []string, prefs Preferences) {
	seated := seatedSet(o.tables)
	pending := make([]string, 0, len(people))
	for _, p := range people {
		if !seated[p] {
			pending = append(pending, p)
			seated[p] = true
		}
	}

	o.rng.Shuffle(len(pending), func(i, j int) {
		pending[i], pending[j] = pending[j], pending[i]
	})

	for _, person := range pending {
		if t := o.findTable(person, prefs); t != nil {
			t.Assign(person)
			continue
		}
		o.newTable(0).Assign(person)
	}
}

// findTable returns the first table in creation order where person can
// sit without violating a "without" constraint, or nil.
func (o *Organiser) findTable(person string, prefs Preferences) *Table {
	for _, t := range o.tables {
		if !t.HasFreeSeat() {
			continue
		}
		if violatesWithout(t, person, prefs) {
			continue
		}
		return t
	}
	return nil
}

// violatesWithout reports whether seating person at t would co-seat them
// with anyone either side has excluded.
func violatesWithout(t *Table, person string, prefs Preferences) bool {
	for _, occupant := range t.Occupants() {
		if prefs.Forbids(person, occupant) {
			return true
		}
	}
	return false
}

func hostsAny(t *Table, names []string) bool {
	for _, n := range names {
		if t.Hosts(n) {
			return true
		}
	}
	return false
}

func assignAll(t *Table, names []string) {
	for _, n := range names {
		t.Assign(n)
	}
}
