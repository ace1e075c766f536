package seating

// balance redistributes free individuals so table occupancies differ by
// at most one. The target size is total/num rounded down; the first
// total%num tables in creation order are allowed one extra occupant.
//
// Only free individuals move - people in a cluster or party to any
// "without" restriction stay put, preserving the invariants established
// earlier in the pipeline. A destination must be under its own
// allowance, have a free seat, and host only free individuals. When no
// destination qualifies the excess remains: balancing is best-effort and
// never creates tables.
func (o *Organiser) balance(prefs Preferences) {
	if len(o.tables) == 0 {
		return
	}

	total := 0
	for _, t := range o.tables {
		total += len(t.Occupants())
	}
	base := total / len(o.tables)
	extra := total % len(o.tables)
	allowance := func(i int) int {
		if i < extra {
			return base + 1
		}
		return base
	}

	constrained := prefs.Constrained()
	isFree := func(name string) bool { return !constrained[name] }
	tableFree := func(t *Table) bool {
		for _, name := range t.Occupants() {
			if !isFree(name) {
				return false
			}
		}
		return true
	}

	for i, t := range o.tables {
		over := len(t.Occupants()) - allowance(i)
		if over <= 0 {
			continue
		}
		for _, person := range t.Occupants() {
			if over == 0 {
				break
			}
			if !isFree(person) {
				continue
			}
			dest := o.findUnderfilled(i, allowance, tableFree)
			if dest == nil {
				break
			}
			t.Remove(person)
			dest.Assign(person)
			over--
		}
	}
}

// findUnderfilled returns the first table below its allowance with a
// free seat and only free occupants, excluding the table at index skip.
func (o *Organiser) findUnderfilled(skip int, allowance func(int) int, tableFree func(*Table) bool) *Table {
	for j, t := range o.tables {
		if j == skip || !t.HasFreeSeat() {
			continue
		}
		if len(t.Occupants()) >= allowance(j) {
			continue
		}
		if !tableFree(t) {
			continue
		}
		return t
	}
	return nil
}
