package seating

// Placement locates one person: the table they sit at and the seat index
// within it. Seat index carries no geometric meaning; it only makes the
// position stable across snapshots.
type Placement struct {
	Table string `json:"table"`
	Seat  int    `json:"seat"`
}

// TableSeating is one table's occupants in seat order.
type TableSeating struct {
	Table     string   `json:"table"`
	Capacity  int      `json:"capacity"`
	Occupants []string `json:"occupants"`
}

// state is the derived record of who sits where. It is a cache over
// table/seat data, rebuilt after every organising pass, and consulted
// for persistence; it is never authoritative on its own.
type state struct {
	tables     []TableSeating
	placements map[string]Placement
}

// buildState walks the tables and records both views: ordered occupants
// per table and a person → placement index. With duplicate names the
// last seat scanned wins, mirroring the identity limitation documented
// on the package.
func buildState(tables []*Table) state {
	st := state{
		tables:     make([]TableSeating, 0, len(tables)),
		placements: make(map[string]Placement),
	}
	for _, t := range tables {
		st.tables = append(st.tables, TableSeating{
			Table:     t.Name(),
			Capacity:  t.Capacity(),
			Occupants: t.Occupants(),
		})
		for i, s := range t.Seats() {
			if name, ok := s.Occupant(); ok {
				st.placements[name] = Placement{Table: t.Name(), Seat: i}
			}
		}
	}
	return st
}

// seatedSet returns the set of everyone currently occupying a seat.
func seatedSet(tables []*Table) map[string]bool {
	seated := make(map[string]bool)
	for _, t := range tables {
		for _, name := range t.Occupants() {
			seated[name] = true
		}
	}
	return seated
}
