package seating

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/seatwise/seatwise/pkg/errors"
)

const (
	// DefaultCapacity is the seat count for tables when none is configured.
	DefaultCapacity = 5

	// DefaultPrefix is the display prefix for generated table names.
	DefaultPrefix = "Table"

	// DefaultSeed seeds the individual-placement shuffle when the caller
	// does not provide one, keeping default runs reproducible.
	DefaultSeed = uint64(42)
)

// Config controls Organiser construction.
type Config struct {
	Tables   int    // initial table count; 0 is allowed, placement creates tables on demand
	Capacity int    // seats per table; 0 means DefaultCapacity
	Prefix   string // table name prefix; empty means DefaultPrefix

	// Seed seeds the shuffle used for individual placement. 0 means
	// DefaultSeed. Distinct seeds give distinct (but reproducible)
	// fairness orderings.
	Seed uint64

	// Factory overrides table creation. Nil means a NamedFactory built
	// from Prefix and Capacity.
	Factory Factory

	// Logger receives informational events such as preference conflicts.
	// Nil means log.Default().
	Logger *log.Logger
}

// Organiser owns the tables and runs the organisation pipeline.
// It is not safe for concurrent use.
type Organiser struct {
	tables  []*Table
	factory Factory
	rng     *rand.Rand
	logger  *log.Logger

	// refreshed after every organising pass
	st       state
	clusters [][]string
	removed  []Pair
}

// New creates an Organiser with cfg.Tables empty tables. Malformed
// counts or capacities fail fast with a structured error and no tables
// are created.
func New(cfg Config) (*Organiser, error) {
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if err := errors.ValidateTableCount(cfg.Tables); err != nil {
		return nil, err
	}
	if err := errors.ValidateCapacity(cfg.Capacity); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	factory := cfg.Factory
	if factory == nil {
		factory = NamedFactory{Prefix: cfg.Prefix, Capacity: cfg.Capacity}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	o := &Organiser{
		factory: factory,
		rng:     rand.New(rand.NewPCG(seed, seed^0x5ea75ea7)),
		logger:  logger,
	}
	for i := 0; i < cfg.Tables; i++ {
		o.tables = append(o.tables, factory.NewTable(i+1, 0))
	}
	o.st = buildState(o.tables)
	return o, nil
}

// Organise seats everyone in people, honoring prefs. With persistent
// true the current arrangement is kept and only unseated people are
// placed; otherwise all tables are cleared first.
//
// Organise never fails for capacity or unsatisfiable preferences - new
// tables absorb any overflow. The only errors are structural: malformed
// person names, rejected before any seating state is touched.
func (o *Organiser) Organise(people []string, prefs Preferences, persistent bool) error {
	for _, name := range people {
		if err := errors.ValidatePersonName(name); err != nil {
			return fmt.Errorf("organise: %w", err)
		}
	}
	start := time.Now()

	if !persistent {
		for _, t := range o.tables {
			t.Clear()
		}
	}

	g := buildWithGraph(prefs.With)
	removed := g.pruneWithout(prefs.Without)
	for _, pair := range removed {
		// Conflicting with/without input is policy, not an error: without wins.
		o.logger.Info("preference overridden", "person", pair.A, "cannot_sit_with", pair.B)
	}

	comps := components(g, people)

	var clusters [][]string
	var singles []string
	for _, comp := range comps {
		if len(comp) > 1 {
			clusters = append(clusters, comp)
		} else {
			singles = append(singles, comp[0])
		}
	}

	o.placeClusters(clusters)
	o.placeIndividuals(singles, prefs)
	o.balance(prefs)

	o.st = buildState(o.tables)
	o.clusters = comps
	o.removed = removed

	o.logger.Debug("organised seating",
		"people", len(people),
		"clusters", len(clusters),
		"tables", len(o.tables),
		"severed", len(removed),
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// AddPerson seats name at the first table with a free seat, creating a
// new table when all are full. It intentionally skips clustering and
// balancing; callers needing constraint-correctness afterwards must
// re-run Organise.
func (o *Organiser) AddPerson(name string) error {
	if err := errors.ValidatePersonName(name); err != nil {
		return fmt.Errorf("add person: %w", err)
	}
	seated := false
	for _, t := range o.tables {
		if _, ok := t.Assign(name); ok {
			seated = true
			break
		}
	}
	if !seated {
		t := o.newTable(0)
		t.Assign(name)
	}
	o.st = buildState(o.tables)
	return nil
}

// AddTable appends an empty table of the default capacity and returns
// its name. Nobody is reseated.
func (o *Organiser) AddTable() string {
	t := o.newTable(0)
	o.st = buildState(o.tables)
	return t.Name()
}

// Seating returns a read-only snapshot of the current arrangement,
// ordered by table creation.
func (o *Organiser) Seating() []TableSeating {
	out := make([]TableSeating, len(o.st.tables))
	for i, ts := range o.st.tables {
		out[i] = TableSeating{
			Table:     ts.Table,
			Capacity:  ts.Capacity,
			Occupants: slices.Clone(ts.Occupants),
		}
	}
	return out
}

// Locate returns where name currently sits.
func (o *Organiser) Locate(name string) (Placement, bool) {
	p, ok := o.st.placements[name]
	return p, ok
}

// Clusters returns the connected components from the last Organise call
// in discovery order, singletons included.
func (o *Organiser) Clusters() [][]string {
	out := make([][]string, len(o.clusters))
	for i, c := range o.clusters {
		out[i] = slices.Clone(c)
	}
	return out
}

// RemovedEdges returns the "with" edges severed by "without" constraints
// during the last Organise call, in resolution order.
func (o *Organiser) RemovedEdges() []Pair {
	return slices.Clone(o.removed)
}

// TableCount returns the current number of tables.
func (o *Organiser) TableCount() int { return len(o.tables) }

// newTable creates a table through the factory and appends it.
func (o *Organiser) newTable(minCapacity int) *Table {
	t := o.factory.NewTable(len(o.tables)+1, minCapacity)
	o.tables = append(o.tables, t)
	return t
}
