package seating

import (
	"fmt"

	"github.com/seatwise/seatwise/pkg/errors"
)

// Restore builds an Organiser whose tables already hold the given
// arrangement, typically loaded from a saved snapshot. Combined with a
// persistent Organise call this keeps seatings stable across process
// restarts.
//
// Each entry recreates one table with its recorded name and capacity;
// cfg.Tables is ignored. An arrangement that overfills a table is
// rejected, since capacity is an invariant, not a preference.
func Restore(cfg Config, tables []TableSeating) (*Organiser, error) {
	o, err := New(Config{
		Capacity: cfg.Capacity,
		Prefix:   cfg.Prefix,
		Seed:     cfg.Seed,
		Factory:  cfg.Factory,
		Logger:   cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	for _, ts := range tables {
		if err := errors.ValidateCapacity(ts.Capacity); err != nil {
			return nil, fmt.Errorf("table %s: %w", ts.Table, err)
		}
		if len(ts.Occupants) > ts.Capacity {
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"table %s holds %d people but has capacity %d", ts.Table, len(ts.Occupants), ts.Capacity)
		}
		t := NewTable(ts.Table, ts.Capacity)
		for _, name := range ts.Occupants {
			if err := errors.ValidatePersonName(name); err != nil {
				return nil, fmt.Errorf("table %s: %w", ts.Table, err)
			}
			t.Assign(name)
		}
		o.tables = append(o.tables, t)
	}

	o.st = buildState(o.tables)
	return o, nil
}
