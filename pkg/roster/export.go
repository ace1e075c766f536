package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/seatwise/seatwise/pkg/seating"
)

// WriteCSV writes the seating assignment as CSV: one row per person with
// name, table, and seat index. Rows follow table creation order, then
// seat order, so the export is stable for identical seatings.
func WriteCSV(w io.Writer, tables []seating.TableSeating) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"name", "table", "seat"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, ts := range tables {
		for i, name := range ts.Occupants {
			if err := writer.Write([]string{name, ts.Table, strconv.Itoa(i)}); err != nil {
				return fmt.Errorf("write row for %s: %w", name, err)
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportCSV writes the seating assignment to a CSV file at path.
// A .csv extension is appended when missing.
func ExportCSV(tables []seating.TableSeating, path string) error {
	if !strings.HasSuffix(strings.ToLower(path), ".csv") {
		path += ".csv"
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(f, tables)
}

// Report bundles everything the TXT export describes: the inputs, the
// resolution outcome, and the final arrangement.
type Report struct {
	People      []string
	Preferences seating.Preferences
	Clusters    [][]string
	Removed     []seating.Pair
	Seating     []seating.TableSeating
}

// WriteReport writes the human-readable seating report. Preference maps
// are listed in sorted key order for stable output.
func WriteReport(w io.Writer, r Report) error {
	var b strings.Builder

	b.WriteString("WITH groups:\n")
	writePrefSection(&b, r.Preferences.With)

	b.WriteString("WITHOUT constraints:\n")
	writePrefSection(&b, r.Preferences.Without)

	b.WriteString("No preferences:\n")
	free := make([]string, 0, len(r.People))
	constrained := r.Preferences.Constrained()
	for _, p := range r.People {
		if !constrained[p] {
			free = append(free, p)
		}
	}
	writeListLine(&b, free)

	b.WriteString("Broken preferences:\n")
	if len(r.Removed) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, pair := range r.Removed {
		fmt.Fprintf(&b, "  %s cannot sit with %s\n", pair.A, pair.B)
	}

	b.WriteString("Final clusters:\n")
	if len(r.Clusters) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, cluster := range r.Clusters {
		fmt.Fprintf(&b, "  Group %d: %s\n", i+1, strings.Join(cluster, ", "))
	}

	b.WriteString("Seating assignments:\n")
	for _, ts := range r.Seating {
		occupants := "(empty)"
		if len(ts.Occupants) > 0 {
			occupants = strings.Join(ts.Occupants, ", ")
		}
		fmt.Fprintf(&b, "  %s: %s\n", ts.Table, occupants)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ExportReport writes the report to a TXT file at path.
// A .txt extension is appended when missing.
func ExportReport(r Report, path string) error {
	if !strings.HasSuffix(strings.ToLower(path), ".txt") {
		path += ".txt"
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteReport(f, r)
}

func writePrefSection(b *strings.Builder, m map[string][]string) {
	if len(m) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, person := range slices.Sorted(maps.Keys(m)) {
		fmt.Fprintf(b, "  %s: %s\n", person, strings.Join(m[person], ", "))
	}
}

func writeListLine(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	fmt.Fprintf(b, "  %s\n", strings.Join(items, ", "))
}
