// Package roster reads people from CSV files and writes seating
// artifacts: a CSV of assignments and a human-readable TXT report.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/seatwise/seatwise/pkg/errors"
)

// ReadCSV decodes an ordered roster from r.
//
// The input may be a bare list of names (one per row) or a table whose
// first column is the name; a leading "name" header row is skipped.
// Surrounding whitespace is trimmed and blank rows are ignored. Order is
// preserved: it drives cluster discovery, so it is part of the contract.
//
// Malformed rows or invalid names return an INVALID_ROSTER error.
func ReadCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // roster files are hand-edited; tolerate ragged rows

	var people []string
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "row %d", row+1)
		}
		row++

		if len(record) == 0 {
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" {
			continue
		}
		if row == 1 && strings.EqualFold(name, "name") {
			continue
		}
		if err := errors.ValidatePersonName(name); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		people = append(people, name)
	}

	if len(people) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRoster, "roster contains no people")
	}
	return people, nil
}

// ImportCSV reads the roster file at path using [ReadCSV].
func ImportCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "roster file not found: %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	people, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return people, nil
}
