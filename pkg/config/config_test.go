package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/seatwise/seatwise/pkg/errors"
	"github.com/seatwise/seatwise/pkg/seating"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "seatwise.toml", `
roster = "people.csv"
output = "out.csv"
tables = 2
capacity = 3

[preferences.with]
Alice = ["Bob"]

[preferences.without]
Carol = ["Dave"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Roster != "people.csv" || cfg.Tables != 2 || cfg.Capacity != 3 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if got := cfg.Preferences.With["Alice"]; !reflect.DeepEqual(got, []string{"Bob"}) {
		t.Errorf("with[Alice] = %v, want [Bob]", got)
	}
	if got := cfg.Preferences.Without["Carol"]; !reflect.DeepEqual(got, []string{"Dave"}) {
		t.Errorf("without[Carol] = %v, want [Dave]", got)
	}
	// Unset fields keep defaults.
	if cfg.Store != "file" {
		t.Errorf("Store = %q, want default %q", cfg.Store, "file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "tables = [broken")
	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadInvalidCounts(t *testing.T) {
	path := writeFile(t, t.TempDir(), "neg.toml", "tables = -1\ncapacity = 3")
	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestValidateStore(t *testing.T) {
	cfg := Default()
	cfg.Store = "cassandra"
	if err := cfg.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("unknown store: err = %v, want INVALID_CONFIG", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seatwise.toml")

	cfg := Default()
	cfg.Roster = "team.csv"
	cfg.Tables = 4
	cfg.Capacity = 6
	cfg.Preferences = seating.Preferences{
		With:    map[string][]string{"Alice": {"Bob"}},
		Without: map[string][]string{"Carol": {"Dave"}},
	}

	if err := Save(cfg, path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", cfg, got)
	}
}

func TestSavePreferencesKeepsOtherFields(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "seatwise.toml", `
roster = "people.csv"
tables = 3
capacity = 4
`)

	prefs := seating.Preferences{With: map[string][]string{"A": {"B"}}}
	if err := SavePreferences(prefs, path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Roster != "people.csv" || got.Tables != 3 || got.Capacity != 4 {
		t.Errorf("non-preference fields lost: %+v", got)
	}
	if !reflect.DeepEqual(got.Preferences.With["A"], []string{"B"}) {
		t.Errorf("preferences not saved: %+v", got.Preferences)
	}
}
