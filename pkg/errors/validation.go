package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds person and table names. Roster files are user
// supplied; an oversized field is almost always a malformed row.
const maxNameLength = 128

// ValidatePersonName validates a person name from a roster or preference file.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No leading/trailing whitespace (callers should trim first)
//   - Maximum length of 128 characters
//
// Duplicate detection is out of scope here: names are the only identity
// people have, and two identical names are indistinguishable by design.
func ValidatePersonName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "person name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "person name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "person name contains control characters")
		}
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidName, "person name has surrounding whitespace: %q", name)
	}

	return nil
}

// ValidateCapacity validates a table capacity value.
// Every table must hold at least one seat.
func ValidateCapacity(capacity int) error {
	if capacity < 1 {
		return New(ErrCodeInvalidCapacity, "table capacity must be at least 1, got %d", capacity)
	}
	return nil
}

// ValidateTableCount validates an initial table count.
// Zero is allowed: the placement engine creates tables on demand.
func ValidateTableCount(count int) error {
	if count < 0 {
		return New(ErrCodeInvalidTableCount, "table count cannot be negative, got %d", count)
	}
	return nil
}
