package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidCapacity, "capacity must be at least 1, got %d", 0)
	want := "INVALID_CAPACITY: capacity must be at least 1, got 0"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeStore, cause, "failed to save snapshot %s", "abc")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause with errors.Is")
	}
	if got := err.Error(); got != "STORE_ERROR: failed to save snapshot abc: disk full" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeInvalidRoster, "empty roster")

	if !Is(err, ErrCodeInvalidRoster) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeStore) {
		t.Error("Is should not match a different code")
	}

	// Works through fmt.Errorf wrapping
	wrapped := fmt.Errorf("organise: %w", err)
	if !Is(wrapped, ErrCodeInvalidRoster) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "x")); got != ErrCodeNotFound {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "missing capacity")
	if got := UserMessage(err); got != "missing capacity" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := stderrors.New("plain message")
	if got := UserMessage(plain); got != "plain message" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}

func TestValidatePersonName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Alice", false},
		{"valid with space", "Mary Jane", false},
		{"empty", "", true},
		{"control char", "Al\x00ice", true},
		{"leading space", " Alice", true},
		{"trailing space", "Alice ", true},
		{"too long", string(make([]byte, 200)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePersonName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePersonName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCapacity(t *testing.T) {
	if err := ValidateCapacity(3); err != nil {
		t.Errorf("ValidateCapacity(3) = %v", err)
	}
	if err := ValidateCapacity(0); !Is(err, ErrCodeInvalidCapacity) {
		t.Errorf("ValidateCapacity(0) = %v, want INVALID_CAPACITY", err)
	}
}

func TestValidateTableCount(t *testing.T) {
	if err := ValidateTableCount(0); err != nil {
		t.Errorf("ValidateTableCount(0) = %v, zero tables is allowed", err)
	}
	if err := ValidateTableCount(-1); !Is(err, ErrCodeInvalidTableCount) {
		t.Errorf("ValidateTableCount(-1) = %v, want INVALID_TABLE_COUNT", err)
	}
}
