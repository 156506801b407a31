package junction

import (
	"errors"
	"strings"
	"testing"
)

func TestConflictError_Message(t *testing.T) {
	err := NewConflictError(East, []Direction{North, South})

	message := err.Error()
	if !strings.Contains(message, "EAST") {
		t.Errorf("Expected message to name EAST, got: %s", message)
	}
	if !strings.Contains(message, "NORTH") || !strings.Contains(message, "SOUTH") {
		t.Errorf("Expected message to name the conflicting directions, got: %s", message)
	}
}

func TestPausedError_Message(t *testing.T) {
	err := NewPausedError("ChangeLight")

	if !strings.Contains(err.Error(), "paused") {
		t.Errorf("Expected message to mention pause, got: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "ChangeLight") {
		t.Errorf("Expected message to name the operation, got: %s", err.Error())
	}
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("direction", "NORTHWEST", "unknown direction")

	if !strings.Contains(err.Error(), "NORTHWEST") {
		t.Errorf("Expected message to include the value, got: %s", err.Error())
	}
}

func TestErrorPredicates(t *testing.T) {
	conflict := NewConflictError(North, []Direction{East})
	paused := NewPausedError("ChangeLight")
	validation := NewValidationError("color", "BLUE", "unknown color")
	plain := errors.New("something else")

	if !IsConflictError(conflict) || IsConflictError(paused) || IsConflictError(plain) {
		t.Error("IsConflictError misclassified an error")
	}
	if !IsPausedError(paused) || IsPausedError(conflict) {
		t.Error("IsPausedError misclassified an error")
	}
	if !IsValidationError(validation) || IsValidationError(conflict) {
		t.Error("IsValidationError misclassified an error")
	}
}

func TestGetErrorCode(t *testing.T) {
	cases := []struct {
		err      error
		expected ErrorCode
	}{
		{NewConflictError(North, nil), ErrCodeConflict},
		{NewPausedError("ChangeLight"), ErrCodePaused},
		{NewValidationError("direction", "X", "unknown direction"), ErrCodeInvalidInput},
		{errors.New("other"), ErrCodeNone},
	}

	for _, tc := range cases {
		if got := GetErrorCode(tc.err); got != tc.expected {
			t.Errorf("Expected code %d for %v, got %d", tc.expected, tc.err, got)
		}
	}
}
