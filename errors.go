package junction

import (
	"fmt"
	"strings"
)

// ErrorCode represents specific error conditions in the controller
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// A green request would violate the conflict rules
	ErrCodeConflict
	// A mutation was attempted while the controller is paused
	ErrCodePaused
	// An input value is outside the defined enumerations
	ErrCodeInvalidInput
)

// ConflictError reports a green request that would put two conflicting
// directions on green at the same time. No mutation takes place.
type ConflictError struct {
	Direction   Direction
	Conflicting []Direction
}

func (e *ConflictError) Error() string {
	names := make([]string, len(e.Conflicting))
	for i, d := range e.Conflicting {
		names[i] = d.String()
	}
	return fmt.Sprintf("cannot set %s to GREEN: conflicts with [%s]",
		e.Direction, strings.Join(names, ", "))
}

// NewConflictError creates a conflict error for the given direction and the
// conflicting directions currently holding green
func NewConflictError(direction Direction, conflicting []Direction) *ConflictError {
	return &ConflictError{
		Direction:   direction,
		Conflicting: conflicting,
	}
}

// PausedError reports a mutation attempted while the controller is paused
type PausedError struct {
	Operation string
}

func (e *PausedError) Error() string {
	return fmt.Sprintf("controller is paused: %s rejected", e.Operation)
}

// NewPausedError creates a paused error for the given operation
func NewPausedError(operation string) *PausedError {
	return &PausedError{Operation: operation}
}

// ValidationError reports an input value outside the defined enumerations
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a validation error with custom values
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsConflictError checks if an error is a ConflictError
func IsConflictError(err error) bool {
	_, ok := err.(*ConflictError)
	return ok
}

// IsPausedError checks if an error is a PausedError
func IsPausedError(err error) bool {
	_, ok := err.(*PausedError)
	return ok
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// GetErrorCode returns the error code for known error types
func GetErrorCode(err error) ErrorCode {
	switch err.(type) {
	case *ConflictError:
		return ErrCodeConflict
	case *PausedError:
		return ErrCodePaused
	case *ValidationError:
		return ErrCodeInvalidInput
	default:
		return ErrCodeNone
	}
}
