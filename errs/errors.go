package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the scheduler engine and the safety checker.
// Callers match them with errors.Is; *InputError carries the location.
var (
	// ErrInvalidInput is returned when a process record, a quantum, or a matrix
	// cannot be simulated as given.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInconsistentState is returned when a matrix triple describes an
	// impossible allocation, i.e. Max < Allocation for some cell.
	ErrInconsistentState = errors.New("inconsistent state")
)

// InputError points at the record (or matrix row) and field that failed validation.
// Index is -1 when the error is not tied to a single record.
type InputError struct {
	Kind   error
	Index  int
	Field  string
	Value  interface{}
	Reason string
}

func (e *InputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s=%v: %s", e.Kind, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%v: record %d: %s=%v: %s", e.Kind, e.Index, e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Kind
}

func Invalid(index int, field string, value interface{}, reason string) error {
	return &InputError{Kind: ErrInvalidInput, Index: index, Field: field, Value: value, Reason: reason}
}

func Inconsistent(index int, field string, value interface{}, reason string) error {
	return &InputError{Kind: ErrInconsistentState, Index: index, Field: field, Value: value, Reason: reason}
}
