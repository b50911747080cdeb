package table

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by table operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := t.Map(fn)
//	if errors.Is(err, table.ErrNotArray) {
//	    // t carries non-numeric keys
//	}
var (
	// ErrNotArray is matched (via errors.Is) by every *ShapeError: an
	// operation that requires an array-like table received something else.
	ErrNotArray = errors.New("table: not an array-like table")

	// ErrNilTable is returned when an operation that requires a well-formed
	// container receives a nil *Table.
	ErrNilTable = errors.New("table: nil table")

	// ErrNilFunc is returned when a required callback, predicate or
	// transform is nil and therefore not invocable.
	ErrNilFunc = errors.New("table: nil callback")

	// ErrEmptyNoInitial is returned by [Table.Reduce] when the sequence is
	// empty and no initial accumulator was supplied.
	ErrEmptyNoInitial = errors.New("table: reduce of empty sequence with no initial value")

	// ErrNotContainer is returned by [FromNative] (and the codec helpers
	// built on it) when the input is a scalar rather than a map, slice or
	// array.
	ErrNotContainer = errors.New("table: value is not a container")
)

// ShapeError reports that an operation requiring an array-like argument
// received a value of a different kind. Kind names what was actually seen
// (for example "map-shaped table" or "nil table").
//
// ShapeError matches [ErrNotArray] under [errors.Is], so callers can test
// the category without depending on the message:
//
//	var shapeErr *table.ShapeError
//	if errors.As(err, &shapeErr) {
//	    log.Printf("%s rejected a %s", shapeErr.Op, shapeErr.Kind)
//	}
type ShapeError struct {
	Op   string // the operation that failed, e.g. "Map"
	Kind string // the kind actually received, e.g. "map-shaped table"
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("table: %s: expected an array-like table, got %s", e.Op, e.Kind)
}

// Is reports whether target is [ErrNotArray], making every ShapeError match
// the sentinel under [errors.Is].
func (e *ShapeError) Is(target error) bool {
	return target == ErrNotArray
}

// shapeErr builds the ShapeError for op having received v.
func shapeErr(op string, v any) *ShapeError {
	return &ShapeError{Op: op, Kind: kindOf(v)}
}
