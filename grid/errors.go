// SPDX-License-Identifier: MIT
// Package grid: sentinel errors and the structured errors that wrap them.
//
// Error policy:
//   - Callers branch with errors.Is(err, ErrX); never compare strings.
//   - IndexError, KeyError and ShapeError carry the offending position, key
//     or grid and unwrap to their sentinel; use errors.As to read them.
//   - Operations prefix their name ("SelectByIndex: ...") at the boundary.
//   - Operations are all-or-nothing: a non-nil error comes with a nil *Grid.
//
// Index-range parse failures are not redefined here; SelectByIndex returns
// the indexrange errors wrapped, so errors.Is(err, indexrange.ErrMalformedToken)
// holds.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGrid indicates a nil *Grid passed as an operation input.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrNoGrids indicates MergeColumns was called without inputs.
	ErrNoGrids = errors.New("grid: no grids to merge")

	// ErrShapeMismatch indicates inputs whose row counts differ, or a row
	// without the column an operation needs.
	ErrShapeMismatch = errors.New("grid: shape mismatch")

	// ErrIndexOutOfRange indicates a row or column position outside the grid.
	ErrIndexOutOfRange = errors.New("grid: index out of range")

	// ErrMissingKey indicates a requested key absent from the key source.
	ErrMissingKey = errors.New("grid: missing key")

	// ErrNoKeys indicates a key selection without any key.
	ErrNoKeys = errors.New("grid: no keys requested")

	// ErrNilSource indicates a nil KeySource.
	ErrNilSource = errors.New("grid: nil key source")

	// ErrNilPredicate indicates Filter was called without a predicate.
	ErrNilPredicate = errors.New("grid: nil predicate")
)

// IndexError reports a selection position outside [IndexBase, Len].
type IndexError struct {
	Index int // requested position, as given by the caller
	Len   int // number of rows in the source grid
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: position %d not in [%d, %d]", ErrIndexOutOfRange, e.Index, IndexBase, e.Len)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// KeyError reports a key the source does not hold.
type KeyError struct {
	Key string
}

// Error implements error.
func (e *KeyError) Error() string {
	return fmt.Sprintf("%v: %q", ErrMissingKey, e.Key)
}

// Unwrap returns ErrMissingKey.
func (e *KeyError) Unwrap() error { return ErrMissingKey }

// ShapeError reports which input grid broke a shape precondition.
// Row is -1 when the row count itself differs.
type ShapeError struct {
	Grid int // zero-based position of the input grid
	Row  int // zero-based row, or -1 for a row-count mismatch
	Got  int // observed rows (Row == -1) or columns
	Want int // required rows (Row == -1) or minimum columns
}

// Error implements error.
func (e *ShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%v: grid %d has %d rows, want %d", ErrShapeMismatch, e.Grid, e.Got, e.Want)
	}

	return fmt.Sprintf("%v: grid %d row %d has %d columns, want at least %d",
		ErrShapeMismatch, e.Grid, e.Row, e.Got, e.Want)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// opErrorf prefixes err with the operation name.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
