// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - One place for the input guards shared by the operations.
//   - Return plain sentinels or structured errors; call sites add the
//     operation prefix via opErrorf.

package grid

import "fmt"

// validateNotNil rejects a nil grid.
func validateNotNil(g *Grid) error {
	if g == nil {
		return ErrNilGrid
	}

	return nil
}

// validateSameLen checks NotNil → equal row counts over a non-empty input.
// The first grid sets the expected count.
// Complexity: O(len(grids)).
func validateSameLen(grids []*Grid) error {
	if len(grids) == 0 {
		return ErrNoGrids
	}
	for gi, g := range grids {
		if err := validateNotNil(g); err != nil {
			return fmt.Errorf("grid %d: %w", gi, err)
		}
	}
	want := grids[0].Len()
	for gi, g := range grids {
		if g.Len() != want {
			return &ShapeError{Grid: gi, Row: -1, Got: g.Len(), Want: want}
		}
	}

	return nil
}

// validateIndexes checks every IndexBase-relative position against n rows.
// Complexity: O(len(indexes)).
func validateIndexes(indexes []int, n int) error {
	for _, idx := range indexes {
		if idx < IndexBase || idx-IndexBase >= n {
			return &IndexError{Index: idx, Len: n}
		}
	}

	return nil
}
