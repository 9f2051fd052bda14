// SPDX-License-Identifier: MIT

package grid

import "github.com/katalvlaran/dataprovider/cell"

// mergeColumn is the column each input contributes to a merged row.
const mergeColumn = 0

// MergeColumns zips n single-column grids into one n-column grid.
// Row i of the result holds column 0 of row i of every input, in input order,
// which turns parallel argument lists (dividends, divisors, quotients) into
// one argument row per test invocation.
//
// Implementation:
//   - Stage 1 (Validate): at least one grid, none nil, equal row counts.
//   - Stage 2 (Execute): copy column 0 of each row; a row lacking it fails.
//
// Errors: ErrNoGrids, ErrNilGrid, *ShapeError (ErrShapeMismatch).
// Complexity: O(rows × len(grids)).
func MergeColumns(grids ...*Grid) (*Grid, error) {
	const op = "MergeColumns"

	if err := validateSameLen(grids); err != nil {
		return nil, opErrorf(op, err)
	}

	n := grids[0].Len()
	backing := make([]cell.Value, n*len(grids))
	rows := make([][]cell.Value, n)
	for r := 0; r < n; r++ {
		row := backing[r*len(grids) : (r+1)*len(grids) : (r+1)*len(grids)]
		for gi, g := range grids {
			src := g.rows[r]
			if len(src) <= mergeColumn {
				return nil, opErrorf(op, &ShapeError{Grid: gi, Row: r, Got: len(src), Want: mergeColumn + 1})
			}
			row[gi] = src[mergeColumn]
		}
		rows[r] = row
	}

	return &Grid{rows: rows}, nil
}
