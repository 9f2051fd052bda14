// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dataprovider/cell"
)

// IndexBase is the position of the first row in selections. Positions are
// written by people in index-range expressions ("1-3, 5"), so they count
// from one.
const IndexBase = 1

// Grid is an ordered sequence of rows, each an ordered sequence of values.
// Rows may differ in length. A Grid never shares row storage with its
// inputs or outputs; every constructor and accessor copies.
//
// A nil *Grid reads as an empty grid.
type Grid struct {
	rows [][]cell.Value
}

// New builds a Grid from rows, copying every row.
// Complexity: O(total cells).
func New(rows ...[]cell.Value) *Grid {
	out := make([][]cell.Value, len(rows))
	for i, r := range rows {
		out[i] = slices.Clone(r)
	}

	return &Grid{rows: out}
}

// Len returns the number of rows.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}

	return len(g.rows)
}

// Width returns the number of columns in row.
func (g *Grid) Width(row int) (int, error) {
	if row < 0 || row >= g.Len() {
		return 0, fmt.Errorf("Grid.Width(%d): %w", row, ErrIndexOutOfRange)
	}

	return len(g.rows[row]), nil
}

// IsRectangular reports whether every row has the same length.
// An empty grid is rectangular.
func (g *Grid) IsRectangular() bool {
	for i := 1; i < g.Len(); i++ {
		if len(g.rows[i]) != len(g.rows[0]) {
			return false
		}
	}

	return true
}

// Row returns a copy of the row at the zero-based position i.
func (g *Grid) Row(i int) ([]cell.Value, error) {
	if i < 0 || i >= g.Len() {
		return nil, fmt.Errorf("Grid.Row(%d): %w", i, ErrIndexOutOfRange)
	}

	return slices.Clone(g.rows[i]), nil
}

// At returns the value at zero-based (row, col).
// Complexity: O(1).
func (g *Grid) At(row, col int) (cell.Value, error) {
	if row < 0 || row >= g.Len() || col < 0 || col >= len(g.rows[row]) {
		return cell.Value{}, fmt.Errorf("Grid.At(%d,%d): %w", row, col, ErrIndexOutOfRange)
	}

	return g.rows[row][col], nil
}

// Values returns the grid as native Go values, one []any per row: the
// argument lists a table-driven test ranges over.
// Complexity: O(total cells).
func (g *Grid) Values() [][]any {
	out := make([][]any, g.Len())
	for i := range out {
		row := make([]any, len(g.rows[i]))
		for j, v := range g.rows[i] {
			row[j] = v.Interface()
		}
		out[i] = row
	}

	return out
}

// Clone returns a deep copy. Object payloads are shared, not copied.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return New()
	}

	return New(g.rows...)
}
