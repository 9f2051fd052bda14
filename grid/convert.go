// SPDX-License-Identifier: MIT

package grid

import "github.com/katalvlaran/dataprovider/cell"

// FromValue returns a 1×1 grid holding v.
func FromValue(v cell.Value) *Grid {
	return &Grid{rows: [][]cell.Value{{v}}}
}

// Single returns a 1×1 grid holding v under its scalar kind.
//
//	Single("Selion")     // text
//	Single(int64(9999))  // int64
//	Single(float32(3.1)) // float32
func Single[T cell.Scalar](v T) *Grid {
	return FromValue(cell.Of(v))
}

// SingleObject returns a 1×1 grid holding an arbitrary value.
func SingleObject(v any) *Grid {
	return FromValue(cell.NewObject(v))
}

// FromValues returns an n×1 grid: row i holds vs[i].
// Complexity: O(n) time, one backing allocation.
func FromValues(vs []cell.Value) *Grid {
	return column(len(vs), func(i int) cell.Value { return vs[i] })
}

// Column returns an n×1 grid from a slice of one scalar type, row i holding
// vs[i] under the kind of T. Works for []string, []bool, []time.Time,
// []int, []int8, []int16, []int32 ([]rune), []int64, []byte, []float32 and
// []float64.
func Column[T cell.Scalar](vs []T) *Grid {
	return column(len(vs), func(i int) cell.Value { return cell.Of(vs[i]) })
}

// ObjectColumn returns an n×1 grid of Object values from a slice of any
// element type.
func ObjectColumn[T any](vs []T) *Grid {
	return column(len(vs), func(i int) cell.Value { return cell.NewObject(vs[i]) })
}

// column lays n single-cell rows over one backing array, capacity-capped
// at one cell per row.
func column(n int, at func(i int) cell.Value) *Grid {
	backing := make([]cell.Value, n)
	rows := make([][]cell.Value, n)
	for i := 0; i < n; i++ {
		backing[i] = at(i)
		rows[i] = backing[i : i+1 : i+1]
	}

	return &Grid{rows: rows}
}
