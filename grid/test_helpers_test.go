// SPDX-License-Identifier: MIT
// Package grid_test contains shared fixtures for the grid tests.

package grid_test

import (
	"testing"

	"github.com/katalvlaran/dataprovider/grid"
	"github.com/stretchr/testify/require"
)

// Data columns used across tests (avoid magic numbers in test bodies).
var (
	Dividends  = []int{2, 12, 5, 7}
	Divisors   = []int{1, 3, 5, 8}
	Quotients  = []int{2, 4, 1, 0}
	EightInput = []int{2, 12, 4, 7, 6, 8, 5, 8}
)

// address stands in for an arbitrary caller type.
type address struct {
	Street string
}

// column0 returns the native values of column 0, one per row.
func column0(t *testing.T, g *grid.Grid) []any {
	t.Helper()

	out := make([]any, g.Len())
	for i := range out {
		v, err := g.At(i, 0)
		require.NoError(t, err)
		out[i] = v.Interface()
	}

	return out
}

// requireShape asserts a rectangular rows×cols grid.
func requireShape(t *testing.T, g *grid.Grid, rows, cols int) {
	t.Helper()

	require.NotNil(t, g)
	require.Equal(t, rows, g.Len(), "row count")
	for i := 0; i < rows; i++ {
		w, err := g.Width(i)
		require.NoError(t, err)
		require.Equal(t, cols, w, "width of row %d", i)
	}
}
