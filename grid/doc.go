// Package grid turns scalars, slices and keyed records into two-dimensional
// grids of cell.Value for data-driven tests, and selects and combines them.
//
// What:
//
//   - Conversions: FromValue / Single / SingleObject (1×1);
//     FromValues / Column / ObjectColumn (n×1, one row per element).
//   - MergeColumns: zip equal-length grids column-wise (row i = column 0 of
//     row i of each input).
//   - SelectByIndex / SelectByIndexList: pick rows by one-based position,
//     from an index-range expression ("1, 3, 5-6") or an explicit list.
//   - SelectByKeys / SelectByKeysColumn / FromRecord: pull values out of a
//     record.Record (or any KeySource) by key.
//   - Filter: keep rows matching a predicate.
//   - Values: hand the grid to a table-driven test as [][]any.
//
// Rows are test invocations, columns are arguments:
//
//	g, _ := grid.MergeColumns(
//		grid.Column([]int{2, 12, 5, 7}),
//		grid.Column([]int{1, 3, 5, 8}),
//		grid.Column([]int{2, 4, 1, 0}),
//	)
//	for _, args := range g.Values() {
//		dividend, divisor, want := args[0].(int), args[1].(int), args[2].(int)
//		...
//	}
//
// Every operation is a pure function: inputs are never modified or
// retained, results never alias inputs, and a failed operation returns a nil
// grid (no partial results). Grids are safe for concurrent reads.
//
// Errors:
//
//   - ErrNilGrid, ErrNoGrids, ErrNilSource, ErrNoKeys, ErrNilPredicate:
//     missing inputs.
//   - ErrShapeMismatch (*ShapeError): MergeColumns row-count or column gap.
//   - ErrIndexOutOfRange (*IndexError): selection outside the grid.
//   - ErrMissingKey (*KeyError): key absent from the source.
//   - indexrange.ErrMalformedToken and friends: bad expression.
package grid
