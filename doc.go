// Package dataprovider is a toolkit for feeding data-driven tests: it turns
// scalars, slices and keyed records into two-dimensional argument grids,
// picks rows out of them with human-readable index ranges, and zips
// parallel argument columns together.
//
// What is in the box?
//
//	A pure-Go, allocation-conscious library made of four small packages:
//		• cell      : Value, a closed tagged union over text, bool, time,
//		              integer and float widths, and opaque objects
//		• indexrange: "1-3, 5, 7-8" ⇄ []int, with typed token errors
//		• record    : insertion-ordered keyed record with a YAML codec
//		• grid      : Grid plus conversions, MergeColumns, SelectByIndex,
//		              SelectByKeys and Filter
//
// Quick example:
//
//	args, _ := grid.MergeColumns(
//		grid.Column([]int{2, 12, 5, 7}), // dividends
//		grid.Column([]int{1, 3, 5, 8}),  // divisors
//		grid.Column([]int{2, 4, 1, 0}),  // quotients
//	)
//	subset, _ := grid.SelectByIndex(args, "2-3")
//	for _, row := range subset.Values() { ... } // [12 3 4] [5 5 1]
//
// Every operation is a pure function with explicit error returns; there is
// no shared state, so everything is safe to call from parallel tests.
//
//	go get github.com/katalvlaran/dataprovider
package dataprovider
