// SPDX-License-Identifier: MIT

package grid

import (
	"slices"

	"github.com/katalvlaran/dataprovider/cell"
	"github.com/katalvlaran/dataprovider/indexrange"
	"github.com/katalvlaran/dataprovider/record"
)

// KeySource is a named-column data source. *record.Record implements it.
type KeySource interface {
	Lookup(key string) (cell.Value, bool)
}

var _ KeySource = (*record.Record)(nil)

// SelectByIndex returns the rows of g named by an index-range expression.
// Positions count from IndexBase. The expression is resolved to a set first:
// positions come out ascending and each row at most once, whatever order the
// expression lists them in.
//
// Example (g = 2, 12, 4, 7, 6, 8, 5, 8 as an 8×1 grid):
//
//	SelectByIndex(g, "1, 3, 5-6") → 2, 4, 6, 8
//
// Errors: ErrNilGrid; indexrange errors (wrapped); *IndexError.
// Complexity: O(len(expr) + k log k + copied cells).
func SelectByIndex(g *Grid, expr string) (*Grid, error) {
	const op = "SelectByIndex"

	if err := validateNotNil(g); err != nil {
		return nil, opErrorf(op, err)
	}
	idx, err := indexrange.Parse(expr, indexrange.WithDedup(), indexrange.WithSorted())
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return selectRows(op, g, idx)
}

// SelectByIndexList returns the rows of g at the given positions, in the
// given order. Duplicates select the same row twice. An empty list yields an
// empty grid.
//
// Errors: ErrNilGrid; *IndexError.
// Complexity: O(k + copied cells).
func SelectByIndexList(g *Grid, indexes []int) (*Grid, error) {
	const op = "SelectByIndexList"

	if err := validateNotNil(g); err != nil {
		return nil, opErrorf(op, err)
	}

	return selectRows(op, g, indexes)
}

// selectRows validates every position before copying anything.
func selectRows(op string, g *Grid, indexes []int) (*Grid, error) {
	if err := validateIndexes(indexes, g.Len()); err != nil {
		return nil, opErrorf(op, err)
	}
	rows := make([][]cell.Value, len(indexes))
	for i, idx := range indexes {
		rows[i] = slices.Clone(g.rows[idx-IndexBase])
	}

	return &Grid{rows: rows}, nil
}

// SelectByKeys returns a one-row grid whose columns are the values of keys,
// in request order.
//
// Errors: ErrNilSource, ErrNoKeys, *KeyError (ErrMissingKey).
// Complexity: O(len(keys)) lookups.
func SelectByKeys(src KeySource, keys ...string) (*Grid, error) {
	const op = "SelectByKeys"

	vals, err := lookupAll(src, keys)
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return &Grid{rows: [][]cell.Value{vals}}, nil
}

// SelectByKeysColumn performs the same lookup as SelectByKeys but lays the
// values out one per row, so every key drives its own test invocation.
//
// Errors: ErrNilSource, ErrNoKeys, *KeyError (ErrMissingKey).
func SelectByKeysColumn(src KeySource, keys ...string) (*Grid, error) {
	const op = "SelectByKeysColumn"

	vals, err := lookupAll(src, keys)
	if err != nil {
		return nil, opErrorf(op, err)
	}

	return FromValues(vals), nil
}

// lookupAll resolves every key or fails on the first absent one.
func lookupAll(src KeySource, keys []string) ([]cell.Value, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	vals := make([]cell.Value, len(keys))
	for i, k := range keys {
		v, ok := src.Lookup(k)
		if !ok {
			return nil, &KeyError{Key: k}
		}
		vals[i] = v
	}

	return vals, nil
}

// FromRecord returns a one-row grid of every value of r in key order.
// A nil or empty record yields a single empty row.
func FromRecord(r *record.Record) *Grid {
	return &Grid{rows: [][]cell.Value{r.Values()}}
}

// Filter returns the rows of g for which keep reports true, in order.
// keep receives a copy of each row and that copy becomes the result row, so
// writes made by keep show in the result but never in g.
//
// Errors: ErrNilGrid, ErrNilPredicate.
// Complexity: O(copied cells) plus the cost of keep.
func Filter(g *Grid, keep func(row []cell.Value) bool) (*Grid, error) {
	const op = "Filter"

	if err := validateNotNil(g); err != nil {
		return nil, opErrorf(op, err)
	}
	if keep == nil {
		return nil, opErrorf(op, ErrNilPredicate)
	}
	rows := make([][]cell.Value, 0, g.Len())
	for _, r := range g.rows {
		row := slices.Clone(r)
		if keep(row) {
			rows = append(rows, row)
		}
	}

	return &Grid{rows: rows}, nil
}
