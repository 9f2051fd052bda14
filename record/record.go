package record

import (
	"slices"

	"github.com/katalvlaran/dataprovider/cell"
)

// Record is an ordered mapping from key to value.
// The zero Record is empty and ready to use. Not safe for concurrent writes.
type Record struct {
	keys  []string
	index map[string]int // key → position in keys/vals
	vals  []cell.Value
}

// New returns an empty Record with room for n entries.
func New(n int) *Record {
	if n < 0 {
		n = 0
	}

	return &Record{
		keys:  make([]string, 0, n),
		index: make(map[string]int, n),
		vals:  make([]cell.Value, 0, n),
	}
}

// Set stores v under key. An existing key keeps its position.
func (r *Record) Set(key string, v cell.Value) *Record {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[key]; ok {
		r.vals[i] = v
		return r
	}
	r.index[key] = len(r.keys)
	r.keys = append(r.keys, key)
	r.vals = append(r.vals, v)

	return r
}

// Lookup returns the value stored under key. A nil Record holds nothing.
func (r *Record) Lookup(key string) (cell.Value, bool) {
	if r == nil {
		return cell.Value{}, false
	}
	i, ok := r.index[key]
	if !ok {
		return cell.Value{}, false
	}

	return r.vals[i], true
}

// Delete removes key and reports whether it was present.
// Complexity: O(n), later entries shift down.
func (r *Record) Delete(key string) bool {
	if r == nil {
		return false
	}
	i, ok := r.index[key]
	if !ok {
		return false
	}
	r.keys = slices.Delete(r.keys, i, i+1)
	r.vals = slices.Delete(r.vals, i, i+1)
	delete(r.index, key)
	for j := i; j < len(r.keys); j++ {
		r.index[r.keys[j]] = j
	}

	return true
}

// Len returns the number of entries.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}

	return len(r.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}

	return slices.Clone(r.keys)
}

// Values returns the values in key order. The slice is a copy.
func (r *Record) Values() []cell.Value {
	if r == nil {
		return nil
	}

	return slices.Clone(r.vals)
}
