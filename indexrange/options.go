// SPDX-License-Identifier: MIT

// Package indexrange: functional options for Parse.
//
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions resolver.
package indexrange

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSorted keeps positions in order of appearance.
	DefaultSorted = false

	// DefaultDedup keeps repeated positions.
	DefaultDedup = false

	// DefaultMaxIndexes caps the number of positions one expression may
	// expand to. "0-999999999" is a typo far more often than a request.
	DefaultMaxIndexes = 1 << 20
)

const panicMaxIndexesInvalid = "indexrange: WithMaxIndexes: n must be > 0"

// ---------- Public option type ----------

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved Parse configuration.
type Options struct {
	sorted     bool // DefaultSorted
	dedup      bool // DefaultDedup
	maxIndexes int  // DefaultMaxIndexes
}

// WithSorted returns positions in ascending order.
func WithSorted() Option {
	return func(o *Options) { o.sorted = true }
}

// WithDedup drops every repeat of a position after its first occurrence.
func WithDedup() Option {
	return func(o *Options) { o.dedup = true }
}

// WithMaxIndexes caps the number of produced positions (before dedup).
// Panics when n <= 0.
func WithMaxIndexes(n int) Option {
	if n <= 0 {
		panic(panicMaxIndexesInvalid)
	}

	return func(o *Options) { o.maxIndexes = n }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		sorted:     DefaultSorted,
		dedup:      DefaultDedup,
		maxIndexes: DefaultMaxIndexes,
	}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
