// SPDX-License-Identifier: MIT

package indexrange

import (
	"slices"
	"strconv"
	"strings"
)

const (
	tokenSep = "," // separates tokens
	rangeSep = "-" // separates the bounds of a range token
)

// Parse expands an index-range expression into positions.
//
// Implementation:
//   - Stage 1: reject blank expressions.
//   - Stage 2: split on commas, trim, classify each token as number or range.
//   - Stage 3: expand ranges inclusively while enforcing the size cap.
//   - Stage 4: apply dedup / sort policy from opts.
//
// Parsing is all-or-nothing: on error no positions are returned.
//
// Example:
//
//	Parse("1-3, 5, 7-8") → [1 2 3 5 7 8]
//	Parse("1-3, 5, 7_8") → *TokenError{Token: "7_8", Err: ErrMalformedToken}
//
// Complexity: O(len(expr) + N), plus O(N log N) with WithSorted.
func Parse(expr string, opts ...Option) ([]int, error) {
	o := gatherOptions(opts...)

	if strings.TrimSpace(expr) == "" {
		return nil, ErrEmptyExpression
	}

	tokens := strings.Split(expr, tokenSep)
	out := make([]int, 0, len(tokens))
	for pos, raw := range tokens {
		tok := strings.TrimSpace(raw)
		lo, hi, err := parseToken(tok)
		if err != nil {
			return nil, tokenErrorf(pos, tok, err)
		}
		// hi-lo+1 > max-len(out), arranged so it cannot overflow.
		if hi-lo >= o.maxIndexes-len(out) {
			return nil, tokenErrorf(pos, tok, ErrTooManyIndexes)
		}
		// Stop on equality: i <= hi never fails when hi is math.MaxInt.
		for i := lo; ; i++ {
			out = append(out, i)
			if i == hi {
				break
			}
		}
	}

	if o.dedup {
		out = dedupStable(out)
	}
	if o.sorted {
		slices.Sort(out)
	}

	return out, nil
}

// MustParse is Parse for expressions known at compile time. It panics on error.
func MustParse(expr string, opts ...Option) []int {
	out, err := Parse(expr, opts...)
	if err != nil {
		panic(err)
	}

	return out
}

// parseToken classifies a trimmed token. A single number n is returned as the
// degenerate range [n, n].
func parseToken(tok string) (lo, hi int, err error) {
	left, right, isRange := strings.Cut(tok, rangeSep)
	if !isRange {
		n, ok := parseNumber(tok)
		if !ok {
			return 0, 0, ErrMalformedToken
		}

		return n, n, nil
	}

	lo, okLo := parseNumber(strings.TrimSpace(left))
	hi, okHi := parseNumber(strings.TrimSpace(right))
	if !okLo || !okHi {
		return 0, 0, ErrMalformedToken
	}
	if hi < lo {
		return 0, 0, ErrReversedRange
	}

	return lo, hi, nil
}

// parseNumber accepts a non-empty run of ASCII digits that fits in an int.
// Signs are rejected here because strconv.Atoi would accept them.
func parseNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false // out of int range
	}

	return n, true
}

// dedupStable keeps the first occurrence of every value, in place.
func dedupStable(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	out := in[:0]
	for _, v := range in {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Normalize returns the distinct values of indexes in ascending order.
// The input is not modified.
// Complexity: O(N log N).
func Normalize(indexes []int) []int {
	out := slices.Clone(indexes)
	slices.Sort(out)

	return slices.Compact(out)
}
