// SPDX-License-Identifier: MIT
// Package indexrange: sentinel errors and the token-level error type.
//
// Callers branch on semantics with errors.Is(err, ErrX). When the offending
// token matters (reporting, diagnostics), use errors.As with *TokenError.

package indexrange

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyExpression is returned when the expression is empty or blank.
	ErrEmptyExpression = errors.New("indexrange: empty expression")

	// ErrMalformedToken indicates a token that is neither "N" nor "lo-hi".
	ErrMalformedToken = errors.New("indexrange: malformed token")

	// ErrReversedRange indicates a range token whose upper bound is below its
	// lower bound.
	ErrReversedRange = errors.New("indexrange: reversed range")

	// ErrTooManyIndexes indicates that expanding the expression would produce
	// more positions than the configured maximum.
	ErrTooManyIndexes = errors.New("indexrange: too many indexes")

	// ErrNegativeIndex is returned by Format for positions below zero, which
	// the grammar cannot express.
	ErrNegativeIndex = errors.New("indexrange: negative index")
)

// TokenError reports which token of an expression failed and why.
type TokenError struct {
	Token    string // trimmed token text
	Position int    // zero-based token position within the expression
	Err      error  // one of the package sentinels
}

// Error implements error.
func (e *TokenError) Error() string {
	return fmt.Sprintf("%v: token %d %q", e.Err, e.Position, e.Token)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *TokenError) Unwrap() error { return e.Err }

// tokenErrorf builds a *TokenError for the given token.
func tokenErrorf(pos int, token string, err error) error {
	return &TokenError{Token: token, Position: pos, Err: err}
}
