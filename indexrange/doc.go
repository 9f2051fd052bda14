// Package indexrange parses human-readable index-range expressions such as
// "1-3, 5, 7-8" into integer positions, and formats positions back.
//
// Grammar:
//
//	expression = token { "," token }
//	token      = number | number "-" number
//	number     = digit { digit }
//
// Whitespace around tokens and around the hyphen is ignored. Ranges are
// inclusive and expand in ascending order; "7-8" yields 7 and 8.
//
// Defaults:
//
//   - Order of appearance is kept and duplicates are kept ("1-3,2" → 1 2 3 2).
//   - WithSorted and WithDedup switch to set semantics; Normalize does the same
//     for an already-parsed slice.
//   - At most DefaultMaxIndexes positions are produced (WithMaxIndexes).
//
// Errors:
//
//   - ErrEmptyExpression: expression is blank.
//   - ErrMalformedToken: token is neither a number nor a range ("7_8", "1,,2").
//   - ErrReversedRange: range with hi < lo ("5-3").
//   - ErrTooManyIndexes: expansion exceeds the configured maximum.
//
// Token-level failures are *TokenError values carrying the offending token
// and its position; match them with errors.Is on the sentinel or errors.As on
// *TokenError.
//
// Complexity: Parse is O(len(expr) + N) where N is the number of produced
// positions; Normalize is O(N log N); Format is O(N).
package indexrange
