// Package cell defines Value, the single element type stored in a data grid.
//
// What:
//
//   - Value is a closed tagged union over the kinds a data provider hands to a
//     parameterized test: text, bool, time, signed integers (int, 8/16/32/64),
//     bytes, floats (32/64) and opaque objects.
//   - Every kind has exactly one constructor (NewText, NewInt16, NewObject, ...).
//   - Of[T Scalar] picks the constructor from the static type of its argument,
//     so callers holding a typed slice never touch the constructors directly.
//
// Why:
//
//   - Grids mix values of different kinds per column. A tagged union keeps the
//     original width and kind of every value (int8 stays int8) without
//     inspecting types at run time.
//
// Accessors:
//
//   - Str, Bool, Time, Int, Float, Object return (x, ok); ok is false on a
//     kind mismatch. Int and Float widen any integer / float width.
//   - Interface returns the native Go value at its original width.
//
// Complexity: every operation is O(1).
package cell
