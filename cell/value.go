// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"strconv"
	"time"
)

// NewText wraps a string.
func NewText(s string) Value { return Value{kind: Text, s: s} }

// NewBool wraps a bool.
func NewBool(b bool) Value { return Value{kind: Bool, b: b} }

// NewTime wraps a time.Time. The monotonic clock reading is kept as-is.
func NewTime(t time.Time) Value { return Value{kind: Time, t: t} }

// NewInt wraps a platform int.
func NewInt(i int) Value { return Value{kind: Int, i: int64(i)} }

// NewInt8 wraps an int8.
func NewInt8(i int8) Value { return Value{kind: Int8, i: int64(i)} }

// NewInt16 wraps an int16.
func NewInt16(i int16) Value { return Value{kind: Int16, i: int64(i)} }

// NewInt32 wraps an int32 (and therefore a rune).
func NewInt32(i int32) Value { return Value{kind: Int32, i: int64(i)} }

// NewInt64 wraps an int64.
func NewInt64(i int64) Value { return Value{kind: Int64, i: i} }

// NewUint8 wraps a uint8 (and therefore a byte).
func NewUint8(u uint8) Value { return Value{kind: Uint8, i: int64(u)} }

// NewFloat32 wraps a float32. The widening to float64 is exact, so
// Interface returns the very same float32.
func NewFloat32(f float32) Value { return Value{kind: Float32, f: float64(f)} }

// NewFloat64 wraps a float64.
func NewFloat64(f float64) Value { return Value{kind: Float64, f: f} }

// NewObject wraps an arbitrary value. A nil object is a valid Object Value.
func NewObject(v any) Value { return Value{kind: Object, obj: v} }

// Of wraps v using the constructor of the kind that matches T.
// Complexity: O(1).
func Of[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case string:
		return NewText(x)
	case bool:
		return NewBool(x)
	case time.Time:
		return NewTime(x)
	case int:
		return NewInt(x)
	case int8:
		return NewInt8(x)
	case int16:
		return NewInt16(x)
	case int32:
		return NewInt32(x)
	case int64:
		return NewInt64(x)
	case uint8:
		return NewUint8(x)
	case float32:
		return NewFloat32(x)
	case float64:
		return NewFloat64(x)
	}

	// Scalar is closed; every member is handled above.
	panic(fmt.Sprintf("cell: Of: unhandled scalar type %T", v))
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v was built by a constructor.
func (v Value) IsValid() bool { return v.kind != Invalid }

// Str returns the string of a Text value.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == Text
}

// Bool returns the bool of a Bool value.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == Bool
}

// Time returns the time of a Time value.
func (v Value) Time() (time.Time, bool) {
	return v.t, v.kind == Time
}

// Int returns any integer kind widened to int64.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind.IsInteger()
}

// Float returns either float kind widened to float64.
func (v Value) Float() (float64, bool) {
	return v.f, v.kind.IsFloat()
}

// Object returns the payload of an Object value.
func (v Value) Object() (any, bool) {
	return v.obj, v.kind == Object
}

// Interface returns the payload as the Go type it was constructed from.
// The zero Value yields nil.
func (v Value) Interface() any {
	switch v.kind {
	case Text:
		return v.s
	case Bool:
		return v.b
	case Time:
		return v.t
	case Int:
		return int(v.i)
	case Int8:
		return int8(v.i)
	case Int16:
		return int16(v.i)
	case Int32:
		return int32(v.i)
	case Int64:
		return v.i
	case Uint8:
		return uint8(v.i)
	case Float32:
		return float32(v.f)
	case Float64:
		return v.f
	case Object:
		return v.obj
	default:
		return nil
	}
}

// String renders v for display. Times use RFC 3339 with nanoseconds,
// floats the shortest representation that round-trips at their own width.
func (v Value) String() string {
	switch v.kind {
	case Text:
		return v.s
	case Bool:
		return strconv.FormatBool(v.b)
	case Time:
		return v.t.Format(time.RFC3339Nano)
	case Int, Int8, Int16, Int32, Int64, Uint8:
		return strconv.FormatInt(v.i, 10)
	case Float32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Object:
		return fmt.Sprint(v.obj)
	default:
		return "<invalid>"
	}
}

// GoString makes %#v show the kind next to the payload.
func (v Value) GoString() string {
	return "cell." + v.kind.String() + "(" + v.String() + ")"
}
