// SPDX-License-Identifier: MIT

package cell

import (
	"strconv"
	"time"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// Invalid is the kind of the zero Value.
	Invalid Kind = iota
	// Text holds a string.
	Text
	// Bool holds a bool.
	Bool
	// Time holds a time.Time.
	Time
	// Int holds a platform int.
	Int
	// Int8 holds an int8.
	Int8
	// Int16 holds an int16.
	Int16
	// Int32 holds an int32; runes land here.
	Int32
	// Int64 holds an int64.
	Int64
	// Uint8 holds a uint8; bytes land here.
	Uint8
	// Float32 holds a float32.
	Float32
	// Float64 holds a float64.
	Float64
	// Object holds an arbitrary caller value, opaque to this package.
	Object
)

// kindNames is indexed by Kind.
var kindNames = [...]string{
	Invalid: "invalid",
	Text:    "text",
	Bool:    "bool",
	Time:    "time",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Float32: "float32",
	Float64: "float64",
	Object:  "object",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// IsInteger reports whether k is one of the integer kinds.
func (k Kind) IsInteger() bool {
	return k >= Int && k <= Uint8
}

// IsFloat reports whether k is Float32 or Float64.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// Scalar is the closed set of Go types that map onto a non-object Kind.
// rune and byte are aliases of int32 and uint8 and are covered by them.
type Scalar interface {
	string | bool | time.Time |
		int | int8 | int16 | int32 | int64 | uint8 |
		float32 | float64
}

// Value is one grid element. The zero Value has Kind Invalid.
//
// Only the payload field that matches kind is meaningful:
//   - s for Text;
//   - b for Bool;
//   - t for Time;
//   - i for every integer kind;
//   - f for both float kinds (float32 payloads are stored exactly);
//   - obj for Object.
type Value struct {
	kind Kind
	s    string
	b    bool
	t    time.Time
	i    int64
	f    float64
	obj  any
}
