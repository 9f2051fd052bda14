package cell_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/dataprovider/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOf_KindAndIdentity checks that Of tags every scalar with the matching
// kind and that Interface hands back the identical native value.
func TestOf_KindAndIdentity(t *testing.T) {
	t.Parallel()

	now := time.Date(2015, 3, 4, 5, 6, 7, 8, time.UTC)

	tests := []struct {
		name string
		v    cell.Value
		kind cell.Kind
		want any
	}{
		{"text", cell.Of("Selion"), cell.Text, "Selion"},
		{"bool", cell.Of(true), cell.Bool, true},
		{"time", cell.Of(now), cell.Time, now},
		{"int", cell.Of(2014), cell.Int, 2014},
		{"int8", cell.Of(int8(-7)), cell.Int8, int8(-7)},
		{"int16", cell.Of(int16(2015)), cell.Int16, int16(2015)},
		{"rune", cell.Of('@'), cell.Int32, int32('@')},
		{"int64", cell.Of(int64(999999999)), cell.Int64, int64(999999999)},
		{"byte", cell.Of(byte(100)), cell.Uint8, uint8(100)},
		{"float32", cell.Of(float32(3.14)), cell.Float32, float32(3.14)},
		{"float64", cell.Of(123.4), cell.Float64, 123.4},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.kind, tc.v.Kind())
			assert.True(t, tc.v.IsValid())
			assert.Equal(t, tc.want, tc.v.Interface())
		})
	}
}

// TestValue_ZeroIsInvalid verifies the zero Value.
func TestValue_ZeroIsInvalid(t *testing.T) {
	var v cell.Value
	assert.False(t, v.IsValid())
	assert.Equal(t, cell.Invalid, v.Kind())
	assert.Nil(t, v.Interface())
	assert.Equal(t, "<invalid>", v.String())
}

// TestValue_Accessors covers the (x, ok) accessors on matching and
// mismatching kinds.
func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	s, ok := cell.NewText("One").Str()
	require.True(t, ok)
	assert.Equal(t, "One", s)

	_, ok = cell.NewInt(1).Str()
	assert.False(t, ok, "Str on an int must report a kind mismatch")

	i, ok := cell.NewInt16(-300).Int()
	require.True(t, ok)
	assert.Equal(t, int64(-300), i)

	i, ok = cell.NewUint8(255).Int()
	require.True(t, ok)
	assert.Equal(t, int64(255), i)

	_, ok = cell.NewFloat64(1).Int()
	assert.False(t, ok, "Int on a float must report a kind mismatch")

	f, ok := cell.NewFloat32(9.807).Float()
	require.True(t, ok)
	assert.Equal(t, float64(float32(9.807)), f)

	b, ok := cell.NewBool(true).Bool()
	require.True(t, ok)
	assert.True(t, b)

	tm := time.Unix(1420070400, 0).UTC()
	got, ok := cell.NewTime(tm).Time()
	require.True(t, ok)
	assert.True(t, tm.Equal(got))

	type address struct{ street string }
	obj, ok := cell.NewObject(address{"First street"}).Object()
	require.True(t, ok)
	assert.Equal(t, address{"First street"}, obj)

	obj, ok = cell.NewObject(nil).Object()
	require.True(t, ok, "nil is a valid object payload")
	assert.Nil(t, obj)
}

// TestValue_String pins the display format of each kind.
func TestValue_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    cell.Value
		want string
	}{
		{cell.NewText("Selion"), "Selion"},
		{cell.NewBool(false), "false"},
		{cell.NewTime(time.Date(2014, 1, 2, 3, 4, 5, 0, time.UTC)), "2014-01-02T03:04:05Z"},
		{cell.NewInt64(9999999999), "9999999999"},
		{cell.NewInt8(-1), "-1"},
		{cell.NewFloat32(3.14), "3.14"},
		{cell.NewFloat64(1.234e2), "123.4"},
		{cell.NewObject([]int{1, 2}), "[1 2]"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.v.String(), "kind %s", tc.v.Kind())
	}
	assert.Equal(t, "cell.int(5)", cell.NewInt(5).GoString())
}

// TestKind_String covers named and out-of-table kinds.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "float32", cell.Float32.String())
	assert.Equal(t, "object", cell.Object.String())
	assert.Equal(t, "kind(200)", cell.Kind(200).String())
	assert.True(t, cell.Uint8.IsInteger())
	assert.False(t, cell.Float64.IsInteger())
	assert.True(t, cell.Float32.IsFloat())
}
