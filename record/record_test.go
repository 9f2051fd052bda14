package record_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/dataprovider/cell"
	"github.com/katalvlaran/dataprovider/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Keys shared by the record tests.
const (
	KeyTom   = "tom"
	KeyOne   = "1"
	KeyActor = "actor"
)

// newSample builds tom→1.0, "1"→"One", actor→date in that order.
func newSample(t *testing.T) (*record.Record, time.Time) {
	t.Helper()

	when := time.Date(2015, 6, 1, 12, 0, 0, 0, time.UTC)
	r := record.New(3).
		Set(KeyTom, cell.NewFloat32(1)).
		Set(KeyOne, cell.NewText("One")).
		Set(KeyActor, cell.NewTime(when))

	return r, when
}

// TestRecord_InsertionOrder verifies keys and values come back in insertion order.
func TestRecord_InsertionOrder(t *testing.T) {
	t.Parallel()

	r, when := newSample(t)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{KeyTom, KeyOne, KeyActor}, r.Keys())

	vals := r.Values()
	require.Len(t, vals, 3)
	assert.Equal(t, float32(1), vals[0].Interface())
	assert.Equal(t, "One", vals[1].Interface())
	assert.Equal(t, when, vals[2].Interface())
}

// TestRecord_SetReplacesInPlace keeps the position of an existing key.
func TestRecord_SetReplacesInPlace(t *testing.T) {
	t.Parallel()

	r, _ := newSample(t)
	r.Set(KeyTom, cell.NewInt(7))

	assert.Equal(t, []string{KeyTom, KeyOne, KeyActor}, r.Keys())
	v, ok := r.Lookup(KeyTom)
	require.True(t, ok)
	assert.Equal(t, 7, v.Interface())
}

// TestRecord_Lookup covers hits, misses and the nil receiver.
func TestRecord_Lookup(t *testing.T) {
	t.Parallel()

	r, _ := newSample(t)
	v, ok := r.Lookup(KeyOne)
	require.True(t, ok)
	assert.Equal(t, cell.Text, v.Kind())

	_, ok = r.Lookup("missing")
	assert.False(t, ok)

	var nilRec *record.Record
	_, ok = nilRec.Lookup(KeyOne)
	assert.False(t, ok)
	assert.Equal(t, 0, nilRec.Len())
	assert.Nil(t, nilRec.Keys())
	assert.Nil(t, nilRec.Values())
	assert.False(t, nilRec.Delete(KeyOne))
}

// TestRecord_Delete reindexes the entries that follow the removed key.
func TestRecord_Delete(t *testing.T) {
	t.Parallel()

	r, _ := newSample(t)
	assert.True(t, r.Delete(KeyTom))
	assert.False(t, r.Delete(KeyTom), "second delete is a no-op")

	assert.Equal(t, []string{KeyOne, KeyActor}, r.Keys())
	v, ok := r.Lookup(KeyActor)
	require.True(t, ok)
	assert.Equal(t, cell.Time, v.Kind())

	r.Set(KeyTom, cell.NewBool(true))
	assert.Equal(t, []string{KeyOne, KeyActor, KeyTom}, r.Keys())
}

// TestRecord_ZeroValue is usable without New.
func TestRecord_ZeroValue(t *testing.T) {
	var r record.Record
	r.Set("a", cell.NewInt(1))
	v, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 1, v.Interface())
}

// TestRecord_KeysIsCopy guards internal state against caller mutation.
func TestRecord_KeysIsCopy(t *testing.T) {
	r, _ := newSample(t)
	keys := r.Keys()
	keys[0] = "mutated"
	assert.Equal(t, KeyTom, r.Keys()[0])
}
