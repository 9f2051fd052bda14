package indexrange_test

import (
	"testing"

	"github.com/katalvlaran/dataprovider/indexrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormat pins the compact rendering of position sets.
func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []int
		want string
	}{
		{"empty", nil, ""},
		{"single", []int{4}, "4"},
		{"pair is a range", []int{7, 8}, "7-8"},
		{"mixed", []int{1, 2, 3, 5, 7, 8}, "1-3,5,7-8"},
		{"unsorted with duplicates", []int{8, 1, 2, 3, 5, 7, 3}, "1-3,5,7-8"},
		{"zero", []int{0, 1, 4}, "0-1,4"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := indexrange.Format(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestFormat_RoundTrip checks that Parse∘Format is the identity on
// normalized sets.
func TestFormat_RoundTrip(t *testing.T) {
	set := []int{0, 2, 3, 4, 10, 12, 13}
	expr, err := indexrange.Format(set)
	require.NoError(t, err)

	back, err := indexrange.Parse(expr)
	require.NoError(t, err)
	assert.Equal(t, set, back)
}

// TestFormat_Negative rejects positions the grammar cannot express.
func TestFormat_Negative(t *testing.T) {
	_, err := indexrange.Format([]int{3, -1})
	assert.ErrorIs(t, err, indexrange.ErrNegativeIndex)
}
