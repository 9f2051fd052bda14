package indexrange

import (
	"strconv"
	"strings"
)

// Format renders positions as the shortest expression Parse maps back to the
// same set: runs of consecutive values become "lo-hi", the rest stay single.
// Input order and duplicates are irrelevant; the output is always ascending.
// An empty input yields "".
//
// Example:
//
//	Format([]int{8, 1, 2, 3, 5, 7, 3}) → "1-3,5,7-8"
//
// Complexity: O(N log N) for normalization, O(N) for rendering.
func Format(indexes []int) (string, error) {
	set := Normalize(indexes)
	if len(set) == 0 {
		return "", nil
	}
	if set[0] < 0 {
		return "", tokenErrorf(0, strconv.Itoa(set[0]), ErrNegativeIndex)
	}

	var sb strings.Builder
	start := set[0]
	for i := 1; i <= len(set); i++ {
		// Close the current run at the end of input or at a gap.
		if i < len(set) && set[i] == set[i-1]+1 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(tokenSep)
		}
		sb.WriteString(strconv.Itoa(start))
		if end := set[i-1]; end != start {
			sb.WriteString(rangeSep)
			sb.WriteString(strconv.Itoa(end))
		}
		if i < len(set) {
			start = set[i]
		}
	}

	return sb.String(), nil
}
