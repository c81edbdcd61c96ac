package testutil

import (
	"slices"
	"testing"
)

// EdgeInputs are the inputs every sort strategy must handle. A nil or empty
// input degrades to the one-element array [0].
var EdgeInputs = map[string][]int{
	"empty":          {},
	"single":         {42},
	"pair":           {2, 1},
	"pair sorted":    {1, 2},
	"all duplicates": {7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
	"descending":     {15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
	"negatives":      {3, -1, 0, -7, 12, -7, 5},
	"mixed":          {9, 2, 7, 2, 5, 11, 0, 3, 3, 8, 1, 6, 4, 10, 12, 2, 9},
}

// Expected returns the sorted multiset an input should produce, applying the
// same one-element degradation the array constructors apply.
func Expected(in []int) []int {
	if len(in) == 0 {
		return []int{0}
	}
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}

// AssertSortedPermutation checks got is non-decreasing and holds the same
// multiset as Expected(in).
//
// Example:
//
//	testutil.AssertSortedPermutation(t, in, g.Array("input").Snapshot())
func AssertSortedPermutation(t *testing.T, in, got []int) {
	t.Helper()

	for i := 1; i < len(got); i++ {
		if got[i-1] > got[i] {
			t.Errorf("not sorted at %d: %d > %d (%v)", i, got[i-1], got[i], got)
			return
		}
	}

	want := Expected(in)
	if !slices.Equal(want, got) {
		t.Errorf("multiset mismatch: want %v, got %v", want, got)
	}
}

// Descending returns n, n-1, ..., 1.
func Descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}
	return out
}
