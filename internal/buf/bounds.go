// Package buf holds the small index and range checks shared by the tracked
// array constructors and the group factories.
//
// None of these helpers return errors: callers degrade invalid input to a
// minimal valid value instead of failing.
package buf

import "math"

// MinCapacity is the smallest buffer length a tracked array ever has.
const MinCapacity = 1

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Capacity normalizes a requested buffer length. Anything below
// MinCapacity becomes MinCapacity.
func Capacity(n int) int {
	if n < MinCapacity {
		return MinCapacity
	}
	return n
}

// ValidCapacity reports whether n can be used as a buffer length as-is.
func ValidCapacity(n int) bool {
	return n >= MinCapacity
}

// InclusiveRange returns the number of elements in [low, high] when that range
// lies inside a buffer of length n. low == high is a valid one-element range.
func InclusiveRange(n, low, high int) (int, bool) {
	if low < 0 || low > high || high >= n {
		return 0, false
	}
	size, ok := AddOverflowSafe(high-low, 1)
	if !ok {
		return 0, false
	}
	return size, true
}

// Index reports whether i addresses an element of a buffer of length n.
func Index(n, i int) bool {
	return i >= 0 && i < n
}

// SegmentEnd returns off+size, the exclusive end of a segment in the global
// index space, with ok = false on overflow or negative inputs.
func SegmentEnd(off, size int) (int, bool) {
	if off < 0 || size < 0 {
		return 0, false
	}
	return AddOverflowSafe(off, size)
}
