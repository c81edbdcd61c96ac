// Package array implements the tracked integer array that sorting algorithms
// operate on.
//
// # Overview
//
// An Array is a drop-in replacement for a plain []int that instruments every
// element access made by an algorithm:
//
//   - Get and Set bump an access counter and record the last touched index
//   - Set keeps a cached minimum and maximum (see "Stale Bounds" below)
//   - every Get and Set is reported to the array's Owner through hooks
//
// Arrays are normally created by a group.Group, which acts as their Owner and
// turns the hooks into global statistics, visualizer notifications and pacing.
// A standalone Array (nil owner) is still fully functional.
//
// # Construction
//
// Constructors never fail. Invalid input degrades to a one-element,
// zero-filled buffer:
//
//	a := array.New(0, "tmp", nil)                 // capacity < 1: length 1
//	b := array.FromSlice(nil, "copy", nil)        // nil source: length 1
//	c := array.FromRange(src, 5, 2, "part", nil)  // low > high: length 1
//
// # Concurrency
//
// There are two kinds of callers:
//
//   - the mutator (one goroutine running a sort) calls Get and Set. These are
//     serialized per array by a mutex, so at most one element operation is in
//     flight at a time.
//   - observers (rendering goroutines) call External, Min, Max, AccessCount,
//     IndexLastGet, IndexLastSet, IsSorted and Snapshot. These never take the
//     lock. Each individual value is read atomically, but a set of reads is not
//     a consistent snapshot while a sort is running.
//
// Size is safe from any goroutine: the buffer length never changes.
//
// # Stale Bounds
//
// Min and max are only recomputed when Set writes a value outside the cached
// [min, max] interval. Overwriting the only element equal to max with a
// smaller in-range value leaves Max() reporting the old value until a later
// out-of-range write forces a rescan:
//
//	a := array.FromSlice([]int{5, 1, 9}, "a", nil)
//	a.Set(2, 7)  // Max() is still 9
//	a.Set(0, 10) // rescan: Max() is now 10
//
// # Index Contract
//
// Get and Set do not check indices. An out-of-range index panics like a plain
// slice access would; algorithms are trusted to stay in bounds.
package array
