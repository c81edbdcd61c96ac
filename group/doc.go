// Package group composes named tracked arrays into one observable space.
//
// # Overview
//
// A Group owns a set of named arrays, each either visible or hidden. The
// visible arrays, in creation order, form a single global index space:
//
//	g := group.New(vis)
//	g.AddArrayFrom([]int{5, 3, 1}, "input", true)  // global [0, 3)
//	g.AddArray(3, "temp", false)                    // hidden, no global range
//	g.AddArrayFrom([]int{8, 2}, "extra", true)      // global [3, 5)
//
// The Group tracks the global minimum and maximum over visible arrays, the
// global index of the last Get and Set, and forwards every element access to
// a Visualizer.
//
// # Roles
//
// Exactly one goroutine (the mutator) runs a sort against a Group; the Group
// does not enforce this. Any number of observer goroutines may call the query
// methods (Min, Max, External, Size, IndexLastGet, ...) at any time.
//
//   - Get and Set are serialized per array by the array itself.
//   - Structural operations (AddArray*, RemoveArray, SetVisibility,
//     AlgorithmFinished) are serialized by the Group.
//   - Queries take no locks. They read atomics and an immutable layout
//     snapshot, so they never block the mutator, but the values they return
//     may be stale or mutually inconsistent while a sort is running.
//
// # Pacing
//
// After every tracked Get or Set the mutator sleeps for Delay() when pacing
// is enabled (the default, 5ms). Interrupt wakes a sleeping mutator and turns
// every later pacing sleep into a no-op. It does not stop the sort: the
// algorithm keeps running, unpaced, until it completes.
//
// # Cost Model
//
// Registering a visible array appends to the global index table. Removing an
// array or changing its visibility rebuilds the table and both global bounds
// from scratch, O(total visible capacity). Use SetVisibility sparingly.
package group
