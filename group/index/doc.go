// Package index implements the global index table of a group.
//
// # Overview
//
// A group concatenates its visible arrays, in creation order, into a single
// global index space. The Table answers "which array and which local index
// does global index g refer to?" in O(1):
//
//	slot := t.Slot(g)
//	local := g - slot.Offset
//	v := slot.Array.External(local)
//
// Every global index of a visible array A holds the pair (A, offset(A)).
// This is the arena-of-pairs form of the two parallel tables
// (index → owner, index → offset) a group needs.
//
// # Cost Model
//
// Tables are immutable. There are two ways to get a new one:
//
//   - Append (cheap path): used when a brand-new visible array is registered.
//     The existing slots are copied into a larger table and only the new tail
//     is filled. O(existing + new size).
//   - Build (full recompute): used after a removal or a visibility change.
//     Offsets are re-derived from scratch. O(total visible capacity).
//
// Because a Table never changes after it is returned, a group can publish it
// through an atomic pointer and observers can read it without locking.
package index
