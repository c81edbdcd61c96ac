package index

import (
	"unsafe"

	"github.com/joshuapare/sortkit/array"
	"github.com/joshuapare/sortkit/internal/buf"
)

// Slot pairs an array with the global offset of its first element.
type Slot struct {
	Array  *array.Array
	Offset int
}

// Stats reports table metrics.
type Stats struct {
	Slots       int    // Total visible capacity
	Segments    int    // Number of arrays laid out in the table
	BytesApprox int    // Approximate memory usage of the slot arena
	Impl        string // Implementation name
}

// Table maps global indices to (array, offset) slots. A nil *Table behaves
// like an empty table.
type Table struct {
	slots    []Slot
	segments int
}

// Empty returns a table with no slots.
func Empty() *Table {
	return &Table{}
}

// Build lays out arrays back to back, in the order given, and returns the
// resulting table. Callers pass only the arrays that should be addressable.
func Build(arrays []*array.Array) *Table {
	total := 0
	for _, a := range arrays {
		total += a.Size()
	}

	t := &Table{slots: make([]Slot, total)}
	off := 0
	for _, a := range arrays {
		end, ok := buf.SegmentEnd(off, a.Size())
		if !ok {
			break
		}
		fill(t.slots[off:end], a, off)
		off = end
		t.segments++
	}
	return t
}

// Append returns a new table holding the existing slots followed by a
// segment for a. The receiver is left unchanged.
func (t *Table) Append(a *array.Array) *Table {
	prev := t.Len()
	end, ok := buf.SegmentEnd(prev, a.Size())
	if !ok {
		return t
	}

	next := &Table{slots: make([]Slot, end)}
	if t != nil {
		copy(next.slots, t.slots)
		next.segments = t.segments
	}
	fill(next.slots[prev:end], a, prev)
	next.segments++
	return next
}

func fill(dst []Slot, a *array.Array, off int) {
	for i := range dst {
		dst[i] = Slot{Array: a, Offset: off}
	}
}

// Len returns the number of addressable global indices.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.slots)
}

// Slot returns the slot for global index g. g must be in [0, Len()).
func (t *Table) Slot(g int) Slot {
	return t.slots[g]
}

// Lookup translates global index g to its array and local index.
// ok is false when g is outside the table.
func (t *Table) Lookup(g int) (a *array.Array, local int, ok bool) {
	if !buf.Index(t.Len(), g) {
		return nil, 0, false
	}
	s := t.slots[g]
	return s.Array, g - s.Offset, true
}

// Stats returns table metrics.
func (t *Table) Stats() Stats {
	st := Stats{Impl: "SlotTable"}
	if t == nil {
		return st
	}
	st.Slots = len(t.slots)
	st.Segments = t.segments
	st.BytesApprox = len(t.slots) * int(unsafe.Sizeof(Slot{}))
	return st
}
