package group

import (
	"maps"
	"slices"

	"github.com/joshuapare/sortkit/array"
	"github.com/joshuapare/sortkit/group/index"
)

type member struct {
	arr     *array.Array
	visible bool
}

// layout is an immutable snapshot of the group's structure. Structural
// operations build a new layout and publish it; queries and hooks read
// whichever layout is current.
type layout struct {
	order   []string // creation order
	members map[string]member
	offsets map[*array.Array]int // visible arrays only
	table   *index.Table
}

func emptyLayout() *layout {
	return &layout{
		members: make(map[string]member),
		offsets: make(map[*array.Array]int),
		table:   index.Empty(),
	}
}

func (l *layout) clone() *layout {
	return &layout{
		order:   slices.Clone(l.order),
		members: maps.Clone(l.members),
		offsets: maps.Clone(l.offsets),
		table:   l.table,
	}
}

// appendVisible lays a out after the current table without touching the
// existing offsets.
func (l *layout) appendVisible(a *array.Array) {
	l.offsets[a] = l.table.Len()
	l.table = l.table.Append(a)
}

// rebuild re-derives every offset and the whole table from the creation
// order. Hidden arrays take no offset and no global range.
func (l *layout) rebuild() {
	visible := l.visible()
	l.offsets = make(map[*array.Array]int, len(visible))
	off := 0
	for _, a := range visible {
		l.offsets[a] = off
		off += a.Size()
	}
	l.table = index.Build(visible)
}

// visible returns the visible arrays in creation order.
func (l *layout) visible() []*array.Array {
	out := make([]*array.Array, 0, len(l.order))
	for _, name := range l.order {
		if m := l.members[name]; m.visible {
			out = append(out, m.arr)
		}
	}
	return out
}

func (l *layout) remove(name string) {
	delete(l.members, name)
	l.order = slices.DeleteFunc(l.order, func(n string) bool { return n == name })
}
