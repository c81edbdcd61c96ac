package group

import "github.com/joshuapare/sortkit/array"

// hooks is the array.Owner of every array a Group creates. It runs on the
// mutator goroutine with the array's element lock held.
type hooks struct {
	g *Group
}

func (h hooks) ArrayGet(a *array.Array) {
	g := h.g
	if off, ok := g.layout.Load().offsets[a]; ok {
		g.lastGet.Store(int64(a.IndexLastGet() + off))
	}
	h.afterAccess()
}

func (h hooks) ArraySet(a *array.Array) {
	g := h.g
	if off, ok := g.layout.Load().offsets[a]; ok {
		g.lastSet.Store(int64(a.IndexLastSet() + off))
	}
	h.afterAccess()
}

func (h hooks) afterAccess() {
	h.g.changed()
	h.g.pace()
}

// ArrayMinChanged rescans the global minimum only when a visible array's
// new minimum undercuts it.
func (h hooks) ArrayMinChanged(a *array.Array) {
	g := h.g
	g.mu.Lock()
	defer g.mu.Unlock()

	l := g.layout.Load()
	if _, visible := l.offsets[a]; !visible {
		return
	}
	if int64(a.Min()) < g.min.Load() {
		lo, _ := bounds(l)
		g.min.Store(int64(lo))
	}
}

// ArrayMaxChanged rescans the global maximum only when a visible array's
// new maximum exceeds it.
func (h hooks) ArrayMaxChanged(a *array.Array) {
	g := h.g
	g.mu.Lock()
	defer g.mu.Unlock()

	l := g.layout.Load()
	if _, visible := l.offsets[a]; !visible {
		return
	}
	if int64(a.Max()) > g.max.Load() {
		_, hi := bounds(l)
		g.max.Store(int64(hi))
	}
}
