package group

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/joshuapare/sortkit/array"
	"github.com/joshuapare/sortkit/group/index"
	"github.com/joshuapare/sortkit/internal/buf"
)

// Visualizer receives notifications from a Group.
//
// OnStateChanged is a best-effort repaint hint. It is called on the mutator
// goroutine after every tracked access (while notifications are enabled) and
// after structural changes, so implementations must return quickly and must
// not call Get or Set on the group's arrays.
type Visualizer interface {
	OnStateChanged()
	OnRunFinished()
}

type nopVisualizer struct{}

func (nopVisualizer) OnStateChanged() {}
func (nopVisualizer) OnRunFinished()  {}

// Group owns named tracked arrays and exposes the visible ones as a single
// global index space. Create one with New or NewWithOptions.
type Group struct {
	vis   Visualizer
	log   *slog.Logger
	hooks hooks

	// mu serializes structural operations. Queries never take it.
	mu     sync.Mutex
	layout atomic.Pointer[layout]

	min     atomic.Int64
	max     atomic.Int64
	lastGet atomic.Int64
	lastSet atomic.Int64

	delay  atomic.Int64 // nanoseconds
	pacing atomic.Bool
	notify atomic.Bool

	stopOnce    sync.Once
	stop        chan struct{}
	interrupted atomic.Bool
}

// New creates an empty group with default options. A nil vis is replaced by
// a visualizer that ignores every notification.
func New(vis Visualizer) *Group {
	return NewWithOptions(vis, Options{})
}

// NewWithOptions creates an empty group configured by opts.
func NewWithOptions(vis Visualizer, opts Options) *Group {
	if vis == nil {
		vis = nopVisualizer{}
	}
	g := &Group{
		vis:  vis,
		log:  opts.logger(),
		stop: make(chan struct{}),
	}
	g.hooks = hooks{g: g}
	g.layout.Store(emptyLayout())
	g.lastGet.Store(array.NoIndex)
	g.lastSet.Store(array.NoIndex)
	g.delay.Store(int64(opts.delay()))
	g.pacing.Store(!opts.DisablePacing)
	g.notify.Store(!opts.DisableNotifications)
	return g
}

// ============================================================================
// Structure
// ============================================================================

// AddArray registers a zero-filled array of the given capacity.
// It returns nil, changing nothing, if name is empty or capacity < 1.
func (g *Group) AddArray(capacity int, name string, visible bool) *array.Array {
	if name == "" || capacity < buf.MinCapacity {
		return nil
	}
	return g.register(array.New(capacity, name, g.hooks), visible)
}

// AddArrayFrom registers an array holding a copy of src.
// It returns nil, changing nothing, if name is empty or src is nil. An empty,
// non-nil src yields a one-element array.
func (g *Group) AddArrayFrom(src []int, name string, visible bool) *array.Array {
	if name == "" || src == nil {
		return nil
	}
	return g.register(array.FromSlice(src, name, g.hooks), visible)
}

// AddArrayRange registers an array holding a copy of src[low..high],
// inclusive. It returns nil, changing nothing, if name is empty, src is nil
// or low > high. Other out-of-bounds ranges yield a one-element array.
func (g *Group) AddArrayRange(src []int, low, high int, name string, visible bool) *array.Array {
	if name == "" || src == nil || low > high {
		return nil
	}
	return g.register(array.FromRange(src, low, high, name, g.hooks), visible)
}

func (g *Group) register(a *array.Array, visible bool) *array.Array {
	g.mu.Lock()
	next := g.layout.Load().clone()
	_, replaced := next.members[a.Name()]
	if replaced {
		next.remove(a.Name())
	}
	next.order = append(next.order, a.Name())
	next.members[a.Name()] = member{arr: a, visible: visible}

	switch {
	case replaced:
		next.rebuild()
	case visible:
		next.appendVisible(a)
	}
	g.layout.Store(next)
	g.scanBounds(next)
	if replaced {
		g.resetLast()
	}
	g.mu.Unlock()

	g.log.Debug("array added",
		"name", a.Name(), "size", a.Size(), "visible", visible,
		"replaced", replaced, "capacity", next.table.Len())
	if replaced {
		g.changed()
	}
	return a
}

// RemoveArray detaches the named array and returns it, or returns nil if no
// such array exists. The global layout and bounds are rebuilt and the
// last-access indices reset to array.NoIndex.
func (g *Group) RemoveArray(name string) *array.Array {
	g.mu.Lock()
	cur := g.layout.Load()
	m, ok := cur.members[name]
	if !ok {
		g.mu.Unlock()
		return nil
	}
	next := cur.clone()
	next.remove(name)
	next.rebuild()
	g.layout.Store(next)
	g.scanBounds(next)
	g.resetLast()
	g.mu.Unlock()

	g.log.Debug("array removed", "name", name, "size", m.arr.Size(), "capacity", next.table.Len())
	g.changed()
	return m.arr
}

// SetVisibility shows or hides the named array. Unknown names and unchanged
// flags are ignored. A change rebuilds the whole global layout and both
// bounds, and resets the last-access indices.
func (g *Group) SetVisibility(name string, visible bool) {
	g.mu.Lock()
	cur := g.layout.Load()
	m, ok := cur.members[name]
	if !ok || m.visible == visible {
		g.mu.Unlock()
		return
	}
	next := cur.clone()
	next.members[name] = member{arr: m.arr, visible: visible}
	next.rebuild()
	g.layout.Store(next)
	g.scanBounds(next)
	g.resetLast()
	g.mu.Unlock()

	g.log.Debug("visibility changed", "name", name, "visible", visible, "capacity", next.table.Len())
	g.changed()
}

// AlgorithmFinished resets the last-access indices and notifies the
// visualizer that the run is over.
func (g *Group) AlgorithmFinished() {
	g.mu.Lock()
	g.resetLast()
	g.mu.Unlock()

	g.log.Debug("algorithm finished", "accesses", g.AccessCount())
	g.vis.OnRunFinished()
}

func (g *Group) resetLast() {
	g.lastGet.Store(array.NoIndex)
	g.lastSet.Store(array.NoIndex)
}

// scanBounds recomputes both global bounds from the cached bounds of the
// visible arrays in l. With no visible arrays both bounds are zero.
func (g *Group) scanBounds(l *layout) {
	lo, hi := bounds(l)
	g.min.Store(int64(lo))
	g.max.Store(int64(hi))
}

func bounds(l *layout) (lo, hi int) {
	first := true
	for _, a := range l.visible() {
		if first || a.Min() < lo {
			lo = a.Min()
		}
		if first || a.Max() > hi {
			hi = a.Max()
		}
		first = false
	}
	return lo, hi
}

func (g *Group) changed() {
	if g.notify.Load() {
		g.vis.OnStateChanged()
	}
}

// ============================================================================
// Queries
// ============================================================================

// HasArray reports whether an array is registered under name.
func (g *Group) HasArray(name string) bool {
	_, ok := g.layout.Load().members[name]
	return ok
}

// Array returns the array registered under name, or nil.
func (g *Group) Array(name string) *array.Array {
	return g.layout.Load().members[name].arr
}

// Names returns the registered names in creation order.
func (g *Group) Names() []string {
	l := g.layout.Load()
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// IsVisible reports whether the named array is registered and visible.
func (g *Group) IsVisible(name string) bool {
	return g.layout.Load().members[name].visible
}

// IsSorted reports whether the named array is non-decreasing. Unknown names
// report false.
func (g *Group) IsSorted(name string) bool {
	a := g.Array(name)
	return a != nil && a.IsSorted()
}

// Offset returns the global index of the named array's first element.
// ok is false for unknown or hidden arrays.
func (g *Group) Offset(name string) (off int, ok bool) {
	l := g.layout.Load()
	m, found := l.members[name]
	if !found || !m.visible {
		return 0, false
	}
	off, ok = l.offsets[m.arr]
	return off, ok
}

// GlobalIndex translates a local index of the named array into a global
// index. ok is false for unknown or hidden arrays and out-of-range indices.
func (g *Group) GlobalIndex(name string, local int) (int, bool) {
	l := g.layout.Load()
	m, found := l.members[name]
	if !found || !m.visible || !buf.Index(m.arr.Size(), local) {
		return 0, false
	}
	off, ok := l.offsets[m.arr]
	return local + off, ok
}

// Locate translates a global index into an array name and local index.
// ok is false when gi is outside [0, Size()).
func (g *Group) Locate(gi int) (name string, local int, ok bool) {
	a, local, ok := g.layout.Load().table.Lookup(gi)
	if !ok {
		return "", 0, false
	}
	return a.Name(), local, true
}

// External returns the element at global index gi without counting the
// access or notifying anyone. Indices outside [0, Size()) read as zero, since
// an observer may race with a structural change that shrinks the group.
func (g *Group) External(gi int) int {
	a, local, ok := g.layout.Load().table.Lookup(gi)
	if !ok {
		return 0
	}
	return a.External(local)
}

// Size returns the total capacity of the visible arrays.
func (g *Group) Size() int {
	return g.layout.Load().table.Len()
}

// Min returns the global minimum over the visible arrays' cached minimums.
func (g *Group) Min() int { return int(g.min.Load()) }

// Max returns the global maximum over the visible arrays' cached maximums.
func (g *Group) Max() int { return int(g.max.Load()) }

// IndexLastGet returns the global index of the most recent Get on a visible
// array, or array.NoIndex.
func (g *Group) IndexLastGet() int { return int(g.lastGet.Load()) }

// IndexLastSet returns the global index of the most recent Set on a visible
// array, or array.NoIndex.
func (g *Group) IndexLastSet() int { return int(g.lastSet.Load()) }

// AccessCount returns the sum of the access counts of every registered
// array, hidden ones included.
func (g *Group) AccessCount() int64 {
	var total int64
	for _, m := range g.layout.Load().members {
		total += m.arr.AccessCount()
	}
	return total
}

// ResetAccessCount resets the access count of every registered array.
func (g *Group) ResetAccessCount() {
	for _, m := range g.layout.Load().members {
		m.arr.ResetAccessCount()
	}
}

// IndexStats reports metrics of the current global index table.
func (g *Group) IndexStats() index.Stats {
	return g.layout.Load().table.Stats()
}

// ============================================================================
// Pacing and notifications
// ============================================================================

// SetSleepDelay sets the pacing delay in milliseconds. Values below 1 are
// ignored.
func (g *Group) SetSleepDelay(ms int) {
	if ms < 1 {
		return
	}
	g.delay.Store(int64(time.Duration(ms) * time.Millisecond))
}

// Delay returns the current pacing delay.
func (g *Group) Delay() time.Duration {
	return time.Duration(g.delay.Load())
}

// ToggleSleep enables or disables pacing.
func (g *Group) ToggleSleep(enabled bool) {
	g.pacing.Store(enabled)
}

// Pacing reports whether pacing is enabled.
func (g *Group) Pacing() bool {
	return g.pacing.Load()
}

// ToggleReportUpdates enables or disables OnStateChanged notifications.
func (g *Group) ToggleReportUpdates(enabled bool) {
	g.notify.Store(enabled)
}

// ReportsUpdates reports whether OnStateChanged notifications are enabled.
func (g *Group) ReportsUpdates() bool {
	return g.notify.Load()
}

// Interrupt asks the running sort to stop waiting. A pacing sleep in
// progress returns at once and later sleeps are skipped; the sort itself
// runs to completion. Interrupt is idempotent and safe from any goroutine.
func (g *Group) Interrupt() {
	g.stopOnce.Do(func() {
		g.interrupted.Store(true)
		close(g.stop)
	})
}

// Interrupted reports whether Interrupt has been called.
func (g *Group) Interrupted() bool {
	return g.interrupted.Load()
}

func (g *Group) pace() {
	if !g.pacing.Load() || g.interrupted.Load() {
		return
	}
	t := time.NewTimer(g.Delay())
	defer t.Stop()
	select {
	case <-t.C:
	case <-g.stop:
	}
}
