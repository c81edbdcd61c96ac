package array

import (
	"sync"
	"sync/atomic"

	"github.com/joshuapare/sortkit/internal/buf"
)

// NoIndex is the last-access index reported before any Get or Set.
const NoIndex = -1

// Owner receives the hooks fired by tracked element operations.
//
// Hooks run on the mutator goroutine while the array's element lock is held,
// so an Owner must not call Get or Set on the same array from a hook.
// Reading observer accessors (Min, Max, IndexLastGet, ...) is fine.
type Owner interface {
	// ArrayGet is called after every Get.
	ArrayGet(a *Array)
	// ArraySet is called after every Set, after any min/max hooks.
	ArraySet(a *Array)
	// ArrayMinChanged is called when a rescan changed the cached minimum.
	ArrayMinChanged(a *Array)
	// ArrayMaxChanged is called when a rescan changed the cached maximum.
	ArrayMaxChanged(a *Array)
}

type nopOwner struct{}

func (nopOwner) ArrayGet(*Array)        {}
func (nopOwner) ArraySet(*Array)        {}
func (nopOwner) ArrayMinChanged(*Array) {}
func (nopOwner) ArrayMaxChanged(*Array) {}

// Array is an instrumented, fixed-length buffer of integers.
//
// The zero value is not usable; use New, FromSlice or FromRange.
type Array struct {
	name  string
	owner Owner

	// mu serializes Get and Set. Observer accessors never take it.
	mu   sync.Mutex
	data []atomic.Int64

	accessCount atomic.Int64
	min         atomic.Int64
	max         atomic.Int64
	lastGet     atomic.Int64
	lastSet     atomic.Int64
}

// New creates a zero-filled array with the given capacity.
// A capacity below 1 yields a one-element array.
func New(capacity int, name string, owner Owner) *Array {
	a := alloc(buf.Capacity(capacity), name, owner)
	a.init()
	return a
}

// FromSlice creates an array holding a copy of src.
// A nil or empty src yields a one-element, zero-filled array.
func FromSlice(src []int, name string, owner Owner) *Array {
	if len(src) == 0 {
		return New(buf.MinCapacity, name, owner)
	}
	a := alloc(len(src), name, owner)
	for i, v := range src {
		a.data[i].Store(int64(v))
	}
	a.init()
	return a
}

// FromRange creates an array holding a copy of src[low..high], inclusive.
// If src is nil, low > high, low < 0 or high >= len(src), the result is a
// one-element, zero-filled array.
func FromRange(src []int, low, high int, name string, owner Owner) *Array {
	size, ok := buf.InclusiveRange(len(src), low, high)
	if !ok {
		return New(buf.MinCapacity, name, owner)
	}
	a := alloc(size, name, owner)
	for i := 0; i < size; i++ {
		a.data[i].Store(int64(src[low+i]))
	}
	a.init()
	return a
}

func alloc(n int, name string, owner Owner) *Array {
	if owner == nil {
		owner = nopOwner{}
	}
	return &Array{
		name:  name,
		owner: owner,
		data:  make([]atomic.Int64, n),
	}
}

// init sets the defaults and computes the initial bounds without firing hooks.
func (a *Array) init() {
	a.lastGet.Store(NoIndex)
	a.lastSet.Store(NoIndex)
	a.scanMinMax(false)
}

// Get returns the element at index i, counting the access and reporting it
// to the owner.
func (a *Array) Get(i int) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	v := a.data[i].Load()
	a.accessCount.Add(1)
	a.lastGet.Store(int64(i))
	a.owner.ArrayGet(a)
	return int(v)
}

// Set stores v at index i, counting the access and reporting it to the owner.
//
// The cached bounds are rescanned only when v falls outside [Min(), Max()].
func (a *Array) Set(i, v int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.data[i].Store(int64(v))
	a.accessCount.Add(1)
	a.lastSet.Store(int64(i))
	if int64(v) < a.min.Load() || int64(v) > a.max.Load() {
		a.scanMinMax(true)
	}
	a.owner.ArraySet(a)
}

// scanMinMax recomputes both bounds from the buffer. Callers hold mu, or own
// the array exclusively during construction.
func (a *Array) scanMinMax(notify bool) {
	lo := a.data[0].Load()
	hi := lo
	for i := range a.data {
		v := a.data[i].Load()
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo != a.min.Load() {
		a.min.Store(lo)
		if notify {
			a.owner.ArrayMinChanged(a)
		}
	}
	if hi != a.max.Load() {
		a.max.Store(hi)
		if notify {
			a.owner.ArrayMaxChanged(a)
		}
	}
}

// Size returns the buffer length. It never changes after construction.
func (a *Array) Size() int {
	return len(a.data)
}

// External returns the element at index i without counting the access,
// taking the element lock or notifying the owner. Intended for observers.
func (a *Array) External(i int) int {
	return int(a.data[i].Load())
}

// Name returns the name the array was created with.
func (a *Array) Name() string {
	return a.name
}

// AccessCount returns the number of Get and Set calls since creation or the
// last ResetAccessCount.
func (a *Array) AccessCount() int64 {
	return a.accessCount.Load()
}

// ResetAccessCount sets the access count back to zero.
func (a *Array) ResetAccessCount() {
	a.accessCount.Store(0)
}

// Min returns the cached minimum. It may be stale; see the package docs.
func (a *Array) Min() int {
	return int(a.min.Load())
}

// Max returns the cached maximum. It may be stale; see the package docs.
func (a *Array) Max() int {
	return int(a.max.Load())
}

// IndexLastGet returns the index of the most recent Get, or NoIndex.
func (a *Array) IndexLastGet() int {
	return int(a.lastGet.Load())
}

// IndexLastSet returns the index of the most recent Set, or NoIndex.
func (a *Array) IndexLastSet() int {
	return int(a.lastSet.Load())
}

// IsSorted reports whether the buffer is in non-decreasing order.
func (a *Array) IsSorted() bool {
	for i := 0; i < len(a.data)-1; i++ {
		if a.data[i].Load() > a.data[i+1].Load() {
			return false
		}
	}
	return true
}

// Snapshot copies the current values. Like External, it is untracked and not
// synchronized with a running sort.
func (a *Array) Snapshot() []int {
	out := make([]int, len(a.data))
	for i := range a.data {
		out[i] = int(a.data[i].Load())
	}
	return out
}
