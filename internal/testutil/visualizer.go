package testutil

import (
	"sync"
	"sync/atomic"
)

// Visualizer records the notifications it receives. It is safe for use from
// a mutator goroutine while a test goroutine reads the counters.
//
// Example:
//
//	vis := &testutil.Visualizer{}
//	g := group.New(vis)
//	...
//	require.Equal(t, int64(1), vis.Finished())
type Visualizer struct {
	changed  atomic.Int64
	finished atomic.Int64

	mu   sync.Mutex
	done chan struct{}

	// OnChange, if set, runs on every OnStateChanged call.
	OnChange func()
}

// OnStateChanged counts a state-changed notification.
func (v *Visualizer) OnStateChanged() {
	v.changed.Add(1)
	if v.OnChange != nil {
		v.OnChange()
	}
}

// OnRunFinished counts a run-finished notification and releases Done.
func (v *Visualizer) OnRunFinished() {
	v.finished.Add(1)
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.done == nil {
		v.done = make(chan struct{})
	}
	select {
	case <-v.done:
	default:
		close(v.done)
	}
}

// Changed returns the number of state-changed notifications so far.
func (v *Visualizer) Changed() int64 { return v.changed.Load() }

// Finished returns the number of run-finished notifications so far.
func (v *Visualizer) Finished() int64 { return v.finished.Load() }

// Done returns a channel closed by the first OnRunFinished call.
func (v *Visualizer) Done() <-chan struct{} {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.done == nil {
		v.done = make(chan struct{})
	}
	return v.done
}

// Reset zeroes the counters. Done stays closed once closed.
func (v *Visualizer) Reset() {
	v.changed.Store(0)
	v.finished.Store(0)
}
