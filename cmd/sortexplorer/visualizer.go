package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joeycumines/go-catrate"

	"github.com/joshuapare/sortkit/group"
)

// Messages delivered from a run to the model. Each carries the run number so
// that events from a replaced run can be dropped.
type (
	startedMsg struct {
		run int
		g   *group.Group
	}
	frameMsg    struct{ run int }
	finishedMsg struct{ run int }
)

// newFrameLimiter allows at most fps repaints per second.
func newFrameLimiter(fps int) *catrate.Limiter {
	return catrate.NewLimiter(map[time.Duration]int{time.Second: fps})
}

// runVisualizer forwards group notifications to the model's event channel.
// OnStateChanged runs on the sorting goroutine for every tracked access, so
// repaints are rate limited and dropped rather than queued when the UI is
// behind.
type runVisualizer struct {
	ctx     context.Context
	run     int
	events  chan<- tea.Msg
	limiter *catrate.Limiter
}

func (v *runVisualizer) OnStateChanged() {
	if _, ok := v.limiter.Allow(v.run); !ok {
		return
	}
	select {
	case v.events <- frameMsg{run: v.run}:
	default:
	}
}

func (v *runVisualizer) OnRunFinished() {
	v.deliver(finishedMsg{run: v.run})
}

// deliver blocks until msg is queued or the run's context ends.
func (v *runVisualizer) deliver(msg tea.Msg) {
	select {
	case v.events <- msg:
	case <-v.ctx.Done():
	}
}

// waitForEvent reads the next run event.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}
