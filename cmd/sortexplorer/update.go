package main

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/sortkit/pkg/types"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case restartMsg:
		return m.restart()

	case startedMsg:
		if msg.run == m.run {
			m.g = msg.g
		}
		return m, waitForEvent(m.events)

	case frameMsg:
		return m, waitForEvent(m.events)

	case finishedMsg:
		if msg.run == m.run {
			m.finished = true
		}
		return m, waitForEvent(m.events)

	case runDoneMsg:
		if msg.run != m.run {
			return m, nil
		}
		m.finished = true
		m.result = msg.result
		m.err = msg.err
		if msg.err != nil {
			m.log.Error("run failed", "error", msg.err)
		} else {
			m.log.Info("run done", "accesses", msg.result.Accesses,
				"interrupted", msg.result.Interrupted)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.NextAlgorithm):
		m.algIdx = (m.algIdx + 1) % len(m.algorithms)
		return m.restart()

	case key.Matches(msg, m.keys.PrevAlgorithm):
		m.algIdx = (m.algIdx - 1 + len(m.algorithms)) % len(m.algorithms)
		return m.restart()

	case key.Matches(msg, m.keys.NextKind):
		m.kind = nextKind(m.kind)
		return m.restart()

	case key.Matches(msg, m.keys.Restart):
		return m.restart()

	case key.Matches(msg, m.keys.Faster):
		m.setDelay(m.delay / 2)
		return m, nil

	case key.Matches(msg, m.keys.Slower):
		m.setDelay(m.delay * 2)
		return m, nil

	case key.Matches(msg, m.keys.TogglePace):
		m.pacing = !m.pacing
		if m.g != nil {
			m.g.ToggleSleep(m.pacing)
		}
		return m, nil

	case key.Matches(msg, m.keys.StopPacing):
		if m.g != nil {
			m.g.Interrupt()
		}
		return m, nil
	}
	return m, nil
}

// setDelay clamps d to [1ms, limits.MaxDelay] and applies it to the running
// group as well as to later runs.
func (m *Model) setDelay(d time.Duration) {
	d = min(max(d, time.Millisecond), m.limits.MaxDelay)
	d = d.Round(time.Millisecond)
	m.delay = d
	if m.g != nil {
		m.g.SetSleepDelay(int(d / time.Millisecond))
	}
}

func nextKind(k types.InputKind) types.InputKind {
	kinds := types.InputKinds()
	for i, kind := range kinds {
		if kind == k {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return kinds[0]
}
