package main

import (
	"regexp"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TestHelper provides utilities for driving the model in tests
type TestHelper struct {
	t     *testing.T
	model Model
}

// NewTestHelper creates a test helper with a model
func NewTestHelper(t *testing.T, cfg Config) *TestHelper {
	t.Helper()
	h := &TestHelper{t: t, model: NewModel(cfg)}
	t.Cleanup(func() { h.model.Close() })
	return h
}

// Send passes msg to Update and returns the resulting command
func (h *TestHelper) Send(msg tea.Msg) tea.Cmd {
	updated, cmd := h.model.Update(msg)
	h.model = updated.(Model)
	return cmd
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// SendKey simulates a special key press
func (h *TestHelper) SendKey(keyType tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// NextEvent waits for the next message from the running sort.
func (h *TestHelper) NextEvent() tea.Msg {
	h.t.Helper()
	select {
	case msg := <-h.model.events:
		return msg
	case <-time.After(10 * time.Second):
		h.t.Fatal("timed out waiting for run event")
		return nil
	}
}

// RunToCompletion starts a run and feeds every event into the model until
// the run reports done.
func (h *TestHelper) RunToCompletion() {
	h.t.Helper()
	cmd := h.Send(restartMsg{})
	if cmd == nil {
		h.t.Fatal("restart returned no command")
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	for {
		select {
		case msg := <-h.model.events:
			h.Send(msg)
		case msg := <-done:
			// drain what the run queued before it returned
		drain:
			for {
				select {
				case ev := <-h.model.events:
					h.Send(ev)
				default:
					break drain
				}
			}
			h.Send(msg)
			return
		case <-time.After(10 * time.Second):
			h.t.Fatal("timed out waiting for run")
		}
	}
}

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}
