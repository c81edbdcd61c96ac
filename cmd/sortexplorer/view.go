package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/sortkit/array"
	"github.com/joshuapare/sortkit/group"
	"github.com/joshuapare/sortkit/pkg/sortdemo"
)

const barGlyph = "█"

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("sortexplorer"))
	b.WriteString(" ")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%s  %s  n=%d", m.Algorithm(), m.kind, m.size)))
	b.WriteString("\n")

	switch {
	case m.g == nil && m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.g == nil:
		b.WriteString(statusStyle.Render("starting..."))
		b.WriteString("\n")
	default:
		bars := renderBars(m.g, m.graphCols(), m.graphRows(), m.finished)
		b.WriteString(graphStyle.Render(bars))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) statusLine() string {
	var parts []string
	if m.g != nil {
		parts = append(parts, "accesses "+sortdemo.FormatCount(m.g.AccessCount()))
	}
	if m.pacing {
		parts = append(parts, fmt.Sprintf("delay %s", m.delay))
	} else {
		parts = append(parts, "unpaced")
	}
	line := statusStyle.Render(strings.Join(parts, " │ "))

	switch {
	case m.err != nil && m.g != nil:
		line += " " + errorStyle.Render(m.err.Error())
	case m.result != nil && m.result.Interrupted:
		line += " " + warningStyle.Render("finished (pacing interrupted)")
	case m.finished:
		line += " " + finishedStyle.Render("finished")
	}
	return line
}

// renderBars draws the group's visible elements as vertical bars, scaled
// between the global minimum and maximum. When there are more elements than
// columns, each column shows the element at its proportional index.
func renderBars(g *group.Group, cols, rows int, finished bool) string {
	n := g.Size()
	if n == 0 || cols < 1 || rows < 1 {
		return ""
	}
	cols = min(cols, n)
	lo, hi := g.Min(), g.Max()
	lastGet, lastSet := g.IndexLastGet(), g.IndexLastSet()

	heights := make([]int, cols)
	styles := make([]lipgloss.Style, cols)
	for c := range cols {
		gi := c * n / cols
		heights[c] = barHeight(g.External(gi), lo, hi, rows)
		switch {
		case finished:
			styles[c] = doneBarStyle
		case lastSet != array.NoIndex && lastSet*cols/n == c:
			styles[c] = setBarStyle
		case lastGet != array.NoIndex && lastGet*cols/n == c:
			styles[c] = getBarStyle
		default:
			styles[c] = barStyle
		}
	}

	lines := make([]string, rows)
	for r := range rows {
		level := rows - r
		var line strings.Builder
		start := 0
		for c := 1; c <= cols; c++ {
			if c < cols && sameCell(heights, styles, start, c, level) {
				continue
			}
			line.WriteString(renderRun(heights[start] >= level, styles[start], c-start))
			start = c
		}
		lines[r] = line.String()
	}
	return strings.Join(lines, "\n")
}

// barHeight scales v into [1, rows]. Values outside [lo, hi], which can be
// observed while the bounds are stale, are clamped.
func barHeight(v, lo, hi, rows int) int {
	if hi <= lo {
		return rows
	}
	v = min(max(v, lo), hi)
	return 1 + (v-lo)*(rows-1)/(hi-lo)
}

func sameCell(heights []int, styles []lipgloss.Style, a, b, level int) bool {
	filledA, filledB := heights[a] >= level, heights[b] >= level
	if filledA != filledB {
		return false
	}
	return !filledA || styles[a].GetForeground() == styles[b].GetForeground()
}

func renderRun(filled bool, style lipgloss.Style, width int) string {
	if !filled {
		return strings.Repeat(" ", width)
	}
	return style.Render(strings.Repeat(barGlyph, width))
}
