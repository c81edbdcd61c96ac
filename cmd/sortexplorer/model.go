package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joeycumines/go-catrate"

	"github.com/joshuapare/sortkit/cmd/sortexplorer/logger"
	"github.com/joshuapare/sortkit/group"
	"github.com/joshuapare/sortkit/pkg/sortdemo"
	"github.com/joshuapare/sortkit/pkg/types"
)

// Layout constants
const (
	HeaderHeight = 2 // Title line plus run line
	FooterHeight = 3 // Status line plus help line plus spacing
	MinBarRows   = 4
	eventBuffer  = 64
)

// Config holds the startup settings of the explorer.
type Config struct {
	Algorithm string
	Kind      types.InputKind
	Size      int
	Seed      uint64
	Delay     time.Duration
	FPS       int
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Algorithm: "quick-merge",
		Kind:      types.InputShuffled,
		Size:      60,
		Delay:     group.DefaultDelay,
		FPS:       30,
	}
}

// restartMsg asks the model to start a new run on fresh input.
type restartMsg struct{}

// runDoneMsg carries the outcome of sortdemo.Run.
type runDoneMsg struct {
	run    int
	result *sortdemo.RunResult
	err    error
}

// Model is the main application model
type Model struct {
	keys KeyMap
	help help.Model

	width  int
	height int

	algorithms []string
	algIdx     int
	kind       types.InputKind
	size       int
	seed       uint64
	delay      time.Duration
	pacing     bool
	limits     types.Limits

	events  chan tea.Msg
	limiter *catrate.Limiter

	// Current run
	run      int
	log      *slog.Logger
	cancel   context.CancelFunc
	g        *group.Group
	finished bool
	result   *sortdemo.RunResult
	err      error

	showHelp bool
}

// NewModel creates the model. The first run starts from Init.
func NewModel(cfg Config) Model {
	def := DefaultConfig()
	if cfg.FPS < 1 {
		cfg.FPS = def.FPS
	}
	if cfg.Size < 1 {
		cfg.Size = def.Size
	}
	if cfg.Delay <= 0 {
		cfg.Delay = def.Delay
	}

	algorithms := sortdemo.Algorithms()
	algIdx := 0
	for i, name := range algorithms {
		if name == cfg.Algorithm {
			algIdx = i
		}
	}

	return Model{
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
		algorithms: algorithms,
		algIdx:     algIdx,
		kind:       cfg.Kind,
		size:       cfg.Size,
		seed:       cfg.Seed,
		delay:      cfg.Delay,
		pacing:     true,
		limits:     types.DefaultLimits(),
		events:     make(chan tea.Msg, eventBuffer),
		limiter:    newFrameLimiter(cfg.FPS),
		log:        logger.L,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForEvent(m.events),
		func() tea.Msg { return restartMsg{} },
	)
}

// Algorithm returns the selected strategy name.
func (m Model) Algorithm() string {
	return m.algorithms[m.algIdx]
}

// Close stops the current run's pacing and releases its listeners.
func (m Model) Close() error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

// restart abandons the current run and starts a new one on fresh input.
func (m Model) restart() (Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	m.run++
	m.g = nil
	m.finished = false
	m.result = nil
	m.err = nil
	m.log = logger.ForRun(m.run, m.Algorithm(), m.kind, m.size)

	input, err := sortdemo.Generate(sortdemo.GenerateOptions{
		Kind:   m.kind,
		Size:   m.size,
		Low:    1,
		High:   max(m.size, 2),
		Seed:   m.seed,
		Limits: &m.limits,
	})
	if err != nil {
		m.log.Error("generate input", "error", err)
		m.err = err
		m.cancel = nil
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.log.Info("starting run", "delay", m.delay, "pacing", m.pacing)
	return m, runCmd(ctx, m.run, m.Algorithm(), input, m.events, m.limiter, m.runOptions())
}

func (m Model) runOptions() sortdemo.RunOptions {
	return sortdemo.RunOptions{
		Limits:        &m.limits,
		Delay:         m.delay,
		DisablePacing: !m.pacing,
		Logger:        m.log,
	}
}

// runCmd runs algorithm on input until it completes. The group is handed to
// the model through startedMsg before the first access.
func runCmd(ctx context.Context, run int, algorithm string, input []int,
	events chan<- tea.Msg, limiter *catrate.Limiter, opts sortdemo.RunOptions,
) tea.Cmd {
	vis := &runVisualizer{ctx: ctx, run: run, events: events, limiter: limiter}
	opts.Visualizer = vis
	opts.OnStart = func(g *group.Group) {
		vis.deliver(startedMsg{run: run, g: g})
	}
	return func() tea.Msg {
		res, err := sortdemo.Run(ctx, algorithm, input, &opts)
		return runDoneMsg{run: run, result: res, err: err}
	}
}

// graphRows is the number of text rows available for bars.
func (m Model) graphRows() int {
	return max(MinBarRows, m.height-HeaderHeight-FooterHeight-2)
}

// graphCols is the number of columns available for bars.
func (m Model) graphCols() int {
	return max(1, m.width-2)
}
