package sortdemo

import (
	"io"
	"log/slog"
	"time"

	"github.com/joshuapare/sortkit/group"
	"github.com/joshuapare/sortkit/pkg/types"
)

// Limits bounds accepted inputs (re-exported for convenience).
type Limits = types.Limits

// Result types (re-exported for convenience).
type (
	RunResult = types.RunResult
	BenchRow  = types.BenchRow
)

// RunOptions controls a single run.
type RunOptions struct {
	// Limits validates the input and delay.
	// If nil, DefaultLimits() is used.
	Limits *Limits

	// Delay is the pacing delay after each tracked access.
	// Default: group.DefaultDelay
	Delay time.Duration

	// DisablePacing runs at full speed.
	DisablePacing bool

	// DisableNotifications suppresses per-access OnStateChanged calls.
	DisableNotifications bool

	// Visualizer receives the group's notifications. May be nil.
	Visualizer group.Visualizer

	// OnStart is called with the group once the input is registered and
	// just before the worker goroutine starts. Observers attach here.
	OnStart func(g *group.Group)

	// KeepOutput copies the sorted values into RunResult.Output.
	KeepOutput bool

	// Logger receives run records. If nil, output is discarded.
	Logger *slog.Logger
}

// BenchOptions controls an access-count benchmark.
type BenchOptions struct {
	// Algorithms to measure. Default: every strategy, in canonical order.
	Algorithms []string

	// Sizes to measure. Default: DefaultBenchSizes.
	Sizes []int

	// Kind of input generated for every size. The same input is shared by
	// every algorithm at a given size.
	Kind types.InputKind

	// Low and High bound types.InputRandom values.
	// Default: [1, size] when both are zero.
	Low  int
	High int

	// Seed for reproducible inputs (0 = random).
	Seed uint64

	// Parallel is the number of concurrent runs.
	// Default: Limits.MaxParallel
	Parallel int

	// Limits validates sizes and ranges.
	// If nil, RelaxedLimits() is used.
	Limits *Limits

	// OnProgress is called after each finished cell. It may be called from
	// several goroutines, but never concurrently.
	OnProgress func(done, total int)

	// Logger receives benchmark records. If nil, output is discarded.
	Logger *slog.Logger
}

// GenerateOptions describes an input sequence.
type GenerateOptions struct {
	Kind types.InputKind
	Size int

	// Low and High bound types.InputRandom values, inclusive.
	Low  int
	High int

	// Seed for reproducibility (0 = random).
	Seed uint64

	// Limits validates Size and the random range.
	// If nil, DefaultLimits() is used.
	Limits *Limits
}

// DefaultBenchSizes are the input sizes measured when none are given.
var DefaultBenchSizes = []int{10, 50, 100, 250, 500, 1000}

func limitsOr(l *Limits, def func() Limits) Limits {
	if l == nil {
		return def()
	}
	return *l
}

func loggerOr(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}
