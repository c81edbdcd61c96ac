package types

import (
	"fmt"
	"time"
)

// ============================================================================
// Run Limits Constants
// ============================================================================
// Every tracked access of a paced run sleeps, so input size bounds run time
// far more than memory does. The sizes below keep a paced default run in the
// range of minutes.

const (
	// MaxInputSizeDefault is the largest input accepted by default.
	MaxInputSizeDefault = 10_000

	// MaxInputSizeRelaxed allows benchmark-scale inputs (pacing off).
	MaxInputSizeRelaxed = 1 << 20

	// MaxInputSizeStrict suits interactive visualization.
	MaxInputSizeStrict = 500

	// ValueBoundDefault bounds the magnitude of input values by default.
	ValueBoundDefault = 1_000_000

	// ValueBoundRelaxed is the full 32-bit signed range.
	ValueBoundRelaxed = 1<<31 - 1

	// ValueBoundStrict keeps values small enough to label bars.
	ValueBoundStrict = 10_000

	// MaxDelayDefault is the longest pacing delay accepted by default.
	MaxDelayDefault = time.Second

	// MaxDelayRelaxed allows very slow, step-by-step runs.
	MaxDelayRelaxed = time.Minute

	// MaxDelayStrict keeps interactive runs responsive.
	MaxDelayStrict = 100 * time.Millisecond

	// MaxParallelDefault is the default benchmark worker limit.
	MaxParallelDefault = 8
)

// Limits bounds the inputs a run or benchmark accepts.
type Limits struct {
	// MaxInputSize is the maximum number of elements in an input.
	MaxInputSize int

	// MinValue and MaxValue bound every input element, inclusive.
	MinValue int
	MaxValue int

	// MaxDelay is the maximum pacing delay.
	MaxDelay time.Duration

	// MaxParallel is the maximum number of concurrent benchmark runs.
	MaxParallel int
}

// DefaultLimits returns limits suitable for command-line runs.
func DefaultLimits() Limits {
	return Limits{
		MaxInputSize: MaxInputSizeDefault,
		MinValue:     -ValueBoundDefault,
		MaxValue:     ValueBoundDefault,
		MaxDelay:     MaxDelayDefault,
		MaxParallel:  MaxParallelDefault,
	}
}

// RelaxedLimits returns permissive limits for benchmarks.
// Use with caution: a paced run at MaxInputSizeRelaxed never finishes.
func RelaxedLimits() Limits {
	return Limits{
		MaxInputSize: MaxInputSizeRelaxed,
		MinValue:     -ValueBoundRelaxed,
		MaxValue:     ValueBoundRelaxed,
		MaxDelay:     MaxDelayRelaxed,
		MaxParallel:  4 * MaxParallelDefault,
	}
}

// StrictLimits returns conservative limits for interactive visualization.
func StrictLimits() Limits {
	return Limits{
		MaxInputSize: MaxInputSizeStrict,
		MinValue:     -ValueBoundStrict,
		MaxValue:     ValueBoundStrict,
		MaxDelay:     MaxDelayStrict,
		MaxParallel:  1,
	}
}

// CheckSize returns ErrLimitExceeded if n is above MaxInputSize and
// ErrInvalidInput if n is below one.
func (l Limits) CheckSize(n int) error {
	if n < 1 {
		return fmt.Errorf("size %d: %w", n, ErrInvalidInput)
	}
	if n > l.MaxInputSize {
		return fmt.Errorf("size %d above %d: %w", n, l.MaxInputSize, ErrLimitExceeded)
	}
	return nil
}

// CheckValues validates the length and every element of in.
func (l Limits) CheckValues(in []int) error {
	if err := l.CheckSize(len(in)); err != nil {
		return err
	}
	for i, v := range in {
		if v < l.MinValue || v > l.MaxValue {
			return fmt.Errorf("value %d at %d outside [%d, %d]: %w",
				v, i, l.MinValue, l.MaxValue, ErrLimitExceeded)
		}
	}
	return nil
}

// CheckRange validates a [low, high] range for random inputs.
func (l Limits) CheckRange(low, high int) error {
	if low >= high {
		return fmt.Errorf("range [%d, %d]: low must be below high: %w", low, high, ErrInvalidInput)
	}
	if low < l.MinValue || high > l.MaxValue {
		return fmt.Errorf("range [%d, %d] outside [%d, %d]: %w",
			low, high, l.MinValue, l.MaxValue, ErrLimitExceeded)
	}
	return nil
}

// CheckDelay validates a pacing delay. Zero selects the default delay.
func (l Limits) CheckDelay(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("delay %s: %w", d, ErrInvalidInput)
	}
	if d > l.MaxDelay {
		return fmt.Errorf("delay %s above %s: %w", d, l.MaxDelay, ErrLimitExceeded)
	}
	return nil
}
