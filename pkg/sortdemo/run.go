package sortdemo

import (
	"context"
	"fmt"
	"time"

	"github.com/joshuapare/sortkit/group"
	"github.com/joshuapare/sortkit/pkg/types"
	"github.com/joshuapare/sortkit/sorts"
)

// Algorithms returns the available strategy names in canonical order.
func Algorithms() []string {
	return sorts.Names()
}

// Resolve returns the strategy registered under name.
func Resolve(name string) (sorts.Algorithm, error) {
	sort, ok := sorts.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, types.ErrUnknownAlgorithm)
	}
	return sort, nil
}

// Run sorts a copy of input with the named strategy on a worker goroutine
// and waits for it to finish.
//
// Cancelling ctx interrupts the group's pacing but does not abandon the run:
// the strategy completes unpaced and the result reports Interrupted.
// Run returns types.ErrNotSorted, together with the result, if the output
// is not in order.
func Run(ctx context.Context, algorithm string, input []int, opts *RunOptions) (*RunResult, error) {
	if opts == nil {
		opts = &RunOptions{}
	}
	sort, err := Resolve(algorithm)
	if err != nil {
		return nil, err
	}
	limits := limitsOr(opts.Limits, types.DefaultLimits)
	if err := limits.CheckValues(input); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	if err := limits.CheckDelay(opts.Delay); err != nil {
		return nil, err
	}

	log := loggerOr(opts.Logger)
	g := group.NewWithOptions(opts.Visualizer, group.Options{
		Delay:                opts.Delay,
		DisablePacing:        opts.DisablePacing,
		DisableNotifications: opts.DisableNotifications,
		Logger:               log,
	})
	in := g.AddArrayFrom(input, sorts.InputName, true)
	if opts.OnStart != nil {
		opts.OnStart(g)
	}

	log.Info("run started", "algorithm", algorithm, "size", len(input),
		"pacing", g.Pacing(), "delay", g.Delay())
	start := time.Now()
	done := make(chan struct{})
	go func() {
		defer close(done)
		sort(g)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Info("run interrupted", "algorithm", algorithm, "cause", ctx.Err())
		g.Interrupt()
		<-done
	}

	res := &RunResult{
		Algorithm:   algorithm,
		Size:        in.Size(),
		Accesses:    g.AccessCount(),
		Elapsed:     time.Since(start),
		Sorted:      in.IsSorted(),
		Interrupted: g.Interrupted(),
	}
	if opts.KeepOutput {
		res.Output = in.Snapshot()
	}
	log.Info("run finished", "algorithm", algorithm, "accesses", res.Accesses,
		"elapsed", res.Elapsed, "sorted", res.Sorted)

	if !res.Sorted {
		return res, fmt.Errorf("%s: %w", algorithm, types.ErrNotSorted)
	}
	return res, nil
}
