package sortdemo

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/sortkit/pkg/types"
)

// Bench measures the access count of every (algorithm, size) cell with
// pacing and notifications off. Cells run concurrently, each on its own
// group. Rows are ordered by algorithm, then size, as given in opts.
//
// The first failing cell cancels the remaining ones and its error is
// returned.
func Bench(ctx context.Context, opts *BenchOptions) ([]BenchRow, error) {
	if opts == nil {
		opts = &BenchOptions{}
	}
	limits := limitsOr(opts.Limits, types.RelaxedLimits)
	log := loggerOr(opts.Logger)

	algorithms := opts.Algorithms
	if len(algorithms) == 0 {
		algorithms = Algorithms()
	}
	for _, name := range algorithms {
		if _, err := Resolve(name); err != nil {
			return nil, err
		}
	}
	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = DefaultBenchSizes
	}
	parallel := opts.Parallel
	if parallel < 1 {
		parallel = max(limits.MaxParallel, 1)
	}

	inputs := make([][]int, len(sizes))
	for i, size := range sizes {
		low, high := opts.Low, opts.High
		if low == 0 && high == 0 {
			low, high = 1, max(size, 2)
		}
		in, err := Generate(GenerateOptions{
			Kind: opts.Kind, Size: size, Low: low, High: high,
			Seed: opts.Seed, Limits: &limits,
		})
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", size, err)
		}
		inputs[i] = in
	}

	total := len(algorithms) * len(sizes)
	rows := make([]BenchRow, total)
	log.Info("bench started", "algorithms", len(algorithms), "sizes", len(sizes), "parallel", parallel)

	var (
		mu       sync.Mutex
		finished int
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallel)
	for ai, name := range algorithms {
		for si, in := range inputs {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := Run(ctx, name, in, &RunOptions{
					Limits:               &limits,
					DisablePacing:        true,
					DisableNotifications: true,
				})
				if err != nil {
					return fmt.Errorf("%s/%d: %w", name, len(in), err)
				}
				rows[ai*len(inputs)+si] = BenchRow{
					Algorithm: name,
					Kind:      opts.Kind,
					KindName:  opts.Kind.String(),
					Size:      len(in),
					Accesses:  res.Accesses,
					Elapsed:   res.Elapsed,
				}

				mu.Lock()
				defer mu.Unlock()
				finished++
				log.Debug("bench cell", "algorithm", name, "size", len(in), "accesses", res.Accesses)
				if opts.OnProgress != nil {
					opts.OnProgress(finished, total)
				}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	log.Info("bench finished", "cells", total)
	return rows, nil
}
