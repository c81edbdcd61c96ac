package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sortkit/pkg/sortdemo"
	"github.com/joshuapare/sortkit/pkg/types"
)

var (
	benchAlgorithms []string
	benchSizes      []int
	benchKind       string
	benchSeed       uint64
	benchParallel   int
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().StringSliceVar(&benchAlgorithms, "algorithms", nil, "Strategies to measure (default: all)")
	cmd.Flags().IntSliceVar(&benchSizes, "sizes", nil, "Input sizes (default: 10,50,100,250,500,1000)")
	cmd.Flags().StringVar(&benchKind, "kind", "random", "Input kind: random, shuffled, ascending, descending")
	cmd.Flags().Uint64Var(&benchSeed, "seed", 0, "Seed for generated inputs (0 = random)")
	cmd.Flags().IntVar(&benchParallel, "parallel", 0, "Concurrent runs (default: limits preset)")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare access counts across strategies and sizes",
		Long: `The bench command runs every selected strategy on every input size,
unpaced, and prints the number of tracked accesses per run. All strategies
see the same input at a given size.

Example:
  sortctl bench
  sortctl bench --algorithms insertion,merge,quick-merge --sizes 100,1000
  sortctl bench --kind descending --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context())
		},
	}
	return cmd
}

func runBench(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	limits, err := selectedLimits()
	if err != nil {
		return err
	}
	kind, err := types.ParseInputKind(benchKind)
	if err != nil {
		return fmt.Errorf("--kind: %w", err)
	}

	rows, err := sortdemo.Bench(ctx, &sortdemo.BenchOptions{
		Algorithms: benchAlgorithms,
		Sizes:      benchSizes,
		Kind:       kind,
		Seed:       benchSeed,
		Parallel:   benchParallel,
		Limits:     &limits,
		OnProgress: func(done, total int) {
			printVerbose("  %d/%d\n", done, total)
		},
	})
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(rows)
	}

	printInfo("%-18s %8s %14s %12s\n", "ALGORITHM", "SIZE", "ACCESSES", "ELAPSED")
	printInfo("%s\n", strings.Repeat("-", 55))
	for _, r := range rows {
		printInfo("%-18s %8s %14s %12s\n",
			r.Algorithm,
			sortdemo.FormatCount(int64(r.Size)),
			sortdemo.FormatCount(r.Accesses),
			r.Elapsed.Round(time.Microsecond))
	}
	return nil
}
