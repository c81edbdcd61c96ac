package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sortkit/group"
	"github.com/joshuapare/sortkit/pkg/sortdemo"
	"github.com/joshuapare/sortkit/pkg/types"
)

var (
	runValues     []int
	runKind       string
	runSize       int
	runLow        int
	runHigh       int
	runSeed       uint64
	runPace       bool
	runDelay      time.Duration
	runTimeout    time.Duration
	runWatch      time.Duration
	runShowOutput bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().IntSliceVar(&runValues, "values", nil, "Explicit input values (overrides --kind)")
	cmd.Flags().StringVar(&runKind, "kind", "random", "Generated input kind: random, shuffled, ascending, descending")
	cmd.Flags().IntVar(&runSize, "size", 50, "Generated input size")
	cmd.Flags().IntVar(&runLow, "low", 1, "Lowest random value (inclusive)")
	cmd.Flags().IntVar(&runHigh, "high", 100, "Highest random value (inclusive)")
	cmd.Flags().Uint64Var(&runSeed, "seed", 0, "Seed for generated input (0 = random)")
	cmd.Flags().BoolVar(&runPace, "pace", false, "Sleep after every tracked access")
	cmd.Flags().DurationVar(&runDelay, "delay", group.DefaultDelay, "Pacing delay (with --pace)")
	cmd.Flags().DurationVar(&runTimeout, "timeout", 0, "Stop pacing after this long (0 = never)")
	cmd.Flags().DurationVar(&runWatch, "watch", 0, "Print run progress at this interval (0 = off)")
	cmd.Flags().BoolVar(&runShowOutput, "output", false, "Print the sorted values")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <algorithm>",
		Short: "Run one sort strategy",
		Long: `The run command sorts one input with the named strategy and reports
the number of tracked accesses, the elapsed time and whether the result is
sorted. Use 'sortctl list' for the strategy names.

With --pace the run sleeps after every access, as it would under a live
visualizer; --timeout then bounds the paced part of the run, after which
the strategy completes at full speed.

Example:
  sortctl run quick --values 5,3,3,1,4 --output
  sortctl run merge-insertion --kind descending --size 200
  sortctl run heap --pace --delay 2ms --watch 250ms --size 40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd.Context(), args)
		},
	}
	return cmd
}

func runRun(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	algorithm := args[0]

	limits, err := selectedLimits()
	if err != nil {
		return err
	}
	input, err := runInput(limits)
	if err != nil {
		return err
	}
	printVerbose("Input (%d values): %v\n", len(input), input)

	if runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, runTimeout)
		defer cancel()
	}

	var (
		stop = make(chan struct{})
		wg   sync.WaitGroup
	)
	opts := &sortdemo.RunOptions{
		Limits:               &limits,
		Delay:                runDelay,
		DisablePacing:        !runPace,
		DisableNotifications: true,
		KeepOutput:           true,
	}
	if runWatch > 0 {
		opts.OnStart = func(g *group.Group) {
			wg.Add(1)
			go func() {
				defer wg.Done()
				watch(g, runWatch, stop)
			}()
		}
	}

	res, err := sortdemo.Run(ctx, algorithm, input, opts)
	close(stop)
	wg.Wait()
	if err != nil {
		return err
	}

	if jsonOut {
		if !runShowOutput {
			res.Output = nil
		}
		return printJSON(res)
	}

	printInfo("Algorithm:   %s\n", res.Algorithm)
	printInfo("Size:        %s\n", sortdemo.FormatCount(int64(res.Size)))
	printInfo("Accesses:    %s\n", sortdemo.FormatCount(res.Accesses))
	printInfo("Elapsed:     %s\n", res.Elapsed.Round(time.Microsecond))
	printInfo("Sorted:      %t\n", res.Sorted)
	if res.Interrupted {
		printInfo("Interrupted: pacing stopped after %s\n", runTimeout)
	}
	if runShowOutput {
		printInfo("Output:      %v\n", res.Output)
	}
	return nil
}

// runInput builds the input from --values or the generator flags.
func runInput(limits types.Limits) ([]int, error) {
	if len(runValues) > 0 {
		return runValues, nil
	}
	kind, err := types.ParseInputKind(runKind)
	if err != nil {
		return nil, fmt.Errorf("--kind: %w", err)
	}
	return sortdemo.Generate(sortdemo.GenerateOptions{
		Kind:   kind,
		Size:   runSize,
		Low:    runLow,
		High:   runHigh,
		Seed:   runSeed,
		Limits: &limits,
	})
}

// watch polls the group until stop is closed. It reads only the lock-free
// query methods, so it never slows the sort down.
func watch(g *group.Group, every time.Duration, stop <-chan struct{}) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			printInfo("  accesses=%s last-get=%d last-set=%d range=[%d, %d]\n",
				sortdemo.FormatCount(g.AccessCount()), g.IndexLastGet(), g.IndexLastSet(), g.Min(), g.Max())
		}
	}
}
