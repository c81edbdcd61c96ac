// Package sortdemo is the high-level entry point for running sort strategies
// against an observable group.
//
// It validates user input against types.Limits, generates inputs, runs one
// strategy on a worker goroutine while the caller observes the group, and
// benchmarks strategies concurrently by access count.
//
// Example:
//
//	res, err := sortdemo.Run(ctx, "quick-merge", []int{5, 3, 3, 1, 4}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Accesses, res.Sorted)
//
// Observing a run while it is paced:
//
//	opts := &sortdemo.RunOptions{
//	    Visualizer: vis,
//	    OnStart: func(g *group.Group) { go poll(g) },
//	}
//	res, err := sortdemo.Run(ctx, "heap", input, opts)
//
// Cancelling ctx interrupts the run's pacing: the strategy keeps going,
// unpaced, until it completes, and Run still returns its result.
package sortdemo
