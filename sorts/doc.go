// Package sorts implements the sort strategies run against a group.
//
// Every strategy is an Algorithm: it looks up the array registered as
// InputName, sorts it in place using only tracked Get and Set calls, and
// finishes with group.AlgorithmFinished. Merge-based strategies register one
// hidden auxiliary array, TempName, of the same size and reuse it for every
// merge of the run.
//
// Strategies are addressed by name through Lookup:
//
//	sort, ok := sorts.Lookup("quick-merge")
//	if ok {
//		sort(g)
//	}
//
// The hybrids (merge-insertion, merge-selection, bubble-merge, heap-merge,
// quick-merge) halve like merge sort until a range holds at most Threshold
// elements, then hand the range to the baseline strategy. Hybrid builds a
// variant with any baseline and threshold.
package sorts
