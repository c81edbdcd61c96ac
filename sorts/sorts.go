package sorts

import (
	"slices"

	"github.com/joshuapare/sortkit/array"
	"github.com/joshuapare/sortkit/group"
)

const (
	// InputName is the array every strategy sorts.
	InputName = "input"
	// TempName is the hidden auxiliary array used by merge-based strategies.
	TempName = "temp"
	// Threshold is the range size at or below which the hybrids switch to
	// their baseline strategy.
	Threshold = 10
)

// Algorithm runs one sort to completion against a group.
type Algorithm func(g *group.Group)

// Range sorts a[low..high], inclusive, in place.
type Range func(a *array.Array, low, high int)

type entry struct {
	name string
	run  Algorithm
}

var table = []entry{
	{"insertion", Insertion},
	{"merge", Merge},
	{"heap", Heap},
	{"quick", Quick},
	{"bubble", Bubble},
	{"selection", Selection},
	{"merge-selection", MergeSelection},
	{"heap-merge", HeapMerge},
	{"quick-merge", QuickMerge},
	{"merge-insertion", MergeInsertion},
	{"bubble-merge", BubbleMerge},
}

// Names returns the strategy names in their canonical order.
func Names() []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.name
	}
	return out
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (Algorithm, bool) {
	i := slices.IndexFunc(table, func(e entry) bool { return e.name == name })
	if i < 0 {
		return nil, false
	}
	return table[i].run, true
}

// Insertion sorts the input by insertion.
func Insertion(g *group.Group) { run(g, InsertionRange) }

// Selection sorts the input by selection.
func Selection(g *group.Group) { run(g, SelectionRange) }

// Bubble sorts the input by bubble sort.
func Bubble(g *group.Group) { run(g, BubbleRange) }

// Heap sorts the input by heap sort.
func Heap(g *group.Group) { run(g, HeapRange) }

// Quick sorts the input by quick sort.
func Quick(g *group.Group) { run(g, QuickRange) }

// Merge sorts the input by top-down merge sort.
func Merge(g *group.Group) {
	runWithTemp(g, func(in, temp *array.Array) {
		mergeSort(in, temp, 0, in.Size()-1, nil, 0)
	})
}

// MergeInsertion is merge sort with insertion sort below Threshold.
func MergeInsertion(g *group.Group) { Hybrid(InsertionRange, Threshold)(g) }

// MergeSelection is merge sort with selection sort below Threshold.
func MergeSelection(g *group.Group) { Hybrid(SelectionRange, Threshold)(g) }

// BubbleMerge is merge sort with bubble sort below Threshold.
func BubbleMerge(g *group.Group) { Hybrid(BubbleRange, Threshold)(g) }

// HeapMerge is merge sort with heap sort below Threshold.
func HeapMerge(g *group.Group) { Hybrid(HeapRange, Threshold)(g) }

// QuickMerge is merge sort with quick sort below Threshold.
func QuickMerge(g *group.Group) { Hybrid(QuickRange, Threshold)(g) }

// Hybrid returns a merge sort that hands ranges of at most threshold
// elements to base.
func Hybrid(base Range, threshold int) Algorithm {
	return func(g *group.Group) {
		runWithTemp(g, func(in, temp *array.Array) {
			mergeSort(in, temp, 0, in.Size()-1, base, threshold)
		})
	}
}

func run(g *group.Group, sort Range) {
	if in := g.Array(InputName); in != nil {
		sort(in, 0, in.Size()-1)
	}
	g.AlgorithmFinished()
}

func runWithTemp(g *group.Group, sort func(in, temp *array.Array)) {
	if in := g.Array(InputName); in != nil {
		temp := g.AddArray(in.Size(), TempName, false)
		sort(in, temp)
	}
	g.AlgorithmFinished()
}

func swap(a *array.Array, i, j int) {
	t := a.Get(i)
	a.Set(i, a.Get(j))
	a.Set(j, t)
}
