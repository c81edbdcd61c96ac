package sorts

import "github.com/joshuapare/sortkit/array"

// InsertionRange shifts each element left past every larger one.
func InsertionRange(a *array.Array, low, high int) {
	if low >= high {
		return
	}
	for i := low + 1; i <= high; i++ {
		key := a.Get(i)
		j := i - 1
		prev := a.Get(j)
		for j >= low && key < prev {
			a.Set(j+1, prev)
			j--
			if j >= low {
				prev = a.Get(j)
			}
		}
		a.Set(j+1, key)
	}
}

// SelectionRange swaps the minimum of the unsorted suffix into place, one
// swap per pass. The current minimum is read back from the array for every
// comparison.
func SelectionRange(a *array.Array, low, high int) {
	for i := low; i < high; i++ {
		minIdx := i
		for j := i + 1; j <= high; j++ {
			if a.Get(j) < a.Get(minIdx) {
				minIdx = j
			}
		}
		swap(a, i, minIdx)
	}
}

// BubbleRange repeats adjacent-swap passes until a pass swaps nothing.
func BubbleRange(a *array.Array, low, high int) {
	for swapped := true; swapped; {
		swapped = false
		for j := low; j < high; j++ {
			x, y := a.Get(j), a.Get(j+1)
			if x > y {
				a.Set(j+1, x)
				a.Set(j, y)
				swapped = true
			}
		}
	}
}

// HeapRange builds a max-heap over the range, then repeatedly moves the root
// behind the shrinking heap.
func HeapRange(a *array.Array, low, high int) {
	n := high - low + 1
	for root := n/2 - 1; root >= 0; root-- {
		siftDown(a, low, root, n)
	}
	for end := n - 1; end > 0; end-- {
		swap(a, low, low+end)
		siftDown(a, low, 0, end)
	}
}

// siftDown restores the heap property below root for the n-element heap
// stored at a[low:]. Each child is compared against the largest element
// read back from the array.
func siftDown(a *array.Array, low, root, n int) {
	for {
		largest := root
		if left := 2*root + 1; left < n && a.Get(low+left) > a.Get(low+largest) {
			largest = left
		}
		if right := 2*root + 2; right < n && a.Get(low+right) > a.Get(low+largest) {
			largest = right
		}
		if largest == root {
			return
		}
		swap(a, low+root, low+largest)
		root = largest
	}
}

// QuickRange partitions around the value at the midpoint index and recurses
// on both sides. Pointers advance past every swap, so runs of equal keys
// terminate.
func QuickRange(a *array.Array, low, high int) {
	if low >= high {
		return
	}
	pivot := a.Get(low + (high-low)/2)
	i, j := low, high
	for i <= j {
		for a.Get(i) < pivot {
			i++
		}
		for a.Get(j) > pivot {
			j--
		}
		if i <= j {
			swap(a, i, j)
			i++
			j--
		}
	}
	if low < j {
		QuickRange(a, low, j)
	}
	if i < high {
		QuickRange(a, i, high)
	}
}
