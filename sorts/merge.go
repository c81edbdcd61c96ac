package sorts

import "github.com/joshuapare/sortkit/array"

// mergeSort halves [low, high] until a range is trivially sorted or, when
// base is set, holds at most threshold elements.
func mergeSort(a, temp *array.Array, low, high int, base Range, threshold int) {
	if low >= high {
		return
	}
	if base != nil && high-low+1 <= threshold {
		base(a, low, high)
		return
	}
	mid := low + (high-low)/2
	mergeSort(a, temp, low, mid, base, threshold)
	mergeSort(a, temp, mid+1, high, base, threshold)
	merge(a, temp, low, mid, high)
}

// merge combines the sorted runs a[low..mid] and a[mid+1..high]. The whole
// range is staged in temp first. Each comparison reads both heads from temp
// and the winner is read again when copied back. On equal keys the left run
// drains first.
func merge(a, temp *array.Array, low, mid, high int) {
	for k := low; k <= high; k++ {
		temp.Set(k, a.Get(k))
	}

	i, j := low, mid+1
	for k := low; k <= high; k++ {
		switch {
		case i > mid:
			a.Set(k, temp.Get(j))
			j++
		case j > high:
			a.Set(k, temp.Get(i))
			i++
		case temp.Get(i) <= temp.Get(j):
			a.Set(k, temp.Get(i))
			i++
		default:
			a.Set(k, temp.Get(j))
			j++
		}
	}
}
