package util

import "sort"

type Sorter struct {
	LenFunc  func() int
	LessFunc func(i, j int) bool
	SwapFunc func(i, j int)
}

func (s Sorter) Len() int {
	return s.LenFunc()
}

func (s Sorter) Less(i, j int) bool {
	return s.LessFunc(i, j)
}

func (s Sorter) Swap(i, j int) {
	s.SwapFunc(i, j)
}

// StableSortBy orders ls by less, keeping the original order of equal elements.
func StableSortBy[T any](ls []T, less func(a, b T) bool) {
	sorter := Sorter{
		LenFunc:  func() int { return len(ls) },
		LessFunc: func(i, j int) bool { return less(ls[i], ls[j]) },
		SwapFunc: func(i, j int) {
			o := ls[i]
			ls[i] = ls[j]
			ls[j] = o
		},
	}
	if sort.IsSorted(sorter) {
		return
	}
	sort.Stable(sorter)
}
