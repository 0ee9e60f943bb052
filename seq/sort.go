package seq

import (
	"cmp"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
//
// Sort, SortBy, and SortByWith are in-place mutators: they reorder the
// slice they are given and return the same slice for chaining. Use
// [Sorted] for a copying variant.
// ─────────────────────────────────────────────────────────────────────────────

// Sort sorts items in place using less and returns items.
// The sort is stable: equal elements preserve their original order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	return items
}

// Sorted returns a sorted copy of items using less, leaving items untouched.
func Sorted[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	return Sort(out, less)
}

// SortBy sorts items in place in ascending order of the key extracted by
// fn and returns items.
func SortBy[T any, K cmp.Ordered](items []T, fn func(T) K) []T {
	return Sort(items, func(a, b T) bool { return fn(a) < fn(b) })
}

// SortByWith sorts items in place ordering the keys extracted by fn with
// less, and returns items.
func SortByWith[T, K any](items []T, fn func(T) K, less func(a, b K) bool) []T {
	return Sort(items, func(a, b T) bool { return less(fn(a), fn(b)) })
}

// SortedIndex returns the smallest 0-based index at which value could be
// inserted into the sorted slice items while keeping it sorted. Returns
// len(items) when value belongs at the end.
//
//	seq.SortedIndex([]int{1, 2, 3}, 4)     // 3
//	seq.SortedIndex([]int{-5, 0, 4, 4}, 3) // 2
func SortedIndex[T cmp.Ordered](items []T, value T) int {
	return sort.Search(len(items), func(i int) bool { return !(items[i] < value) })
}

// SortedIndexWith is [SortedIndex] with an explicit order relation.
// When shouldSort is true the slice is stably sorted in place with less
// before the search.
func SortedIndexWith[T any](items []T, value T, less func(a, b T) bool, shouldSort bool) int {
	if shouldSort {
		Sort(items, less)
	}
	return sort.Search(len(items), func(i int) bool { return !less(items[i], value) })
}
