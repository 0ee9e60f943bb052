package seq

import (
	"cmp"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Number is the constraint satisfied by Go's built-in numeric types
// (integers and floats).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum returns the sum of all elements. An empty slice sums to zero.
func Sum[T Number](items []T) T {
	var total T
	for _, item := range items {
		total += item
	}
	return total
}

// SumBy returns the sum of the values extracted by fn.
func SumBy[T any, N Number](items []T, fn func(T) N) N {
	var total N
	for _, item := range items {
		total += fn(item)
	}
	return total
}

// Product returns the product of all elements. An empty slice multiplies
// to one.
func Product[T Number](items []T) T {
	total := T(1)
	for _, item := range items {
		total *= item
	}
	return total
}

// Mean returns the arithmetic mean of items, or 0 for an empty slice.
func Mean[T Number](items []T) float64 {
	if len(items) == 0 {
		return 0
	}
	var total float64
	for _, item := range items {
		total += float64(item)
	}
	return total / float64(len(items))
}

// Median returns the middle value of items when sorted, or the mean of the
// two middle values for an even count. Returns 0 for an empty slice.
// The input is not modified.
func Median[T Number](items []T) float64 {
	if len(items) == 0 {
		return 0
	}
	vals := make([]float64, len(items))
	for i, item := range items {
		vals[i] = float64(item)
	}
	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[mid]
	}
	return (vals[mid-1] + vals[mid]) / 2
}

// Min returns the smallest element.
// Returns the zero value and false if items is empty.
func Min[T cmp.Ordered](items []T) (T, bool) {
	return Best(items, func(a, b T) bool { return a < b })
}

// Max returns the largest element.
// Returns the zero value and false if items is empty.
func Max[T cmp.Ordered](items []T) (T, bool) {
	return Best(items, func(a, b T) bool { return a > b })
}

// MinBy returns the element with the smallest key extracted by fn.
// Returns the zero value and false if items is empty.
func MinBy[T any, K cmp.Ordered](items []T, fn func(T) K) (T, bool) {
	return Best(items, func(a, b T) bool { return fn(a) < fn(b) })
}

// MaxBy returns the element with the largest key extracted by fn.
// Returns the zero value and false if items is empty.
func MaxBy[T any, K cmp.Ordered](items []T, fn func(T) K) (T, bool) {
	return Best(items, func(a, b T) bool { return fn(a) > fn(b) })
}
