package seq

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
// It is the complement of [Filter]: every element of items lands in
// exactly one of Filter(items, fn) and Reject(items, fn).
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Partition splits items into two slices: those satisfying fn and those
// that do not, both in original order.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// GroupBy groups items by a comparable key K extracted by fn.
// The classifier may return any comparable grouping key, not just a boolean.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// CountBy counts items per comparable key K extracted by fn.
func CountBy[T any, K comparable](items []T, fn func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[fn(item)]++
	}
	return counts
}

// KeyBy creates a map[K]T from items keyed by fn.
// When multiple items share the same key, the last one wins.
func KeyBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}
