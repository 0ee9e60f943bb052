package seq

// ─────────────────────────────────────────────────────────────────────────────
// Traversal & folding
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element in order.
func Each[T any](items []T, fn func(T, int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// FlatMap applies fn to each element (producing a []U) and flattens the results.
func FlatMap[T, U any](items []T, fn func(T, int) []U) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return out
}

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Reduce folds items left-to-right into a single value of type U,
// starting from initial.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// ReduceFirst folds items left-to-right seeding the accumulator from the
// first element. Returns the zero value and false when items is empty.
func ReduceFirst[T any](items []T, fn func(acc, item T, index int) T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	result := items[0]
	for i, item := range items[1:] {
		result = fn(result, item, i+1)
	}
	return result, true
}

// ReduceRight folds items right-to-left into a single value of type U.
// It materialises a reversed copy first, costing O(n) extra space.
func ReduceRight[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	return Reduce(Reverse(items), fn, initial)
}

// Best is a constrained reduce: it returns the element for which no other
// element is better, where isBetter(candidate, current) reports that
// candidate should replace current. The result is always one of the input
// elements, never a derived value. Returns the zero value and false when
// items is empty.
//
//	longest, ok := seq.Best(words, func(a, b string) bool { return len(a) > len(b) })
func Best[T any](items []T, isBetter func(candidate, current T) bool) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best := items[0]
	for _, item := range items[1:] {
		if isBetter(item, best) {
			best = item
		}
	}
	return best, true
}

// All reports whether fn returns true for every element.
// It is vacuously true for an empty slice.
func All[T any](items []T, fn func(T, int) bool) bool {
	for i, item := range items {
		if !fn(item, i) {
			return false
		}
	}
	return true
}

// Any reports whether fn returns true for at least one element.
func Any[T any](items []T, fn func(T, int) bool) bool {
	for i, item := range items {
		if fn(item, i) {
			return true
		}
	}
	return false
}

// None reports whether fn returns false for every element.
func None[T any](items []T, fn func(T, int) bool) bool {
	return !Any(items, fn)
}
