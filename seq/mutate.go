package seq

// ─────────────────────────────────────────────────────────────────────────────
// Constructors & in-place mutators
//
// The mutators in this file reuse the backing array of their input.
// Callers must use the returned slice and must not assume the input is
// preserved.
// ─────────────────────────────────────────────────────────────────────────────

// Range returns the integers from start towards stop (exclusive) in
// increments of step. A positive step counts up, a negative step counts
// down; a step moving away from stop yields an empty slice.
// Returns [ErrZeroStep] when step is zero.
//
//	seq.Range(0, 5, 1)   // [0 1 2 3 4]
//	seq.Range(5, 0, -2)  // [5 3 1]
func Range(start, stop, step int) ([]int, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	out := make([]int, 0)
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	return out, nil
}

// Repeat returns a slice containing value n times.
// A non-positive n yields an empty slice.
func Repeat[T any](value T, n int) []T {
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Fill overwrites items[start:finish] with value, in place, and returns
// items. Indices outside the slice are clamped. Returns [ErrInvalidRange]
// when start > finish.
func Fill[T any](items []T, value T, start, finish int) ([]T, error) {
	if start > finish {
		return items, ErrInvalidRange
	}
	if start < 0 {
		start = 0
	}
	if finish > len(items) {
		finish = len(items)
	}
	for i := start; i < finish; i++ {
		items[i] = value
	}
	return items, nil
}

// RemoveRange deletes items[start:finish] in place and returns the
// shortened slice. Indices outside the slice are clamped. Returns
// [ErrInvalidRange] when start > finish.
func RemoveRange[T any](items []T, start, finish int) ([]T, error) {
	if start > finish {
		return items, ErrInvalidRange
	}
	if start < 0 {
		start = 0
	}
	if finish > len(items) {
		finish = len(items)
	}
	if start >= len(items) {
		return items, nil
	}
	out := append(items[:start], items[finish:]...)
	var zero T
	for i := len(out); i < len(items); i++ {
		items[i] = zero // release references in the trimmed tail
	}
	return out, nil
}

// Pull removes every element deeply equal to one of values, compacting
// items in place, and returns the shortened slice.
func Pull[T any](items []T, values ...T) []T {
	out := items[:0]
	for _, item := range items {
		if !containsDeep(values, item) {
			out = append(out, item)
		}
	}
	var zero T
	for i := len(out); i < len(items); i++ {
		items[i] = zero
	}
	return out
}

// Interpose returns a new slice with sep inserted between each pair of
// consecutive elements.
//
//	seq.Interpose([]int{1, 2, 3}, 0) // [1 0 2 0 3]
func Interpose[T any](items []T, sep T) []T {
	if len(items) < 2 {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, 2*len(items)-1)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}
