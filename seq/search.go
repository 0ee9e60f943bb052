package seq

import "github.com/hasbyte1/go-underscore-utils/deep"

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Matcher describes what [Include] and [Detect] look for: either a literal
// value compared with [deep.Equal], or an arbitrary predicate. Build one
// with [Value] or [Satisfies]; the zero Matcher matches the zero value
// of T.
type Matcher[T any] struct {
	value  T
	pred   func(T) bool
	isPred bool
}

// Value builds a Matcher that matches candidates deeply equal to v.
func Value[T any](v T) Matcher[T] {
	return Matcher[T]{value: v}
}

// Satisfies builds a Matcher that matches candidates for which fn returns
// true.
func Satisfies[T any](fn func(T) bool) Matcher[T] {
	return Matcher[T]{pred: fn, isPred: true}
}

// Matches reports whether candidate satisfies the Matcher.
func (m Matcher[T]) Matches(candidate T) bool {
	if m.isPred {
		return m.pred(candidate)
	}
	return deep.Equal(m.value, candidate)
}

// Include reports whether any element matches m.
//
//	seq.Include(nums, seq.Value(3))
//	seq.Include(nums, seq.Satisfies(func(n int) bool { return n > 10 }))
func Include[T any](items []T, m Matcher[T]) bool {
	for _, item := range items {
		if m.Matches(item) {
			return true
		}
	}
	return false
}

// Detect returns the index of the first element matching m, and false when
// no element matches.
func Detect[T any](items []T, m Matcher[T]) (int, bool) {
	for i, item := range items {
		if m.Matches(item) {
			return i, true
		}
	}
	return -1, false
}

// Find returns the index of the first element deeply equal to value,
// starting the scan at offset from[0] (default 0; negative offsets clamp
// to 0). Unlike [Detect], Find is value-only and takes no predicate.
// Returns -1 and false when value does not occur at or after the offset.
func Find[T any](items []T, value T, from ...int) (int, bool) {
	start := 0
	if len(from) > 0 {
		start = from[0]
	}
	if start < 0 {
		start = 0
	}
	for i := start; i < len(items); i++ {
		if deep.Equal(items[i], value) {
			return i, true
		}
	}
	return -1, false
}

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		var found T
		matched := false
		for _, item := range items {
			if fns[0](item) {
				found = item
				matched = true
			}
		}
		return found, matched
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if fn(item) {
			return true
		}
	}
	return false
}

// ContainsValue reports whether items contains value (requires comparable T).
func ContainsValue[T comparable](items []T, value T) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}
