package seq

import "github.com/hasbyte1/go-underscore-utils/deep"

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
//
// The deep variants compare elements with deep.Equal, so nested slices and
// maps compare by content. Containment is a linear scan; an operation over
// inputs of sizes n and m costs O(n·m) comparisons. Unique and UniqueBy
// are the comparable-key fast paths.
// ─────────────────────────────────────────────────────────────────────────────

func containsDeep[T any](items []T, value T) bool {
	for _, item := range items {
		if deep.Equal(item, value) {
			return true
		}
	}
	return false
}

// Union returns a duplicate-free slice of every element appearing in any
// of the given slices, in first-occurrence order. The variadic inputs are
// flattened at call time. Equality is deep.
func Union[T any](seqs ...[]T) []T {
	out := make([]T, 0)
	for _, s := range seqs {
		for _, item := range s {
			if !containsDeep(out, item) {
				out = append(out, item)
			}
		}
	}
	return out
}

// Intersection returns a duplicate-free slice of the elements of first
// that appear in every one of rest, in first-occurrence order.
// Equality is deep.
func Intersection[T any](first []T, rest ...[]T) []T {
	out := make([]T, 0)
next:
	for _, item := range first {
		if containsDeep(out, item) {
			continue
		}
		for _, other := range rest {
			if !containsDeep(other, item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// Difference returns a duplicate-free slice of the elements of items that
// appear in none of others, in first-occurrence order. Equality is deep.
func Difference[T any](items []T, others ...[]T) []T {
	out := make([]T, 0)
	for _, item := range items {
		if containsDeep(out, item) {
			continue
		}
		excluded := false
		for _, other := range others {
			if containsDeep(other, item) {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, item)
		}
	}
	return out
}

// SymmetricDifference returns the elements present in exactly one of a
// and b, duplicate-free. Equality is deep.
func SymmetricDifference[T any](a, b []T) []T {
	return append(Difference(a, b), Difference(b, a)...)
}

// UniqueDeep returns a new slice with duplicates removed, preserving the
// first occurrence. Equality is deep, so it works for non-comparable
// element types at O(n²) cost; prefer [Unique] for comparable T.
func UniqueDeep[T any](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !containsDeep(out, item) {
			out = append(out, item)
		}
	}
	return out
}

// Duplicates returns the elements that occur more than once, each reported
// once, in order of their second occurrence. Equality is deep.
func Duplicates[T any](items []T) []T {
	out := make([]T, 0)
	seen := make([]T, 0, len(items))
	for _, item := range items {
		if containsDeep(seen, item) {
			if !containsDeep(out, item) {
				out = append(out, item)
			}
			continue
		}
		seen = append(seen, item)
	}
	return out
}

// Unique returns a new slice with duplicates removed, preserving the first
// occurrence (requires comparable T).
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqueBy returns elements with duplicates removed using a key function.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}
