package seq

import (
	"fmt"
	"math/rand/v2"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size, materialised eagerly.
// The last group may contain fewer than size elements.
// Returns an empty [][]T if size <= 0 or items is empty.
// For a lazy, padded variant see the gen package's Partition.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Collapse flattens a slice of slices into a single flat slice (one level).
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// FlattenDeep recursively flattens any nested []any structure.
func FlattenDeep(items any) []any {
	out := make([]any, 0)
	var flatten func(v any)
	flatten = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				flatten(elem)
			}
		default:
			out = append(out, val)
		}
	}
	flatten(items)
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Prepend prepends values to the front of items, returning a new slice.
func Prepend[T any](items []T, values ...T) []T {
	out := make([]T, len(values)+len(items))
	copy(out, values)
	copy(out[len(values):], items)
	return out
}

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Zip pairs elements from a and b at the same index.
// Stops at the length of the shorter slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// Combine creates a map from equal-length key and value slices.
// Returns [ErrMismatchedLengths] if lengths differ.
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns n randomly selected items (without replacement).
// If n >= len(items), a shuffled copy of all items is returned.
func Sample[T any](items []T, n int) []T {
	s := Shuffle(items)
	if n >= len(s) {
		return s
	}
	if n < 0 {
		n = 0
	}
	return s[:n]
}
