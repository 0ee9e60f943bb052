package dict

import (
	"cmp"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key) for every entry. The visit order is
// unspecified; see the package documentation.
func Each[K comparable, V any](m map[K]V, fn func(V, K)) {
	for k, v := range m {
		fn(v, k)
	}
}

// Integer is the constraint satisfied by Go's built-in signed integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// EachOrdered calls fn(value, key) for every entry of an integer-keyed
// map in strictly ascending key order, zero and negative keys included.
// This supports sparse numeric keys: gaps are simply skipped.
func EachOrdered[K Integer, V any](m map[K]V, fn func(V, K)) {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fn(m[k], k)
	}
}

// EachSorted calls fn(value, key) for every entry in ascending key order.
func EachSorted[K cmp.Ordered, V any](m map[K]V, fn func(V, K)) {
	for _, k := range SortedKeys(m) {
		fn(m[k], k)
	}
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Fold reduces the entries of m into a single value of type U. The fold
// order follows map iteration order and is therefore unspecified; fn must
// be order-insensitive for a deterministic result.
func Fold[K comparable, V, U any](m map[K]V, fn func(U, V, K) U, initial U) U {
	result := initial
	for k, v := range m {
		result = fn(result, v, k)
	}
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Keys, values & reshaping
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of m in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Values returns the values of m in unspecified order.
func Values[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// Invert returns a new map from values to keys. When several keys share a
// value, one of them wins (last write in unspecified iteration order);
// Invert(Invert(m)) round-trips only when all values are unique.
func Invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Filter returns a new map with only the entries for which fn(value, key)
// returns true.
func Filter[K comparable, V any](m map[K]V, fn func(V, K) bool) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if fn(v, k) {
			out[k] = v
		}
	}
	return out
}

// Reject returns a new map with the entries for which fn returns true
// removed. It is the complement of [Filter].
func Reject[K comparable, V any](m map[K]V, fn func(V, K) bool) map[K]V {
	return Filter(m, func(v V, k K) bool { return !fn(v, k) })
}

// Pick returns a new map containing only the given keys (missing keys are
// ignored).
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a shallow copy of m without the given keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// Merge copies the entries of each src into dst, in argument order, and
// returns dst. Later sources overwrite earlier ones on key collision.
func Merge[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	for _, src := range srcs {
		for k, v := range src {
			dst[k] = v
		}
	}
	return dst
}

// Has reports whether key exists in m.
func Has[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// CountBy counts values per comparable bucket extracted by fn.
func CountBy[K comparable, V any, B comparable](m map[K]V, fn func(V, K) B) map[B]int {
	counts := make(map[B]int)
	for k, v := range m {
		counts[fn(v, k)]++
	}
	return counts
}

// ─────────────────────────────────────────────────────────────────────────────
// Entries
// ─────────────────────────────────────────────────────────────────────────────

// Entry is one key/value pair of a mapping, produced by [ToEntries].
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// ToEntries returns the entries of m as a slice, in unspecified order.
func ToEntries[K comparable, V any](m map[K]V) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// FromEntries builds a map from entries. Later entries overwrite earlier
// ones on key collision.
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	out := make(map[K]V, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out
}
