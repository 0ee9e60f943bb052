// Package seq provides standalone generic helper functions for Go slices,
// inspired by Underscore's collection and array operations.
//
// # Callbacks and indices
//
// All helpers are generic (Go 1.18+) and operate on plain []T values — no
// wrapper type required. Predicate and transform callbacks receive
// (item, index) with 0-based indices:
//
//	evens := seq.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	names := seq.Pluck(users, func(u User) string { return u.Name })
//	total := seq.Reduce([]int{1, 2, 3}, func(acc, n, _ int) int { return acc + n }, 0)
//
// # Pure transforms versus mutators
//
// Most functions return a fresh slice and leave their input untouched.
// A small, documented family mutates its argument in place and returns it
// for chaining: [Sort], [SortBy], [Fill], [Pull], [RemoveRange]. Callers
// of those must not assume the input is preserved.
//
// # Deep equality
//
// The set-algebra functions ([Union], [Intersection], [Difference],
// [SymmetricDifference], [UniqueDeep], [Duplicates]) and the value-mode
// search functions ([Find], [Include] with [Value]) compare elements with
// [deep.Equal], so nested slices and maps compare by content. Containment
// checks are linear scans: a set operation over inputs of sizes n and m
// costs O(n·m) comparisons. The comparable-key fast paths ([Unique],
// [UniqueBy], [IndexOf], [ContainsValue]) avoid that cost when T allows.
//
// # No-result versus invalid-argument
//
// Operations that may legitimately produce nothing (empty input for
// [Reduce] without a seed, [Best], [Min], [Max], failed searches) return
// a (value, ok) pair. Operations called with inconsistent arguments
// ([RemoveRange] with start > finish, [Range] with a zero step) return a
// sentinel error from this package instead.
package seq
