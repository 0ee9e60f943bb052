// Package dict provides standalone generic helper functions for Go maps,
// inspired by Underscore's object operations.
//
// # Iteration order
//
// Go map iteration order is unspecified, and [Each] inherits that: two
// traversals of the same map may visit entries in different orders, and
// callers must not rely on any order. When a deterministic order is
// needed, use [EachSorted] (ascending key order for cmp.Ordered keys) or
// [EachOrdered] (ascending integer keys, including zero and negatives).
//
// # Named map variants
//
// Transforms come as explicitly named variants with fixed signatures
// instead of one overloaded map: [MapValues] rewrites values and keeps
// keys, [MapKeys] rewrites keys and keeps values, and [MapEntries]
// rewrites both — its callback returns (key, value, ok) and entries with
// ok == false are skipped, so a transform can also thin the mapping out.
//
// # Nested path access
//
// The Path* functions read, write, and delete values in nested
// map[string]any structures using dot-separated key paths:
//
//	m := map[string]any{"user": map[string]any{"name": "Alice"}}
//	dict.PathGet(m, "user.name") // "Alice"
//	dict.PathSet(m, "user.age", 30)
//	dict.Flatten(m)              // {"user.name": "Alice", "user.age": 30}
package dict
