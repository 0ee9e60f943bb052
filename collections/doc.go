// Package collections provides a generic, fluent Collection type layered
// over the plain-slice helpers in the seq package.
//
// # Overview
//
// The central type is [Collection][T], a generic wrapper around a slice of T
// that exposes a rich, chainable API:
//
//	result := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    SortByDesc(func(n int) float64 { return float64(n) }).
//	    Take(3).
//	    Implode(", ", strconv.Itoa) // → "10, 8, 6"
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. This makes Collection values safe to pass across goroutines
// without locking and avoids accidental aliasing bugs in pipelines. The seq
// package additionally offers in-place mutators (seq.Sort, seq.Fill, …) for
// callers who own their slices; Collection never uses those.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions:
//
//	// Method-based (returns Collection[any]):
//	c.Map(func(n int, _ int) any { return n * 2 })
//
//	// Package-level (returns Collection[string], fully typed):
//	collections.Map(c, func(n int, _ int) string { return strconv.Itoa(n) })
//
// Package-level functions: [Map], [FlatMap], [Reduce], [Pluck], [GroupBy],
// [KeyBy], [Zip], [Combine], [Collapse], [Flatten], [FlattenDeep].
//
// # Matcher-based search
//
// ContainsMatch and Detect accept a seq.Matcher, unifying search by literal
// value (compared with structural deep equality) and search by predicate:
//
//	users.ContainsMatch(seq.Value(alice))
//	users.Detect(seq.Satisfies(func(u User) bool { return u.Age > 65 }))
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [Collection.Macro]:
//
//	collections.RegisterMacro("evens", func(col any, _ ...any) any {
//	    c := col.(*collections.Collection[int])
//	    return c.Filter(func(n, _ int) bool { return n%2 == 0 })
//	})
//
//	evens, _ := collections.New(1, 2, 3, 4).Macro("evens")
package collections
