// Package fn provides function combinators: composition, currying,
// partial application, memoization and call-count guards.
//
// Everything here is typed through generics; a combinator's result is an
// ordinary Go function value that can be stored, passed around and
// applied like any other. Each partial application produces an
// independent closure, so two chains built from the same curried
// function never share state:
//
//	add := func(a, b, c int) int { return a + b + c }
//	g := fn.Curry3(add)
//	g(1)(2)(3)   // 6
//	g(10)(20)(30) // 60
//
// The stateful combinators — [Memoize], [Once], [Before], [After] and
// [UniqueID] — are safe for concurrent use; the rest are pure.
package fn
