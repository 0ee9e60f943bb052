// Package deep implements structural (deep) equality for arbitrary Go
// values, inspired by Underscore's isEqual.
//
// Two values are deeply equal when they have the same dynamic type and
// their contents match recursively: slices and arrays element-by-element,
// maps key-by-key in both directions, structs field-by-field, pointers by
// the values they point to. Scalars compare with native equality, so
// NaN is never equal to itself.
//
//	deep.Equal([]any{1, 2, []any{3}}, []any{1, 2, []any{3}}) // true
//	deep.Equal([]any{1, 2, []any{3}}, []any{1, 2, 3})        // false
//
// # Custom equality
//
// A type may opt out of structural descent by implementing [Equaler].
// When either operand implements it, that operand's EqualTo method decides
// the comparison (the left operand is consulted first) and no structural
// descent happens.
//
// # Cycles
//
// Equal performs no cycle detection. Comparing self-referential structures
// does not terminate; callers must only pass finite, acyclic values.
package deep
