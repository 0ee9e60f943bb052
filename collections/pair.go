package collections

import "github.com/hasbyte1/go-underscore-utils/seq"

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip], and an alias for [seq.Pair]
// so values flow between the two packages without conversion.
type Pair[A, B any] = seq.Pair[A, B]
