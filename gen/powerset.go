package gen

import "iter"

// Powerset yields every subset of items — 2^n in total, the empty set
// included exactly once, as the final element. Subsets are built
// incrementally: each input element extends every previously generated
// subset and adds its own singleton, doubling the explored count.
// Each yielded subset is an independent copy.
func Powerset[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		generated := make([][]T, 0)
		for _, elem := range items {
			grown := make([][]T, 0, len(generated)+1)
			for _, subset := range generated {
				withElem := make([]T, len(subset), len(subset)+1)
				copy(withElem, subset)
				withElem = append(withElem, elem)
				if !yield(withElem) {
					return
				}
				grown = append(grown, withElem)
			}
			singleton := []T{elem}
			if !yield(singleton) {
				return
			}
			grown = append(grown, singleton)
			generated = append(generated, grown...)
		}
		yield([]T{})
	}
}
