package gen

import "iter"

// Permutations yields every permutation of items, n! in total, each a
// snapshot copy. Generation works in place on a private buffer: the last
// position is fixed to each candidate element in turn by a swap, the
// prefix is permuted recursively, and the swap is undone on the way back.
// The order of permutations is unspecified but exhaustive, and
// duplicate-free when the elements are distinct. An empty input yields
// the single empty permutation.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		buf := make([]T, len(items))
		copy(buf, items)

		var permute func(k int) bool
		permute = func(k int) bool {
			if k <= 1 {
				snapshot := make([]T, len(buf))
				copy(snapshot, buf)
				return yield(snapshot)
			}
			for i := 0; i < k; i++ {
				buf[i], buf[k-1] = buf[k-1], buf[i]
				if !permute(k - 1) {
					return false
				}
				buf[i], buf[k-1] = buf[k-1], buf[i]
			}
			return true
		}

		permute(len(buf))
	}
}
