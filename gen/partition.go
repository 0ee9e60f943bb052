package gen

import "iter"

// Partition yields consecutive non-overlapping chunks of size n,
// advancing by n each step. The final chunk may be short; when pad is
// given, the short chunk is extended to size n with pad[0].
// A non-positive n yields an empty sequence.
//
//	gen.Partition([]int{1, 2, 3, 4, 5}, 2)    // [1 2] [3 4] [5]
//	gen.Partition([]int{1, 2, 3, 4, 5}, 2, 0) // [1 2] [3 4] [5 0]
func Partition[T any](items []T, n int, pad ...T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if n <= 0 {
			return
		}
		for start := 0; start < len(items); start += n {
			end := start + n
			if end > len(items) {
				end = len(items)
			}
			chunk := make([]T, end-start, n)
			copy(chunk, items[start:end])
			if len(chunk) < n && len(pad) > 0 {
				for len(chunk) < n {
					chunk = append(chunk, pad[0])
				}
			}
			if !yield(chunk) {
				return
			}
		}
	}
}

// Overlapping yields chunks of size n advancing by n-1, so consecutive
// chunks share one element. Only full chunks are yielded unless pad is
// given, in which case the trailing partial chunk is extended to size n
// with pad[0] and yielded as well. n must be at least 2 for an overlap
// to exist; smaller n yields an empty sequence.
//
//	gen.Overlapping([]int{1, 2, 3, 4, 5}, 3)    // [1 2 3] [3 4 5]
//	gen.Overlapping([]int{1, 2, 3, 4, 5, 6}, 3, 0) // [1 2 3] [3 4 5] [5 6 0]
func Overlapping[T any](items []T, n int, pad ...T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if n < 2 {
			return
		}
		for start := 0; start < len(items); start += n - 1 {
			end := start + n
			if end <= len(items) {
				chunk := make([]T, n)
				copy(chunk, items[start:end])
				if !yield(chunk) {
					return
				}
				continue
			}
			// Trailing partial chunk. A chunk holding only the element
			// shared with its predecessor carries no new data and is
			// always suppressed; anything longer is yielded when a pad
			// is available to bring it up to size.
			size := len(items) - start
			if len(pad) == 0 || (start > 0 && size < 2) {
				return
			}
			chunk := make([]T, size, n)
			copy(chunk, items[start:])
			for len(chunk) < n {
				chunk = append(chunk, pad[0])
			}
			yield(chunk)
			return
		}
	}
}

// Aperture yields every contiguous window of size n, advancing by one
// element per step. Windows that would run past the end are not yielded,
// so a sequence shorter than n produces nothing.
//
//	gen.Aperture([]int{1, 2, 3, 4}, 2) // [1 2] [2 3] [3 4]
func Aperture[T any](items []T, n int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if n <= 0 {
			return
		}
		for start := 0; start+n <= len(items); start++ {
			window := make([]T, n)
			copy(window, items[start:start+n])
			if !yield(window) {
				return
			}
		}
	}
}
