// Package gen provides lazy, finite sequence producers — chunking,
// sliding windows, permutations and power sets — built on Go's iter.Seq.
//
// Each factory call returns a fresh iter.Seq[[]T]. Ranging over it pulls
// one produced slice per iteration step; generation state lives in the
// loop, so nothing is materialised up front. Every produced slice is a
// snapshot copy the caller may keep or mutate freely.
//
//	for chunk := range gen.Partition([]int{1, 2, 3, 4, 5}, 2) {
//	    fmt.Println(chunk) // [1 2] [3 4] [5]
//	}
//
// For explicit single-pass, pull-style consumption use iter.Pull:
//
//	next, stop := iter.Pull(gen.Permutations(items))
//	defer stop()
//	p, ok := next() // one permutation per resume; never restarts
//
// A pull iterator obtained this way is single-pass and non-restartable:
// once partially consumed it cannot be rewound, only abandoned (calling
// stop releases it; there is nothing else to clean up). Call the factory
// again for a fresh sequence.
package gen
