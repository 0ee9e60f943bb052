package gen_test

import (
	"fmt"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore-utils/gen"
)

func TestPermutationsExhaustive(t *testing.T) {
	seen := make(map[string]int)
	total := 0
	for p := range gen.Permutations([]int{1, 2, 3}) {
		seen[fmt.Sprint(p)]++
		total++
	}

	require.Equal(t, 6, total, "three elements have 3! orderings")
	assert.Len(t, seen, 6, "every ordering is distinct")
	for key, count := range seen {
		assert.Equal(t, 1, count, "ordering %s yielded more than once", key)
	}
}

func TestPermutationsEmpty(t *testing.T) {
	var got [][]int
	for p := range gen.Permutations([]int{}) {
		got = append(got, p)
	}
	assert.Equal(t, [][]int{{}}, got, "the empty sequence has one permutation")
}

func TestPermutationsSingle(t *testing.T) {
	var got [][]string
	for p := range gen.Permutations([]string{"x"}) {
		got = append(got, p)
	}
	assert.Equal(t, [][]string{{"x"}}, got)
}

func TestPermutationsSnapshots(t *testing.T) {
	var first []int
	for p := range gen.Permutations([]int{1, 2, 3}) {
		if first == nil {
			first = p
			continue
		}
		assert.NotSame(t, &first[0], &p[0], "yielded slices share no storage")
	}
}

func TestPermutationsInputUntouched(t *testing.T) {
	items := []int{1, 2, 3, 4}
	for range gen.Permutations(items) {
	}
	assert.Equal(t, []int{1, 2, 3, 4}, items,
		"generation works on a private buffer")
}

func TestPermutationsPull(t *testing.T) {
	next, stop := iter.Pull(gen.Permutations([]int{1, 2}))
	defer stop()

	first, ok := next()
	require.True(t, ok)
	second, ok := next()
	require.True(t, ok)
	assert.NotEqual(t, first, second)

	_, ok = next()
	assert.False(t, ok)
}

func TestPowersetCount(t *testing.T) {
	items := []int{1, 2, 3, 4}
	seen := make(map[string]int)
	total := 0
	for s := range gen.Powerset(items) {
		seen[fmt.Sprint(s)]++
		total++
	}

	require.Equal(t, 16, total, "n elements have 2^n subsets")
	assert.Len(t, seen, 16, "every subset is distinct")
	assert.Equal(t, 1, seen["[]"], "the empty set appears exactly once")
}

func TestPowersetEmptySetLast(t *testing.T) {
	var last []int
	for s := range gen.Powerset([]int{1, 2, 3}) {
		last = s
	}
	assert.Empty(t, last, "the empty set closes the sequence")
}

func TestPowersetEmptyInput(t *testing.T) {
	var got [][]int
	for s := range gen.Powerset([]int{}) {
		got = append(got, s)
	}
	assert.Equal(t, [][]int{{}}, got,
		"the empty set's only subset is itself")
}

func TestPowersetEarlyBreak(t *testing.T) {
	var seen int
	for range gen.Powerset(make([]int, 20)) {
		seen++
		if seen == 10 {
			break
		}
	}
	assert.Equal(t, 10, seen, "2^20 subsets are never materialised")
}
