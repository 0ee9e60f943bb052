package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-underscore-utils/seq"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 15, seq.Sum([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 0, seq.Sum([]int{}))
}

func TestSumBy(t *testing.T) {
	type order struct{ total int }
	got := seq.SumBy([]order{{10}, {25}}, func(o order) int { return o.total })
	assert.Equal(t, 35, got)
}

func TestProduct(t *testing.T) {
	assert.Equal(t, 24, seq.Product([]int{2, 3, 4}))
	assert.Equal(t, 1, seq.Product([]int{}))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 3.0, seq.Mean([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 0.0, seq.Mean([]int{}))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.5, seq.Median([]int{1, 2, 3, 4}))
	assert.Equal(t, 3.0, seq.Median([]int{3, 1, 5}))

	items := []int{4, 1, 3}
	seq.Median(items)
	assert.Equal(t, []int{4, 1, 3}, items, "Median does not reorder its input")
}

func TestMinMax(t *testing.T) {
	v, ok := seq.Min([]int{3, 1, 4})
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = seq.Max([]int{3, 1, 4})
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = seq.Min([]int{})
	assert.False(t, ok)
}

func TestMinByMaxBy(t *testing.T) {
	words := []string{"bb", "a", "ccc"}
	v, ok := seq.MinBy(words, func(s string) int { return len(s) })
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = seq.MaxBy(words, func(s string) int { return len(s) })
	assert.True(t, ok)
	assert.Equal(t, "ccc", v)
}
