package deep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-underscore-utils/deep"
)

func TestEqualScalars(t *testing.T) {
	assert.True(t, deep.Equal(1, 1))
	assert.True(t, deep.Equal("go", "go"))
	assert.True(t, deep.Equal(2.5, 2.5))
	assert.False(t, deep.Equal(1, 2))
	assert.False(t, deep.Equal(1, int64(1)), "different dynamic types are never equal")
	assert.False(t, deep.Equal("1", 1))
}

func TestEqualNil(t *testing.T) {
	assert.True(t, deep.Equal(nil, nil))
	assert.False(t, deep.Equal(nil, 0))
	assert.False(t, deep.Equal([]int{}, nil))
}

func TestEqualNaN(t *testing.T) {
	assert.False(t, deep.Equal(math.NaN(), math.NaN()), "NaN keeps native float semantics")
}

func TestEqualNestedSlices(t *testing.T) {
	assert.True(t, deep.Equal([]any{1, 2, []any{3}}, []any{1, 2, []any{3}}))
	assert.False(t, deep.Equal([]any{1, 2, []any{3}}, []any{1, 2, 3}))
	assert.False(t, deep.Equal([]int{1, 2}, []int{1, 2, 3}))
}

func TestEqualMaps(t *testing.T) {
	a := map[string]any{"x": 1, "y": map[string]any{"z": []int{1, 2}}}
	b := map[string]any{"x": 1, "y": map[string]any{"z": []int{1, 2}}}
	assert.True(t, deep.Equal(a, b))

	// Size mismatch in either direction fails the symmetric check.
	assert.False(t, deep.Equal(map[string]int{"x": 1}, map[string]int{"x": 1, "y": 2}))
	assert.False(t, deep.Equal(map[string]int{"x": 1, "y": 2}, map[string]int{"x": 1}))
	assert.False(t, deep.Equal(map[string]int{"x": 1}, map[string]int{"y": 1}))
}

func TestEqualStructsAndPointers(t *testing.T) {
	type inner struct{ n int }
	type outer struct {
		Name string
		in   inner
	}
	a := outer{Name: "a", in: inner{n: 1}}
	b := outer{Name: "a", in: inner{n: 1}}
	c := outer{Name: "a", in: inner{n: 2}}
	assert.True(t, deep.Equal(a, b), "unexported fields participate")
	assert.False(t, deep.Equal(a, c))

	assert.True(t, deep.Equal(&a, &b))
	assert.False(t, deep.Equal(&a, &c))
	var p1, p2 *outer
	assert.True(t, deep.Equal(p1, p2))
	assert.False(t, deep.Equal(p1, &a))
}

// caseFold treats strings as equal ignoring a leading marker byte.
type caseFold struct{ s string }

func (c caseFold) EqualTo(other any) bool {
	o, ok := other.(caseFold)
	return ok && len(c.s) > 0 && len(o.s) > 0 && c.s[1:] == o.s[1:]
}

func TestEqualerHook(t *testing.T) {
	assert.True(t, deep.Equal(caseFold{"axy"}, caseFold{"bxy"}),
		"hook replaces structural descent")
	assert.False(t, deep.Equal(caseFold{"axy"}, caseFold{"bzz"}))

	// Hook on either side wins; here only the right operand implements it
	// through the interface value.
	assert.True(t, deep.Equal(any(caseFold{"qab"}), any(caseFold{"rab"})))
}

func TestEqualerHookNested(t *testing.T) {
	a := []caseFold{{"axy"}, {"bzz"}}
	b := []caseFold{{"cxy"}, {"dzz"}}
	assert.True(t, deep.Equal(a, b), "hook applies to nested elements")
}
