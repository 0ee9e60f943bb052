package fn_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-underscore-utils/fn"
)

func TestOnceReplaysFirstArguments(t *testing.T) {
	callCount := 0
	echo := fn.Once(func(s string) string {
		callCount++
		return s
	})

	assert.Equal(t, "first", echo("first"))
	assert.Equal(t, "first", echo("second"), "later arguments are ignored")
	assert.Equal(t, 2, callCount, "the function itself still runs every call")
}

func TestBeforeFreezesNthArguments(t *testing.T) {
	var seen []int
	record := fn.Before(func(n int) int {
		seen = append(seen, n)
		return n
	}, 3)

	record(1)
	record(2)
	record(3)
	assert.Equal(t, 3, record(4), "past the threshold the third call's argument is replayed")
	assert.Equal(t, 3, record(5))
	assert.Equal(t, []int{1, 2, 3, 3, 3}, seen)
}

func TestAfterSkipsEarlyCalls(t *testing.T) {
	shout := fn.After(strings.ToUpper, 3)

	_, ok := shout("a")
	assert.False(t, ok)
	_, ok = shout("b")
	assert.False(t, ok)

	got, ok := shout("ready")
	assert.True(t, ok, "the threshold call runs")
	assert.Equal(t, "READY", got)

	got, ok = shout("still")
	assert.True(t, ok)
	assert.Equal(t, "STILL", got)
}

func TestAfterZeroThresholdAlwaysRuns(t *testing.T) {
	f := fn.After(func(n int) int { return n }, 0)
	got, ok := f(9)
	assert.True(t, ok)
	assert.Equal(t, 9, got)
}

func TestUniqueIDMonotonic(t *testing.T) {
	a := fn.UniqueID()
	b := fn.UniqueID()
	assert.Positive(t, a)
	assert.Greater(t, b, a)
}

func TestTaggedID(t *testing.T) {
	id := fn.TaggedID("contact_")
	assert.True(t, strings.HasPrefix(id, "contact_"))
	assert.NotEqual(t, id, fn.TaggedID("contact_"))
}
