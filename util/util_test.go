package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	q := NewQueue[int]()
	assert.True(t, q.Empty())
	q.Push(1)
	q.Push(2)
	assert.Equal(t, 2, q.Size())
	assert.True(t, q.Contains(2))
	assert.Equal(t, 1, q.Front())
	assert.Equal(t, 1, q.Pop())
	assert.False(t, q.Contains(1))
	assert.Equal(t, 2, q.Pop())
	assert.True(t, q.Empty())
	assert.Panics(t, func() { q.Pop() })

	var zero Queue[string]
	zero.Push("a")
	assert.Equal(t, "a", zero.Pop())
}

func TestStableSortBy(t *testing.T) {
	type item struct {
		key  int
		name string
	}
	ls := []item{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}}
	StableSortBy(ls, func(a, b item) bool { return a.key < b.key })
	assert.Equal(t, []item{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}, ls)
}

func TestNumericHelpers(t *testing.T) {
	id := func(v float64) float64 { return v }
	assert.Equal(t, 6., SumFloat64(id, 1, 2, 3))
	assert.Equal(t, 2., AvgFloat64(id, 1, 2, 3))
	assert.Equal(t, 0., AvgFloat64(id))
	assert.Equal(t, 3., MaxFloat64(id, 1, 3, 2))
	assert.Equal(t, 1, StringSliceIndexOf([]string{"a", "b"}, "b"))

	v := []int{1, 2}
	c := CopyIntSlice(v)
	c[0] = 9
	assert.Equal(t, 1, v[0])
	assert.Equal(t, "[a_b]", StringSliceJoinWith([]string{"a", "b"}, "_"))

	assert.Equal(t, 2*time.Second, AvgDuration(time.Second, 3*time.Second))
	assert.Equal(t, 3*time.Second, MaxDuration(time.Second, 3*time.Second))
	assert.Equal(t, time.Duration(0), MaxDuration())
}

func TestPretty(t *testing.T) {
	type point struct{ X, Y int }
	assert.Contains(t, Pretty(point{1, 2}), "X:")
}
