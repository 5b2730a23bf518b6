package vector

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceAdvance(t *testing.T) {
	v := ints(t, seq(0, 10)...)
	assert.Equal(t, 10, Distance(v.Begin(), v.End()))
	assert.Equal(t, -10, Distance(v.CEnd(), v.CBegin()))

	it := v.Begin()
	Advance(&it, 4)
	assert.Equal(t, 4, it.Get())
	Advance(&it, -2)
	assert.Equal(t, 2, it.Get())

	assert.Equal(t, 3, Next(it).Get())
	assert.Equal(t, 1, Prev(it).Get())
	assert.Equal(t, 9, Prev(v.CEnd()).Get())
}

func TestSortFunc(t *testing.T) {
	v := ints(t, 5, 3, 9, 1, 7, 2, 8)
	SortFunc(v.Begin(), v.End(), cmp.Compare[int])
	assert.Equal(t, []int{1, 2, 3, 5, 7, 8, 9}, contents(v))
	assert.True(t, IsSortedFunc(v.CBegin(), v.CEnd(), cmp.Compare[int]))

	// Sub-range only.
	w := ints(t, 9, 4, 3, 2, 0)
	SortFunc(w.Begin().Add(1), w.End().Sub(1), cmp.Compare[int])
	assert.Equal(t, []int{9, 2, 3, 4, 0}, contents(w))
	assert.False(t, IsSortedFunc(w.CBegin(), w.CEnd(), cmp.Compare[int]))

	desc := func(a, b int) int { return cmp.Compare(b, a) }
	SortFunc(w.Begin(), w.End(), desc)
	assert.Equal(t, []int{9, 4, 3, 2, 0}, contents(w))
}

func TestSortFuncStructs(t *testing.T) {
	log := &lifecycle{}
	v, err := New[tracked]()
	require.NoError(t, err)
	for _, id := range []int{4, 1, 3, 0, 2} {
		require.NoError(t, v.PushBack(newTracked(id, log)))
	}
	SortFunc(v.Begin(), v.End(), func(a, b tracked) int { return cmp.Compare(a.id, b.id) })
	for i, x := range v.All() {
		assert.Equal(t, i, x.id)
		assert.Equal(t, []int{i, i * 10}, x.data)
	}
	assert.Zero(t, log.destroyed)
	assert.Zero(t, log.cloned)
}

func TestIsSortedFuncEdges(t *testing.T) {
	empty := ints(t)
	assert.True(t, IsSortedFunc(empty.CBegin(), empty.CEnd(), cmp.Compare[int]))
	one := ints(t, 1)
	assert.True(t, IsSortedFunc(one.CBegin(), one.CEnd(), cmp.Compare[int]))
}

func TestCompareVectors(t *testing.T) {
	a := ints(t, 1, 2, 3)
	b := ints(t, 1, 2, 3)
	require.NoError(t, b.Reserve(50))
	assert.True(t, Equal(a, b), "capacity does not take part")
	assert.Equal(t, 0, Compare(a, b))

	require.NoError(t, b.PushBack(0))
	assert.False(t, Equal(a, b))
	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(ints(t, 2), a))
	assert.True(t, EqualFunc(a, ints(t, 2, 4, 6), func(x, y int) bool { return x*2 == y }))
}
