package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hundred(t *testing.T) *Vector[int] {
	t.Helper()
	v, err := New[int]()
	require.NoError(t, err)
	for i := range 100 {
		require.NoError(t, v.PushBack(i))
	}
	return v
}

func TestIteratorDereference(t *testing.T) {
	v := hundred(t)
	it := v.Begin()
	it.PostInc()
	assert.Equal(t, 1, it.Get())
	it.Inc()
	assert.Equal(t, 2, it.Get())
	assert.Equal(t, 2, *it.Ptr())

	it.Set(-2)
	assert.Equal(t, -2, v.Index(2))
	*it.Ptr() = 2
	assert.Equal(t, 2, v.Index(2))
}

func TestIteratorIncrement(t *testing.T) {
	v := hundred(t)
	it := v.Begin()
	for range 10 {
		it.PostInc()
	}

	assert.Equal(t, 10, it.Get())
	old := it.PostInc()
	assert.Equal(t, 10, old.Get())
	assert.Equal(t, 11, it.Get())
	assert.Equal(t, 12, it.Inc().Get())
}

func TestIteratorDecrement(t *testing.T) {
	v := hundred(t)
	it := v.Begin().Add(10)

	assert.Equal(t, 10, it.PostDec().Get())
	assert.Equal(t, 8, it.Dec().Get())

	c := v.CBegin().Add(5)
	assert.Equal(t, 5, c.PostDec().Get())
	assert.Equal(t, 3, c.Dec().Get())
}

func TestIteratorComparison(t *testing.T) {
	v := hundred(t)
	a, b := v.Begin(), v.Begin()
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(*b.Inc()))
	assert.True(t, a.NotEqual(b))
	assert.True(t, a.Inc().Equal(b))

	lo, hi := v.Begin().Add(3), v.Begin().Add(7)
	assert.True(t, lo.Less(hi))
	assert.True(t, hi.Greater(lo))
	assert.True(t, lo.LessEqual(lo))
	assert.True(t, hi.GreaterEqual(lo))
	assert.False(t, hi.LessEqual(lo))
	assert.False(t, lo.GreaterEqual(hi))
}

func TestIteratorCrossFlavour(t *testing.T) {
	v := hundred(t)
	it := v.Begin().Add(4)
	c := v.CBegin().Add(4)

	assert.True(t, it.Equal(c))
	assert.True(t, c.Equal(it))
	assert.True(t, c.Less(it.Add(1)))
	assert.True(t, it.Add(1).Greater(c))
	assert.Equal(t, 0, c.Distance(it))

	conv := it.Const()
	assert.True(t, conv.Equal(c))
	assert.Equal(t, 4, conv.Get())
}

func TestIteratorEqualityNeedsSameBuffer(t *testing.T) {
	a := ints(t, 1, 2, 3)
	b := ints(t, 1, 2, 3)
	assert.False(t, a.Begin().Equal(b.Begin()))
	// Ordering only looks at positions.
	assert.True(t, a.Begin().Less(b.End()))
}

func TestIteratorArithmetic(t *testing.T) {
	v := hundred(t)
	it := v.Begin()

	itA := it.Add(10)
	assert.Equal(t, 0, it.Get())
	assert.Equal(t, 10, itA.Get())

	itB := AddN(15, it)
	assert.Equal(t, 0, it.Get())
	assert.Equal(t, 15, itB.Get())

	itC := itB.Sub(5)
	assert.Equal(t, 10, itC.Get())
	assert.True(t, itC.Equal(itA))

	it.AddAssign(20).SubAssign(5)
	assert.Equal(t, 15, it.Get())

	c := v.CEnd()
	c.SubAssign(1)
	assert.Equal(t, 99, c.Get())
	c.AddAssign(1)
	assert.True(t, c.Equal(v.End()))
}

func TestIteratorDifferenceAndSubscript(t *testing.T) {
	v := hundred(t)
	first, last := v.Begin(), v.End()
	assert.Equal(t, 100, last.Distance(first))
	assert.Equal(t, -100, first.Distance(last))

	it := v.Begin().Add(10)
	assert.Equal(t, 15, it.At(5))
	assert.Equal(t, 9, it.At(-1))
	assert.Equal(t, it.Add(7).Get(), it.At(7))
}

func TestIteratorNegativeIntermediatePosition(t *testing.T) {
	v := hundred(t)
	it := v.Begin().Sub(3)
	assert.Equal(t, -3, it.Pos())
	assert.False(t, it.Dereferenceable())
	it.AddAssign(3)
	assert.True(t, it.Dereferenceable())
	assert.Equal(t, 0, it.Get())
	assert.False(t, v.End().Dereferenceable())
}

func TestIteratorRangeLoop(t *testing.T) {
	v := ints(t, 5, 6, 7)
	got := []int{}
	for it := v.Begin(); it.NotEqual(v.End()); it.Inc() {
		got = append(got, it.Get())
	}
	assert.Equal(t, []int{5, 6, 7}, got)

	got = got[:0]
	for it := v.CEnd(); it.Greater(v.CBegin()); {
		got = append(got, it.Dec().Get())
	}
	assert.Equal(t, []int{7, 6, 5}, got)
}

func TestRangeFunctions(t *testing.T) {
	v := ints(t, 1, 2, 3, 4)

	var idx, vals []int
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, idx)
	assert.Equal(t, []int{1, 2, 3, 4}, vals)

	vals = vals[:0]
	for _, x := range v.Backward() {
		vals = append(vals, x)
		if x == 2 {
			break
		}
	}
	assert.Equal(t, []int{4, 3, 2}, vals)

	sum := 0
	for x := range v.Values() {
		sum += x
	}
	assert.Equal(t, 10, sum)
}

func TestIteratorSetUsesAllocator(t *testing.T) {
	log := &lifecycle{}
	c := NewCountingAllocator[tracked](nil, 0)
	v, err := New(WithAllocator[tracked](c))
	require.NoError(t, err)
	require.NoError(t, v.PushBack(newTracked(1, log)))
	require.NoError(t, v.PushBack(newTracked(2, log)))

	it := v.Begin().Add(1)
	it.Set(newTracked(5, log))
	assert.Equal(t, 1, log.destroyed)
	assert.Equal(t, 5, v.Back().id)
	assert.Equal(t, 3, c.Stats().Constructs)
	assert.Equal(t, 1, c.Stats().Destroys)

	// Returned from a modifier, the iterator carries the allocator as well.
	it, err = v.Insert(v.Begin(), newTracked(0, log))
	require.NoError(t, err)
	it.Set(newTracked(9, log))
	assert.Equal(t, 2, log.destroyed)
	assert.Equal(t, 9, v.Front().id)
}

func TestIteratorSetOnZeroVector(t *testing.T) {
	var v Vector[int]
	require.NoError(t, v.PushBack(1))
	it := v.Begin()
	it.Set(4)
	assert.Equal(t, 4, v.Front())
}

func TestEmptyVectorIterators(t *testing.T) {
	v, err := NewSized[int](0)
	require.NoError(t, err)
	assert.True(t, v.Begin().Equal(v.End()))
	assert.True(t, v.CBegin().Equal(v.Begin()))
	assert.Equal(t, 0, v.End().Distance(v.Begin()))
}
