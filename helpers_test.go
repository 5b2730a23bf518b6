package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// lifecycle records hook calls for tracked elements.
type lifecycle struct {
	destroyed int
	cloned    int
}

// tracked owns a separate heap slice, like a type with a user-defined copy
// constructor and destructor.
type tracked struct {
	id   int
	data []int
	log  *lifecycle
}

func newTracked(id int, log *lifecycle) tracked {
	return tracked{id: id, data: []int{id, id * 10}, log: log}
}

func (t *tracked) Destroy() {
	if t.log != nil {
		t.log.destroyed++
	}
	t.data = nil
}

func (t tracked) Clone() tracked {
	if t.log != nil {
		t.log.cloned++
	}
	return tracked{id: t.id, data: append([]int(nil), t.data...), log: t.log}
}

// ints builds a heap vector holding values.
func ints(t testing.TB, values ...int) *Vector[int] {
	t.Helper()
	v, err := NewFromSlice(values)
	require.NoError(t, err)
	return v
}

// contents returns a copy of the live elements.
func contents[T any](v *Vector[T]) []T {
	return append([]T(nil), v.Data()...)
}

// seq returns [from, from+n).
func seq(from, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i
	}
	return out
}
