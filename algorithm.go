package vector

import "sort"

// Stepper is the arithmetic both iterator flavours provide. The generic
// helpers below accept either flavour through it.
type Stepper[I any] interface {
	Pos() int
	Add(n int) I
}

// Distance returns the number of steps from first to last.
func Distance[I Stepper[I]](first, last I) int {
	return last.Pos() - first.Pos()
}

// Advance moves *it by n positions; n may be negative.
func Advance[I Stepper[I]](it *I, n int) {
	*it = (*it).Add(n)
}

// Next returns the iterator one position after it.
func Next[I Stepper[I]](it I) I { return it.Add(1) }

// Prev returns the iterator one position before it.
func Prev[I Stepper[I]](it I) I { return it.Add(-1) }

// AddN returns it advanced by n, the n + it form of iterator addition.
func AddN[I Stepper[I]](n int, it I) I { return it.Add(n) }

// SortFunc sorts [first, last) in place using cmp. The sort is not stable.
func SortFunc[T any](first, last Iterator[T], cmp func(a, b T) int) {
	sort.Sort(rangeSorter[T]{first: first, n: Distance(first, last), cmp: cmp})
}

// IsSortedFunc reports whether [first, last) is sorted according to cmp.
func IsSortedFunc[T any](first, last ConstIterator[T], cmp func(a, b T) int) bool {
	for it := first; it.Add(1).Less(last); it.Inc() {
		if cmp(it.At(1), it.Get()) < 0 {
			return false
		}
	}
	return true
}

// rangeSorter adapts an iterator range to sort.Interface using only
// iterator operations.
type rangeSorter[T any] struct {
	first Iterator[T]
	n     int
	cmp   func(a, b T) int
}

func (s rangeSorter[T]) Len() int { return s.n }

func (s rangeSorter[T]) Less(i, j int) bool {
	return s.cmp(s.first.At(i), s.first.At(j)) < 0
}

func (s rangeSorter[T]) Swap(i, j int) {
	p, q := s.first.Add(i).Ptr(), s.first.Add(j).Ptr()
	*p, *q = *q, *p
}
