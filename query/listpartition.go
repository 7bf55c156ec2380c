package query

import "iter"

// listPartition is a window over a random-access source. Bounds are
// resolved once at construction (the source reports O(1) length), then
// re-clamped against the live length on each use so a shrinking list
// cannot push an access out of range.
type listPartition[T any] struct {
	src    Indexed[T]
	lo, hi int // absolute [lo, hi)
}

// length returns the current element count of the window.
func (p *listPartition[T]) length() int {
	n := p.src.Len()
	if n > p.hi {
		n = p.hi
	}
	if n <= p.lo {
		return 0
	}
	return n - p.lo
}

func (p *listPartition[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := p.length()
		for i := 0; i < n; i++ {
			if !yield(p.src.At(p.lo + i)) {
				return
			}
		}
	}
}

func (p *listPartition[T]) Count(bool) (int, bool) {
	return p.length(), true
}

func (p *listPartition[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	i, ok := resolveIndex(p.length(), index, fromEnd)
	if !ok {
		var zero T
		return zero, false
	}
	return p.src.At(p.lo + i), true
}

func (p *listPartition[T]) First() (T, bool) {
	return p.ElementAt(0, false)
}

func (p *listPartition[T]) Last() (T, bool) {
	return p.ElementAt(0, true)
}

func (p *listPartition[T]) ToSlice() []T {
	n := p.length()
	if n == 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = p.src.At(p.lo + i)
	}
	return out
}

func (p *listPartition[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	w := newWindow(start, end, startFromEnd, endFromEnd)
	n := p.length()
	lo, hi, empty := w.normalize(n)
	if empty {
		return Empty[T]()
	}
	if lo == 0 && hi == n {
		return p
	}
	return &listPartition[T]{src: p.src, lo: p.lo + lo, hi: p.lo + hi}
}

func (*listPartition[T]) sealed() {}
