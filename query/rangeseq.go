package query

import (
	"iter"
	"math"
)

// Range returns the consecutive integers [start, start+count). It panics
// when count is negative or the last value would not fit in an int; both
// are caller errors reported before anything is enumerated.
func Range(start, count int) Sequence[int] {
	if count < 0 {
		panic("query: Range requires a non-negative count")
	}
	if count > 0 && start > math.MaxInt-count+1 {
		panic("query: Range end overflows int")
	}
	if count == 0 {
		return Empty[int]()
	}
	return &rangeSequence{lo: start, n: count}
}

// rangeSequence is the lazy run of n integers starting at lo. The length is
// stored instead of an exclusive end so the run may finish exactly at
// MaxInt. Every capability is O(1); a window is a narrower run.
type rangeSequence struct {
	lo, n int
}

func (r *rangeSequence) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < r.n; i++ {
			if !yield(r.lo + i) {
				return
			}
		}
	}
}

func (r *rangeSequence) Count(bool) (int, bool) {
	return r.n, true
}

func (r *rangeSequence) ElementAt(index int, fromEnd bool) (int, bool) {
	i, ok := resolveIndex(r.n, index, fromEnd)
	if !ok {
		return 0, false
	}
	return r.lo + i, true
}

func (r *rangeSequence) First() (int, bool) {
	return r.lo, true
}

func (r *rangeSequence) Last() (int, bool) {
	return r.lo + r.n - 1, true
}

func (r *rangeSequence) ToSlice() []int {
	out := make([]int, r.n)
	for i := range out {
		out[i] = r.lo + i
	}
	return out
}

func (r *rangeSequence) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[int] {
	w := newWindow(start, end, startFromEnd, endFromEnd)
	lo, hi, empty := w.normalize(r.n)
	if empty {
		return Empty[int]()
	}
	if lo == 0 && hi == r.n {
		return r
	}
	return &rangeSequence{lo: r.lo + lo, n: hi - lo}
}

func (*rangeSequence) sealed() {}

// Repeat returns a sequence yielding value count times. It panics when
// count is negative.
func Repeat[T any](value T, count int) Sequence[T] {
	if count < 0 {
		panic("query: Repeat requires a non-negative count")
	}
	if count == 0 {
		return Empty[T]()
	}
	return &repeatSequence[T]{value: value, count: count}
}

// repeatSequence yields one value count times with the full capability
// surface: count, indexing and windowing are all O(1).
type repeatSequence[T any] struct {
	value T
	count int
}

func (r *repeatSequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.count; i++ {
			if !yield(r.value) {
				return
			}
		}
	}
}

func (r *repeatSequence[T]) Count(bool) (int, bool) {
	return r.count, true
}

func (r *repeatSequence[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	if _, ok := resolveIndex(r.count, index, fromEnd); !ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

func (r *repeatSequence[T]) First() (T, bool) {
	return r.value, true
}

func (r *repeatSequence[T]) Last() (T, bool) {
	return r.value, true
}

func (r *repeatSequence[T]) ToSlice() []T {
	out := make([]T, r.count)
	for i := range out {
		out[i] = r.value
	}
	return out
}

func (r *repeatSequence[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	w := newWindow(start, end, startFromEnd, endFromEnd)
	lo, hi, empty := w.normalize(r.count)
	if empty {
		return Empty[T]()
	}
	if hi-lo == r.count {
		return r
	}
	return &repeatSequence[T]{value: r.value, count: hi - lo}
}

func (*repeatSequence[T]) sealed() {}
