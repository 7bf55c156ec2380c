package query

import "iter"

// Select applies a projection lazily. The returned stage reimplements the
// capability contract against the unprojected source, so counting stays
// cheap, indexing skips straight to the one element that matters, and the
// projection runs only for elements actually produced. Composing Select
// over Select composes the two functions into the existing stage instead of
// wrapping it.
func Select[T, R any](s Sequence[T], f func(T) R) Sequence[R] {
	if f == nil {
		panic("query: Select requires a non-nil projection")
	}
	switch src := any(s).(type) {
	case emptySequence[T]:
		return Empty[R]()
	case *seqSequence[T]:
		return &seqSelect[R]{items: mapSeq(src.items, f)}
	case *seqSelect[T]:
		return &seqSelect[R]{items: mapSeq(src.items, f)}
	case *sliceSequence[T]:
		data := src.data
		return &sliceSelect[R]{length: len(data), at: func(i int) R { return f(data[i]) }}
	case *sliceSelect[T]:
		at := src.at
		return &sliceSelect[R]{length: src.length, at: func(i int) R { return f(at(i)) }}
	case *listSequence[T]:
		l := src.src
		return &indexedSelect[R]{length: l.Len, at: func(i int) R { return f(l.At(i)) }}
	case *indexedSelect[T]:
		at := src.at
		return &indexedSelect[R]{length: src.length, at: func(i int) R { return f(at(i)) }}
	case *windowSelect[T]:
		at := src.at
		return &windowSelect[R]{lo: src.lo, hi: src.hi, srcLen: src.srcLen, at: func(i int) R { return f(at(i)) }}
	case *rangeSequence:
		// The element type of a range is int; rebind the projection.
		project := any(f).(func(int) R)
		return &rangeSelect[R]{lo: src.lo, n: src.n, project: project}
	case *rangeSelect[T]:
		project := src.project
		return &rangeSelect[R]{lo: src.lo, n: src.n, project: func(i int) R { return f(project(i)) }}
	case *partitionSelect[T]:
		return &partitionSelect[R]{c: mapCaps(src.c, f)}
	case *seqPartition[T], *listPartition[T], *repeatSequence[T]:
		// Partition-shaped sources keep their capability surface behind the
		// projection.
		return newPartitionSelect(s, f)
	default:
		// Ordered adapters and anything future: plain lazy projection.
		return &seqSelect[R]{items: mapSeq(s.All(), f)}
	}
}

// mapSeq fuses a projection into an iterator.
func mapSeq[T, R any](seq iter.Seq[T], f func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// seqSelect projects a plain source. The projection lives inside items, so
// enumeration, counting and scanning all run it exactly once per element.
type seqSelect[T any] struct {
	items iter.Seq[T]
}

func (s *seqSelect[T]) All() iter.Seq[T] {
	return s.items
}

func (s *seqSelect[T]) Count(onlyIfCheap bool) (int, bool) {
	if onlyIfCheap {
		return 0, false
	}
	n := 0
	for range s.items {
		n++
	}
	return n, true
}

func (s *seqSelect[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	return scanElementAt(s.items, index, fromEnd)
}

func (s *seqSelect[T]) First() (T, bool) {
	return scanFirst(s.items)
}

func (s *seqSelect[T]) Last() (T, bool) {
	return scanLast(s.items)
}

func (s *seqSelect[T]) ToSlice() []T {
	return collect(s.items, 0)
}

func (s *seqSelect[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	return windowed[T](s, newWindow(start, end, startFromEnd, endFromEnd))
}

func (*seqSelect[T]) sealed() {}

// sliceSelect projects a fixed-length random-access source. at applies the
// projection to the unprojected element i; nothing projected is ever
// stored.
type sliceSelect[T any] struct {
	length int
	at     func(int) T
}

func (s *sliceSelect[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(s.at(i)) {
				return
			}
		}
	}
}

func (s *sliceSelect[T]) Count(onlyIfCheap bool) (int, bool) {
	if !onlyIfCheap {
		// Callers may rely on projection side effects even when only the
		// count is requested.
		for i := 0; i < s.length; i++ {
			s.at(i)
		}
	}
	return s.length, true
}

func (s *sliceSelect[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	i, ok := resolveIndex(s.length, index, fromEnd)
	if !ok {
		var zero T
		return zero, false
	}
	return s.at(i), true
}

func (s *sliceSelect[T]) First() (T, bool) {
	return s.at(0), true
}

func (s *sliceSelect[T]) Last() (T, bool) {
	return s.at(s.length - 1), true
}

func (s *sliceSelect[T]) ToSlice() []T {
	out := make([]T, s.length)
	for i := range out {
		out[i] = s.at(i)
	}
	return out
}

func (s *sliceSelect[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	w := newWindow(start, end, startFromEnd, endFromEnd)
	lo, hi, empty := w.normalize(s.length)
	if empty {
		return Empty[T]()
	}
	if lo == 0 && hi == s.length {
		return s
	}
	n := s.length
	return &windowSelect[T]{lo: lo, hi: hi, srcLen: func() int { return n }, at: s.at}
}

func (*sliceSelect[T]) sealed() {}

// indexedSelect projects a random-access source whose length may change;
// the length is re-read on every use.
type indexedSelect[T any] struct {
	length func() int
	at     func(int) T
}

func (s *indexedSelect[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.length(); i++ {
			if !yield(s.at(i)) {
				return
			}
		}
	}
}

func (s *indexedSelect[T]) Count(onlyIfCheap bool) (int, bool) {
	n := s.length()
	if !onlyIfCheap {
		for i := 0; i < n; i++ {
			s.at(i)
		}
	}
	return n, true
}

func (s *indexedSelect[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	i, ok := resolveIndex(s.length(), index, fromEnd)
	if !ok {
		var zero T
		return zero, false
	}
	return s.at(i), true
}

func (s *indexedSelect[T]) First() (T, bool) {
	if s.length() == 0 {
		var zero T
		return zero, false
	}
	return s.at(0), true
}

func (s *indexedSelect[T]) Last() (T, bool) {
	n := s.length()
	if n == 0 {
		var zero T
		return zero, false
	}
	return s.at(n - 1), true
}

func (s *indexedSelect[T]) ToSlice() []T {
	out := make([]T, s.length())
	for i := range out {
		out[i] = s.at(i)
	}
	return out
}

func (s *indexedSelect[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	w := newWindow(start, end, startFromEnd, endFromEnd)
	n := s.length()
	lo, hi, empty := w.normalize(n)
	if empty {
		return Empty[T]()
	}
	if lo == 0 && hi == n {
		return s
	}
	return &windowSelect[T]{lo: lo, hi: hi, srcLen: s.length, at: s.at}
}

func (*indexedSelect[T]) sealed() {}

// windowSelect fuses a window with a projected random-access source: the
// absolute window bounds combine directly with the unprojected at, with no
// intermediate partition object.
type windowSelect[T any] struct {
	lo, hi int // absolute [lo, hi) over the unprojected source
	srcLen func() int
	at     func(int) T
}

func (s *windowSelect[T]) length() int {
	n := s.srcLen()
	if n > s.hi {
		n = s.hi
	}
	if n <= s.lo {
		return 0
	}
	return n - s.lo
}

func (s *windowSelect[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := s.length()
		for i := 0; i < n; i++ {
			if !yield(s.at(s.lo + i)) {
				return
			}
		}
	}
}

func (s *windowSelect[T]) Count(onlyIfCheap bool) (int, bool) {
	n := s.length()
	if !onlyIfCheap {
		for i := 0; i < n; i++ {
			s.at(s.lo + i)
		}
	}
	return n, true
}

func (s *windowSelect[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	i, ok := resolveIndex(s.length(), index, fromEnd)
	if !ok {
		var zero T
		return zero, false
	}
	return s.at(s.lo + i), true
}

func (s *windowSelect[T]) First() (T, bool) {
	return s.ElementAt(0, false)
}

func (s *windowSelect[T]) Last() (T, bool) {
	return s.ElementAt(0, true)
}

func (s *windowSelect[T]) ToSlice() []T {
	n := s.length()
	if n == 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = s.at(s.lo + i)
	}
	return out
}

func (s *windowSelect[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	w := newWindow(start, end, startFromEnd, endFromEnd)
	n := s.length()
	lo, hi, empty := w.normalize(n)
	if empty {
		return Empty[T]()
	}
	if lo == 0 && hi == n {
		return s
	}
	return &windowSelect[T]{lo: s.lo + lo, hi: s.lo + hi, srcLen: s.srcLen, at: s.at}
}

func (*windowSelect[T]) sealed() {}

// rangeSelect projects a run of consecutive integers: the unprojected
// element at offset i is just lo+i, so the whole chain needs one object.
type rangeSelect[T any] struct {
	lo, n   int
	project func(int) T
}

func (s *rangeSelect[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(s.project(s.lo + i)) {
				return
			}
		}
	}
}

func (s *rangeSelect[T]) Count(onlyIfCheap bool) (int, bool) {
	if !onlyIfCheap {
		for i := 0; i < s.n; i++ {
			s.project(s.lo + i)
		}
	}
	return s.n, true
}

func (s *rangeSelect[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	i, ok := resolveIndex(s.n, index, fromEnd)
	if !ok {
		var zero T
		return zero, false
	}
	return s.project(s.lo + i), true
}

func (s *rangeSelect[T]) First() (T, bool) {
	return s.project(s.lo), true
}

func (s *rangeSelect[T]) Last() (T, bool) {
	return s.project(s.lo + s.n - 1), true
}

func (s *rangeSelect[T]) ToSlice() []T {
	out := make([]T, s.n)
	for i := range out {
		out[i] = s.project(s.lo + i)
	}
	return out
}

func (s *rangeSelect[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	w := newWindow(start, end, startFromEnd, endFromEnd)
	lo, hi, empty := w.normalize(s.n)
	if empty {
		return Empty[T]()
	}
	if lo == 0 && hi == s.n {
		return s
	}
	return &rangeSelect[T]{lo: s.lo + lo, n: hi - lo, project: s.project}
}

func (*rangeSelect[T]) sealed() {}

// caps is the projected capability bundle behind partitionSelect: each
// closure delegates to the unprojected source and applies the projection on
// the way out, erasing the source's element type.
type caps[T any] struct {
	all   func() iter.Seq[T]
	count func(onlyIfCheap bool) (int, bool)
	at    func(index int, fromEnd bool) (T, bool)
	first func() (T, bool)
	last  func() (T, bool)
	slice func() []T
	sub   func(w window) Sequence[T]
}

// newPartitionSelect projects an already-partitioned source, keeping its
// capability surface intact behind the projection.
func newPartitionSelect[S, T any](src Sequence[S], f func(S) T) Sequence[T] {
	if _, ok := src.(emptySequence[S]); ok {
		return Empty[T]()
	}
	return &partitionSelect[T]{c: capsOf(src, f)}
}

func capsOf[S, T any](src Sequence[S], f func(S) T) caps[T] {
	return caps[T]{
		all: func() iter.Seq[T] {
			return mapSeq(src.All(), f)
		},
		count: func(onlyIfCheap bool) (int, bool) {
			if onlyIfCheap {
				return src.Count(true)
			}
			n := 0
			for v := range src.All() {
				f(v)
				n++
			}
			return n, true
		},
		at: func(index int, fromEnd bool) (T, bool) {
			v, ok := src.ElementAt(index, fromEnd)
			if !ok {
				var zero T
				return zero, false
			}
			return f(v), true
		},
		first: func() (T, bool) {
			v, ok := src.First()
			if !ok {
				var zero T
				return zero, false
			}
			return f(v), true
		},
		last: func() (T, bool) {
			v, ok := src.Last()
			if !ok {
				var zero T
				return zero, false
			}
			return f(v), true
		},
		slice: func() []T {
			vs := src.ToSlice()
			out := make([]T, len(vs))
			for i, v := range vs {
				out[i] = f(v)
			}
			return out
		},
		sub: func(w window) Sequence[T] {
			return newPartitionSelect(src.TakeRange(w.start, w.end, w.startFromEnd, w.endFromEnd), f)
		},
	}
}

// mapCaps composes a further projection onto an existing bundle, so select
// over select stays one stage deep.
func mapCaps[T, R any](c caps[T], g func(T) R) caps[R] {
	return caps[R]{
		all: func() iter.Seq[R] {
			return mapSeq(c.all(), g)
		},
		count: func(onlyIfCheap bool) (int, bool) {
			if onlyIfCheap {
				return c.count(true)
			}
			n := 0
			for v := range c.all() {
				g(v)
				n++
			}
			return n, true
		},
		at: func(index int, fromEnd bool) (R, bool) {
			v, ok := c.at(index, fromEnd)
			if !ok {
				var zero R
				return zero, false
			}
			return g(v), true
		},
		first: func() (R, bool) {
			v, ok := c.first()
			if !ok {
				var zero R
				return zero, false
			}
			return g(v), true
		},
		last: func() (R, bool) {
			v, ok := c.last()
			if !ok {
				var zero R
				return zero, false
			}
			return g(v), true
		},
		slice: func() []R {
			vs := c.slice()
			out := make([]R, len(vs))
			for i, v := range vs {
				out[i] = g(v)
			}
			return out
		},
		sub: func(w window) Sequence[R] {
			return Select(c.sub(w), g)
		},
	}
}

// partitionSelect projects an already-windowed source through its
// capability bundle.
type partitionSelect[T any] struct {
	c caps[T]
}

func (s *partitionSelect[T]) All() iter.Seq[T] {
	return s.c.all()
}

func (s *partitionSelect[T]) Count(onlyIfCheap bool) (int, bool) {
	return s.c.count(onlyIfCheap)
}

func (s *partitionSelect[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	return s.c.at(index, fromEnd)
}

func (s *partitionSelect[T]) First() (T, bool) {
	return s.c.first()
}

func (s *partitionSelect[T]) Last() (T, bool) {
	return s.c.last()
}

func (s *partitionSelect[T]) ToSlice() []T {
	return s.c.slice()
}

func (s *partitionSelect[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	w := newWindow(start, end, startFromEnd, endFromEnd)
	if w.alwaysEmpty() {
		return Empty[T]()
	}
	if w.isFull() {
		return s
	}
	return s.c.sub(w)
}

func (*partitionSelect[T]) sealed() {}
