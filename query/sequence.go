package query

import (
	"iter"
	"math"
	"slices"

	"lazyseq/lists"
	"lazyseq/queues"
)

// Sequence is the capability contract every stage of a query chain
// implements. Stages are immutable after construction; all evaluation
// state lives in the cursors handed out by All. The implementing set is
// closed: sources, partitions, projections and the order-by adapter are
// the only variants, and each answers every capability as cheaply as its
// shape allows.
type Sequence[T any] interface {
	// All returns a fresh, independent cursor over the elements. Stopping
	// early (break, return, panic) releases any inner cursor the stage
	// opened, per the iter.Seq protocol.
	All() iter.Seq[T]

	// Count returns the exact number of elements. With onlyIfCheap set it
	// reports ok=false instead of enumerating; otherwise it may enumerate,
	// and a projected stage then runs its projection once per source
	// element even though no elements are returned.
	Count(onlyIfCheap bool) (int, bool)

	// ElementAt returns the element at index, counted from the end when
	// fromEnd is set (0 = last element). A negative or out-of-range index
	// is a normal not-found outcome.
	ElementAt(index int, fromEnd bool) (T, bool)

	First() (T, bool)
	Last() (T, bool)

	// ToSlice materializes the elements into a fresh slice.
	ToSlice() []T

	// TakeRange returns a view of the [start, end) sub-window, where either
	// bound may be counted from the end. It returns the unchanged handle
	// for the full window, the shared Empty value for a provably empty
	// window, and otherwise the cheapest windowed representation of the
	// receiver.
	TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T]

	sealed()
}

// Indexed is the random-access contract FromList accepts: O(1) length and
// O(1) element access. lists.Array satisfies it.
type Indexed[T any] interface {
	Len() int
	At(index int) T
}

// From wraps an arbitrary iterator as a sequence. The resulting sequence
// is restartable only if items is; every capability that needs elements
// enumerates on demand.
func From[T any](items iter.Seq[T]) Sequence[T] {
	if items == nil {
		panic("query: From requires a non-nil iterator")
	}
	return &seqSequence[T]{items: items}
}

// FromSlice wraps a slice without copying it. The caller must not mutate
// the slice while the sequence is in use.
func FromSlice[T any](data []T) Sequence[T] {
	if len(data) == 0 {
		return Empty[T]()
	}
	return &sliceSequence[T]{data: data}
}

// Of builds a sequence from the given elements.
func Of[T any](values ...T) Sequence[T] {
	return FromSlice(values)
}

// FromList wraps a random-access source. Length and indexing delegate to
// the source on every use, so a list that grows or shrinks stays safe.
func FromList[T any](src Indexed[T]) Sequence[T] {
	if src == nil {
		panic("query: FromList requires a non-nil source")
	}
	return &listSequence[T]{src: src}
}

// seqSequence is the plain-iterator source: no cheap capabilities, every
// query is answered by a bounded scan.
type seqSequence[T any] struct {
	items iter.Seq[T]
}

func (s *seqSequence[T]) All() iter.Seq[T] {
	return s.items
}

func (s *seqSequence[T]) Count(onlyIfCheap bool) (int, bool) {
	if onlyIfCheap {
		return 0, false
	}
	n := 0
	for range s.items {
		n++
	}
	return n, true
}

func (s *seqSequence[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	return scanElementAt(s.items, index, fromEnd)
}

func (s *seqSequence[T]) First() (T, bool) {
	return scanFirst(s.items)
}

func (s *seqSequence[T]) Last() (T, bool) {
	return scanLast(s.items)
}

func (s *seqSequence[T]) ToSlice() []T {
	return collect(s.items, 0)
}

func (s *seqSequence[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	return windowed[T](s, newWindow(start, end, startFromEnd, endFromEnd))
}

func (*seqSequence[T]) sealed() {}

// sliceSequence is the slice source: every capability is O(1) and a window
// is just a sub-slice.
type sliceSequence[T any] struct {
	data []T
}

func (s *sliceSequence[T]) All() iter.Seq[T] {
	return slices.Values(s.data)
}

func (s *sliceSequence[T]) Count(bool) (int, bool) {
	return len(s.data), true
}

func (s *sliceSequence[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	i, ok := resolveIndex(len(s.data), index, fromEnd)
	if !ok {
		var zero T
		return zero, false
	}
	return s.data[i], true
}

func (s *sliceSequence[T]) First() (T, bool) {
	return s.data[0], true
}

func (s *sliceSequence[T]) Last() (T, bool) {
	return s.data[len(s.data)-1], true
}

func (s *sliceSequence[T]) ToSlice() []T {
	return slices.Clone(s.data)
}

func (s *sliceSequence[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	w := newWindow(start, end, startFromEnd, endFromEnd)
	lo, hi, empty := w.normalize(len(s.data))
	if empty {
		return Empty[T]()
	}
	if lo == 0 && hi == len(s.data) {
		return s
	}
	return &sliceSequence[T]{data: s.data[lo:hi]}
}

func (*sliceSequence[T]) sealed() {}

// listSequence is the random-access-list source. The length is re-read on
// every use rather than cached at construction.
type listSequence[T any] struct {
	src Indexed[T]
}

func (s *listSequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.src.Len(); i++ {
			if !yield(s.src.At(i)) {
				return
			}
		}
	}
}

func (s *listSequence[T]) Count(bool) (int, bool) {
	return s.src.Len(), true
}

func (s *listSequence[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	i, ok := resolveIndex(s.src.Len(), index, fromEnd)
	if !ok {
		var zero T
		return zero, false
	}
	return s.src.At(i), true
}

func (s *listSequence[T]) First() (T, bool) {
	if s.src.Len() == 0 {
		var zero T
		return zero, false
	}
	return s.src.At(0), true
}

func (s *listSequence[T]) Last() (T, bool) {
	n := s.src.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	return s.src.At(n - 1), true
}

func (s *listSequence[T]) ToSlice() []T {
	n := s.src.Len()
	out := make([]T, n)
	for i := range out {
		out[i] = s.src.At(i)
	}
	return out
}

func (s *listSequence[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	w := newWindow(start, end, startFromEnd, endFromEnd)
	n := s.src.Len()
	lo, hi, empty := w.normalize(n)
	if empty {
		return Empty[T]()
	}
	if lo == 0 && hi == n {
		return s
	}
	return &listPartition[T]{src: s.src, lo: lo, hi: hi}
}

func (*listSequence[T]) sealed() {}

// windowed wraps source in a generic partition unless the window is
// degenerate. Shared prologue of every TakeRange that falls back to the
// generic path.
func windowed[T any](source Sequence[T], w window) Sequence[T] {
	if w.alwaysEmpty() {
		return Empty[T]()
	}
	if w.isFull() {
		return source
	}
	return &seqPartition[T]{source: source, win: w}
}

// scanElementAt answers an index query with one linear pass: a counted
// scan from the start, or a lookback ring of size index+1 for end-anchored
// requests. index == MaxInt is rejected up front: no sequence holds
// MaxInt+1 elements, and index+1 must stay a valid ring capacity.
func scanElementAt[T any](items iter.Seq[T], index int, fromEnd bool) (T, bool) {
	var zero T
	if index < 0 || index == math.MaxInt {
		return zero, false
	}
	if !fromEnd {
		i := 0
		for v := range items {
			if i == index {
				return v, true
			}
			i++
		}
		return zero, false
	}
	ring := queues.NewRing[T](index + 1)
	for v := range items {
		ring.Push(v)
	}
	if ring.Len() < index+1 {
		return zero, false
	}
	return ring.At(0), true
}

func scanFirst[T any](items iter.Seq[T]) (T, bool) {
	for v := range items {
		return v, true
	}
	var zero T
	return zero, false
}

func scanLast[T any](items iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range items {
		last = v
		found = true
	}
	return last, found
}

// collect materializes an iterator through the growable builder.
func collect[T any](items iter.Seq[T], capacityHint int) []T {
	b := lists.NewBuilder[T](capacityHint)
	for v := range items {
		b.Append(v)
	}
	return b.Finish()
}
