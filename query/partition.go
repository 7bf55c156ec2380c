package query

import (
	"iter"
	"math"

	"lazyseq/lists"
	"lazyseq/queues"
)

// seqPartition windows a source whose length may be unknown. The window may
// still carry end-anchored bounds; they are resolved against the true
// length only when a capability forces it. Invariants: the window is
// neither provably empty nor full (windowed guarantees both), and it came
// through newWindow.
type seqPartition[T any] struct {
	source Sequence[T]
	win    window
}

func (p *seqPartition[T]) All() iter.Seq[T] {
	switch {
	case p.win.isResolved():
		return p.iterateResolved()
	case p.win.startFromEnd && p.win.endFromEnd:
		return p.iterateTail()
	case p.win.startFromEnd:
		return p.iterateTailBounded()
	default:
		return p.iterateDropTail()
	}
}

// iterateResolved serves [s, e): skip s elements, stop pulling once e is
// reached.
func (p *seqPartition[T]) iterateResolved() iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range p.source.All() {
			if i >= p.win.end {
				return
			}
			if i >= p.win.start && !yield(v) {
				return
			}
			i++
		}
	}
}

// iterateTail serves [^a, ^b): one pass filling a ring of capacity a, then
// emit the ring minus its last b elements.
func (p *seqPartition[T]) iterateTail() iter.Seq[T] {
	return func(yield func(T) bool) {
		ring := queues.NewRing[T](p.win.start)
		for v := range p.source.All() {
			ring.Push(v)
		}
		keep := ring.Len() - p.win.end
		for i := 0; i < keep; i++ {
			if !yield(ring.At(i)) {
				return
			}
		}
	}
}

// iterateTailBounded serves [^a, e) with an absolute end: the ring holds
// the trailing min(a, n) elements, whose first entry sits at source index
// n-ring.Len(); the absolute ceiling then cuts the emission short.
func (p *seqPartition[T]) iterateTailBounded() iter.Seq[T] {
	return func(yield func(T) bool) {
		ring := queues.NewRing[T](p.win.start)
		n := 0
		for v := range p.source.All() {
			ring.Push(v)
			n++
		}
		base := n - ring.Len()
		hi := p.win.end
		if n < hi {
			hi = n
		}
		for i := 0; i < ring.Len() && base+i < hi; i++ {
			if !yield(ring.At(i)) {
				return
			}
		}
	}
}

// iterateDropTail serves [s, ^k): after skipping s elements, a delay ring
// of capacity k holds each element back until k more have arrived, so the
// last k are never emitted and the length is never needed.
func (p *seqPartition[T]) iterateDropTail() iter.Seq[T] {
	return func(yield func(T) bool) {
		ring := queues.NewRing[T](p.win.end)
		skip := p.win.start
		for v := range p.source.All() {
			if skip > 0 {
				skip--
				continue
			}
			if out, full := ring.Push(v); full {
				if !yield(out) {
					return
				}
			}
		}
	}
}

func (p *seqPartition[T]) Count(onlyIfCheap bool) (int, bool) {
	if n, ok := p.source.Count(true); ok {
		lo, hi, empty := p.win.normalize(n)
		if empty {
			return 0, true
		}
		return hi - lo, true
	}
	if onlyIfCheap {
		return 0, false
	}
	if p.win.isResolved() {
		// Bounded scan: the window cannot grow past its end bound.
		seen := 0
		for range p.source.All() {
			seen++
			if seen >= p.win.end {
				break
			}
		}
		hi := p.win.end
		if seen < hi {
			hi = seen
		}
		if hi <= p.win.start {
			return 0, true
		}
		return hi - p.win.start, true
	}
	n := 0
	for range p.source.All() {
		n++
	}
	lo, hi, empty := p.win.normalize(n)
	if empty {
		return 0, true
	}
	return hi - lo, true
}

func (p *seqPartition[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	if index < 0 {
		var zero T
		return zero, false
	}
	if n, ok := p.source.Count(true); ok {
		lo, hi, empty := p.win.normalize(n)
		if empty {
			var zero T
			return zero, false
		}
		i, ok := resolveIndex(hi-lo, index, fromEnd)
		if !ok {
			var zero T
			return zero, false
		}
		return p.source.ElementAt(lo+i, false)
	}
	// One fused scan over the windowed cursor; the window's own lookback
	// and the index lookback share that single pass.
	return scanElementAt(p.All(), index, fromEnd)
}

func (p *seqPartition[T]) First() (T, bool) {
	return scanFirst(p.All())
}

func (p *seqPartition[T]) Last() (T, bool) {
	return scanLast(p.All())
}

func (p *seqPartition[T]) ToSlice() []T {
	if n, ok := p.source.Count(true); ok {
		lo, hi, empty := p.win.normalize(n)
		if empty {
			return nil
		}
		out := make([]T, 0, hi-lo)
		i := 0
		for v := range p.source.All() {
			if i >= hi {
				break
			}
			if i >= lo {
				out = append(out, v)
			}
			i++
		}
		return out
	}
	hint := 0
	if p.win.isResolved() && p.win.end != math.MaxInt {
		hint = p.win.end - p.win.start
	}
	b := lists.NewBuilder[T](hint)
	for v := range p.All() {
		b.Append(v)
	}
	return b.Finish()
}

func (p *seqPartition[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	w := newWindow(start, end, startFromEnd, endFromEnd)
	if w.alwaysEmpty() {
		return Empty[T]()
	}
	if w.isFull() {
		return p
	}
	if merged, ok := mergeWindows(p.win, w); ok {
		return windowed(p.source, merged)
	}
	// Not exactly representable as one window; keep precision by nesting.
	return &seqPartition[T]{source: p, win: w}
}

func (*seqPartition[T]) sealed() {}
