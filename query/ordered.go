package query

import (
	"cmp"
	"iter"
	"slices"

	"lazyseq/comparers"
)

// Ordered is the order-by adapter: a source plus a comparer chain. No
// sorting happens until a terminal call; each terminal call snapshots the
// source once and works against a sort permutation over that snapshot, so
// the source elements are never moved and equal keys keep their original
// relative order.
type Ordered[T any] struct {
	source  Sequence[T]
	compare comparers.Comparer[T]
}

// OrderBy sorts s ascending by an extracted key.
func OrderBy[T any, K cmp.Ordered](s Sequence[T], key func(T) K) *Ordered[T] {
	return OrderByFunc(s, comparers.ByKey(key))
}

// OrderByDescending sorts s descending by an extracted key.
func OrderByDescending[T any, K cmp.Ordered](s Sequence[T], key func(T) K) *Ordered[T] {
	return OrderByFunc(s, comparers.Reverse(comparers.ByKey(key)))
}

// OrderByFunc sorts s by an arbitrary comparer.
func OrderByFunc[T any](s Sequence[T], compare comparers.Comparer[T]) *Ordered[T] {
	if compare == nil {
		panic("query: OrderByFunc requires a non-nil comparer")
	}
	return &Ordered[T]{source: s, compare: compare}
}

// ThenBy adds an ascending tie-break key to an existing ordering.
func ThenBy[T any, K cmp.Ordered](o *Ordered[T], key func(T) K) *Ordered[T] {
	return &Ordered[T]{source: o.source, compare: comparers.Chain(o.compare, comparers.ByKey(key))}
}

// ThenByDescending adds a descending tie-break key to an existing ordering.
func ThenByDescending[T any, K cmp.Ordered](o *Ordered[T], key func(T) K) *Ordered[T] {
	return &Ordered[T]{source: o.source, compare: comparers.Chain(o.compare, comparers.Reverse(comparers.ByKey(key)))}
}

// snapshot buffers the source once for one terminal call. Never cached
// across calls; the call owns it exclusively.
func (o *Ordered[T]) snapshot() []T {
	return o.source.ToSlice()
}

// permutation returns buffer indices in sorted order. Ties fall back to the
// index itself, which makes the order stable without a stable sort.
func (o *Ordered[T]) permutation(buf []T) []int {
	idx := make([]int, len(buf))
	for i := range idx {
		idx[i] = i
	}
	sortIndex(idx, buf, o.compare)
	return idx
}

func (o *Ordered[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		buf := o.snapshot()
		for _, i := range o.permutation(buf) {
			if !yield(buf[i]) {
				return
			}
		}
	}
}

func (o *Ordered[T]) Count(onlyIfCheap bool) (int, bool) {
	return o.source.Count(onlyIfCheap)
}

// First scans for the running minimum; no snapshot, no sort. The strict
// comparison keeps the earliest of equal elements.
func (o *Ordered[T]) First() (T, bool) {
	var best T
	found := false
	for v := range o.source.All() {
		if !found || o.compare(v, best) < 0 {
			best = v
			found = true
		}
	}
	return best, found
}

// Last scans for the running maximum, keeping the latest of equal
// elements, which matches the final element of a stable sort.
func (o *Ordered[T]) Last() (T, bool) {
	var best T
	found := false
	for v := range o.source.All() {
		if !found || o.compare(v, best) >= 0 {
			best = v
			found = true
		}
	}
	return best, found
}

// ElementAt selects the element at the given sorted position by partial
// selection over the snapshot, not a full sort.
func (o *Ordered[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	buf := o.snapshot()
	k, ok := resolveIndex(len(buf), index, fromEnd)
	if !ok {
		var zero T
		return zero, false
	}
	return buf[selectIndex(buf, o.compare, k)], true
}

func (o *Ordered[T]) ToSlice() []T {
	buf := o.snapshot()
	perm := o.permutation(buf)
	out := make([]T, len(buf))
	for i, p := range perm {
		out[i] = buf[p]
	}
	return out
}

func (o *Ordered[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	w := newWindow(start, end, startFromEnd, endFromEnd)
	if w.alwaysEmpty() {
		return Empty[T]()
	}
	if w.isFull() {
		return o
	}
	return &orderedPartition[T]{ord: o, win: w}
}

func (*Ordered[T]) sealed() {}

// orderedPartition is a window over sorted order. Bounds compose by plain
// arithmetic; end-anchored bounds resolve at terminal time against the
// snapshot length, since the adapter can always re-snapshot.
type orderedPartition[T any] struct {
	ord *Ordered[T]
	win window
}

func (p *orderedPartition[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		buf := p.ord.snapshot()
		lo, hi, empty := p.win.normalize(len(buf))
		if empty {
			return
		}
		perm := p.ord.permutation(buf)
		for _, i := range perm[lo:hi] {
			if !yield(buf[i]) {
				return
			}
		}
	}
}

func (p *orderedPartition[T]) Count(onlyIfCheap bool) (int, bool) {
	n, ok := p.ord.source.Count(onlyIfCheap)
	if !ok {
		return 0, false
	}
	lo, hi, empty := p.win.normalize(n)
	if empty {
		return 0, true
	}
	return hi - lo, true
}

func (p *orderedPartition[T]) ElementAt(index int, fromEnd bool) (T, bool) {
	var zero T
	if index < 0 {
		return zero, false
	}
	buf := p.ord.snapshot()
	lo, hi, empty := p.win.normalize(len(buf))
	if empty {
		return zero, false
	}
	k, ok := resolveIndex(hi-lo, index, fromEnd)
	if !ok {
		return zero, false
	}
	return buf[selectIndex(buf, p.ord.compare, lo+k)], true
}

func (p *orderedPartition[T]) First() (T, bool) {
	return p.ElementAt(0, false)
}

func (p *orderedPartition[T]) Last() (T, bool) {
	return p.ElementAt(0, true)
}

func (p *orderedPartition[T]) ToSlice() []T {
	buf := p.ord.snapshot()
	lo, hi, empty := p.win.normalize(len(buf))
	if empty {
		return nil
	}
	perm := p.ord.permutation(buf)
	out := make([]T, hi-lo)
	for i, pi := range perm[lo:hi] {
		out[i] = buf[pi]
	}
	return out
}

func (p *orderedPartition[T]) TakeRange(start, end int, startFromEnd, endFromEnd bool) Sequence[T] {
	w := newWindow(start, end, startFromEnd, endFromEnd)
	if w.alwaysEmpty() {
		return Empty[T]()
	}
	if w.isFull() {
		return p
	}
	if merged, ok := mergeWindows(p.win, w); ok {
		if merged.alwaysEmpty() {
			return Empty[T]()
		}
		return &orderedPartition[T]{ord: p.ord, win: merged}
	}
	return &seqPartition[T]{source: p, win: w}
}

func (*orderedPartition[T]) sealed() {}

// sortIndex sorts buffer indices by the comparer. The index tie-break makes
// the permutation stable without requiring a stable sort.
func sortIndex[T any](idx []int, buf []T, compare comparers.Comparer[T]) {
	slices.SortFunc(idx, func(a, b int) int {
		if c := compare(buf[a], buf[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
}

// selectIndex returns the snapshot index of the k-th element in sorted
// order using median-of-three quickselect over an index scratch; expected
// O(n), no full sort.
func selectIndex[T any](buf []T, compare comparers.Comparer[T], k int) int {
	idx := make([]int, len(buf))
	for i := range idx {
		idx[i] = i
	}
	less := func(a, b int) bool {
		if c := compare(buf[a], buf[b]); c != 0 {
			return c < 0
		}
		return a < b
	}
	lo, hi := 0, len(idx)-1
	for lo < hi {
		p := partitionIndex(idx, lo, hi, less)
		switch {
		case k == p:
			return idx[k]
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
	return idx[k]
}

// partitionIndex is a Lomuto partition with a median-of-three pivot; less
// is a strict total order (ties broken by index), so equal-key runs cannot
// degrade it quadratically on the index scratch.
func partitionIndex(idx []int, lo, hi int, less func(a, b int) bool) int {
	mid := lo + (hi-lo)/2
	if less(idx[mid], idx[lo]) {
		idx[mid], idx[lo] = idx[lo], idx[mid]
	}
	if less(idx[hi], idx[lo]) {
		idx[hi], idx[lo] = idx[lo], idx[hi]
	}
	if less(idx[hi], idx[mid]) {
		idx[hi], idx[mid] = idx[mid], idx[hi]
	}
	idx[mid], idx[hi] = idx[hi], idx[mid]
	pivot := idx[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if less(idx[j], pivot) {
			idx[i], idx[j] = idx[j], idx[i]
			i++
		}
	}
	idx[i], idx[hi] = idx[hi], idx[i]
	return i
}
