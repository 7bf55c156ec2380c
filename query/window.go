package query

import "math"

// window describes a contiguous [start, end) span of a sequence. Either
// bound may be anchored at the end of the sequence, in which case it is a
// distance counted backward from the total length and is resolved only when
// that length is known. An end of math.MaxInt with no anchor means "to the
// end", so a plain skip is representable without knowing any length.
type window struct {
	start, end               int
	startFromEnd, endFromEnd bool
}

// newWindow builds a window from raw caller input. Negative bounds are
// clamped to zero before any arithmetic, which keeps every later
// subtraction inside the int range without relying on wraparound. An
// end-anchored end of zero denotes the true end of the sequence and is
// rewritten to the unanchored open form.
func newWindow(start, end int, startFromEnd, endFromEnd bool) window {
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	if endFromEnd && end == 0 {
		endFromEnd = false
		end = math.MaxInt
	}
	return window{start: start, end: end, startFromEnd: startFromEnd, endFromEnd: endFromEnd}
}

// isResolved reports whether both bounds are absolute offsets from the
// start, i.e. the window can be applied without knowing the total length.
func (w window) isResolved() bool {
	return !w.startFromEnd && !w.endFromEnd
}

// isFull reports whether the window selects every element of any sequence.
func (w window) isFull() bool {
	return w.isResolved() && w.start == 0 && w.end == math.MaxInt
}

// alwaysEmpty reports whether the window selects no elements regardless of
// the length it is eventually resolved against. Windows that are empty only
// for some lengths (such as [s, ^k)) report false.
func (w window) alwaysEmpty() bool {
	switch {
	case w.isResolved():
		return w.start >= w.end
	case w.startFromEnd && w.endFromEnd:
		// [^a, ^b) resolves to [len-a, len-b); nonempty needs a > b.
		return w.start <= w.end
	case w.startFromEnd:
		// [^a, e): ^0 starts at the very end; e == 0 ends before the start.
		return w.start == 0 || w.end == 0
	default:
		// [s, ^k) is nonempty for any length above s+k.
		return false
	}
}

// normalize resolves the window against a known total length, returning
// absolute bounds clamped into [0, length]. When empty is false the result
// satisfies 0 <= lo < hi <= length. Total for every length >= 0 and every
// flag combination.
func (w window) normalize(length int) (lo, hi int, empty bool) {
	lo, hi = w.start, w.end
	if w.startFromEnd {
		lo = length - lo
	}
	if w.endFromEnd {
		hi = length - hi
	}
	if lo < 0 {
		lo = 0
	}
	if hi > length {
		hi = length
	}
	if lo >= length || hi <= 0 || lo >= hi {
		return 0, 0, true
	}
	return lo, hi, false
}

// resolveIndex turns an index with an optional end anchor into an absolute
// offset against length. ok is false when the index falls outside
// [0, length); a negative raw index is out of range, never an error.
func resolveIndex(length, index int, fromEnd bool) (int, bool) {
	if index < 0 {
		return 0, false
	}
	if fromEnd {
		index = length - 1 - index
	}
	if index < 0 || index >= length {
		return 0, false
	}
	return index, true
}

// addCap returns a+b saturated at math.MaxInt. Both operands must be
// non-negative. Saturation is exact for window arithmetic: no sequence
// holds more than math.MaxInt elements, so a saturated start bound selects
// the same elements as the true sum would.
func addCap(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// mergeWindows flattens outer applied on top of inner into one window over
// the original source, when the combination is exactly representable. ok is
// false when it is not and the caller must nest instead. inner must not
// carry an end-anchored start (callers only flatten resolved or pure-skip
// inner windows); outer must come from newWindow.
func mergeWindows(inner, outer window) (merged window, ok bool) {
	if !inner.isResolved() {
		return window{}, false
	}
	switch {
	case inner.start == 0 && inner.end == math.MaxInt:
		// inner is the full window; outer stands alone.
		return outer, true
	case outer.isResolved():
		// [s1,e1) then [s2,e2): shift outer into the source frame and
		// intersect with the inner ceiling.
		lo := addCap(inner.start, outer.start)
		hi := inner.end
		if h := addCap(inner.start, outer.end); h < hi {
			hi = h
		}
		return window{start: lo, end: hi}, true
	case inner.end == math.MaxInt && !outer.startFromEnd && outer.endFromEnd:
		// A pure skip followed by [s2, ^k): dropping the last k elements of
		// the tail drops the last k elements of the source.
		return window{start: addCap(inner.start, outer.start), end: outer.end, endFromEnd: true}, true
	}
	return window{}, false
}
