// Package queues provides the bounded lookback buffer used by end-anchored
// sequence windows.
package queues

// Ring is a circular buffer with a fixed capacity limit that evicts its
// oldest element on overflow. Partition iterators use it to realize windows
// anchored at the end of a sequence whose length is not known in advance:
// after one pass the ring holds exactly the trailing elements the window can
// still refer to.
//
// The backing array is allocated lazily and grown by doubling up to the
// limit, so a large limit over a short sequence only pays for what arrived.
type Ring[T any] struct {
	buf   []T
	head  int // index of the oldest element
	size  int // number of elements currently held
	limit int // maximum capacity
}

// NewRing creates a ring holding at most capacity elements. A capacity
// below 1 is treated as 1.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{limit: capacity}
}

// Push appends value to the ring. When the ring is at its capacity limit the
// oldest element is evicted and returned with ok set.
func (r *Ring[T]) Push(value T) (evicted T, ok bool) {
	if r.size == len(r.buf) {
		if r.size < r.limit {
			r.grow()
		} else {
			evicted = r.buf[r.head]
			r.buf[r.head] = value
			r.head++
			if r.head == len(r.buf) {
				r.head = 0
			}
			return evicted, true
		}
	}
	tail := r.head + r.size
	if tail >= len(r.buf) {
		tail -= len(r.buf)
	}
	r.buf[tail] = value
	r.size++
	return evicted, false
}

// Pop removes and returns the oldest element.
func (r *Ring[T]) Pop() (value T, ok bool) {
	if r.size == 0 {
		return value, false
	}
	value = r.buf[r.head]
	var zero T
	r.buf[r.head] = zero // clear reference
	r.head++
	if r.head == len(r.buf) {
		r.head = 0
	}
	r.size--
	return value, true
}

// At returns the i-th oldest element. It panics when i is out of range.
func (r *Ring[T]) At(i int) T {
	if i < 0 || i >= r.size {
		panic("queues: Ring index out of range")
	}
	idx := r.head + i
	if idx >= len(r.buf) {
		idx -= len(r.buf)
	}
	return r.buf[idx]
}

// Len returns the number of elements currently held.
func (r *Ring[T]) Len() int {
	return r.size
}

// Cap returns the capacity limit.
func (r *Ring[T]) Cap() int {
	return r.limit
}

// grow doubles the backing array, capped at the capacity limit, unwrapping
// the circular layout into the new array.
func (r *Ring[T]) grow() {
	newCap := 2 * len(r.buf)
	if newCap < 8 {
		newCap = 8
	}
	if newCap > r.limit {
		newCap = r.limit
	}
	newBuf := make([]T, newCap)
	if r.head+r.size <= len(r.buf) {
		copy(newBuf, r.buf[r.head:r.head+r.size])
	} else {
		// wrapped around: copy head..end, then start..tail
		n := copy(newBuf, r.buf[r.head:])
		copy(newBuf[n:], r.buf[:r.size-n])
	}
	r.buf = newBuf
	r.head = 0
}
