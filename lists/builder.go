package lists

// Builder accumulates elements of a sequence whose length is not known up
// front, growing by doubling, and hands the backing slice over exactly once.
// It is the materialization fallback for sources with neither a cheap count
// nor random access.
type Builder[T any] struct {
	data []T
}

// NewBuilder creates a Builder. capacityHint may be 0 when nothing is known
// about the final size.
func NewBuilder[T any](capacityHint int) *Builder[T] {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Builder[T]{data: make([]T, 0, capacityHint)}
}

// Append adds value to the end of the buffer.
func (b *Builder[T]) Append(value T) {
	if len(b.data) == cap(b.data) {
		b.grow()
	}
	b.data = append(b.data, value)
}

// Len returns the number of elements accumulated so far.
func (b *Builder[T]) Len() int {
	return len(b.data)
}

// Finish returns the accumulated elements and detaches them from the
// builder. The builder is empty afterwards and may be reused.
func (b *Builder[T]) Finish() []T {
	out := b.data
	b.data = nil
	return out
}

// grow allocates a doubled backing array and conveys the data, so that a
// long run of Appends performs O(log n) allocations.
func (b *Builder[T]) grow() {
	newCap := 2 * cap(b.data)
	if newCap < 4 {
		newCap = 4
	}
	newData := make([]T, len(b.data), newCap)
	copy(newData, b.data)
	b.data = newData
}
