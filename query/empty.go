package query

import "iter"

// emptySequence is the zero-element stand-in returned whenever a window is
// provably empty. It is a zero-size comparable value, so every Empty[T]()
// of the same element type is identical under ==; returning it never
// allocates.
type emptySequence[T any] struct{}

// Empty returns the shared zero-element sequence for T.
func Empty[T any]() Sequence[T] {
	return emptySequence[T]{}
}

func (emptySequence[T]) All() iter.Seq[T] {
	return func(func(T) bool) {}
}

func (emptySequence[T]) Count(bool) (int, bool) {
	return 0, true
}

func (emptySequence[T]) ElementAt(int, bool) (T, bool) {
	var zero T
	return zero, false
}

func (emptySequence[T]) First() (T, bool) {
	var zero T
	return zero, false
}

func (emptySequence[T]) Last() (T, bool) {
	var zero T
	return zero, false
}

func (emptySequence[T]) ToSlice() []T {
	return nil
}

func (e emptySequence[T]) TakeRange(int, int, bool, bool) Sequence[T] {
	return e
}

func (emptySequence[T]) sealed() {}
