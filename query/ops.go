package query

import (
	"math"

	"lazyseq/lists"
)

// Take returns the first n elements. n <= 0 yields the empty sequence.
func Take[T any](s Sequence[T], n int) Sequence[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return s.TakeRange(0, n, false, false)
}

// TakeLast returns the last n elements. n <= 0 yields the empty sequence.
func TakeLast[T any](s Sequence[T], n int) Sequence[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return s.TakeRange(n, 0, true, true)
}

// Skip drops the first n elements. n <= 0 returns s unchanged.
func Skip[T any](s Sequence[T], n int) Sequence[T] {
	if n <= 0 {
		return s
	}
	return s.TakeRange(n, math.MaxInt, false, false)
}

// SkipLast drops the last n elements. n <= 0 returns s unchanged.
func SkipLast[T any](s Sequence[T], n int) Sequence[T] {
	if n <= 0 {
		return s
	}
	return s.TakeRange(0, n, false, true)
}

// Count enumerates s if needed and returns the exact element count.
func Count[T any](s Sequence[T]) int {
	n, _ := s.Count(false)
	return n
}

// ToList materializes s into a random-access list.
func ToList[T any](s Sequence[T]) *lists.Array[T] {
	return lists.Wrap(s.ToSlice())
}
