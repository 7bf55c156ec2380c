// Package comparers defines the ordering contract consumed by the query
// engine's order-by adapter.
package comparers

import "cmp"

// Comparer reports the relative order of a and b: negative when a sorts
// before b, zero when they tie, positive when a sorts after b.
type Comparer[T any] func(a, b T) int

// ByKey orders elements by an extracted key in its natural ascending order.
func ByKey[T any, K cmp.Ordered](key func(T) K) Comparer[T] {
	if key == nil {
		panic("comparers: ByKey requires a non-nil key function")
	}
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Reverse inverts the order defined by c. It swaps the arguments rather
// than negating the result, so a comparer returning math.MinInt stays safe.
func Reverse[T any](c Comparer[T]) Comparer[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Chain combines comparers with stable tie-breaking: each comparer is
// consulted in turn and the first non-zero answer wins.
func Chain[T any](cs ...Comparer[T]) Comparer[T] {
	return func(a, b T) int {
		for _, c := range cs {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}
