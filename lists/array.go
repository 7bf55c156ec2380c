// Package lists provides the random-access list and the growable buffer the
// query engine materializes into.
package lists

import (
	"fmt"
	"iter"
	"slices"
)

var ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")

// Array is a growable random-access list. It satisfies the engine's
// random-access contract (Len/At), so a materialized Array can be fed back
// into a query chain without losing O(1) indexing.
type Array[T any] struct {
	data []T
}

// NewArray creates an Array with the given initial capacity.
func NewArray[T any](initialCapacity int) *Array[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &Array[T]{data: make([]T, 0, initialCapacity)}
}

// Wrap takes ownership of data and exposes it as an Array without copying.
func Wrap[T any](data []T) *Array[T] {
	return &Array[T]{data: data}
}

// Add appends one or more elements to the end of the list.
func (a *Array[T]) Add(values ...T) {
	a.data = append(a.data, values...)
}

// At returns the element at index. It panics when index is out of range;
// use Get for the checked variant.
func (a *Array[T]) At(index int) T {
	return a.data[index]
}

// Get retrieves the element at index.
// Returns ErrIndexOutOfBounds if index is out of bounds.
func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(a.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return a.data[index], nil
}

// Set modifies the element at index.
// Returns ErrIndexOutOfBounds if index is out of bounds.
func (a *Array[T]) Set(index int, value T) error {
	if index < 0 || index >= len(a.data) {
		return ErrIndexOutOfBounds
	}
	a.data[index] = value
	return nil
}

// Len returns the current number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// IsEmpty checks if the list is empty.
func (a *Array[T]) IsEmpty() bool {
	return len(a.data) == 0
}

// Clear clears the list and releases element references.
func (a *Array[T]) Clear() {
	clear(a.data)
	a.data = a.data[:0]
}

// ToSlice returns a copy of the elements as a native slice.
func (a *Array[T]) ToSlice() []T {
	return slices.Clone(a.data)
}

// Values iterates the elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return slices.Values(a.data)
}

// String implements fmt.Stringer for easier debugging.
func (a *Array[T]) String() string {
	return fmt.Sprintf("%v", a.data)
}
