package query_test

import (
	"slices"
	"testing"

	"lazyseq/query"
)

// BenchmarkWindowedMaterialize compares materializing a windowed chain over
// sources with and without cheap capabilities.
func BenchmarkWindowedMaterialize(b *testing.B) {
	size := 1_000_000
	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = i
	}

	b.Run("Slice", func(b *testing.B) {
		for b.Loop() {
			_ = query.Take(query.Skip(query.FromSlice(input), size/2), 1000).ToSlice()
		}
	})

	b.Run("Plain", func(b *testing.B) {
		for b.Loop() {
			_ = query.Take(query.Skip(query.From(slices.Values(input)), size/2), 1000).ToSlice()
		}
	})

	b.Run("Range", func(b *testing.B) {
		for b.Loop() {
			_ = query.Take(query.Skip(query.Range(0, size), size/2), 1000).ToSlice()
		}
	})
}

// BenchmarkTakeLast exercises the trailing ring against a source that does
// not report its length.
func BenchmarkTakeLast(b *testing.B) {
	size := 100_000
	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = i
	}

	for b.Loop() {
		_ = query.TakeLast(query.From(slices.Values(input)), 64).ToSlice()
	}
}

// BenchmarkSelectCount measures the projected count paths: the cheap path
// answers from shape alone, the full path runs the projection per element.
func BenchmarkSelectCount(b *testing.B) {
	s := query.Select(query.Range(0, 1_000_000), func(v int) int { return v * 2 })

	b.Run("Cheap", func(b *testing.B) {
		for b.Loop() {
			_, _ = s.Count(true)
		}
	})

	b.Run("Full", func(b *testing.B) {
		for b.Loop() {
			_, _ = s.Count(false)
		}
	})
}

// BenchmarkOrderedElementAt compares selecting one sorted position against
// paying for the full sort.
func BenchmarkOrderedElementAt(b *testing.B) {
	size := 100_000
	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = (i * 7919) % size
	}
	ord := query.OrderBy(query.FromSlice(input), func(v int) int { return v })

	b.Run("Select", func(b *testing.B) {
		for b.Loop() {
			_, _ = ord.ElementAt(size/2, false)
		}
	})

	b.Run("FullSort", func(b *testing.B) {
		for b.Loop() {
			_ = ord.ToSlice()[size/2]
		}
	})
}
