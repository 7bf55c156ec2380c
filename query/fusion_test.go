package query

import (
	"math"
	"slices"
	"testing"
)

// The dispatch in Select and TakeRange must pick the specialized stage, and
// composing two selects must stay one stage deep. These tests pin the
// concrete types, not just the elements.

func TestSelectPicksSpecializedStage(t *testing.T) {
	double := func(v int) int { return v * 2 }

	t.Run("SliceSource", func(t *testing.T) {
		s := Select(Of(1, 2, 3), double)
		if _, ok := s.(*sliceSelect[int]); !ok {
			t.Fatalf("select over slice: got %T", s)
		}
	})

	t.Run("RangeSource", func(t *testing.T) {
		s := Select(Range(0, 5), double)
		if _, ok := s.(*rangeSelect[int]); !ok {
			t.Fatalf("select over range: got %T", s)
		}
	})

	t.Run("PartitionSource", func(t *testing.T) {
		src := Skip(From(slices.Values([]int{1, 2, 3, 4})), 1)
		if _, ok := src.(*seqPartition[int]); !ok {
			t.Fatalf("skip over plain source: got %T", src)
		}
		s := Select(src, double)
		if _, ok := s.(*partitionSelect[int]); !ok {
			t.Fatalf("select over partition: got %T", s)
		}
	})

	t.Run("EmptySource", func(t *testing.T) {
		s := Select(Empty[int](), double)
		if s != Empty[int]() {
			t.Fatalf("select over empty: got %T", s)
		}
	})
}

func TestSelectComposesWithoutNesting(t *testing.T) {
	f := func(v int) int { return v + 1 }

	t.Run("Slice", func(t *testing.T) {
		s := Select(Select(Of(1, 2, 3), f), f)
		if _, ok := s.(*sliceSelect[int]); !ok {
			t.Fatalf("composed slice select: got %T", s)
		}
	})

	t.Run("Range", func(t *testing.T) {
		s := Select(Select(Range(0, 3), f), f)
		if _, ok := s.(*rangeSelect[int]); !ok {
			t.Fatalf("composed range select: got %T", s)
		}
	})

	t.Run("Plain", func(t *testing.T) {
		src := From(slices.Values([]int{1, 2}))
		s := Select(Select(src, f), f)
		if _, ok := s.(*seqSelect[int]); !ok {
			t.Fatalf("composed plain select: got %T", s)
		}
	})

	t.Run("Partition", func(t *testing.T) {
		src := Skip(From(slices.Values([]int{1, 2, 3})), 1)
		s := Select(Select(src, f), f)
		if _, ok := s.(*partitionSelect[int]); !ok {
			t.Fatalf("composed partition select: got %T", s)
		}
	})
}

func TestTakeRangePicksCheapestRepresentation(t *testing.T) {
	t.Run("SliceReslices", func(t *testing.T) {
		s := Of(1, 2, 3, 4).TakeRange(1, 3, false, false)
		ss, ok := s.(*sliceSequence[int])
		if !ok {
			t.Fatalf("window over slice: got %T", s)
		}
		if !slices.Equal(ss.data, []int{2, 3}) {
			t.Fatalf("window contents: %v", ss.data)
		}
	})

	t.Run("RangeNarrows", func(t *testing.T) {
		s := Take(Skip(Range(0, 10), 2), 5)
		r, ok := s.(*rangeSequence)
		if !ok {
			t.Fatalf("window over range: got %T", s)
		}
		if r.lo != 2 || r.n != 5 {
			t.Fatalf("range bounds: start=%d n=%d", r.lo, r.n)
		}
	})

	t.Run("FullWindowIsIdentity", func(t *testing.T) {
		s := Of(1, 2, 3)
		if got := s.TakeRange(0, math.MaxInt, false, false); got != s {
			t.Fatalf("full window returned a new stage: %T", got)
		}
	})

	t.Run("SelectOverSliceWindowsWithoutPartition", func(t *testing.T) {
		s := Take(Select(Of(1, 2, 3, 4), func(v int) int { return v * v }), 2)
		if _, ok := s.(*windowSelect[int]); !ok {
			t.Fatalf("window over slice select: got %T", s)
		}
	})

	t.Run("SkipSkipFlattens", func(t *testing.T) {
		src := From(slices.Values([]int{0, 1, 2, 3, 4, 5}))
		s := Skip(Skip(src, 1), 2)
		p, ok := s.(*seqPartition[int])
		if !ok {
			t.Fatalf("skip+skip: got %T", s)
		}
		if p.source != src {
			t.Fatalf("skip+skip nested instead of flattening")
		}
		if p.win.start != 3 {
			t.Fatalf("flattened start: %d", p.win.start)
		}
	})

	t.Run("RepeatedSkipSaturates", func(t *testing.T) {
		// Skipping past MaxInt elements in total can never leave anything:
		// the saturated window collapses to the shared empty value instead
		// of nesting partitions.
		src := From(slices.Values([]int{1}))
		s := Skip(Skip(src, math.MaxInt-1), 5)
		if s != Empty[int]() {
			t.Fatalf("saturated skip: got %T", s)
		}
	})
}
