package query_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyseq/lists"
	"lazyseq/query"
)

func TestFromBasics(t *testing.T) {
	s := query.From(slices.Values([]int{3, 1, 4}))

	assert.Equal(t, []int{3, 1, 4}, s.ToSlice())
	assert.Equal(t, 3, query.Count(s))

	_, cheap := s.Count(true)
	assert.False(t, cheap, "plain iterators cannot count cheaply")

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 3, first)

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, 4, last)

	v, ok := s.ElementAt(1, false)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = s.ElementAt(2, true)
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = s.ElementAt(3, false)
	assert.False(t, ok)
	_, ok = s.ElementAt(-1, false)
	assert.False(t, ok, "negative index is a not-found outcome, not a panic")
	_, ok = s.ElementAt(-1, true)
	assert.False(t, ok)
}

func TestElementAtIndexAtIntLimit(t *testing.T) {
	// An index of MaxInt can never resolve, from either direction; the
	// from-end lookback must report not-found instead of wrapping around.
	stages := map[string]query.Sequence[int]{
		"plain":     query.From(slices.Values([]int{1, 2, 3})),
		"selected":  query.Select(query.From(slices.Values([]int{1, 2, 3})), func(v int) int { return v }),
		"partition": query.Skip(query.From(slices.Values([]int{1, 2, 3})), 1),
	}
	for name, s := range stages {
		t.Run(name, func(t *testing.T) {
			_, ok := s.ElementAt(math.MaxInt, true)
			assert.False(t, ok)
			_, ok = s.ElementAt(math.MaxInt, false)
			assert.False(t, ok)
		})
	}
}

func TestFromSliceSharesNoMaterializedState(t *testing.T) {
	data := []int{1, 2, 3}
	s := query.FromSlice(data)

	out := s.ToSlice()
	out[0] = 99
	v, ok := s.ElementAt(0, false)
	require.True(t, ok)
	assert.Equal(t, 1, v, "materialized slice must be a fresh copy")

	n, cheap := s.Count(true)
	require.True(t, cheap)
	assert.Equal(t, 3, n)
}

func TestOfEmptyIsEmptySingleton(t *testing.T) {
	assert.Equal(t, query.Empty[int](), query.Of[int]())
	assert.Equal(t, query.Empty[string](), query.FromSlice[string](nil))
}

func TestFromListTracksLiveLength(t *testing.T) {
	list := lists.NewArray[int](4)
	list.Add(10, 20, 30)
	s := query.FromList(list)

	n, cheap := s.Count(true)
	require.True(t, cheap)
	assert.Equal(t, 3, n)

	list.Add(40)
	n, _ = s.Count(true)
	assert.Equal(t, 4, n, "length is re-read from the list")

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, 40, last)

	v, ok := s.ElementAt(1, true)
	require.True(t, ok)
	assert.Equal(t, 30, v)
}

func TestFromListWindowClampsAfterShrink(t *testing.T) {
	list := lists.NewArray[int](6)
	list.Add(0, 1, 2, 3, 4, 5)
	s := query.Skip(query.FromList(list), 2) // view of [2, 6)

	require.Equal(t, []int{2, 3, 4, 5}, s.ToSlice())

	list.Clear()
	list.Add(0, 1, 2)
	assert.Equal(t, []int{2}, s.ToSlice(), "window clamps to the shrunken list")

	list.Clear()
	assert.Nil(t, s.ToSlice())
	_, ok := s.First()
	assert.False(t, ok)
}

func TestRepeat(t *testing.T) {
	s := query.Repeat("x", 4)

	n, cheap := s.Count(true)
	require.True(t, cheap)
	assert.Equal(t, 4, n)
	assert.Equal(t, []string{"x", "x", "x", "x"}, s.ToSlice())

	v, ok := s.ElementAt(3, true)
	require.True(t, ok)
	assert.Equal(t, "x", v)
	_, ok = s.ElementAt(4, false)
	assert.False(t, ok)

	assert.Equal(t, []string{"x", "x"}, query.Take(s, 2).ToSlice())
	assert.Equal(t, query.Empty[string](), query.Repeat("x", 0))
}

func TestConstructorPanics(t *testing.T) {
	assert.Panics(t, func() { query.From[int](nil) })
	assert.Panics(t, func() { query.FromList[int](nil) })
	assert.Panics(t, func() { query.Repeat("x", -1) })
}
