package query_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyseq/query"
)

func TestEmptyIsSharedIdentity(t *testing.T) {
	// Empty is a comparable zero-size value: every empty result of the same
	// element type is the same value under ==.
	assert.True(t, query.Empty[int]() == query.Empty[int]())

	empties := map[string]query.Sequence[int]{
		"TakeZero":        query.Take(query.Of(1, 2, 3), 0),
		"SkipPastEnd":     query.Skip(query.Of(1, 2, 3), 3),
		"InvertedWindow":  query.Of(1, 2, 3).TakeRange(2, 1, false, false),
		"WindowPastEnd":   query.Of(1, 2, 3).TakeRange(5, 9, false, false),
		"RangeZero":       query.Range(7, 0),
		"TakeOfEmpty":     query.Take(query.Empty[int](), 5),
		"SelectOfEmpty":   query.Select(query.Empty[int](), func(v int) int { return v }),
		"EmptyWindowed":   query.Empty[int]().TakeRange(1, 4, false, true),
		"ProvablyEmpty":   query.From(slices.Values([]int{1})).TakeRange(0, 0, true, false),
		"OrderedTakeZero": query.Take[int](query.OrderBy(query.Of(2, 1), func(v int) int { return v }), 0),
	}
	for name, s := range empties {
		t.Run(name, func(t *testing.T) {
			assert.True(t, s == query.Empty[int](), "got %T", s)
		})
	}
}

func TestEmptyBehavior(t *testing.T) {
	s := query.Empty[string]()

	n, cheap := s.Count(true)
	require.True(t, cheap)
	assert.Equal(t, 0, n)
	assert.Nil(t, s.ToSlice())

	_, ok := s.First()
	assert.False(t, ok)
	_, ok = s.Last()
	assert.False(t, ok)
	_, ok = s.ElementAt(0, false)
	assert.False(t, ok)
	_, ok = s.ElementAt(0, true)
	assert.False(t, ok)

	for range s.All() {
		t.Fatal("empty sequence yielded an element")
	}
}
