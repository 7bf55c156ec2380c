package comparers_test

import (
	"math"
	"testing"

	"lazyseq/comparers"
)

type item struct {
	group int
	name  string
}

func TestByKey(t *testing.T) {
	c := comparers.ByKey(func(i item) int { return i.group })

	if got := c(item{1, "a"}, item{2, "b"}); got >= 0 {
		t.Errorf("expected negative, got %d", got)
	}
	if got := c(item{2, "a"}, item{1, "b"}); got <= 0 {
		t.Errorf("expected positive, got %d", got)
	}
	if got := c(item{1, "a"}, item{1, "b"}); got != 0 {
		t.Errorf("expected zero, got %d", got)
	}
}

func TestByKey_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil key function")
		}
	}()
	comparers.ByKey[item, int](nil)
}

func TestReverse(t *testing.T) {
	c := comparers.Reverse(comparers.ByKey(func(v int) int { return v }))

	if got := c(1, 2); got <= 0 {
		t.Errorf("expected positive, got %d", got)
	}
	if got := c(2, 1); got >= 0 {
		t.Errorf("expected negative, got %d", got)
	}

	// Reverse swaps arguments instead of negating, so a comparer that
	// returns MinInt cannot overflow.
	minInt := comparers.Reverse(comparers.Comparer[int](func(a, b int) int {
		if a < b {
			return math.MinInt
		}
		if a > b {
			return 1
		}
		return 0
	}))
	if got := minInt(1, 2); got <= 0 {
		t.Errorf("expected positive, got %d", got)
	}
}

func TestChain(t *testing.T) {
	c := comparers.Chain(
		comparers.ByKey(func(i item) int { return i.group }),
		comparers.ByKey(func(i item) string { return i.name }),
	)

	if got := c(item{1, "z"}, item{2, "a"}); got >= 0 {
		t.Errorf("primary key must win: got %d", got)
	}
	if got := c(item{1, "a"}, item{1, "b"}); got >= 0 {
		t.Errorf("tie-break must apply: got %d", got)
	}
	if got := c(item{1, "a"}, item{1, "a"}); got != 0 {
		t.Errorf("full tie must be zero: got %d", got)
	}
}
