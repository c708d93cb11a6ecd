package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan(t *testing.T) {
	cases := []struct {
		h          int
		start, end int
	}{
		{0, 0, 0},
		{1, 1, 2},
		{2, 3, 5},
		{3, 6, 9},
		{4, 10, 14},
		{5, 15, 20},
		{100, 5050, 5150},
	}

	for _, c := range cases {
		start, end := Span(c.h)
		assert.Equal(t, c.start, start, "start of level %d", c.h)
		assert.Equal(t, c.end, end, "end of level %d", c.h)
	}
}

func TestSpan_SizeMatchesLevelPlusOne(t *testing.T) {
	for h := 0; h < 100; h++ {
		start, end := Span(h)
		assert.Equal(t, h+1, end-start+1)
	}
}

func TestSpan_NegativeLevelPanics(t *testing.T) {
	assert.Panics(t, func() { Span(-1) })
}

func TestLevelOf(t *testing.T) {
	cases := []struct {
		i int
		h int
	}{
		{0, 0},
		{1, 1}, {2, 1},
		{3, 2}, {4, 2}, {5, 2},
		{6, 3}, {9, 3},
		{10, 4}, {14, 4},
		{5150, 100}, {5050, 100},
	}

	for _, c := range cases {
		assert.Equal(t, c.h, LevelOf(c.i), "level of index %d", c.i)
	}
}

func TestLevelOf_AgreesWithSpanForEveryIndexInLevel(t *testing.T) {
	for h := 0; h < 50; h++ {
		start, end := Span(h)
		for i := start; i <= end; i++ {
			assert.Equal(t, h, LevelOf(i), "index %d in level %d", i, h)
		}
	}
}

func TestParents_RootHasNone(t *testing.T) {
	_, hasLeft, _, hasRight := Parents(0)
	assert.False(t, hasLeft)
	assert.False(t, hasRight)
}

func TestParents_LeftmostColumnHasOnlyRightParent(t *testing.T) {
	// Index 1 is (level 1, column 0): leftmost column of level 1.
	left, hasLeft, right, hasRight := Parents(1)
	assert.False(t, hasLeft)
	assert.True(t, hasRight)
	assert.Equal(t, 0, right)
	_ = left
}

func TestParents_RightmostColumnHasOnlyLeftParent(t *testing.T) {
	// Index 2 is (level 1, column 1): rightmost column of level 1.
	left, hasLeft, _, hasRight := Parents(2)
	assert.True(t, hasLeft)
	assert.False(t, hasRight)
	assert.Equal(t, 0, left)
}

func TestParents_InteriorElementIsBiparental(t *testing.T) {
	// Index 4 is (level 2, column 1): an interior column with both parents.
	left, hasLeft, right, hasRight := Parents(4)
	assert.True(t, hasLeft)
	assert.True(t, hasRight)
	assert.Equal(t, 1, left)  // (level 1, column 0)
	assert.Equal(t, 2, right) // (level 1, column 1)
}

func TestChildren_EveryChildReportsParentBack(t *testing.T) {
	const n = 200
	for i := 0; i < n; i++ {
		left, hasLeft, right, hasRight := Children(i, n)
		if hasLeft {
			pl, hl, pr, hr := Parents(left)
			assert.True(t, (hl && pl == i) || (hr && pr == i), "left child %d of %d doesn't report %d as a parent", left, i, i)
		}
		if hasRight {
			pl, hl, pr, hr := Parents(right)
			assert.True(t, (hl && pl == i) || (hr && pr == i), "right child %d of %d doesn't report %d as a parent", right, i, i)
		}
	}
}

func TestChildren_BeyondLengthAreReportedAbsent(t *testing.T) {
	_, hasLeft, _, hasRight := Children(0, 1)
	assert.False(t, hasLeft)
	assert.False(t, hasRight)
}
