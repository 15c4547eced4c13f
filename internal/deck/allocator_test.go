package deck

import (
	"errors"
	"testing"

	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealtSet(t *testing.T) {
	t.Parallel()
	var s DealtSet

	assert.True(t, s.Add(3))
	assert.True(t, s.Add(51))
	assert.False(t, s.Add(3), "duplicate add")
	assert.False(t, s.Add(-1))
	assert.False(t, s.Add(64))

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(51))
	assert.False(t, s.Contains(4))
	assert.Equal(t, []int{3, 51}, s.Positions())

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Positions())
}

func TestAllocatorDrawsWholeDeck(t *testing.T) {
	t.Parallel()
	a := NewAllocator(Size, randutil.New(7))
	var dealt DealtSet

	seen := make(map[int]bool)
	for n := 1; n <= Size; n++ {
		pos, err := a.Draw(&dealt)
		require.NoError(t, err)
		require.GreaterOrEqual(t, pos, 0)
		require.Less(t, pos, Size)
		require.False(t, seen[pos], "position %d drawn twice", pos)
		seen[pos] = true
		require.Equal(t, n, dealt.Len())
		require.True(t, dealt.Contains(pos))
	}

	pos, err := a.Draw(&dealt)
	assert.True(t, errors.Is(err, ErrExhausted))
	assert.Equal(t, -1, pos)
	assert.Equal(t, Size, dealt.Len())
}

func TestAllocatorNeverRedrawsDealt(t *testing.T) {
	t.Parallel()
	a := NewAllocator(Size, randutil.New(99))

	// Leave a single free position so the fallback path is exercised.
	var dealt DealtSet
	for pos := range Size {
		if pos != 17 {
			dealt.Add(pos)
		}
	}

	pos, err := a.Draw(&dealt)
	require.NoError(t, err)
	assert.Equal(t, 17, pos)
	assert.Equal(t, Size, dealt.Len())
}

func TestAllocatorIsReproducible(t *testing.T) {
	t.Parallel()
	draw := func(seed int64) []int {
		a := NewAllocator(Size, randutil.New(seed))
		var dealt DealtSet
		var out []int
		for range 10 {
			pos, err := a.Draw(&dealt)
			require.NoError(t, err)
			out = append(out, pos)
		}
		return out
	}

	assert.Equal(t, draw(42), draw(42))
}

func TestAllocatorCoversAllPositions(t *testing.T) {
	t.Parallel()
	a := NewAllocator(Size, randutil.New(1))

	hits := make([]int, Size)
	for range 5000 {
		var dealt DealtSet
		pos, err := a.Draw(&dealt)
		require.NoError(t, err)
		hits[pos]++
	}
	for pos, n := range hits {
		assert.Positive(t, n, "position %d never drawn", pos)
	}
}

func TestNewAllocatorValidation(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewAllocator(Size, nil) })
	assert.Panics(t, func() { NewAllocator(0, randutil.New(1)) })
	assert.Panics(t, func() { NewAllocator(65, randutil.New(1)) })
}
