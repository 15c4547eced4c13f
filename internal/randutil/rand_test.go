package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()
	a, b := New(42), New(42)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestFromSeed(t *testing.T) {
	t.Parallel()

	_, used := FromSeed(7)
	assert.Equal(t, int64(7), used)

	_, used = FromSeed(0)
	assert.NotZero(t, used)
}

func TestDerive(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Derive(5, 1), Derive(5, 1))
	assert.NotEqual(t, Derive(5, 0), Derive(5, 1))
	assert.NotEqual(t, Derive(5, 0), Derive(6, 0))
}
