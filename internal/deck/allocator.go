package deck

import (
	"errors"
	"fmt"
	"math/bits"
	rand "math/rand/v2"
)

// ErrExhausted is returned when every deck position has already been dealt.
var ErrExhausted = errors.New("deck exhausted")

// maxDrawAttempts bounds rejection sampling before falling back to picking
// from the remaining free positions.
const maxDrawAttempts = 64

// DealtSet records the deck positions drawn during a round.
// Positions are stored as bits, so decks are limited to 64 cards.
type DealtSet uint64

// Add marks a position as dealt. It returns false if the position is out of
// range or was already dealt.
func (s *DealtSet) Add(pos int) bool {
	if pos < 0 || pos >= 64 || s.Contains(pos) {
		return false
	}
	*s |= DealtSet(1) << pos
	return true
}

// Contains reports whether a position has been dealt
func (s DealtSet) Contains(pos int) bool {
	if pos < 0 || pos >= 64 {
		return false
	}
	return s&(DealtSet(1)<<pos) != 0
}

// Len returns the number of dealt positions
func (s DealtSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Reset empties the set
func (s *DealtSet) Reset() {
	*s = 0
}

// Positions returns the dealt positions in ascending order
func (s DealtSet) Positions() []int {
	positions := make([]int, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		positions = append(positions, bits.TrailingZeros64(rest))
	}
	return positions
}

// Allocator draws undealt deck positions uniformly at random
type Allocator struct {
	size int
	rng  *rand.Rand
}

// NewAllocator creates an allocator for a deck of the given size
func NewAllocator(size int, rng *rand.Rand) *Allocator {
	if rng == nil {
		panic("rng is required for allocator creation")
	}
	if size <= 0 || size > 64 {
		panic(fmt.Sprintf("deck size %d out of range 1-64", size))
	}
	return &Allocator{size: size, rng: rng}
}

// Draw picks a position not yet in dealt, records it and returns it.
// It returns ErrExhausted when no position is left.
func (a *Allocator) Draw(dealt *DealtSet) (int, error) {
	remaining := a.size - dealt.Len()
	if remaining <= 0 {
		return -1, ErrExhausted
	}

	for range maxDrawAttempts {
		pos := a.rng.IntN(a.size)
		if dealt.Add(pos) {
			return pos, nil
		}
	}

	// Resampling kept hitting dealt cards; choose among the free ones.
	free := make([]int, 0, remaining)
	for pos := range a.size {
		if !dealt.Contains(pos) {
			free = append(free, pos)
		}
	}
	if len(free) == 0 {
		return -1, ErrExhausted
	}
	pos := free[a.rng.IntN(len(free))]
	dealt.Add(pos)
	return pos, nil
}
