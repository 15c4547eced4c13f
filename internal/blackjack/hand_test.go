package blackjack

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handOf(t *testing.T, d *deck.Deck, assetIDs ...string) Hand {
	t.Helper()
	var h Hand
	for _, id := range assetIDs {
		pos, ok := d.Index(id)
		require.True(t, ok, "unknown card %s", id)
		h = append(h, pos)
	}
	return h
}

func TestScore(t *testing.T) {
	t.Parallel()
	d := deck.Build()

	tests := []struct {
		name  string
		cards []string
		want  int
	}{
		{"empty hand", nil, 0},
		{"single two", []string{"2_of_clubs"}, 2},
		{"ace and king", []string{"ace_of_spades", "king_of_hearts"}, 21},
		{"two aces count 22", []string{"ace_of_spades", "ace_of_hearts"}, 22},
		{"faces", []string{"jack_of_clubs", "queen_of_diamonds", "king_of_spades"}, 30},
		{"mixed", []string{"5_of_hearts", "10_of_clubs", "3_of_spades"}, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handOf(t, d, tt.cards...)
			assert.Equal(t, tt.want, Score(d, h))

			sum := 0
			for _, c := range h.Cards(d) {
				sum += c.Score()
			}
			assert.Equal(t, sum, Score(d, h))
		})
	}
}

func TestScoreIsOrderIndependent(t *testing.T) {
	t.Parallel()
	d := deck.Build()

	h := handOf(t, d, "ace_of_clubs", "7_of_hearts", "queen_of_spades", "2_of_diamonds")
	reversed := make(Hand, len(h))
	for i, pos := range h {
		reversed[len(h)-1-i] = pos
	}

	assert.Equal(t, Score(d, h), Score(d, reversed))
}

func TestIsNatural(t *testing.T) {
	t.Parallel()
	d := deck.Build()

	assert.True(t, IsNatural(d, handOf(t, d, "ace_of_spades", "10_of_hearts")))
	assert.False(t, IsNatural(d, handOf(t, d, "5_of_spades", "6_of_hearts", "10_of_clubs")))
	assert.False(t, IsNatural(d, handOf(t, d, "ace_of_spades", "9_of_hearts")))
}

func TestIsBust(t *testing.T) {
	t.Parallel()
	assert.False(t, IsBust(21))
	assert.True(t, IsBust(22))
}

func TestHandPositionsReturnsCopy(t *testing.T) {
	t.Parallel()
	h := Hand{1, 2, 3}
	p := h.Positions()
	p[0] = 9
	assert.Equal(t, 1, h[0])
}
