package blackjack

import "github.com/lox/blackjack/internal/deck"

// Hand is an ordered list of deck positions held by one participant
type Hand []int

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h)
}

// Positions returns a copy of the deck positions in deal order
func (h Hand) Positions() []int {
	positions := make([]int, len(h))
	copy(positions, h)
	return positions
}

// Cards resolves the hand against a deck
func (h Hand) Cards(d *deck.Deck) []deck.Card {
	return d.Lookup(h)
}

// Score sums the rank scores of the cards in a hand. There is no soft Ace.
func Score(d *deck.Deck, h Hand) int {
	total := 0
	for _, pos := range h {
		total += d.At(pos).Score()
	}
	return total
}

// IsBust reports whether a score exceeds the target
func IsBust(score int) bool {
	return score > TargetScore
}

// IsNatural reports whether a hand is a two-card 21
func IsNatural(d *deck.Deck, h Hand) bool {
	return len(h) == 2 && Score(d, h) == TargetScore
}
