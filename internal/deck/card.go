package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. Suits carry no scoring meaning.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in deck order.
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// Name returns the lowercase suit name used in asset identifiers
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in deck order.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Score returns the blackjack value of the rank. Aces always count 11.
func (r Rank) Score() int {
	switch {
	case r >= Two && r <= Ten:
		return int(r)
	case r == Jack, r == Queen, r == King:
		return 10
	case r == Ace:
		return 11
	default:
		return 0
	}
}

// Name returns the lowercase rank name used in asset identifiers
func (r Rank) Name() string {
	switch r {
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Ace:
		return "ace"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "unknown"
}

// Label returns the short corner label printed on a card face
func (r Rank) Label() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Score returns the card's contribution to a hand total
func (c Card) Score() int {
	return c.Rank.Score()
}

// AssetID returns the display asset identifier, e.g. "ace_of_spades".
// Presentation adapters key their image or glyph caches on this value.
func (c Card) AssetID() string {
	return c.Rank.Name() + "_of_" + c.Suit.Name()
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return c.Rank.Label() + c.Suit.Symbol()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseAssetID parses an identifier produced by Card.AssetID
func ParseAssetID(id string) (Card, error) {
	rankName, suitName, ok := strings.Cut(id, "_of_")
	if !ok {
		return Card{}, fmt.Errorf("invalid asset id: %q", id)
	}

	var card Card
	found := false
	for _, r := range Ranks {
		if r.Name() == rankName {
			card.Rank = r
			found = true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("invalid rank in asset id %q: %s", id, rankName)
	}

	found = false
	for _, s := range Suits {
		if s.Name() == suitName {
			card.Suit = s
			found = true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("invalid suit in asset id %q: %s", id, suitName)
	}

	return card, nil
}
