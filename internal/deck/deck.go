package deck

// Size is the number of cards in a standard deck
const Size = len(Ranks) * len(Suits)

// Deck is the fixed, ordered sequence of all 52 cards. It is built once and
// never mutated; hands and dealt sets refer to cards by position.
type Deck struct {
	cards [Size]Card
	index map[string]int
}

// Build creates the deck in rank-major, suit-minor order:
// 2 of clubs, 2 of diamonds, 2 of hearts, 2 of spades, 3 of clubs, ...
func Build() *Deck {
	d := &Deck{
		index: make(map[string]int, Size),
	}

	i := 0
	for _, rank := range Ranks {
		for _, suit := range Suits {
			d.cards[i] = NewCard(rank, suit)
			d.index[d.cards[i].AssetID()] = i
			i++
		}
	}

	return d
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// At returns the card at a deck position. It panics if pos is out of range.
func (d *Deck) At(pos int) Card {
	return d.cards[pos]
}

// Cards returns a copy of the deck contents in order
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards[:])
	return cards
}

// Index returns the deck position of the card with the given asset id
func (d *Deck) Index(assetID string) (int, bool) {
	pos, ok := d.index[assetID]
	return pos, ok
}

// Lookup returns the cards at the given positions
func (d *Deck) Lookup(positions []int) []Card {
	cards := make([]Card, len(positions))
	for i, pos := range positions {
		cards[i] = d.cards[pos]
	}
	return cards
}
