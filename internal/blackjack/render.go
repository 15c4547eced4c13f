package blackjack

import "github.com/lox/blackjack/internal/deck"

// Participant identifies whose hand is being rendered
type Participant uint8

const (
	PlayerSeat Participant = iota
	DealerSeat
)

func (p Participant) String() string {
	if p == DealerSeat {
		return "dealer"
	}
	return "player"
}

// Rect is an area on the board, in board units
type Rect struct {
	X, Y int
	W, H int
}

// Renderer is the presentation surface a Round draws onto each tick.
// Implementations are expected to succeed; the round never retries.
type Renderer interface {
	RenderHand(p Participant, cards []deck.Card, x, y int)
	RenderMessage(text string, rect Rect)
}

// discardRenderer drops everything. Used when Tick is given a nil Renderer.
type discardRenderer struct{}

func (discardRenderer) RenderHand(Participant, []deck.Card, int, int) {}
func (discardRenderer) RenderMessage(string, Rect)                    {}
