package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
)

const cardFaceWidth = 5

// CardCache renders each card face once and reuses it, keyed by asset id.
type CardCache struct {
	faces map[string]string
}

// NewCardCache creates an empty cache
func NewCardCache() *CardCache {
	return &CardCache{faces: make(map[string]string)}
}

// Face returns the rendered face for a card
func (c *CardCache) Face(card deck.Card) string {
	id := card.AssetID()
	if face, ok := c.faces[id]; ok {
		return face
	}

	face := renderFace(card)
	c.faces[id] = face
	return face
}

// Len returns how many faces are cached
func (c *CardCache) Len() int {
	return len(c.faces)
}

// Hand renders cards side by side, offset by the hand's board origin.
func (c *CardCache) Hand(cards []deck.Card, x int) string {
	if len(cards) == 0 {
		return InfoStyle.Render("(no cards)")
	}

	faces := make([]string, 0, len(cards)+1)
	if cols := boardColumns(x); cols > 0 {
		faces = append(faces, strings.Repeat(" ", cols))
	}
	for _, card := range cards {
		faces = append(faces, c.Face(card))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, faces...)
}

func renderFace(card deck.Card) string {
	pip := BlackCardStyle
	if card.IsRed() {
		pip = RedCardStyle
	}

	label := card.Rank.Label()
	lines := []string{
		fmt.Sprintf("%-*s", cardFaceWidth, label),
		fmt.Sprintf("%*s", (cardFaceWidth+1)/2, card.Suit.Symbol()) + strings.Repeat(" ", cardFaceWidth/2),
		fmt.Sprintf("%*s", cardFaceWidth, label),
	}
	return CardFrameStyle.Render(pip.Render(strings.Join(lines, "\n")))
}

// boardColumns converts a board x coordinate to terminal columns, one card
// width on the board being one rendered card face.
func boardColumns(x int) int {
	if x <= 0 {
		return 0
	}
	return x * (cardFaceWidth + 2) / blackjack.CardWidth
}
