package blackjack

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/require"
)

// scriptedDrawer deals a fixed sequence of cards, then reports exhaustion.
type scriptedDrawer struct {
	deck  *deck.Deck
	cards []string
	next  int
}

func newScriptedDrawer(d *deck.Deck, assetIDs ...string) *scriptedDrawer {
	return &scriptedDrawer{deck: d, cards: assetIDs}
}

func (s *scriptedDrawer) Draw(dealt *deck.DealtSet) (int, error) {
	if s.next >= len(s.cards) {
		return -1, deck.ErrExhausted
	}
	pos, ok := s.deck.Index(s.cards[s.next])
	if !ok {
		panic("unknown card in script: " + s.cards[s.next])
	}
	s.next++
	dealt.Add(pos)
	return pos, nil
}

// fixedDrawer returns the same position every time without recording it.
type fixedDrawer struct{ pos int }

func (f fixedDrawer) Draw(*deck.DealtSet) (int, error) {
	return f.pos, nil
}

type renderedHand struct {
	cards []deck.Card
	x, y  int
}

type recordingRenderer struct {
	messages []string
	rects    []Rect
	hands    map[Participant]renderedHand
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{hands: make(map[Participant]renderedHand)}
}

func (r *recordingRenderer) RenderHand(p Participant, cards []deck.Card, x, y int) {
	r.hands[p] = renderedHand{cards: cards, x: x, y: y}
}

func (r *recordingRenderer) RenderMessage(text string, rect Rect) {
	r.messages = append(r.messages, text)
	r.rects = append(r.rects, rect)
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// scriptedRound builds a round whose deals follow assetIDs in order:
// dealer card, two player cards, then any hits and dealer draws.
func scriptedRound(t *testing.T, assetIDs ...string) (*Round, *[]Outcome) {
	t.Helper()
	d := deck.Build()
	var outcomes []Outcome
	r := NewRound(d,
		WithDrawer(newScriptedDrawer(d, assetIDs...)),
		WithLogger(quietLogger()),
		WithOutcomeHook(func(o Outcome) { outcomes = append(outcomes, o) }),
	)
	return r, &outcomes
}

func tick(t *testing.T, r *Round, keys ...Key) *recordingRenderer {
	t.Helper()
	out := newRecordingRenderer()
	require.NoError(t, r.Tick(Keys(keys...), out))
	return out
}
