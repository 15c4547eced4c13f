package tui

import (
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
)

// HandView is a hand as rendered in one frame
type HandView struct {
	Seat  blackjack.Participant
	Cards []deck.Card
	X, Y  int
}

// MessageView is a line of text placed on the board
type MessageView struct {
	Text string
	Rect blackjack.Rect
}

// Frame is everything the round rendered during one tick
type Frame struct {
	Seq      int
	Hands    []HandView
	Messages []MessageView
}

// FrameMsg delivers a presented frame to the Bubble Tea model
type FrameMsg struct {
	Frame Frame
}

// Adapter is the terminal Presentation Adapter. The host loop calls it from
// its own goroutine; the Bubble Tea model feeds it key presses.
type Adapter struct {
	logger *log.Logger

	mu      sync.Mutex
	pressed blackjack.KeySet
	send    func(tea.Msg)

	// Only touched from the host loop goroutine.
	building Frame
	last     Frame
	seq      int
}

// NewAdapter creates an adapter. Frames are dropped until Attach is called.
func NewAdapter(logger *log.Logger) *Adapter {
	return &Adapter{logger: logger.WithPrefix("tui")}
}

// Attach sets where presented frames are sent, usually (*tea.Program).Send
func (a *Adapter) Attach(send func(tea.Msg)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.send = send
}

// Press records a key until the next poll
func (a *Adapter) Press(k blackjack.Key) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pressed = a.pressed.With(k)
}

// PollPressedKeys returns and clears the keys pressed since the last poll
func (a *Adapter) PollPressedKeys() blackjack.KeySet {
	a.mu.Lock()
	defer a.mu.Unlock()
	keys := a.pressed
	a.pressed = 0
	return keys
}

// BeginFrame starts collecting a new frame
func (a *Adapter) BeginFrame() {
	a.building = Frame{}
}

// RenderHand implements blackjack.Renderer
func (a *Adapter) RenderHand(p blackjack.Participant, cards []deck.Card, x, y int) {
	a.building.Hands = append(a.building.Hands, HandView{
		Seat:  p,
		Cards: slices.Clone(cards),
		X:     x,
		Y:     y,
	})
}

// RenderMessage implements blackjack.Renderer
func (a *Adapter) RenderMessage(text string, rect blackjack.Rect) {
	a.building.Messages = append(a.building.Messages, MessageView{Text: text, Rect: rect})
}

// Present sends the finished frame to the program. Frames identical to the
// previous one are not resent.
func (a *Adapter) Present() {
	frame := a.building
	if a.seq > 0 && sameFrame(frame, a.last) {
		return
	}

	a.seq++
	frame.Seq = a.seq
	a.last = frame

	a.mu.Lock()
	send := a.send
	a.mu.Unlock()

	if send == nil {
		return
	}
	a.logger.Debug("Presenting frame", "seq", frame.Seq, "hands", len(frame.Hands), "messages", len(frame.Messages))
	send(FrameMsg{Frame: frame})
}

// Presented returns how many distinct frames have been presented
func (a *Adapter) Presented() int {
	return a.seq
}

func sameFrame(a, b Frame) bool {
	if !slices.Equal(a.Messages, b.Messages) || len(a.Hands) != len(b.Hands) {
		return false
	}
	for i := range a.Hands {
		x, y := a.Hands[i], b.Hands[i]
		if x.Seat != y.Seat || x.X != y.X || x.Y != y.Y || !slices.Equal(x.Cards, y.Cards) {
			return false
		}
	}
	return true
}
