package tui

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/blackjack"
)

// QuitMsg is a custom message to signal quit
type QuitMsg struct{}

// TUIModel is the Bubble Tea model. It only draws frames produced by the host
// loop and forwards key presses to the adapter; it never touches the round.
type TUIModel struct {
	adapter *Adapter
	keys    KeyMap
	help    help.Model
	cards   *CardCache
	logger  *log.Logger

	frame    Frame
	quitting bool

	width  int
	height int
}

// NewTUIModel creates the model
func NewTUIModel(adapter *Adapter, keys KeyMap, logger *log.Logger) *TUIModel {
	return &TUIModel{
		adapter: adapter,
		keys:    keys,
		help:    help.New(),
		cards:   NewCardCache(),
		logger:  logger.WithPrefix("tui"),
	}
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		m.quitting = true
		return m, tea.Quit

	case FrameMsg:
		m.frame = msg.Frame

	case tea.WindowSizeMsg:
		m.logger.Debug("Updating dimensions", "width", msg.Width, "height", msg.Height)
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if k, ok := m.keys.Lookup(msg); ok {
			m.logger.Debug("Key pressed", "key", k, "raw", msg.String())
			m.adapter.Press(k)
		}
	}

	return m, nil
}

// View renders the latest frame
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("♠ ♥ BlackJack ♦ ♣"))
	content.WriteString("\n\n")

	if m.frame.Seq == 0 {
		content.WriteString(InfoStyle.Render("Shuffling..."))
		content.WriteString("\n")
		return content.String()
	}

	table := make([]string, 0, len(m.frame.Hands)*2)
	for _, hand := range sortedHands(m.frame.Hands) {
		table = append(table, SeatLabelStyle.Render(seatLabel(hand.Seat)))
		table = append(table, m.cards.Hand(hand.Cards, hand.X))
	}
	tableStyle := TableStyle
	if m.width > 2 {
		tableStyle = tableStyle.Width(m.width - 2)
	}
	content.WriteString(tableStyle.Render(lipgloss.JoinVertical(lipgloss.Left, table...)))
	content.WriteString("\n")

	for _, msg := range sortedMessages(m.frame.Messages) {
		content.WriteString(messageStyle(msg.Text).Render(msg.Text))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(m.help.View(m.keys))
	return content.String()
}

// Frame returns the frame currently on screen
func (m *TUIModel) Frame() Frame {
	return m.frame
}

func seatLabel(p blackjack.Participant) string {
	if p == blackjack.DealerSeat {
		return "Casino"
	}
	return "Player"
}

func messageStyle(text string) lipgloss.Style {
	switch text {
	case blackjack.PlayerWinsText:
		return SuccessStyle
	case blackjack.CasinoWinsText:
		return ErrorStyle
	case blackjack.TieText:
		return WarningStyle
	default:
		return PromptStyle
	}
}

func sortedHands(hands []HandView) []HandView {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b HandView) int {
		return cmp.Compare(a.Y, b.Y)
	})
	return sorted
}

func sortedMessages(messages []MessageView) []MessageView {
	sorted := slices.Clone(messages)
	slices.SortStableFunc(sorted, func(a, b MessageView) int {
		return cmp.Compare(a.Rect.Y, b.Rect.Y)
	})
	return sorted
}
