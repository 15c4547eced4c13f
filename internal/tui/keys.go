package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/config"
)

// KeyMap binds terminal keys to game keys
type KeyMap struct {
	Hit     key.Binding
	Stand   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// NewKeyMap builds bindings from configuration
func NewKeyMap(cfg *config.KeySettings) KeyMap {
	return KeyMap{
		Hit:     binding(cfg.Hit, "hit"),
		Stand:   binding(cfg.Stand, "stand"),
		Restart: binding(cfg.Restart, "restart"),
		Quit:    binding(cfg.Quit, "quit"),
	}
}

// DefaultKeyMap returns F/E/N with Esc or Ctrl+C to quit
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// Lookup maps a key press onto a game key
func (k KeyMap) Lookup(msg tea.KeyMsg) (blackjack.Key, bool) {
	switch {
	case key.Matches(msg, k.Hit):
		return blackjack.Hit, true
	case key.Matches(msg, k.Stand):
		return blackjack.Stand, true
	case key.Matches(msg, k.Restart):
		return blackjack.Restart, true
	case key.Matches(msg, k.Quit):
		return blackjack.Quit, true
	}
	return 0, false
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hit, k.Stand, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
