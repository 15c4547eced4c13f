package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/host"
)

// Session runs a Bubble Tea program alongside the host frame loop
type Session struct {
	program *tea.Program
	loop    *host.Loop
	logger  *log.Logger
}

// NewSession wires the adapter to a new program. Extra program options (for
// example tea.WithInput in tests) are passed through.
func NewSession(model *TUIModel, loop *host.Loop, logger *log.Logger, opts ...tea.ProgramOption) *Session {
	program := tea.NewProgram(model, opts...)
	model.adapter.Attach(program.Send)

	return &Session{
		program: program,
		loop:    loop,
		logger:  logger.WithPrefix("session"),
	}
}

// Run blocks until the player quits. The frame loop runs in its own goroutine
// and stops the program when it exits; closing the program cancels the loop.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopErr := make(chan error, 1)
	go func() {
		err := s.loop.Run(ctx)
		s.program.Send(QuitMsg{})
		loopErr <- err
	}()

	if _, err := s.program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	s.logger.Info("TUI exited")

	cancel()
	return <-loopErr
}
