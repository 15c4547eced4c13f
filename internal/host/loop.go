// Package host runs the frame loop that owns a blackjack.Round: it polls
// input, ticks the round and presents each frame at a fixed rate.
package host

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/blackjack"
)

// DefaultTickRate is the target frame rate in ticks per second
const DefaultTickRate = 60

// Input reports keys pressed since the previous call
type Input interface {
	PollPressedKeys() blackjack.KeySet
}

// Presenter is a Renderer with frame boundaries. BeginFrame is called before
// the round renders and Present once it has finished.
type Presenter interface {
	blackjack.Renderer
	BeginFrame()
	Present()
}

var errQuit = errors.New("quit requested")

// Loop drives a Round from an Input onto a Presenter
type Loop struct {
	round     *blackjack.Round
	input     Input
	presenter Presenter
	clock     quartz.Clock
	rate      int
	logger    *log.Logger

	frames int
	errors int
}

// NewLoop creates a loop ticking rate times per second on clock
func NewLoop(round *blackjack.Round, input Input, presenter Presenter, clock quartz.Clock, rate int, logger *log.Logger) *Loop {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return &Loop{
		round:     round,
		input:     input,
		presenter: presenter,
		clock:     clock,
		rate:      rate,
		logger:    logger.WithPrefix("host"),
	}
}

// Interval returns the time between frames
func (l *Loop) Interval() time.Duration {
	return time.Second / time.Duration(l.rate)
}

// Start schedules frames on the clock and returns immediately. The returned
// waiter finishes when Quit is pressed or ctx is cancelled.
func (l *Loop) Start(ctx context.Context) quartz.Waiter {
	l.logger.Info("Starting frame loop", "rate", l.rate, "interval", l.Interval())
	return l.clock.TickerFunc(ctx, l.Interval(), func() error {
		if l.Step() {
			return errQuit
		}
		return nil
	}, "host", "frame")
}

// Run ticks until Quit is pressed or ctx is cancelled. Both are a clean exit.
func (l *Loop) Run(ctx context.Context) error {
	err := l.Start(ctx).Wait()
	switch {
	case err == nil, errors.Is(err, errQuit), errors.Is(err, context.Canceled):
		l.logger.Info("Frame loop stopped", "frames", l.frames)
		return nil
	default:
		return fmt.Errorf("frame loop: %w", err)
	}
}

// Step runs a single frame and reports whether the host should quit.
// Quit never reaches the round.
func (l *Loop) Step() bool {
	keys := l.input.PollPressedKeys()
	if keys.Has(blackjack.Quit) {
		l.logger.Info("Quit requested")
		return true
	}

	l.presenter.BeginFrame()
	if err := l.round.Tick(keys, l.presenter); err != nil {
		l.errors++
		l.logger.Error("Round tick failed", "error", err, "status", l.round.Status())
	}
	l.presenter.Present()
	l.frames++

	return false
}

// Frames returns how many frames have been presented
func (l *Loop) Frames() int {
	return l.frames
}

// Errors returns how many ticks reported an error
func (l *Loop) Errors() int {
	return l.errors
}
