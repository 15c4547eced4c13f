package blackjack

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/roundid"
)

// RoundOption configures a Round during creation.
type RoundOption func(*roundConfig)

type roundConfig struct {
	rng       *rand.Rand
	drawer    Drawer
	ids       *roundid.Generator
	logger    *log.Logger
	onOutcome func(Outcome)
}

// WithRNG sets the random source for the default allocator.
func WithRNG(rng *rand.Rand) RoundOption {
	return func(c *roundConfig) {
		c.rng = rng
	}
}

// WithDrawer replaces the random allocator, typically with a scripted one in
// tests. The drawer must record each position it returns in the dealt set.
func WithDrawer(d Drawer) RoundOption {
	return func(c *roundConfig) {
		c.drawer = d
	}
}

// WithRoundIDs sets the generator used to label each deal
func WithRoundIDs(g *roundid.Generator) RoundOption {
	return func(c *roundConfig) {
		c.ids = g
	}
}

// WithLogger sets the logger. Rounds log under the "round" prefix.
func WithLogger(logger *log.Logger) RoundOption {
	return func(c *roundConfig) {
		c.logger = logger
	}
}

// WithOutcomeHook registers a callback invoked once each time a round is
// decided.
func WithOutcomeHook(fn func(Outcome)) RoundOption {
	return func(c *roundConfig) {
		c.onOutcome = fn
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
