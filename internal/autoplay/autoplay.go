// Package autoplay plays rounds without a human: a fixed strategy supplies
// the key presses and many independent rounds run in parallel.
package autoplay

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/host"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/roundid"
	"github.com/lox/blackjack/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// maxTicksPerRound guards against a round that never reaches GameOver
const maxTicksPerRound = 64

// StandOnStrategy hits below a threshold, stands at or above it, and restarts
// as soon as a round is over. It implements host.Input.
type StandOnStrategy struct {
	round   *blackjack.Round
	standOn int
}

// NewStandOnStrategy creates a strategy reading the state of round
func NewStandOnStrategy(round *blackjack.Round, standOn int) *StandOnStrategy {
	return &StandOnStrategy{round: round, standOn: standOn}
}

// PollPressedKeys implements host.Input
func (s *StandOnStrategy) PollPressedKeys() blackjack.KeySet {
	switch s.round.Status().Phase {
	case blackjack.AwaitingPlayerDecision:
		if s.round.PlayerScore() < s.standOn {
			return blackjack.Keys(blackjack.Hit)
		}
		return blackjack.Keys(blackjack.Stand)
	case blackjack.GameOver:
		return blackjack.Keys(blackjack.Restart)
	default:
		return 0
	}
}

// discardPresenter satisfies host.Presenter without drawing anything
type discardPresenter struct{}

func (discardPresenter) BeginFrame()                                             {}
func (discardPresenter) Present()                                                {}
func (discardPresenter) RenderHand(blackjack.Participant, []deck.Card, int, int) {}
func (discardPresenter) RenderMessage(string, blackjack.Rect)                    {}

// Options configures a simulation
type Options struct {
	Rounds  int
	Workers int
	StandOn int
	Seed    int64
}

// ToResult converts a round outcome into a statistics sample
func ToResult(o blackjack.Outcome) statistics.RoundResult {
	var net float64
	switch o.Winner {
	case blackjack.Player:
		net = 1
	case blackjack.Casino:
		net = -1
	}
	return statistics.RoundResult{
		Net:         net,
		PlayerScore: o.PlayerScore,
		DealerScore: o.DealerScore,
		Natural:     o.Natural,
		PlayerBust:  o.Bust,
		DealerBust:  !o.Bust && blackjack.IsBust(o.DealerScore),
		Exhausted:   o.Exhausted,
	}
}

// Simulate plays opts.Rounds rounds split across opts.Workers goroutines.
// Each worker owns its own Round and RNG derived from opts.Seed, so results
// are reproducible for a given seed and worker count.
func Simulate(ctx context.Context, opts Options, logger *log.Logger) (*statistics.Statistics, error) {
	if opts.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", opts.Rounds)
	}
	workers := max(1, min(opts.Workers, opts.Rounds))
	logger = logger.WithPrefix("autoplay")

	d := deck.Build()
	perWorker := opts.Rounds / workers
	remainder := opts.Rounds % workers

	results := make([]*statistics.Statistics, workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := range workers {
		rounds := perWorker
		if w < remainder {
			rounds++
		}
		seed := randutil.Derive(opts.Seed, w)

		g.Go(func() error {
			stats, err := playRounds(ctx, d, rounds, opts.StandOn, seed, logger.With("worker", w))
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, stats := range results {
		total.Merge(stats)
	}
	logger.Info("Simulation complete", "rounds", total.Rounds, "workers", workers,
		"player_wins", total.PlayerWins, "casino_wins", total.CasinoWins, "ties", total.Ties)
	return total, nil
}

func playRounds(ctx context.Context, d *deck.Deck, rounds, standOn int, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}
	clock := quartz.NewReal()
	round := blackjack.NewRound(d,
		blackjack.WithRNG(randutil.New(seed)),
		blackjack.WithRoundIDs(roundid.NewGenerator(randutil.New(^seed), clock)),
		blackjack.WithLogger(logger),
		blackjack.WithOutcomeHook(func(o blackjack.Outcome) {
			stats.Add(ToResult(o))
		}),
	)
	strategy := NewStandOnStrategy(round, standOn)
	loop := host.NewLoop(round, strategy, discardPresenter{}, clock, host.DefaultTickRate, logger)

	for stats.Rounds < rounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		target := stats.Rounds + 1
		for ticks := 0; stats.Rounds < target; ticks++ {
			if ticks >= maxTicksPerRound {
				return nil, fmt.Errorf("round %d did not finish within %d ticks (status %s)", target, maxTicksPerRound, round.Status())
			}
			loop.Step()
		}
	}

	if loop.Errors() > 0 {
		logger.Warn("Rounds ended early", "errors", loop.Errors())
	}
	return stats, nil
}
