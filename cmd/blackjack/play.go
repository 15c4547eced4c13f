package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/host"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
	"github.com/muesli/termenv"
)

// PlayCmd runs the interactive game
type PlayCmd struct {
	Config  string `short:"c" default:"blackjack.hcl" help:"Path to HCL config file"`
	Seed    *int64 `help:"Deterministic RNG seed (overrides config)"`
	NoColor bool   `help:"Disable colour output"`
}

func (c *PlayCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
		Level:           cfg.LogLevel(),
	})

	seed := cfg.Game.Seed
	if c.Seed != nil {
		seed = *c.Seed
	}
	rng, seed := randutil.FromSeed(seed)
	logger.Info("Starting game", "seed", seed, "tick_rate", cfg.Game.TickRate, "version", version)

	round := blackjack.NewRound(deck.Build(),
		blackjack.WithRNG(rng),
		blackjack.WithLogger(logger),
		blackjack.WithOutcomeHook(func(o blackjack.Outcome) {
			logger.Info("Round over", "round_id", o.ID, "winner", o.Winner, "player", o.PlayerScore, "dealer", o.DealerScore)
		}),
	)

	adapter := tui.NewAdapter(logger)
	loop := host.NewLoop(round, adapter, adapter, quartz.NewReal(), cfg.Game.TickRate, logger)
	model := tui.NewTUIModel(adapter, tui.NewKeyMap(cfg.Keys), logger)
	session := tui.NewSession(model, loop, logger, tea.WithAltScreen())

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	if err := session.Run(ctx); err != nil {
		logger.Error("Game ended with error", "error", err)
		return err
	}
	logger.Info("Game finished", "rounds", round.Rounds())
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
