package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/autoplay"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/tui"
	"github.com/muesli/termenv"
)

// SimulateCmd plays rounds with a stand-on-N strategy
type SimulateCmd struct {
	Config  string `short:"c" default:"blackjack.hcl" help:"Path to HCL config file"`
	Rounds  int    `help:"Number of rounds to play (0 uses config)"`
	Workers int    `help:"Parallel workers (0 uses config)"`
	StandOn int    `name:"stand-on" help:"Stand once the player reaches this score (0 uses config)"`
	Seed    int64  `help:"RNG seed (0 for random)"`
	NoColor bool   `help:"Disable colour output"`
	Output  string `short:"o" type:"path" help:"Also write the results as JSON to this file"`
	Verbose bool   `help:"Verbose logging"`
}

// simulationReport is the JSON form of a simulation's results
type simulationReport struct {
	Seed        int64          `json:"seed"`
	StandOn     int            `json:"stand_on"`
	Workers     int            `json:"workers"`
	Rounds      int            `json:"rounds"`
	PlayerWins  int            `json:"player_wins"`
	CasinoWins  int            `json:"casino_wins"`
	Ties        int            `json:"ties"`
	Naturals    int            `json:"naturals"`
	PlayerBusts int            `json:"player_busts"`
	DealerBusts int            `json:"dealer_busts"`
	Exhausted   int            `json:"exhausted"`
	Mean        float64        `json:"mean"`
	StdError    float64        `json:"std_error"`
	CI95        [2]float64     `json:"ci95"`
	DealerFinal map[string]int `json:"dealer_final"`
	ElapsedMs   int64          `json:"elapsed_ms"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	opts := autoplay.Options{
		Rounds:  pick(c.Rounds, cfg.Autoplay.Rounds),
		Workers: pick(c.Workers, cfg.Autoplay.Workers),
		StandOn: pick(c.StandOn, cfg.Autoplay.StandOn),
		Seed:    c.Seed,
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.StandOn < 2 || opts.StandOn > blackjack.TargetScore {
		return fmt.Errorf("stand-on must be between 2 and %d, got %d", blackjack.TargetScore, opts.StandOn)
	}

	fmt.Printf("Starting simulation: %d rounds, stand on %d, %d workers (seed: %d)\n\n",
		opts.Rounds, opts.StandOn, opts.Workers, opts.Seed)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	start := time.Now()
	stats, err := autoplay.Simulate(ctx, opts, logger)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	if err := stats.Validate(); err != nil {
		return fmt.Errorf("inconsistent results: %w", err)
	}

	elapsed := time.Since(start)
	printReport(os.Stdout, stats, opts, elapsed)

	if c.Output != "" {
		if err := fileutil.WriteJSON(c.Output, newSimulationReport(stats, opts, elapsed)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("Results written to %s\n", c.Output)
	}
	return nil
}

func newSimulationReport(stats *statistics.Statistics, opts autoplay.Options, elapsed time.Duration) simulationReport {
	low, high := stats.ConfidenceInterval95()
	finals := make(map[string]int)
	for score, n := range stats.DealerFinal {
		if n > 0 {
			finals[strconv.Itoa(score)] = n
		}
	}
	return simulationReport{
		Seed:        opts.Seed,
		StandOn:     opts.StandOn,
		Workers:     opts.Workers,
		Rounds:      stats.Rounds,
		PlayerWins:  stats.PlayerWins,
		CasinoWins:  stats.CasinoWins,
		Ties:        stats.Ties,
		Naturals:    stats.Naturals,
		PlayerBusts: stats.PlayerBusts,
		DealerBusts: stats.DealerBusts,
		Exhausted:   stats.Exhausted,
		Mean:        stats.Mean(),
		StdError:    stats.StdError(),
		CI95:        [2]float64{low, high},
		DealerFinal: finals,
		ElapsedMs:   elapsed.Milliseconds(),
	}
}

func pick(flag, fallback int) int {
	if flag > 0 {
		return flag
	}
	return fallback
}

func printReport(w io.Writer, stats *statistics.Statistics, opts autoplay.Options, elapsed time.Duration) {
	title := tui.HeaderStyle.Render(fmt.Sprintf(" Stand on %d ", opts.StandOn))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	low, high := stats.ConfidenceInterval95()
	rows := [][2]string{
		{"Rounds", fmt.Sprintf("%d", stats.Rounds)},
		{"Player wins", percent(stats, stats.PlayerWins)},
		{"Casino wins", percent(stats, stats.CasinoWins)},
		{"Ties", percent(stats, stats.Ties)},
		{"Naturals", percent(stats, stats.Naturals)},
		{"Player busts", percent(stats, stats.PlayerBusts)},
		{"Dealer busts", percent(stats, stats.DealerBusts)},
		{"Net per round", fmt.Sprintf("%+.4f ± %.4f SE", stats.Mean(), stats.StdError())},
		{"95% CI", fmt.Sprintf("[%+.4f, %+.4f]", low, high)},
	}
	if stats.Exhausted > 0 {
		rows = append(rows, [2]string{"Exhausted", percent(stats, stats.Exhausted)})
	}

	label := tui.SeatLabelStyle.Width(15)
	for _, row := range rows {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(row[0]), row[1]))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.SeatLabelStyle.Render("Dealer finals"))
	fmt.Fprintln(w, dealerFinals(stats))
	fmt.Fprintln(w)

	if elapsed > 0 {
		perSec := float64(stats.Rounds) / elapsed.Seconds()
		fmt.Fprintf(w, "Completed in %s (%.0f rounds/sec)\n", elapsed.Round(time.Millisecond), perSec)
	} else {
		fmt.Fprintf(w, "Completed in under %s\n", time.Millisecond)
	}

	switch mean := stats.Mean(); {
	case high < 0:
		fmt.Fprintln(w, tui.ErrorStyle.Render(fmt.Sprintf("The casino wins %.2f%% of the stake per round", -mean*100)))
	case low > 0:
		fmt.Fprintln(w, tui.SuccessStyle.Render(fmt.Sprintf("The player wins %.2f%% of the stake per round", mean*100)))
	default:
		fmt.Fprintln(w, "No significant edge either way")
	}
}

func percent(stats *statistics.Statistics, n int) string {
	return fmt.Sprintf("%-8d %6.2f%%", n, stats.Rate(n)*100)
}

// dealerFinals summarises how the dealer's hands ended: each standing total
// from 17 up, everything lower, and busts.
func dealerFinals(stats *statistics.Statistics) string {
	var below, bust int
	for score, n := range stats.DealerFinal {
		switch {
		case score < blackjack.DealerStopScore:
			below += n
		case score > blackjack.TargetScore:
			bust += n
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  <%d  %s\n", blackjack.DealerStopScore, percent(stats, below))
	for score := blackjack.DealerStopScore; score <= blackjack.TargetScore; score++ {
		fmt.Fprintf(&b, "  %3d  %s\n", score, percent(stats, stats.DealerFinal[score]))
	}
	fmt.Fprintf(&b, "  bust %s", percent(stats, bust))
	return b.String()
}
