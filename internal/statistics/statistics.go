package statistics

import (
	"fmt"
	"math"
)

// RoundResult represents the outcome of a single blackjack round from the
// player's side
type RoundResult struct {
	Net         float64 // +1 player win, -1 casino win, 0 tie
	PlayerScore int
	DealerScore int
	Natural     bool // player dealt a two-card 21
	PlayerBust  bool
	DealerBust  bool
	Exhausted   bool // round was forced to resolve because the deck ran out
}

// Statistics tracks results across many simulated rounds
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64 // Sum of squares for variance calculation

	PlayerWins int
	CasinoWins int
	Ties       int

	Naturals    int
	PlayerBusts int
	DealerBusts int
	Exhausted   int

	// DealerFinal counts dealer final totals; index 31 collects anything higher.
	DealerFinal [32]int
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	s.Rounds++
	s.SumNet += result.Net
	s.SumNet2 += result.Net * result.Net

	switch {
	case result.Net > 0:
		s.PlayerWins++
	case result.Net < 0:
		s.CasinoWins++
	default:
		s.Ties++
	}

	if result.Natural {
		s.Naturals++
	}
	if result.PlayerBust {
		s.PlayerBusts++
	}
	if result.DealerBust {
		s.DealerBusts++
	}
	if result.Exhausted {
		s.Exhausted++
	}

	s.DealerFinal[min(max(result.DealerScore, 0), len(s.DealerFinal)-1)]++
}

// Merge folds another set of statistics into s
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.PlayerWins += other.PlayerWins
	s.CasinoWins += other.CasinoWins
	s.Ties += other.Ties
	s.Naturals += other.Naturals
	s.PlayerBusts += other.PlayerBusts
	s.DealerBusts += other.DealerBusts
	s.Exhausted += other.Exhausted
	for i, n := range other.DealerFinal {
		s.DealerFinal[i] += n
	}
}

// Mean returns the average net result per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Rate returns n as a fraction of all rounds
func (s *Statistics) Rate(n int) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(n) / float64(s.Rounds)
}

// Validate checks that the counters are consistent
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if total := s.PlayerWins + s.CasinoWins + s.Ties; total != s.Rounds {
		return fmt.Errorf("outcomes total (%d) does not match rounds (%d)", total, s.Rounds)
	}

	if s.PlayerBusts > s.CasinoWins {
		return fmt.Errorf("player busts (%d) exceed casino wins (%d)", s.PlayerBusts, s.CasinoWins)
	}
	if s.DealerBusts > s.PlayerWins {
		return fmt.Errorf("dealer busts (%d) exceed player wins (%d)", s.DealerBusts, s.PlayerWins)
	}

	finals := 0
	for _, n := range s.DealerFinal {
		finals += n
	}
	if finals != s.Rounds {
		return fmt.Errorf("dealer totals (%d) do not match rounds (%d)", finals, s.Rounds)
	}

	if math.Abs(s.SumNet-float64(s.PlayerWins-s.CasinoWins)) > 1e-6 {
		return fmt.Errorf("net mismatch: sum=%.3f wins=%d losses=%d", s.SumNet, s.PlayerWins, s.CasinoWins)
	}

	return nil
}
