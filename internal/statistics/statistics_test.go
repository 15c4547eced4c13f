package statistics

import (
	"math"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Rate(3) != 0 {
		t.Errorf("Expected rate of 0 for empty stats, got %f", stats.Rate(3))
	}
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error for empty stats")
	}
}

func TestStatistics_Add(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundResult{Net: 1, PlayerScore: 21, DealerScore: 17, Natural: true})
	stats.Add(RoundResult{Net: -1, PlayerScore: 25, DealerScore: 10, PlayerBust: true})
	stats.Add(RoundResult{Net: 1, PlayerScore: 18, DealerScore: 24, DealerBust: true})
	stats.Add(RoundResult{Net: 0, PlayerScore: 19, DealerScore: 19})

	if stats.Rounds != 4 {
		t.Errorf("Expected 4 rounds, got %d", stats.Rounds)
	}
	if stats.PlayerWins != 2 || stats.CasinoWins != 1 || stats.Ties != 1 {
		t.Errorf("Unexpected outcome counts: %d/%d/%d", stats.PlayerWins, stats.CasinoWins, stats.Ties)
	}
	if stats.Naturals != 1 || stats.PlayerBusts != 1 || stats.DealerBusts != 1 {
		t.Errorf("Unexpected event counts: naturals=%d busts=%d/%d", stats.Naturals, stats.PlayerBusts, stats.DealerBusts)
	}
	if stats.Mean() != 0.25 {
		t.Errorf("Expected mean of 0.25, got %f", stats.Mean())
	}
	if stats.DealerFinal[19] != 1 || stats.DealerFinal[24] != 1 {
		t.Errorf("Dealer totals not recorded: %v", stats.DealerFinal)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
}

func TestStatistics_VarianceAndInterval(t *testing.T) {
	stats := &Statistics{}
	for i := range 100 {
		net := 1.0
		if i%2 == 1 {
			net = -1
		}
		stats.Add(RoundResult{Net: net, DealerScore: 18})
	}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0, got %f", stats.Mean())
	}
	// 100 values of +-1 around 0: sample variance is 100/99
	if math.Abs(stats.Variance()-100.0/99.0) > 1e-9 {
		t.Errorf("Unexpected variance %f", stats.Variance())
	}

	low, high := stats.ConfidenceInterval95()
	if low >= 0 || high <= 0 {
		t.Errorf("Expected interval around 0, got [%f, %f]", low, high)
	}
	if math.Abs(high+low) > 1e-9 {
		t.Errorf("Expected symmetric interval, got [%f, %f]", low, high)
	}
}

func TestStatistics_Merge(t *testing.T) {
	a := &Statistics{}
	a.Add(RoundResult{Net: 1, DealerScore: 22, DealerBust: true})
	b := &Statistics{}
	b.Add(RoundResult{Net: -1, DealerScore: 20})
	b.Add(RoundResult{Net: 0, DealerScore: 40})

	a.Merge(b)

	if a.Rounds != 3 {
		t.Errorf("Expected 3 rounds, got %d", a.Rounds)
	}
	if a.DealerFinal[31] != 1 {
		t.Errorf("Expected high dealer total to be clamped, got %v", a.DealerFinal)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Unexpected validation error: %v", err)
	}
	if a.Rate(a.PlayerWins) != 1.0/3.0 {
		t.Errorf("Expected win rate of 1/3, got %f", a.Rate(a.PlayerWins))
	}
}

func TestStatistics_ValidateDetectsMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundResult{Net: 1, DealerScore: 18})
	stats.PlayerWins = 0

	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error for inconsistent counts")
	}
}
