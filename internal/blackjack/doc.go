// Package blackjack implements the rules engine for a single-table game of
// Blackjack played against an automated dealer.
//
// The main type is Round, a four-state machine advanced once per frame:
//
//	Uninitialized -> AwaitingPlayerDecision -> PlayerStoppedTakingCards -> GameOver
//
// A natural (two-card 21) skips AwaitingPlayerDecision, a bust on hit skips
// PlayerStoppedTakingCards, and Restart returns GameOver to Uninitialized.
//
// # Basic Usage
//
//	d := deck.Build()
//	r := blackjack.NewRound(d, blackjack.WithRNG(randutil.New(42)))
//	for {
//	    keys := input.PollPressedKeys()
//	    if err := r.Tick(keys, renderer); err != nil {
//	        logger.Error("round failed", "error", err)
//	    }
//	}
//
// Rendering goes through the Renderer interface; the package never touches a
// window, terminal or asset loader.
//
// # Deterministic Testing
//
// WithDrawer replaces the random allocator so tests can script the exact
// cards dealt to each participant.
package blackjack
