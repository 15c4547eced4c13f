package blackjack

import "fmt"

// Phase is the stage of a round
type Phase uint8

const (
	Uninitialized Phase = iota
	AwaitingPlayerDecision
	PlayerStoppedTakingCards
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case AwaitingPlayerDecision:
		return "awaiting-player-decision"
	case PlayerStoppedTakingCards:
		return "player-stopped-taking-cards"
	case GameOver:
		return "game-over"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Winner is the outcome of a finished round
type Winner uint8

const (
	Player Winner = iota
	Casino
	Tie
)

func (w Winner) String() string {
	switch w {
	case Player:
		return "player"
	case Casino:
		return "casino"
	case Tie:
		return "tie"
	default:
		return fmt.Sprintf("winner(%d)", uint8(w))
	}
}

// Status is the round state. Winner is only meaningful when Phase is GameOver.
type Status struct {
	Phase  Phase
	Winner Winner
}

// StatusOf returns a Status for a phase without a winner
func StatusOf(p Phase) Status {
	return Status{Phase: p}
}

// GameOverStatus returns the terminal status for a winner
func GameOverStatus(w Winner) Status {
	return Status{Phase: GameOver, Winner: w}
}

// IsGameOver reports whether the round has been decided
func (s Status) IsGameOver() bool {
	return s.Phase == GameOver
}

func (s Status) String() string {
	if s.Phase == GameOver {
		return fmt.Sprintf("%s(%s)", s.Phase, s.Winner)
	}
	return s.Phase.String()
}

// Decide compares final scores once the dealer has finished drawing.
func Decide(playerScore, dealerScore int) Winner {
	switch {
	case dealerScore > TargetScore:
		return Player
	case dealerScore > playerScore:
		return Casino
	case dealerScore < playerScore:
		return Player
	default:
		return Tie
	}
}
