package blackjack

// Rule constants
const (
	TargetScore     = 21
	DealerStopScore = 17
)

// Messages shown by the presentation layer
const (
	HitPromptText     = "Press F to take another card"
	StandPromptText   = "Press E to stay with cards currently in hand"
	PlayerWinsText    = "Player wins!"
	CasinoWinsText    = "Casino wins!"
	TieText           = "It's a tie!"
	RestartPromptText = "Press N to restart the game"
)

// Board layout in abstract board units
const (
	BoardWidth  = 1200
	BoardHeight = 1000

	CardWidth  = 100
	CardHeight = 150

	DealerOriginX = 0
	DealerOriginY = 0
	PlayerOriginX = 0
	PlayerOriginY = 500

	messageHeight = 80
)

var (
	// PrimaryMessageRect holds the hit prompt or the winner message
	PrimaryMessageRect = Rect{X: 0, Y: BoardHeight - 2*messageHeight, W: BoardWidth, H: messageHeight}
	// SecondaryMessageRect holds the stand or restart prompt
	SecondaryMessageRect = Rect{X: 0, Y: BoardHeight - messageHeight, W: BoardWidth, H: messageHeight}
)

// WinnerText returns the message announcing a winner
func WinnerText(w Winner) string {
	switch w {
	case Player:
		return PlayerWinsText
	case Casino:
		return CasinoWinsText
	default:
		return TieText
	}
}
