package blackjack

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/roundid"
)

// ErrInvalidDraw is returned when a Drawer hands back a position that is out
// of range, already held, or was not recorded in the dealt set.
var ErrInvalidDraw = errors.New("invalid draw")

// Drawer picks the next undealt deck position and records it in dealt.
// *deck.Allocator is the production implementation.
type Drawer interface {
	Draw(dealt *deck.DealtSet) (int, error)
}

// Outcome summarises a decided round
type Outcome struct {
	ID          string
	Winner      Winner
	PlayerScore int
	DealerScore int
	PlayerCards int
	DealerCards int
	Natural     bool // player was dealt a two-card 21
	Bust        bool // player went over 21
	Exhausted   bool // the deck ran out and the round was forced to resolve
	InvalidDraw bool // the drawer returned a bad position and the round was forced to resolve
}

// Round is the game state machine. It is not safe for concurrent use; a
// single game loop owns it.
type Round struct {
	deck      *deck.Deck
	drawer    Drawer
	ids       *roundid.Generator
	logger    *log.Logger
	onOutcome func(Outcome)

	id     string
	status Status
	dealt  deck.DealtSet
	player Hand
	dealer Hand

	rounds      int
	exhausted   bool
	invalidDraw bool
}

// NewRound creates a round in the Uninitialized state.
func NewRound(d *deck.Deck, opts ...RoundOption) *Round {
	if d == nil {
		panic("deck is required for round creation")
	}

	cfg := &roundConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}
	if cfg.drawer == nil {
		rng := cfg.rng
		if rng == nil {
			rng, _ = randutil.FromSeed(0)
		}
		cfg.drawer = deck.NewAllocator(d.Len(), rng)
	}
	if cfg.ids == nil {
		cfg.ids = roundid.NewGenerator(nil, nil)
	}

	return &Round{
		deck:      d,
		drawer:    cfg.drawer,
		ids:       cfg.ids,
		logger:    cfg.logger.WithPrefix("round"),
		onOutcome: cfg.onOutcome,
		status:    StatusOf(Uninitialized),
	}
}

// Tick advances the round by one frame using the keys pressed since the last
// tick, then renders both hands. A non-nil error means the round could not be
// dealt correctly; the round has already been forced to GameOver.
func (r *Round) Tick(keys KeySet, out Renderer) error {
	if out == nil {
		out = discardRenderer{}
	}

	var err error
	switch r.status.Phase {
	case Uninitialized:
		err = r.dealInitial(out)
	case AwaitingPlayerDecision:
		err = r.awaitDecision(keys, out)
	case PlayerStoppedTakingCards:
		err = r.playDealer()
	case GameOver:
		r.showResult(keys, out)
	}

	out.RenderHand(DealerSeat, r.dealer.Cards(r.deck), DealerOriginX, DealerOriginY)
	out.RenderHand(PlayerSeat, r.player.Cards(r.deck), PlayerOriginX, PlayerOriginY)

	return err
}

func (r *Round) dealInitial(out Renderer) error {
	r.id = r.ids.Next()
	r.logger.Debug("Dealing", "round_id", r.id)

	if err := r.draw(&r.dealer, DealerSeat); err != nil {
		return r.abort(err)
	}
	for range 2 {
		if err := r.draw(&r.player, PlayerSeat); err != nil {
			return r.abort(err)
		}
	}

	if Score(r.deck, r.player) == TargetScore {
		r.logger.Debug("Player dealt a natural", "round_id", r.id, "cards", r.player.Cards(r.deck))
		r.setStatus(StatusOf(PlayerStoppedTakingCards))
		return nil
	}

	r.setStatus(StatusOf(AwaitingPlayerDecision))
	renderPrompts(out)
	return nil
}

func (r *Round) awaitDecision(keys KeySet, out Renderer) error {
	renderPrompts(out)

	switch {
	case keys.Has(Hit):
		if err := r.draw(&r.player, PlayerSeat); err != nil {
			return r.abort(err)
		}

		score := Score(r.deck, r.player)
		r.logger.Debug("Player hit", "score", score, "cards", r.player.Len())
		if IsBust(score) {
			r.finish(Casino)
		} else if score == TargetScore {
			r.setStatus(StatusOf(PlayerStoppedTakingCards))
		}
	case keys.Has(Stand):
		r.logger.Debug("Player stands", "score", Score(r.deck, r.player))
		r.setStatus(StatusOf(PlayerStoppedTakingCards))
	}

	return nil
}

// playDealer runs the dealer's whole turn within a single tick.
func (r *Round) playDealer() error {
	playerScore := Score(r.deck, r.player)
	dealerScore := Score(r.deck, r.dealer)

	for dealerScore < DealerStopScore && dealerScore <= playerScore {
		if err := r.draw(&r.dealer, DealerSeat); err != nil {
			return r.abort(err)
		}
		dealerScore = Score(r.deck, r.dealer)
	}

	r.finish(Decide(playerScore, dealerScore))
	return nil
}

func (r *Round) showResult(keys KeySet, out Renderer) {
	out.RenderMessage(WinnerText(r.status.Winner), PrimaryMessageRect)
	out.RenderMessage(RestartPromptText, SecondaryMessageRect)

	if keys.Has(Restart) {
		r.reset()
	}
}

func renderPrompts(out Renderer) {
	out.RenderMessage(HitPromptText, PrimaryMessageRect)
	out.RenderMessage(StandPromptText, SecondaryMessageRect)
}

// draw deals one card into a hand, rejecting anything but a fresh, in-range
// position.
func (r *Round) draw(into *Hand, who Participant) error {
	before := r.dealt.Len()

	pos, err := r.drawer.Draw(&r.dealt)
	if err != nil {
		return fmt.Errorf("draw for %s: %w", who, err)
	}
	if pos < 0 || pos >= r.deck.Len() || !r.dealt.Contains(pos) || r.dealt.Len() != before+1 || r.holds(pos) {
		return fmt.Errorf("draw for %s: %w: position %d", who, ErrInvalidDraw, pos)
	}

	*into = append(*into, pos)
	return nil
}

func (r *Round) holds(pos int) bool {
	for _, p := range r.player {
		if p == pos {
			return true
		}
	}
	for _, p := range r.dealer {
		if p == pos {
			return true
		}
	}
	return false
}

// abort resolves the round with whatever has been dealt so far.
func (r *Round) abort(err error) error {
	r.exhausted = errors.Is(err, deck.ErrExhausted)
	r.invalidDraw = errors.Is(err, ErrInvalidDraw)
	playerScore := Score(r.deck, r.player)
	dealerScore := Score(r.deck, r.dealer)

	winner := Decide(playerScore, dealerScore)
	if IsBust(playerScore) {
		winner = Casino
	}

	r.logger.Error("Round aborted", "round_id", r.id, "error", err, "dealt", r.dealt.Len(),
		"player_score", playerScore, "dealer_score", dealerScore, "winner", winner)
	r.finish(winner)
	return err
}

func (r *Round) finish(w Winner) {
	r.setStatus(GameOverStatus(w))
	r.rounds++

	outcome := Outcome{
		ID:          r.id,
		Winner:      w,
		PlayerScore: Score(r.deck, r.player),
		DealerScore: Score(r.deck, r.dealer),
		PlayerCards: r.player.Len(),
		DealerCards: r.dealer.Len(),
		Natural:     IsNatural(r.deck, r.player),
		Exhausted:   r.exhausted,
		InvalidDraw: r.invalidDraw,
	}
	outcome.Bust = IsBust(outcome.PlayerScore)

	r.logger.Info("Round decided", "round_id", r.id, "winner", w,
		"player_score", outcome.PlayerScore, "dealer_score", outcome.DealerScore)

	if r.onOutcome != nil {
		r.onOutcome(outcome)
	}
}

func (r *Round) reset() {
	r.logger.Debug("Restarting round")
	r.dealt.Reset()
	r.player = nil
	r.dealer = nil
	r.exhausted = false
	r.invalidDraw = false
	r.setStatus(StatusOf(Uninitialized))
}

func (r *Round) setStatus(s Status) {
	if r.status != s {
		r.logger.Debug("Status changed", "from", r.status, "to", s)
	}
	r.status = s
}

// ID returns the id of the round in play, or of the last one dealt
func (r *Round) ID() string {
	return r.id
}

// Status returns the current round status
func (r *Round) Status() Status {
	return r.status
}

// PlayerHand returns a copy of the player's hand
func (r *Round) PlayerHand() Hand {
	return Hand(r.player.Positions())
}

// DealerHand returns a copy of the dealer's hand
func (r *Round) DealerHand() Hand {
	return Hand(r.dealer.Positions())
}

// PlayerScore returns the player's current total
func (r *Round) PlayerScore() int {
	return Score(r.deck, r.player)
}

// DealerScore returns the dealer's current total
func (r *Round) DealerScore() int {
	return Score(r.deck, r.dealer)
}

// Dealt returns the positions dealt this round
func (r *Round) Dealt() deck.DealtSet {
	return r.dealt
}

// Deck returns the deck the round deals from
func (r *Round) Deck() *deck.Deck {
	return r.deck
}

// Rounds returns how many rounds have been decided
func (r *Round) Rounds() int {
	return r.rounds
}
