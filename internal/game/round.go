package game

import (
	"errors"
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// Phase represents the state of a round's turn sequence
type Phase int

const (
	PlayerActive Phase = iota
	PlayerBust
	PlayerStood
	PlayerDoubled
	PlayerSurrendered
	DealerDone
)

func (p Phase) String() string {
	return [...]string{
		"player active", "player bust", "player stood",
		"player doubled", "player surrendered", "dealer done",
	}[p]
}

// ErrActionUnavailable is returned by Apply when the requested action is not
// permitted in the current state (double after a hit, surrender after the
// first decision). The caller re-prompts; game state is untouched.
var ErrActionUnavailable = errors.New("game: action not available")

// Round holds the state of a single round: the deck it draws from, both
// hands, the bet, and the turn phase. A Round is created fresh for every
// bet and discarded once resolved.
type Round struct {
	Player Hand
	Dealer Hand
	Bet    int

	deck      *deck.Deck
	phase     Phase
	canDouble bool
	acted     bool
}

// NewRound deals two cards each to the player and dealer, alternating, and
// enters the player phase. Double-down eligibility is snapshotted here from
// the bankroll at phase entry: the bet may double at most once per round,
// and only while the hand still has exactly two cards.
func NewRound(d *deck.Deck, bet, bankroll int) (*Round, error) {
	r := &Round{
		Player: make(Hand, 0, 8),
		Dealer: make(Hand, 0, 8),
		Bet:    bet,
		deck:   d,
	}

	for i := 0; i < 2; i++ {
		if err := r.draw(&r.Player); err != nil {
			return nil, fmt.Errorf("dealing player: %w", err)
		}
		if err := r.draw(&r.Dealer); err != nil {
			return nil, fmt.Errorf("dealing dealer: %w", err)
		}
	}

	r.canDouble = bankroll >= 2*bet
	return r, nil
}

func (r *Round) draw(h *Hand) error {
	c, err := r.deck.Draw()
	if err != nil {
		return err
	}
	*h = append(*h, c)
	return nil
}

// Phase returns the current turn phase
func (r *Round) Phase() Phase {
	return r.phase
}

// CanDouble returns true if double down is currently permitted: the bankroll
// covered 2x the bet at round start and the hand still has exactly two cards.
func (r *Round) CanDouble() bool {
	return r.phase == PlayerActive && r.canDouble && len(r.Player) == 2
}

// CanSurrender returns true if surrender is currently permitted. Surrender is
// only actionable as the very first decision of the round.
func (r *Round) CanSurrender() bool {
	return r.phase == PlayerActive && !r.acted
}

// Apply advances the player phase with one decision. Invalid is a no-op that
// leaves the phase untouched. Unavailable actions return
// ErrActionUnavailable without mutating state. Deck exhaustion mid-hit is
// fatal for the round and propagates.
func (r *Round) Apply(action Action) error {
	if r.phase != PlayerActive {
		return fmt.Errorf("game: apply %s in phase %s: %w", action, r.phase, ErrActionUnavailable)
	}

	switch action {
	case Hit:
		if err := r.draw(&r.Player); err != nil {
			return err
		}
		r.acted = true
		if r.Player.IsBust() {
			r.phase = PlayerBust
		}

	case Stand:
		r.acted = true
		r.phase = PlayerStood

	case DoubleDown:
		if !r.CanDouble() {
			return fmt.Errorf("game: double down: %w", ErrActionUnavailable)
		}
		r.Bet *= 2
		if err := r.draw(&r.Player); err != nil {
			return err
		}
		// One card and done, whatever it made the hand worth.
		r.acted = true
		r.phase = PlayerDoubled

	case Surrender:
		if !r.CanSurrender() {
			return fmt.Errorf("game: surrender: %w", ErrActionUnavailable)
		}
		r.phase = PlayerSurrendered

	case Invalid:
		// Re-prompt; no move consumed.
	}

	return nil
}

// PlayDealer runs the dealer's fixed policy: draw while the hand is worth
// less than 17, stop at 17 or more (soft 17 included). If the player busted
// the dealer never draws; the hand stays as dealt and resolution reports the
// player's bust. The phase ends at DealerDone either way.
func (r *Round) PlayDealer() error {
	switch r.phase {
	case PlayerActive:
		return errors.New("game: dealer phase entered before player phase finished")
	case PlayerSurrendered:
		return errors.New("game: dealer phase entered after surrender")
	}

	// A doubled hand can bust too; any player bust leaves the dealer's
	// hand as dealt.
	if !r.Player.IsBust() {
		for r.Dealer.Value() < 17 {
			if err := r.draw(&r.Dealer); err != nil {
				return err
			}
		}
	}

	r.phase = DealerDone
	return nil
}
