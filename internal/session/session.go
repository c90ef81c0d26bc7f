// Package session orchestrates repeated rounds: load state, loop
// (bet, deal, play, resolve, persist) until the bankroll runs out or the
// player quits. Bankroll and statistics are explicit values threaded through
// each round, never package-level state.
package session

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/store"
)

// Agent supplies the player's decisions. The interactive build wires in the
// prompt loop; tests use a scripted agent.
type Agent interface {
	// PlaceBet returns a bet in [1, max], or false to quit
	PlaceBet(max int) (int, bool)

	// Decide returns the next action for the current hand
	Decide(canDouble, canSurrender bool) game.Action

	// Acknowledge blocks until the player is ready for the next round
	Acknowledge()
}

// Session runs the game loop against a save file
type Session struct {
	store    *store.Store
	agent    Agent
	renderer *display.Renderer
	logger   *log.Logger
	clock    quartz.Clock
	rng      *rand.Rand
	newDeck  func() *deck.Deck
}

// Option configures a Session
type Option func(*Session)

// WithClock replaces the wall clock, for tests
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithSeed makes every shuffle deterministic from the given seed
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = randutil.New(seed) }
}

// WithDeckFunc replaces deck construction entirely, letting tests stack
// exact rounds
func WithDeckFunc(fn func() *deck.Deck) Option {
	return func(s *Session) { s.newDeck = fn }
}

// New creates a session
func New(st *store.Store, agent Agent, renderer *display.Renderer, logger *log.Logger, opts ...Option) *Session {
	s := &Session{
		store:    st,
		agent:    agent,
		renderer: renderer,
		logger:   logger,
		clock:    quartz.NewReal(),
		rng:      randutil.New(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.newDeck == nil {
		s.newDeck = func() *deck.Deck { return deck.New(s.rng) }
	}
	return s
}

// Run plays rounds until the player quits or goes broke. Quitting and
// bankroll exhaustion are both normal terminations; only a failed save or an
// exhausted deck surfaces as an error.
func (s *Session) Run() error {
	state := s.store.Load()
	s.logger.Info("Session started", "money", state.Money,
		"wins", state.Wins, "losses", state.Losses, "pushes", state.Pushes)

	s.renderer.Welcome()

	for {
		if state.Money <= 0 {
			s.renderer.OutOfFunds()
			if err := s.save(&state); err != nil {
				return err
			}
			return nil
		}

		s.renderer.Status(state.Money, state.Stats)

		bet, ok := s.agent.PlaceBet(state.Money)
		if !ok {
			s.logger.Info("Player quit", "money", state.Money)
			s.renderer.Goodbye()
			return nil
		}

		outcome, err := s.playRound(&state, bet)
		if err != nil {
			return err
		}
		s.logger.Info("Round complete", "outcome", outcome, "money", state.Money)

		if err := s.save(&state); err != nil {
			return err
		}

		s.agent.Acknowledge()
	}
}

// playRound runs one complete round and applies the result to state
func (s *Session) playRound(state *store.SavedState, bet int) (game.Outcome, error) {
	roundID := uuid.NewString()
	s.logger.Info("Round started", "round", roundID, "bet", bet, "money", state.Money)

	round, err := game.NewRound(s.newDeck(), bet, state.Money)
	if err != nil {
		return 0, fmt.Errorf("dealing round %s: %w", roundID, err)
	}

	for round.Phase() == game.PlayerActive {
		s.renderer.Hands(round.Player, round.Dealer, false)

		action := s.agent.Decide(round.CanDouble(), round.CanSurrender())
		if err := round.Apply(action); err != nil {
			if errors.Is(err, game.ErrActionUnavailable) {
				s.logger.Debug("Action unavailable", "round", roundID, "action", action)
				continue
			}
			return 0, fmt.Errorf("player phase in round %s: %w", roundID, err)
		}

		if round.Phase() == game.PlayerDoubled {
			s.renderer.DoubledDown()
		}
		s.logger.Debug("Player action", "round", roundID, "action", action,
			"hand", round.Player.String(), "value", round.Player.Value())
	}

	if round.Phase() == game.PlayerSurrendered {
		state.Money, state.Stats = game.ResolveSurrender(round.Bet, state.Money, state.Stats)
		s.renderer.Surrendered(round.Bet / 2)
		return game.Surrendered, nil
	}

	if err := round.PlayDealer(); err != nil {
		return 0, fmt.Errorf("dealer phase in round %s: %w", roundID, err)
	}
	s.renderer.Hands(round.Player, round.Dealer, true)

	var outcome game.Outcome
	state.Money, state.Stats, outcome = game.Resolve(round.Player, round.Dealer, round.Bet, state.Money, state.Stats)
	s.renderer.Outcome(outcome, round.Bet, round.Player, round.Dealer)
	return outcome, nil
}

// save persists the full record; a write failure ends the session
func (s *Session) save(state *store.SavedState) error {
	state.UpdatedAt = s.clock.Now()
	if err := s.store.Save(*state); err != nil {
		s.logger.Error("Failed to save game", "error", err)
		return err
	}
	return nil
}
