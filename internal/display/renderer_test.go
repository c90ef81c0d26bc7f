package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

func hand(s string) game.Hand {
	return game.Hand(deck.MustParseCards(s))
}

func render(fn func(r *Renderer)) string {
	var buf bytes.Buffer
	fn(New(&buf))
	return buf.String()
}

func TestHandsHidesDealerHoleCard(t *testing.T) {
	out := render(func(r *Renderer) {
		r.Hands(hand("9s9h"), hand("ThQd"), false)
	})

	assert.Contains(t, out, "DEALER:")
	assert.NotContains(t, out, "DEALER (", "dealer value must be withheld until reveal")
	assert.Contains(t, out, "PLAYER (18):")
	assert.Contains(t, out, "░", "hole card must render face-down")
	assert.NotContains(t, out, "10", "hidden hole card rank must not leak")
	assert.Contains(t, out, "Q", "second dealer card stays face-up")
}

func TestHandsRevealsDealer(t *testing.T) {
	out := render(func(r *Renderer) {
		r.Hands(hand("9s9h"), hand("ThQd"), true)
	})

	assert.Contains(t, out, "DEALER (20):")
	assert.NotContains(t, out, "░")
}

func TestHandsHidesOnlyFirstDealerCard(t *testing.T) {
	// Three dealer cards, unrevealed: exactly one face-down box
	out := render(func(r *Renderer) {
		r.Hands(hand("9s9h"), hand("Th5d2c"), false)
	})

	// The back pattern is a block of ░ rows; count rows then divide
	rows := strings.Count(out, strings.Repeat("░", 9))
	assert.Equal(t, 5, rows, "exactly one card's worth of face-down rows")
}

func TestOutcomeMessages(t *testing.T) {
	bust := hand("ThTd5c")
	twenty := hand("ThTd")
	nineteen := hand("Th9d")

	tests := []struct {
		name     string
		outcome  game.Outcome
		player   game.Hand
		dealer   game.Hand
		expected string
	}{
		{"player bust", game.Loss, bust, twenty, "You busted!"},
		{"dealer bust", game.Win, twenty, bust, "Dealer busted. You win $10!"},
		{"plain win", game.Win, twenty, nineteen, "You win $10!"},
		{"plain loss", game.Loss, nineteen, twenty, "Dealer wins."},
		{"push", game.Push, twenty, twenty, "Push. Bet returned."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(func(r *Renderer) {
				r.Outcome(tt.outcome, 10, tt.player, tt.dealer)
			})
			assert.Contains(t, out, tt.expected)
		})
	}
}

func TestStatusShowsBankrollAndCounters(t *testing.T) {
	out := render(func(r *Renderer) {
		r.Status(750, game.Stats{Wins: 3, Losses: 2, Pushes: 1})
	})

	assert.Contains(t, out, "$750")
	assert.Contains(t, out, "Wins: 3 | Losses: 2 | Pushes: 1")
}

func TestSurrenderedShowsPenalty(t *testing.T) {
	out := render(func(r *Renderer) {
		r.Surrendered(10)
	})
	assert.Contains(t, out, "You surrendered")
	assert.Contains(t, out, "$10")
}
