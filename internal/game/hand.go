package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Hand is an ordered sequence of cards belonging to the player or the dealer.
// Hands only ever grow (initial deal, hit, double down) and are discarded at
// the end of the round.
type Hand []deck.Card

// Value returns the blackjack value of the hand. Aces start at 1 and are
// promoted to 11 one at a time while the total stays at or under 21, which
// yields the standard soft/hard scoring: as many aces as possible count high
// without busting.
func (h Hand) Value() int {
	value := 0
	aces := 0
	for _, c := range h {
		if c.IsAce() {
			aces++
		}
		value += c.BaseValue()
	}

	for i := 0; i < aces; i++ {
		if value+10 > 21 {
			break
		}
		value += 10
	}

	return value
}

// IsBust returns true if the hand value exceeds 21
func (h Hand) IsBust() bool {
	return h.Value() > 21
}

// IsBlackjack returns true for a natural: exactly two cards totalling 21.
// A natural carries no payout bonus here; it resolves as an ordinary win.
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Value() == 21
}

// IsSoft returns true if the hand currently counts an ace as 11
func (h Hand) IsSoft() bool {
	hard := 0
	hasAce := false
	for _, c := range h {
		if c.IsAce() {
			hasAce = true
		}
		hard += c.BaseValue()
	}
	return hasAce && hard+10 <= 21
}

// String returns the hand as space-separated cards (e.g., "A♠ 10♥")
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
