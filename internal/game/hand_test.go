package game

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
)

func hand(s string) Hand {
	return Hand(deck.MustParseCards(s))
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected int
	}{
		{"two low cards", "2h3d", 5},
		{"face cards count ten", "JhQd", 20},
		{"king and nine", "Kh9d", 19},
		{"single ace counts high", "Ah5d", 16},
		{"ace pair counts twelve not twenty-two", "AhAd", 12},
		{"one of two aces promotes", "AhAd9c", 21},
		{"natural blackjack", "AhKd", 21},
		{"hard twenty-five is a bust", "ThTd5c", 25},
		{"ace drops to one to avoid bust", "Ah9d5c", 15},
		{"three aces", "AhAdAc", 13},
		{"ace after bust-threatening draw", "Ah7d9c", 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hand(tt.cards)
			if got := h.Value(); got != tt.expected {
				t.Errorf("Value(%s) = %d, want %d", h, got, tt.expected)
			}
		})
	}
}

func TestHandValueOrderInvariant(t *testing.T) {
	// Same cards, every dealing order
	orders := []string{"AhAd9c", "Ah9cAd", "9cAhAd", "9cAdAh", "AdAh9c", "Ad9cAh"}
	for _, s := range orders {
		if got := hand(s).Value(); got != 21 {
			t.Errorf("Value(%s) = %d, want 21 regardless of order", s, got)
		}
	}
}

func TestHandIsBust(t *testing.T) {
	if hand("ThTd").IsBust() {
		t.Error("20 should not be a bust")
	}
	if hand("AhKd").IsBust() {
		t.Error("21 should not be a bust")
	}
	if !hand("ThTd2c").IsBust() {
		t.Error("22 should be a bust")
	}
}

func TestHandIsBlackjack(t *testing.T) {
	if !hand("AhKd").IsBlackjack() {
		t.Error("A+K should be a natural")
	}
	if hand("ThTd").IsBlackjack() {
		t.Error("20 in two cards is not a natural")
	}
	if hand("Ah5d5c").IsBlackjack() {
		t.Error("21 in three cards is not a natural")
	}
}

func TestHandIsSoft(t *testing.T) {
	if !hand("Ah6d").IsSoft() {
		t.Error("A+6 is a soft 17")
	}
	if hand("Ah9d5c").IsSoft() {
		t.Error("A+9+5 forces the ace low; not soft")
	}
	if hand("Th7d").IsSoft() {
		t.Error("no ace means never soft")
	}
}
