package deck

import (
	"errors"
	"math/rand/v2"
)

// ErrExhausted is returned by Draw when the deck is empty. A blackjack round
// uses far fewer than 52 cards, so hitting this indicates a caller bug rather
// than an expected game state.
var ErrExhausted = errors.New("deck: no cards remaining")

// Deck represents a single 52-card deck, drawn from the front.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck shuffled with the provided RNG.
// Every round gets a fresh deck; there is no mid-round reshuffling.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	d.Shuffle()
	return d
}

// Stacked creates a deck that deals the given cards in order. Used by tests
// to set up deterministic rounds; drawing past the stacked cards returns
// ErrExhausted.
func Stacked(cards ...Card) *Deck {
	return &Deck{cards: cards}
}

// Shuffle randomizes the order of cards in the deck (Fisher-Yates)
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the card at the front of the deck
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrExhausted
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
