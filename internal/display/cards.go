package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

const (
	cardWidth  = 9
	cardHeight = 5
)

// cardFace renders the interior of a face-up card: rank in the top-left,
// suit centered, rank in the bottom-right.
func cardFace(c deck.Card) string {
	rank := c.Rank.String()
	blank := strings.Repeat(" ", cardWidth)

	lines := []string{
		fmt.Sprintf("%-*s", cardWidth, rank),
		blank,
		lipgloss.PlaceHorizontal(cardWidth, lipgloss.Center, c.Suit.String()),
		blank,
		fmt.Sprintf("%*s", cardWidth, rank),
	}
	return strings.Join(lines, "\n")
}

// cardBack renders the interior of a face-down card
func cardBack() string {
	row := strings.Repeat("░", cardWidth)
	rows := make([]string, cardHeight)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// renderCard draws one face-up card with suit-colored styling
func (r *Renderer) renderCard(c deck.Card) string {
	style := r.styles.CardFace
	if c.IsRed() {
		style = r.styles.CardRed
	}
	return style.Render(cardFace(c))
}

// renderHand joins a hand's cards side by side. When hideHole is set the
// first card is drawn face-down; the rest stay as dealt, which matches the
// convention of hiding only the dealer's hole card however many cards the
// dealer holds.
func (r *Renderer) renderHand(h game.Hand, hideHole bool) string {
	boxes := make([]string, len(h))
	for i, c := range h {
		if hideHole && i == 0 {
			boxes[i] = r.styles.CardBack.Render(cardBack())
		} else {
			boxes[i] = r.renderCard(c)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}
