// Package display renders hands and round messages to the terminal. It is a
// pure formatting layer: it consumes game state and a reveal flag and writes
// text, never touching game logic.
package display

import (
	"fmt"
	"io"

	"github.com/lox/blackjack/internal/game"
)

// Renderer writes styled game output to a writer
type Renderer struct {
	w      io.Writer
	styles *Styles
}

// New creates a renderer writing to w
func New(w io.Writer) *Renderer {
	return &Renderer{w: w, styles: DefaultStyles()}
}

// Welcome prints the title banner
func (r *Renderer) Welcome() {
	fmt.Fprintln(r.w, r.styles.Title.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Fprintln(r.w)
}

// Status prints the bankroll and running counters shown before each bet
func (r *Renderer) Status(money int, stats game.Stats) {
	fmt.Fprintf(r.w, "\nYou have %s\n", r.styles.Money.Render(fmt.Sprintf("$%d", money)))
	fmt.Fprintln(r.w, r.styles.Info.Render(
		fmt.Sprintf("Wins: %d | Losses: %d | Pushes: %d", stats.Wins, stats.Losses, stats.Pushes)))
}

// Hands prints both hands. Until the dealer is revealed the hole card stays
// face-down and the dealer's value is withheld; the player's value always
// shows.
func (r *Renderer) Hands(player, dealer game.Hand, revealDealer bool) {
	fmt.Fprintln(r.w)
	if revealDealer {
		fmt.Fprintln(r.w, r.styles.Label.Render(fmt.Sprintf("DEALER (%d):", dealer.Value())))
	} else {
		fmt.Fprintln(r.w, r.styles.Label.Render("DEALER:"))
	}
	fmt.Fprintln(r.w, r.renderHand(dealer, !revealDealer))

	fmt.Fprintln(r.w, r.styles.Label.Render(fmt.Sprintf("PLAYER (%d):", player.Value())))
	fmt.Fprintln(r.w, r.renderHand(player, false))
}

// DoubledDown announces a double down
func (r *Renderer) DoubledDown() {
	fmt.Fprintln(r.w, r.styles.Warning.Render("You doubled down!"))
}

// Surrendered announces a surrender and the forfeited amount
func (r *Renderer) Surrendered(penalty int) {
	fmt.Fprintln(r.w, r.styles.Error.Render(
		fmt.Sprintf("You surrendered. You lose half your bet ($%d).", penalty)))
}

// Outcome announces the round result. The hands are needed to distinguish
// "you busted" and "dealer busted" from a plain comparison result.
func (r *Renderer) Outcome(outcome game.Outcome, bet int, player, dealer game.Hand) {
	switch {
	case outcome == game.Loss && player.IsBust():
		fmt.Fprintln(r.w, r.styles.Error.Render("You busted!"))
	case outcome == game.Win && dealer.IsBust():
		fmt.Fprintln(r.w, r.styles.Success.Render(fmt.Sprintf("Dealer busted. You win $%d!", bet)))
	case outcome == game.Win:
		fmt.Fprintln(r.w, r.styles.Success.Render(fmt.Sprintf("You win $%d!", bet)))
	case outcome == game.Loss:
		fmt.Fprintln(r.w, r.styles.Error.Render("Dealer wins."))
	default:
		fmt.Fprintln(r.w, r.styles.Info.Render("Push. Bet returned."))
	}
}

// OutOfFunds announces the bankroll-exhaustion end state
func (r *Renderer) OutOfFunds() {
	fmt.Fprintln(r.w, r.styles.Error.Render("You're out of money! Game over."))
}

// Goodbye prints the quit message
func (r *Renderer) Goodbye() {
	fmt.Fprintln(r.w, "Thanks for playing!")
}
