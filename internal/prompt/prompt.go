// Package prompt implements the line-based input loop: it reads raw lines,
// parses them into bets and actions, and re-prompts locally on anything
// malformed. Bad input never reaches game logic.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/game"
)

// QuitToken ends the program when entered at the bet prompt (case-insensitive)
const QuitToken = "QUIT"

// Reader prompts on out and reads decisions line by line from in
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
	style   lipgloss.Style
}

// New creates a prompt reader
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
		style:   lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
	}
}

// PlaceBet prompts until it reads an integer in [1, max] or the quit token.
// The second return is false when the player quit (or input ended).
func (p *Reader) PlaceBet(max int) (int, bool) {
	for {
		fmt.Fprintf(p.out, "Enter your bet (1 - %d, or %s):\n", max, QuitToken)

		line, ok := p.readLine()
		if !ok {
			return 0, false
		}

		token := strings.ToUpper(strings.TrimSpace(line))
		if token == QuitToken {
			return 0, false
		}

		bet, err := strconv.Atoi(token)
		if err != nil || bet < 1 || bet > max {
			continue
		}
		return bet, true
	}
}

// Decide prompts until it reads a recognized action token. Only available
// actions are offered, but parsing is permissive; the state machine rejects
// anything that slipped through and the session re-prompts.
func (p *Reader) Decide(canDouble, canSurrender bool) game.Action {
	choices := "(H)it, (S)tand"
	if canDouble {
		choices += ", (D)ouble down"
	}
	if canSurrender {
		choices += ", (Su)rrender"
	}

	for {
		fmt.Fprintf(p.out, "\nChoose: %s\n", choices)

		line, ok := p.readLine()
		if !ok {
			return game.Stand
		}

		if action := game.ParseAction(line); action != game.Invalid {
			return action
		}
	}
}

// Acknowledge blocks until the player enters anything at all
func (p *Reader) Acknowledge() {
	fmt.Fprint(p.out, "\nPress Enter to continue...\n")
	p.readLine()
}

func (p *Reader) readLine() (string, bool) {
	fmt.Fprint(p.out, p.style.Render("> "))
	if !p.scanner.Scan() {
		return "", false
	}
	return p.scanner.Text(), true
}
