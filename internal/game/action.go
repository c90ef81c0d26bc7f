package game

import "strings"

// Action represents a player decision during their turn
type Action int

const (
	Invalid Action = iota
	Hit
	Stand
	DoubleDown
	Surrender
)

func (a Action) String() string {
	return [...]string{"invalid", "hit", "stand", "double down", "surrender"}[a]
}

// ParseAction maps an input token to an Action. Tokens are case-insensitive
// and accept both the full word and the original single-letter shorthand
// ("h", "s", "d", "su"). Anything unrecognized parses as Invalid; the caller
// re-prompts without consuming a move.
func ParseAction(token string) Action {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "H", "HIT":
		return Hit
	case "S", "STAND":
		return Stand
	case "D", "DOUBLE", "DOUBLE DOWN":
		return DoubleDown
	case "SU", "SURRENDER":
		return Surrender
	default:
		return Invalid
	}
}
