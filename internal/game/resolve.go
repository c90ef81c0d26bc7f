package game

// Outcome represents how a round resolved for the player
type Outcome int

const (
	Win Outcome = iota
	Loss
	Push
	Surrendered
)

func (o Outcome) String() string {
	return [...]string{"win", "loss", "push", "surrendered"}[o]
}

// Stats counts round outcomes across the life of a save file. Surrendered
// rounds count as losses.
type Stats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Pushes int `json:"pushes"`
}

// Resolve compares the final hands and applies the outcome to the bankroll
// and statistics, returning the updated values. The table is ordered: player
// bust loses before the dealer's hand is even looked at, then dealer bust,
// then the straight comparison. Exactly one counter is incremented per round.
// Persistence is the caller's job.
func Resolve(player, dealer Hand, bet, bankroll int, stats Stats) (int, Stats, Outcome) {
	playerVal := player.Value()
	dealerVal := dealer.Value()

	switch {
	case playerVal > 21:
		stats.Losses++
		return bankroll - bet, stats, Loss
	case dealerVal > 21:
		stats.Wins++
		return bankroll + bet, stats, Win
	case playerVal > dealerVal:
		stats.Wins++
		return bankroll + bet, stats, Win
	case playerVal < dealerVal:
		stats.Losses++
		return bankroll - bet, stats, Loss
	default:
		stats.Pushes++
		return bankroll, stats, Push
	}
}

// ResolveSurrender forfeits half the original bet, rounded down, and records
// a loss. The dealer phase never runs for a surrendered round.
func ResolveSurrender(bet, bankroll int, stats Stats) (int, Stats) {
	stats.Losses++
	return bankroll - bet/2, stats
}
