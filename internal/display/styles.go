package display

import "github.com/charmbracelet/lipgloss"

// Styles contains styling for the table display
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Money    lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	CardRed  lipgloss.Style
	CardFace lipgloss.Style
	CardBack lipgloss.Style
}

// DefaultStyles returns the standard table styling
func DefaultStyles() *Styles {
	cardBorder := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Money: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		CardRed:  cardBorder.Foreground(lipgloss.Color("#FF6B6B")),
		CardFace: cardBorder,
		CardBack: cardBorder.Foreground(lipgloss.Color("#626262")),
	}
}
