package display

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used to draw the table. They are bound to
// a renderer so colour output follows the destination writer's profile.
type Styles struct {
	Header    lipgloss.Style
	Pot       lipgloss.Style
	Name      lipgloss.Style
	Score     lipgloss.Style
	Bust      lipgloss.Style
	Card      lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	CardBack  lipgloss.Style
	Message   lipgloss.Style
	Prompt    lipgloss.Style
}

// NewStyles builds the table palette for r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		Pot: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Name: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Score: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Bust: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Width(cardWidth),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		CardBack: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")),
		Message: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
	}
}
