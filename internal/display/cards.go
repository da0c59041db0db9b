package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/deck"
)

const (
	cardWidth  = 6
	cardHeight = 4
	cardBack   = "░"
)

// renderCard draws a single card as a bordered box with the rank and suit in
// opposite corners. Face-down cards show only the back pattern.
func (s Styles) renderCard(c deck.Card) string {
	if !c.FaceUp {
		row := s.CardBack.Render(strings.Repeat(cardBack, cardWidth))
		rows := make([]string, cardHeight)
		for i := range rows {
			rows[i] = row
		}
		return s.Card.Render(strings.Join(rows, "\n"))
	}

	ink := s.BlackCard
	if c.IsRed() {
		ink = s.RedCard
	}

	top := c.Rank.String() + c.Suit.String()
	bottom := c.Suit.String() + c.Rank.String()

	rows := make([]string, cardHeight)
	rows[0] = ink.Render(top) + strings.Repeat(" ", cardWidth-lipgloss.Width(top))
	for i := 1; i < cardHeight-1; i++ {
		rows[i] = strings.Repeat(" ", cardWidth)
	}
	rows[cardHeight-1] = strings.Repeat(" ", cardWidth-lipgloss.Width(bottom)) + ink.Render(bottom)

	return s.Card.Render(strings.Join(rows, "\n"))
}

// renderCards lays cards out side by side
func (s Styles) renderCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(cards))
	for _, c := range cards {
		boxes = append(boxes, s.renderCard(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}
