package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/game"
)

const title = "♠ ♥ BLACKJACK ♦ ♣"

// Table renders the round to a terminal writer. It implements game.Display.
type Table struct {
	out    io.Writer
	term   *termenv.Output
	styles Styles
	clear  bool
}

// TableOption configures a Table
type TableOption func(*Table)

// WithClear clears the screen before each banner so every redraw starts
// from the top of the terminal.
func WithClear(clear bool) TableOption {
	return func(t *Table) {
		t.clear = clear
	}
}

// WithProfile forces a colour profile instead of detecting one from out
func WithProfile(profile termenv.Profile) TableOption {
	return func(t *Table) {
		t.term = termenv.NewOutput(t.out, termenv.WithProfile(profile))
	}
}

// NewTable creates a table renderer writing to out
func NewTable(out io.Writer, opts ...TableOption) *Table {
	t := &Table{
		out:  out,
		term: termenv.NewOutput(out),
	}
	for _, opt := range opts {
		opt(t)
	}

	r := lipgloss.NewRenderer(t.out)
	r.SetColorProfile(t.term.Profile)
	t.styles = NewStyles(r)
	return t
}

// ShowBanner draws the title line and the player's pot
func (t *Table) ShowBanner(pot int) {
	if t.clear {
		t.term.ClearScreen()
	}
	fmt.Fprintln(t.out, t.styles.Header.Render(title))
	fmt.Fprintln(t.out, t.styles.Pot.Render(fmt.Sprintf("POT TOTAL: $%d", pot)))
	fmt.Fprintln(t.out)
}

// ShowHand draws a participant's cards followed by their visible score
func (t *Table) ShowHand(p game.Participant) {
	fmt.Fprintln(t.out, t.styles.Name.Render(strings.ToUpper(p.Name())))
	if cards := t.styles.renderCards(p.Cards()); cards != "" {
		fmt.Fprintln(t.out, cards)
	}
	fmt.Fprintln(t.out, t.scoreLine(p.Score()))
	fmt.Fprintln(t.out)
}

// ShowMessage prints a status line
func (t *Table) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.styles.Message.Render(msg))
}

func (t *Table) scoreLine(score int) string {
	if score > game.BustThreshold {
		return t.styles.Bust.Render(fmt.Sprintf("Score: %d BUST", score))
	}
	return t.styles.Score.Render(fmt.Sprintf("Score: %d", score))
}
