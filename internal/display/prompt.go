package display

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/lox/blackjack/internal/game"
)

// promptModel is a single-question bubbletea program: the player types an
// answer and confirms it with enter.
type promptModel struct {
	question  string
	input     textinput.Model
	style     lipgloss.Style
	submitted bool
	cancelled bool
}

func newPromptModel(p game.Prompt, style lipgloss.Style) promptModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 16
	ti.Width = 16
	switch p.Kind {
	case game.PromptWager:
		ti.Placeholder = fmt.Sprintf("0-%d", p.Pot)
	case game.PromptAction:
		ti.Placeholder = "S or H"
	default:
		ti.Placeholder = "Y or N"
	}
	ti.Focus()

	return promptModel{
		question: p.Question,
		input:    ti,
		style:    style,
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter, tea.KeyCtrlJ:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.submitted || m.cancelled {
		return m.style.Render(m.question) + " " + m.input.Value() + "\n"
	}
	return m.style.Render(m.question) + "\n" + m.input.View() + "\n"
}

// Prompter asks each question through a short-lived bubbletea program. It
// implements game.Input. When in is not a terminal the answers are read a
// line at a time instead, so piped input and EOF behave as in plain mode.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	style lipgloss.Style
	lines *Console
}

// NewPrompter creates a prompter reading keys from in and drawing to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	r := lipgloss.NewRenderer(out)
	p := &Prompter{
		in:    in,
		out:   out,
		style: NewStyles(r).Prompt,
	}
	if !IsTerminal(in) {
		p.lines = NewConsole(in, out, r.ColorProfile())
	}
	return p
}

// IsTerminal reports whether r is an interactive terminal
func IsTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Close releases the line reader used for non-terminal input
func (p *Prompter) Close() error {
	if p.lines != nil {
		return p.lines.Close()
	}
	return nil
}

// Ask runs the prompt until the player presses enter
func (p *Prompter) Ask(ctx context.Context, prompt game.Prompt) (string, error) {
	if p.lines != nil {
		return p.lines.Ask(ctx, prompt)
	}
	if ctx.Err() != nil {
		return "", game.ErrQuit
	}

	program := tea.NewProgram(
		newPromptModel(prompt, p.style),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return "", game.ErrQuit
		}
		return "", fmt.Errorf("prompt: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok || !m.submitted {
		return "", game.ErrQuit
	}
	return m.input.Value(), nil
}
