package display

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func typeText(t *testing.T, m tea.Model, text string) tea.Model {
	t.Helper()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestPromptModelSubmit(t *testing.T) {
	t.Parallel()

	var m tea.Model = newPromptModel(game.Prompt{
		Kind:     game.PromptWager,
		Question: "How much would you like to bet?",
		Pot:      1000,
	}, lipgloss.NewStyle())

	assert.Contains(t, m.View(), "How much would you like to bet?")

	m = typeText(t, m, "250")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	pm := m.(promptModel)
	assert.True(t, pm.submitted)
	assert.False(t, pm.cancelled)
	assert.Equal(t, "250", pm.input.Value())
	assert.Contains(t, pm.View(), "250")
}

func TestPromptModelCancel(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		var m tea.Model = newPromptModel(game.Prompt{Kind: game.PromptAction, Question: "Stand or hit?"}, lipgloss.NewStyle())
		m = typeText(t, m, "H")
		m, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())

		pm := m.(promptModel)
		assert.True(t, pm.cancelled)
		assert.False(t, pm.submitted)
	}
}

func TestPromptModelPlaceholder(t *testing.T) {
	t.Parallel()

	wager := newPromptModel(game.Prompt{Kind: game.PromptWager, Pot: 500}, lipgloss.NewStyle())
	assert.Equal(t, "0-500", wager.input.Placeholder)

	action := newPromptModel(game.Prompt{Kind: game.PromptAction}, lipgloss.NewStyle())
	assert.Equal(t, "S or H", action.input.Placeholder)

	again := newPromptModel(game.Prompt{Kind: game.PromptStartOver}, lipgloss.NewStyle())
	assert.Equal(t, "Y or N", again.input.Placeholder)
}

func TestPromptModelLineFeedSubmits(t *testing.T) {
	t.Parallel()

	var m tea.Model = newPromptModel(game.Prompt{Kind: game.PromptAction}, lipgloss.NewStyle())
	m = typeText(t, m, "S")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlJ})
	require.NotNil(t, cmd)

	pm := m.(promptModel)
	assert.True(t, pm.submitted)
	assert.Equal(t, "S", pm.input.Value())
}

func TestPrompterPipedInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("100\nS\n"), &out)
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	start := time.Now()

	answer, err := p.Ask(ctx, game.Prompt{Kind: game.PromptWager, Question: "How much would you like to bet?", Pot: 1000})
	require.NoError(t, err)
	assert.Equal(t, "100", answer)

	answer, err = p.Ask(ctx, game.Prompt{Kind: game.PromptAction, Question: "Stand or hit?"})
	require.NoError(t, err)
	assert.Equal(t, "S", answer)

	_, err = p.Ask(ctx, game.Prompt{Kind: game.PromptPlayAgain, Question: "Play again?"})
	assert.ErrorIs(t, err, game.ErrQuit, "EOF ends the session")

	assert.Less(t, time.Since(start), time.Second, "answers must not wait for the context to expire")
	assert.Contains(t, out.String(), "How much would you like to bet?")
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTerminal(strings.NewReader("")))

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f), "a regular file is not a terminal")
}
