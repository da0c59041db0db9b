package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

// scriptedInput answers prompts from a fixed list and reports ErrQuit once
// the list runs out.
type scriptedInput struct {
	answers []string
	prompts []Prompt
}

func (s *scriptedInput) Ask(_ context.Context, p Prompt) (string, error) {
	s.prompts = append(s.prompts, p)
	if len(s.answers) == 0 {
		return "", ErrQuit
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedInput) kinds() []PromptKind {
	kinds := make([]PromptKind, len(s.prompts))
	for i, p := range s.prompts {
		kinds[i] = p.Kind
	}
	return kinds
}

// recordingDisplay keeps an ordered log of everything rendered
type recordingDisplay struct {
	events   []string
	messages []string
}

func (d *recordingDisplay) ShowBanner(pot int) {
	d.events = append(d.events, fmt.Sprintf("banner:%d", pot))
}

func (d *recordingDisplay) ShowHand(p Participant) {
	d.events = append(d.events, fmt.Sprintf("hand:%s:%d:%d", p.Name(), len(p.Cards()), p.Score()))
}

func (d *recordingDisplay) ShowMessage(msg string) {
	d.events = append(d.events, "message:"+msg)
	d.messages = append(d.messages, msg)
}

// stackedDecks returns a deck source that hands out one stacked deck per
// round, in order, and counts how many were built.
func stackedDecks(rounds ...string) (func() *deck.Deck, *int) {
	built := 0
	return func() *deck.Deck {
		cards := deck.MustParseCards(rounds[built%len(rounds)])
		built++
		return deck.NewDeckFromCards(cards...)
	}, &built
}

func newTestGame(t *testing.T, rules Rules, decks []string, answers ...string) (*Game, *scriptedInput, *recordingDisplay) {
	t.Helper()

	input := &scriptedInput{answers: answers}
	display := &recordingDisplay{}
	source, _ := stackedDecks(decks...)
	g := NewGame(rules, randutil.New(1), input, display, WithDeckSource(source))
	return g, input, display
}
