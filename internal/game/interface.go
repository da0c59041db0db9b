package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// PromptKind identifies what the round is asking the player for
type PromptKind int

const (
	PromptWager PromptKind = iota
	PromptAction
	PromptPlayAgain
	PromptStartOver
)

// String returns the string representation of a prompt kind
func (k PromptKind) String() string {
	switch k {
	case PromptWager:
		return "wager"
	case PromptAction:
		return "action"
	case PromptPlayAgain:
		return "play-again"
	case PromptStartOver:
		return "start-over"
	default:
		return "unknown"
	}
}

// Prompt is a single question put to the player
type Prompt struct {
	Kind     PromptKind
	Question string
	Pot      int // player's pot when asked
	Score    int // player's visible score when asked
}

// Input supplies raw lines from the player. Implementations block until a
// line is available and return ErrQuit when input is closed or interrupted.
type Input interface {
	Ask(ctx context.Context, p Prompt) (string, error)
}

// Display renders table state. It makes no decisions.
type Display interface {
	ShowBanner(pot int)
	ShowHand(p Participant)
	ShowMessage(msg string)
}

// Action is a player turn decision
type Action int

const (
	Hit Action = iota + 1
	Stand
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// ParseAction parses H, HIT, S or STAND in any case
func ParseAction(line string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(line)) {
	case "H", "HIT":
		return Hit, nil
	case "S", "STAND":
		return Stand, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAction, line)
	}
}

// ParseAnswer parses Y, YES, N or NO in any case
func ParseAnswer(line string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(line)) {
	case "Y", "YES":
		return true, nil
	case "N", "NO":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidAction, line)
	}
}

// ParseWager parses a whole-number wager and checks it against the pot. A
// wager of zero is accepted.
func ParseWager(line string, pot int) (int, error) {
	amount, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidWager, line)
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidWager, amount)
	}
	if amount > pot {
		return 0, fmt.Errorf("%w: %d exceeds pot of %d", ErrInvalidWager, amount, pot)
	}
	return amount, nil
}
