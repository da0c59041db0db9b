package game

import (
	"errors"

	"github.com/lox/blackjack/internal/deck"
)

var (
	// ErrInvalidWager is returned for a wager that is malformed, negative or
	// larger than the player's pot. The round re-prompts on it.
	ErrInvalidWager = errors.New("invalid wager")

	// ErrInvalidAction is returned for an unrecognised hit/stand or yes/no
	// token. The round re-prompts on it.
	ErrInvalidAction = errors.New("invalid action")

	// ErrNegativePot means a debit would have taken the pot below zero. Wagers
	// are validated before debiting, so seeing this is a bug.
	ErrNegativePot = errors.New("pot would go negative")

	// ErrNegativeAmount is returned when a pot mutation is given a negative amount.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrPhaseOrder is returned if a round phase is entered out of sequence.
	ErrPhaseOrder = errors.New("round phase out of order")

	// ErrQuit signals that input was closed or interrupted and the session
	// should end cleanly.
	ErrQuit = errors.New("quit")

	// ErrEmptyDeck aborts the current round.
	ErrEmptyDeck = deck.ErrEmptyDeck
)

// IsRecoverable reports whether err should be answered with a re-prompt
// rather than ending the round.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidWager) || errors.Is(err, ErrInvalidAction)
}
