package game

import (
	"fmt"
	"time"
)

// Rules are the table settings for a session
type Rules struct {
	DeckSets       int           `json:"deck_sets"`         // 52-card sets shuffled together each round
	InitialPot     int           `json:"initial_pot"`       // chips the player starts (and restarts) with
	DealerStandsOn int           `json:"dealer_stands_on"`  // dealer draws while below this score
	HitOnTwentyOne bool          `json:"hit_on_twenty_one"` // player is still offered a hit when showing exactly 21
	DealerDelay    time.Duration `json:"dealer_delay"`      // pause between dealer draws; zero disables
}

// DefaultRules returns the standard single-deck table
func DefaultRules() Rules {
	return Rules{
		DeckSets:       1,
		InitialPot:     1000,
		DealerStandsOn: 17,
		HitOnTwentyOne: true,
	}
}

// Validate checks the rules are playable
func (r Rules) Validate() error {
	if r.DeckSets < 1 {
		return fmt.Errorf("deck sets must be at least 1, got %d", r.DeckSets)
	}
	if r.InitialPot <= 0 {
		return fmt.Errorf("initial pot must be positive, got %d", r.InitialPot)
	}
	if r.DealerStandsOn < 2 || r.DealerStandsOn > BustThreshold {
		return fmt.Errorf("dealer stand threshold must be between 2 and %d, got %d", BustThreshold, r.DealerStandsOn)
	}
	if r.DealerDelay < 0 {
		return fmt.Errorf("dealer delay cannot be negative")
	}
	return nil
}

// Outcome is how a round ended for the player
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerWin
	OutcomePush
	OutcomeDealerWin
	OutcomePlayerBust
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomePlayerWin:
		return "player-win"
	case OutcomePush:
		return "push"
	case OutcomeDealerWin:
		return "dealer-win"
	case OutcomePlayerBust:
		return "player-bust"
	default:
		return "none"
	}
}

// Message is the line announced to the player for the outcome
func (o Outcome) Message() string {
	switch o {
	case OutcomePlayerWin:
		return "Well done, you win"
	case OutcomePush:
		return "It's a tie"
	case OutcomeDealerWin:
		return "Dealer wins"
	case OutcomePlayerBust:
		return "Bust -- Dealer wins"
	default:
		return ""
	}
}

// Resolve compares final scores once the dealer has played. A busted player
// never reaches this point.
func Resolve(dealerScore, playerScore int) Outcome {
	switch {
	case dealerScore > BustThreshold || dealerScore < playerScore:
		return OutcomePlayerWin
	case dealerScore == playerScore:
		return OutcomePush
	default:
		return OutcomeDealerWin
	}
}

// Payout returns the chips credited back to the pot for an outcome. The stake
// has already been debited, so a win returns double and a push returns it.
func Payout(outcome Outcome, stake int) int {
	switch outcome {
	case OutcomePlayerWin:
		return stake * 2
	case OutcomePush:
		return stake
	default:
		return 0
	}
}

// Phase is a step of the round state machine
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDealing
	PhaseBetting
	PhasePlayerTurn
	PhaseDealerReveal
	PhaseDealerTurn
	PhaseResolution
	PhaseSettlement
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDealing:
		return "dealing"
	case PhaseBetting:
		return "betting"
	case PhasePlayerTurn:
		return "player-turn"
	case PhaseDealerReveal:
		return "dealer-reveal"
	case PhaseDealerTurn:
		return "dealer-turn"
	case PhaseResolution:
		return "resolution"
	case PhaseSettlement:
		return "settlement"
	default:
		return "unknown"
	}
}
