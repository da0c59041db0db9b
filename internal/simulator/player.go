package simulator

import (
	"context"
	"strconv"

	"github.com/lox/blackjack/internal/game"
)

// AutoPlayer answers every prompt with a fixed policy: bet a flat amount,
// hit below a threshold, keep playing until a round budget is spent and
// never start over once broke. It implements game.Input.
type AutoPlayer struct {
	Bet     int
	StandOn int
	Rounds  int

	finished int
}

// NewAutoPlayer creates a policy player for a single session
func NewAutoPlayer(bet, standOn, rounds int) *AutoPlayer {
	return &AutoPlayer{Bet: bet, StandOn: standOn, Rounds: rounds}
}

// Ask implements game.Input
func (a *AutoPlayer) Ask(ctx context.Context, p game.Prompt) (string, error) {
	if ctx.Err() != nil {
		return "", game.ErrQuit
	}

	switch p.Kind {
	case game.PromptWager:
		return strconv.Itoa(min(a.Bet, p.Pot)), nil
	case game.PromptAction:
		if p.Score < a.StandOn {
			return "H", nil
		}
		return "S", nil
	case game.PromptPlayAgain:
		a.finished++
		if a.finished < a.Rounds {
			return "Y", nil
		}
		return "N", nil
	default:
		a.finished++
		return "N", nil
	}
}

// discard is a Display that draws nothing
type discard struct{}

func (discard) ShowBanner(int)            {}
func (discard) ShowHand(game.Participant) {}
func (discard) ShowMessage(string)        {}
