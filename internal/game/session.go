package game

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

const (
	playAgainQuestion = "Play again? (Y/N)"
	startOverQuestion = "You're out of money... Start over? (Y/N)"
	answerRetry       = "Please enter Y or N"
	deckExhausted     = "The deck ran out of cards. The round is void and your stake was returned."
)

// Recorder receives every completed round
type Recorder interface {
	Record(result RoundResult)
}

// Session plays rounds back to back until the player declines to continue
type Session struct {
	ID       string
	game     *Game
	recorder Recorder
	logger   *log.Logger
}

// NewSession wraps a game in the play-again loop. recorder may be nil.
func NewSession(id string, g *Game, recorder Recorder, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		ID:       id,
		game:     g,
		recorder: recorder,
		logger:   logger.With("session", id),
	}
}

// Game returns the round controller
func (s *Session) Game() *Game {
	return s.game
}

// Run plays until the player says no, input is closed, or ctx is cancelled,
// all of which return nil. An error is returned only for failures the
// session cannot recover from.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("Starting session", "pot", s.game.Player().Pot(), "rules", s.game.Rules())

	for {
		result, err := s.game.PlayRound(ctx)
		switch {
		case err == nil:
			if s.recorder != nil {
				s.recorder.Record(result)
			}
		case isQuit(err):
			s.logger.Info("Session ended by player", "rounds", s.game.Rounds(), "pot", s.game.Player().Pot())
			return nil
		case errors.Is(err, ErrEmptyDeck):
			s.game.display.ShowMessage(deckExhausted)
		default:
			return err
		}

		again, err := s.next(ctx)
		if err != nil {
			if isQuit(err) {
				s.logger.Info("Session ended by player", "rounds", s.game.Rounds(), "pot", s.game.Player().Pot())
				return nil
			}
			return err
		}
		if !again {
			s.logger.Info("Session finished", "rounds", s.game.Rounds(), "pot", s.game.Player().Pot())
			return nil
		}
	}
}

// next asks whether to play another round, or to start over when the pot
// is empty, and prepares the table if so.
func (s *Session) next(ctx context.Context) (bool, error) {
	player := s.game.Player()

	kind, question := PromptPlayAgain, playAgainQuestion
	if player.IsBroke() {
		kind, question = PromptStartOver, startOverQuestion
	}

	for {
		line, err := s.game.ask(ctx, kind, question)
		if err != nil {
			return false, err
		}
		yes, err := ParseAnswer(line)
		if err != nil {
			if !IsRecoverable(err) {
				return false, err
			}
			s.game.display.ShowMessage(answerRetry)
			continue
		}
		if !yes {
			return false, nil
		}

		if kind == PromptStartOver {
			player.RestoreInitialPot()
			s.logger.Info("Starting over", "pot", player.Pot())
		}
		s.game.ResetRound()
		return true, nil
	}
}

func isQuit(err error) bool {
	return errors.Is(err, ErrQuit) || errors.Is(err, context.Canceled)
}
