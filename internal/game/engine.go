package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
)

const (
	wagerQuestion     = "How much would you like to bet?"
	overdrawQuestion  = "You can't bet what you don't have... How much would you like to bet?"
	malformedQuestion = "Please enter a whole number of chips. How much would you like to bet?"
	actionQuestion    = "Would you like to stand or hit? (S/H)"
	actionRetry       = "Please enter S or H"
)

// RoundState is everything the controller knows about the round in
// progress. It is passed through each phase function in turn.
type RoundState struct {
	Number    int
	Phase     Phase
	Phases    []Phase // phases entered, in order
	Stake     int
	Debited   bool // stake has been taken from the pot
	Settled   bool // payout has been credited
	Outcome   Outcome
	Payout    int
	StartedAt time.Time
}

// Enter moves the round to phase p. Phases only ever move forward.
func (s *RoundState) Enter(p Phase) error {
	if p <= s.Phase {
		return fmt.Errorf("%w: %s after %s", ErrPhaseOrder, p, s.Phase)
	}
	s.Phase = p
	s.Phases = append(s.Phases, p)
	return nil
}

// Visited reports whether the round entered phase p
func (s *RoundState) Visited(p Phase) bool {
	for _, v := range s.Phases {
		if v == p {
			return true
		}
	}
	return false
}

// RoundResult summarises a finished round
type RoundResult struct {
	Number      int
	Outcome     Outcome
	Stake       int
	Payout      int
	PlayerScore int
	DealerScore int
	Pot         int // player's pot after settlement
	Phases      []Phase
	Duration    time.Duration
}

// Net returns the chips won (positive) or lost (negative) in the round
func (r RoundResult) Net() int {
	return r.Payout - r.Stake
}

// DealerBust returns true if the dealer finished over 21
func (r RoundResult) DealerBust() bool {
	return r.DealerScore > BustThreshold
}

// Option configures a Game
type Option func(*Game)

// WithClock sets the clock used for dealer pacing and round timing
func WithClock(clock quartz.Clock) Option {
	return func(g *Game) {
		g.clock = clock
	}
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithDeckSource replaces how each round's deck is built. Tests use it to
// stack the deck.
func WithDeckSource(source func() *deck.Deck) Option {
	return func(g *Game) {
		g.newDeck = source
	}
}

// WithPlayerName names the human seat
func WithPlayerName(name string) Option {
	return func(g *Game) {
		g.player.name = name
	}
}

// Game is the round controller. It owns the deck and both seats and drives
// one round at a time through the phases.
type Game struct {
	rules   Rules
	rng     *rand.Rand
	clock   quartz.Clock
	logger  *log.Logger
	input   Input
	display Display

	player  *Player
	dealer  *Dealer
	deck    *deck.Deck
	newDeck func() *deck.Deck
	rounds  int
}

// NewGame creates a round controller for one player against the dealer
func NewGame(rules Rules, rng *rand.Rand, input Input, display Display, opts ...Option) *Game {
	g := &Game{
		rules:   rules,
		rng:     rng,
		clock:   quartz.NewReal(),
		logger:  log.New(io.Discard),
		input:   input,
		display: display,
		player:  NewPlayer("Player", rules.InitialPot),
		dealer:  NewDealer(),
	}
	g.newDeck = func() *deck.Deck {
		return deck.NewDeck(g.rules.DeckSets, g.rng)
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Player returns the human seat
func (g *Game) Player() *Player {
	return g.player
}

// Dealer returns the dealer seat
func (g *Game) Dealer() *Dealer {
	return g.dealer
}

// Rules returns the table rules
func (g *Game) Rules() Rules {
	return g.rules
}

// Rounds returns the number of rounds started
func (g *Game) Rounds() int {
	return g.rounds
}

// CardsRemaining returns the cards left in the current round's deck
func (g *Game) CardsRemaining() int {
	if g.deck == nil {
		return 0
	}
	return g.deck.CardsRemaining()
}

// ResetRound clears both hands. The pot is untouched.
func (g *Game) ResetRound() {
	g.dealer.Reset()
	g.player.Reset()
}

// PlayRound runs one full round: deal, bet, player turn, dealer turn,
// resolution and settlement. If the round cannot finish, any stake already
// taken is returned to the pot and the error is returned.
func (g *Game) PlayRound(ctx context.Context) (RoundResult, error) {
	if err := ctx.Err(); err != nil {
		return RoundResult{}, err
	}

	g.rounds++
	state := &RoundState{Number: g.rounds, StartedAt: g.clock.Now()}
	g.logger.Info("Starting round", "round", state.Number, "pot", g.player.Pot())

	if err := g.run(ctx, state); err != nil {
		return g.abort(state, err)
	}

	result := g.result(state)
	g.logger.Info("Round complete",
		"round", result.Number,
		"outcome", result.Outcome,
		"player", result.PlayerScore,
		"dealer", result.DealerScore,
		"stake", result.Stake,
		"payout", result.Payout,
		"pot", result.Pot,
		"dealer_played", state.Visited(PhaseDealerTurn),
		"duration", result.Duration)
	return result, nil
}

func (g *Game) run(ctx context.Context, state *RoundState) error {
	if err := g.deal(state); err != nil {
		return err
	}
	if err := g.bet(ctx, state); err != nil {
		return err
	}
	if err := g.playerTurn(ctx, state); err != nil {
		return err
	}

	// A busted player never sees the hole card turned over.
	if g.player.IsReady() {
		if err := g.dealerReveal(state); err != nil {
			return err
		}
		if err := g.dealerTurn(ctx, state); err != nil {
			return err
		}
		if err := g.resolve(state); err != nil {
			return err
		}
	} else {
		state.Outcome = OutcomePlayerBust
	}

	return g.settle(state)
}

func (g *Game) abort(state *RoundState, cause error) (RoundResult, error) {
	if state.Debited && !state.Settled && !errors.Is(cause, ErrNegativePot) {
		if err := g.player.Credit(state.Stake); err != nil {
			return g.result(state), errors.Join(cause, err)
		}
		state.Debited = false
		g.logger.Warn("Returned stake after aborted round", "round", state.Number, "stake", state.Stake)
	}

	if errors.Is(cause, ErrQuit) || errors.Is(cause, context.Canceled) {
		g.logger.Info("Round abandoned", "round", state.Number, "phase", state.Phase)
	} else {
		g.logger.Error("Round aborted", "round", state.Number, "phase", state.Phase, "error", cause)
	}

	return g.result(state), fmt.Errorf("round %d aborted during %s: %w", state.Number, state.Phase, cause)
}

func (g *Game) result(state *RoundState) RoundResult {
	phases := make([]Phase, len(state.Phases))
	copy(phases, state.Phases)
	return RoundResult{
		Number:      state.Number,
		Outcome:     state.Outcome,
		Stake:       state.Stake,
		Payout:      state.Payout,
		PlayerScore: g.player.Score(),
		DealerScore: g.dealer.Score(),
		Pot:         g.player.Pot(),
		Phases:      phases,
		Duration:    g.clock.Since(state.StartedAt),
	}
}

// deal builds and shuffles a fresh deck and gives each seat two cards,
// alternating, with the dealer's second card face down.
func (g *Game) deal(state *RoundState) error {
	if err := state.Enter(PhaseDealing); err != nil {
		return err
	}

	g.ResetRound()
	g.deck = g.newDeck()
	g.deck.Shuffle()

	for i := range 2 {
		if err := g.dealTo(&g.player.Hand, true); err != nil {
			return err
		}
		if err := g.dealTo(&g.dealer.Hand, i == 0); err != nil {
			return err
		}
	}
	return nil
}

// bet collects the stake and debits it before any hand is shown
func (g *Game) bet(ctx context.Context, state *RoundState) error {
	if err := state.Enter(PhaseBetting); err != nil {
		return err
	}

	g.display.ShowBanner(g.player.Pot())

	question := wagerQuestion
	var stake int
	for {
		line, err := g.ask(ctx, PromptWager, question)
		if err != nil {
			return err
		}
		stake, err = ParseWager(line, g.player.Pot())
		if err == nil {
			break
		}
		if !IsRecoverable(err) {
			return err
		}
		g.logger.Debug("Rejected wager", "input", line, "error", err)
		question = retryWagerQuestion(line)
	}

	if err := g.player.Debit(stake); err != nil {
		return err
	}
	state.Stake = stake
	state.Debited = true
	g.logger.Info("Wager accepted", "stake", stake, "pot", g.player.Pot())

	g.render()
	return nil
}

func retryWagerQuestion(line string) string {
	if _, err := strconv.Atoi(strings.TrimSpace(line)); err != nil {
		return malformedQuestion
	}
	return overdrawQuestion
}

// playerTurn offers hit or stand until the player stands or busts. The
// guard is checked before each prompt, so a player showing exactly 21 is
// still asked unless Rules.HitOnTwentyOne is off.
func (g *Game) playerTurn(ctx context.Context, state *RoundState) error {
	if err := state.Enter(PhasePlayerTurn); err != nil {
		return err
	}

	for g.player.Score() <= BustThreshold && !g.player.IsReady() {
		if g.player.Score() == BustThreshold && !g.rules.HitOnTwentyOne {
			g.logger.Debug("Standing automatically on 21")
			g.player.MarkReady()
			break
		}

		line, err := g.ask(ctx, PromptAction, actionQuestion)
		if err != nil {
			return err
		}
		action, err := ParseAction(line)
		if err != nil {
			if !IsRecoverable(err) {
				return err
			}
			g.display.ShowMessage(actionRetry)
			continue
		}

		switch action {
		case Hit:
			if err := g.dealTo(&g.player.Hand, true); err != nil {
				return err
			}
			g.render()
		case Stand:
			g.player.MarkReady()
		}
		g.logger.Debug("Player acted", "action", action, "score", g.player.Score())
	}

	if g.player.IsBust() {
		g.logger.Info("Player busts", "score", g.player.Score())
	} else {
		g.logger.Info("Player stands", "score", g.player.Score())
	}
	return nil
}

func (g *Game) dealerReveal(state *RoundState) error {
	if err := state.Enter(PhaseDealerReveal); err != nil {
		return err
	}

	added := g.dealer.RevealHiddenCards()
	g.logger.Info("Dealer reveals hole card", "added", added, "score", g.dealer.Score())
	g.render()
	return nil
}

// dealerTurn draws for the dealer while below the stand threshold
func (g *Game) dealerTurn(ctx context.Context, state *RoundState) error {
	if err := state.Enter(PhaseDealerTurn); err != nil {
		return err
	}

	for g.dealer.ShouldDraw(g.rules.DealerStandsOn) {
		if err := g.pause(ctx); err != nil {
			return err
		}
		if err := g.dealTo(&g.dealer.Hand, true); err != nil {
			return err
		}
		g.render()
	}

	g.logger.Info("Dealer stands", "score", g.dealer.Score())
	return nil
}

func (g *Game) resolve(state *RoundState) error {
	if err := state.Enter(PhaseResolution); err != nil {
		return err
	}
	state.Outcome = Resolve(g.dealer.Score(), g.player.Score())
	return nil
}

func (g *Game) settle(state *RoundState) error {
	if err := state.Enter(PhaseSettlement); err != nil {
		return err
	}

	state.Payout = Payout(state.Outcome, state.Stake)
	if err := g.player.Credit(state.Payout); err != nil {
		return err
	}
	state.Settled = true

	g.display.ShowMessage(state.Outcome.Message())
	return nil
}

func (g *Game) dealTo(h *Hand, faceUp bool) error {
	card, err := g.deck.Deal(faceUp)
	if err != nil {
		return fmt.Errorf("dealing to %s: %w", h.Name(), err)
	}
	h.Receive(card)
	g.logger.Debug("Dealt card", "to", h.Name(), "card", card, "face_up", faceUp, "score", h.Score(), "remaining", g.deck.CardsRemaining())
	return nil
}

func (g *Game) ask(ctx context.Context, kind PromptKind, question string) (string, error) {
	return g.input.Ask(ctx, Prompt{
		Kind:     kind,
		Question: question,
		Pot:      g.player.Pot(),
		Score:    g.player.Score(),
	})
}

// pause waits out the dealer delay so draws are visible one at a time
func (g *Game) pause(ctx context.Context) error {
	if g.rules.DealerDelay <= 0 {
		return nil
	}

	timer := g.clock.NewTimer(g.rules.DealerDelay, "dealer", "draw")
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (g *Game) render() {
	g.display.ShowBanner(g.player.Pot())
	g.display.ShowHand(g.dealer)
	g.display.ShowHand(g.player)
}
