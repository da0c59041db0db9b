// Package game implements single-player blackjack against a dealer.
//
// The main type is Game, the round controller. Each call to PlayRound moves
// one round through a fixed sequence of phases:
//
//	dealing -> betting -> player-turn -> dealer-reveal -> dealer-turn -> resolution -> settlement
//
// The dealer phases and resolution are skipped when the player busts. Round
// progress is carried in a RoundState that only ever moves forward.
//
// # Basic Usage
//
//	g := game.NewGame(game.DefaultRules(), randutil.New(seed), input, display,
//	    game.WithLogger(logger))
//	result, err := g.PlayRound(ctx)
//
// Session wraps a Game in the play-again loop and restores the starting pot
// when a broke player chooses to start over.
//
// # Scoring
//
// A hand's score is the running sum of its face-up cards. Aces always count
// one, picture cards ten. Anything over 21 is a bust. The dealer's hole card
// adds to the dealer's score only when it is revealed.
//
// # Collaborators
//
// Input supplies raw lines for wagers, hit/stand and yes/no questions; the
// game parses and validates them and re-prompts on bad input. Display renders
// hands, the pot banner and messages. Neither makes decisions.
//
// For deterministic tests, stack the deck with WithDeckSource and
// deck.NewDeckFromCards.
package game
