package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/gameid"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type PlayCmd struct {
	Plain   bool `help:"Use a plain line prompt instead of the interactive one"`
	NoClear bool `help:"Do not clear the screen between redraws"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg, "blackjack")
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	seed := randutil.Seed(globals.Seed)
	rng := randutil.New(seed)
	clock := quartz.NewReal()
	sessionID := gameid.NewGenerator(clock, nil).Generate()

	started, err := gameid.Timestamp(sessionID)
	if err != nil {
		return fmt.Errorf("session id: %w", err)
	}
	logger.Info("Starting blackjack",
		"version", version,
		"seed", seed,
		"session", sessionID,
		"started", started.Format("2006-01-02 15:04:05.000"),
		"config", globals.Config)

	input := newInput(c.Plain || cfg.UI.Mode == config.ModePlain)
	defer input.Close()
	table := display.NewTable(os.Stdout, display.WithClear(cfg.ShouldClear() && !c.NoClear))

	fmt.Println(titleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Println()

	g := game.NewGame(cfg.GameRules(), rng, input, table,
		game.WithClock(clock),
		game.WithLogger(logger.WithPrefix("game")),
		game.WithPlayerName(cfg.UI.PlayerName),
	)

	stats := &statistics.Statistics{}
	session := game.NewSession(sessionID, g, stats, logger.WithPrefix("session"))
	if err := session.Run(ctx); err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(stats.Summary())
	fmt.Printf("Final pot:     $%d\n", g.Player().Pot())
	logger.Info("Goodbye", "rounds", stats.Rounds, "net", stats.Net, "pot", g.Player().Pot())
	return nil
}

type closingInput interface {
	game.Input
	Close() error
}

// newInput picks the line console for plain mode or when stdin is not a
// terminal, and the interactive prompt otherwise.
func newInput(plain bool) closingInput {
	if plain || !display.IsTerminal(os.Stdin) {
		return display.NewConsole(os.Stdin, os.Stdout, termenv.NewOutput(os.Stdout).Profile)
	}
	return display.NewPrompter(os.Stdin, os.Stdout)
}
