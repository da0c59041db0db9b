package main

import (
	"os"
	"time"

	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

type SimulateCmd struct {
	Sessions int           `default:"100" help:"Number of sessions to play"`
	Rounds   int           `default:"100" help:"Rounds per session (fewer if the player goes broke)"`
	StandOn  int           `default:"17" help:"Hit while the player's score is below this"`
	Bet      int           `default:"10" help:"Flat wager per round, capped at the pot"`
	Parallel int           `short:"p" default:"0" help:"Sessions to run at once (0 for GOMAXPROCS)"`
	Timeout  time.Duration `default:"30s" help:"Per-session timeout"`
	Out      string        `short:"o" type:"path" help:"Write a JSON report to this file"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg, "simulate")
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	config := simulator.Config{
		Sessions: c.Sessions,
		Rounds:   c.Rounds,
		StandOn:  c.StandOn,
		Bet:      c.Bet,
		Parallel: c.Parallel,
		Seed:     randutil.Seed(globals.Seed),
		Rules:    cfg.GameRules(),
		Timeout:  c.Timeout,
		Logger:   logger,
	}

	sim := simulator.New(config)
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	simulator.PrintSummary(os.Stdout, config, stats)

	if c.Out != "" {
		return sim.WriteReport(c.Out, stats)
	}
	return nil
}
