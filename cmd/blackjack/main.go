package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config  string `short:"c" help:"Path to HCL config file" default:"blackjack.hcl" type:"path" env:"BLACKJACK_CONFIG"`
	Seed    int64  `help:"RNG seed for reproducible shuffles (0 for random)" default:"0" env:"BLACKJACK_SEED"`
	LogFile string `help:"Write logs to this file instead of the configured one"`
	Debug   bool   `short:"d" help:"Enable debug logging"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play blackjack against the dealer (default)"`
	Simulate SimulateCmd      `cmd:"" help:"Play many automated sessions and report the results"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player blackjack against the dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// loadConfig reads the config file and applies flag overrides
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogFile != "" {
		cfg.UI.LogFile = g.LogFile
	}
	if g.Debug {
		cfg.UI.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}
	return cfg, nil
}

// openLogger creates the file logger. Logs never go to the terminal the
// table is drawn on.
func openLogger(cfg *config.Config, prefix string) (*log.Logger, func(), error) {
	f, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
		Level:           level,
	})

	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}
	return logger, closeFn, nil
}
