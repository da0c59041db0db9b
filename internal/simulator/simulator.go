package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/gameid"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Sessions int
	Rounds   int // rounds per session, fewer if the player goes broke
	StandOn  int // hit while the player's score is below this
	Bet      int
	Parallel int
	Seed     int64
	Rules    game.Rules
	Timeout  time.Duration // per session, zero for none
	Logger   *log.Logger
}

// Validate checks the simulation parameters
func (c Config) Validate() error {
	if c.Sessions < 1 {
		return fmt.Errorf("sessions must be at least 1, got %d", c.Sessions)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", c.Rounds)
	}
	if c.Bet < 0 {
		return fmt.Errorf("bet must not be negative, got %d", c.Bet)
	}
	if c.StandOn < 0 || c.StandOn > game.BustThreshold+1 {
		return fmt.Errorf("stand-on must be between 0 and %d, got %d", game.BustThreshold+1, c.StandOn)
	}
	if c.Parallel < 0 {
		return fmt.Errorf("parallel must not be negative, got %d", c.Parallel)
	}
	return c.Rules.Validate()
}

// Simulator plays many headless sessions with a fixed policy
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if config.Parallel == 0 {
		config.Parallel = runtime.GOMAXPROCS(0)
	}
	// Pacing is for human eyes only
	config.Rules.DealerDelay = 0

	return &Simulator{
		config: config,
		logger: logger.WithPrefix("simulator"),
	}
}

// Run plays every session and returns the merged statistics. Sessions are
// seeded from Config.Seed so a run is reproducible whatever the parallelism.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	s.logger.Info("Starting simulation",
		"sessions", s.config.Sessions,
		"rounds", s.config.Rounds,
		"stand_on", s.config.StandOn,
		"bet", s.config.Bet,
		"parallel", s.config.Parallel,
		"seed", s.config.Seed)

	results := make([]*statistics.Statistics, s.config.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Parallel)
	for i := range s.config.Sessions {
		g.Go(func() error {
			stats, err := s.playSession(ctx, i)
			if err != nil {
				return err
			}
			results[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge in session order so Values line up across runs
	total := &statistics.Statistics{}
	for _, stats := range results {
		total.Merge(stats)
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation finished", "rounds", total.Rounds, "net", total.Net, "elapsed", time.Since(start))
	return total, nil
}

// playSession runs one session with timeout protection
func (s *Simulator) playSession(ctx context.Context, n int) (*statistics.Statistics, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	seed := randutil.Derive(s.config.Seed, n)
	rng := randutil.New(seed)
	id := gameid.NewGenerator(quartz.NewReal(), rng).Generate()
	logger := s.logger.With("session", n+1, "seed", seed)

	stats := &statistics.Statistics{}
	g := game.NewGame(s.config.Rules, rng,
		NewAutoPlayer(s.config.Bet, s.config.StandOn, s.config.Rounds),
		discard{},
		game.WithLogger(logger),
	)

	err := game.NewSession(id, g, stats, logger).Run(ctx)
	switch {
	case err != nil:
		return nil, fmt.Errorf("session %d (seed %d): %w", n+1, seed, err)
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return nil, fmt.Errorf("session %d timed out after %v (seed %d)", n+1, s.config.Timeout, seed)
	case ctx.Err() != nil:
		return nil, ctx.Err()
	}

	logger.Debug("Session complete", "rounds", stats.Rounds, "net", stats.Net, "pot", g.Player().Pot())
	return stats, nil
}

// Report is the JSON document written by WriteReport
type Report struct {
	Sessions   int                    `json:"sessions"`
	Rounds     int                    `json:"rounds_per_session"`
	StandOn    int                    `json:"stand_on"`
	Bet        int                    `json:"bet"`
	Seed       int64                  `json:"seed"`
	Rules      game.Rules             `json:"rules"`
	Statistics *statistics.Statistics `json:"statistics"`
	Mean       float64                `json:"mean_net_per_round"`
	Median     float64                `json:"median_net_per_round"`
	StdDev     float64                `json:"stddev_net_per_round"`
	WinRate    float64                `json:"win_rate"`
	HouseEdge  float64                `json:"house_edge"`
}

// NewReport summarises a finished run
func (s *Simulator) NewReport(stats *statistics.Statistics) Report {
	return Report{
		Sessions:   s.config.Sessions,
		Rounds:     s.config.Rounds,
		StandOn:    s.config.StandOn,
		Bet:        s.config.Bet,
		Seed:       s.config.Seed,
		Rules:      s.config.Rules,
		Statistics: stats,
		Mean:       stats.Mean(),
		Median:     stats.Median(),
		StdDev:     stats.StdDev(),
		WinRate:    stats.WinRate(),
		HouseEdge:  stats.HouseEdge(),
	}
}

// WriteReport writes the report for stats to filename as JSON
func (s *Simulator) WriteReport(filename string, stats *statistics.Statistics) error {
	if err := fileutil.WriteJSON(filename, s.NewReport(stats)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	s.logger.Info("Wrote report", "file", filename)
	return nil
}

// PrintSummary writes a human-readable summary of a run
func PrintSummary(w io.Writer, config Config, stats *statistics.Statistics) {
	fmt.Fprintf(w, "\n=== SIMULATION: %d sessions x %d rounds, bet %d, stand on %d ===\n",
		config.Sessions, config.Rounds, config.Bet, config.StandOn)
	fmt.Fprint(w, stats.Summary())
}
