package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, game.DefaultRules(), cfg.GameRules())
	assert.Equal(t, ModePrompt, cfg.UI.Mode)
	assert.True(t, cfg.ShouldClear())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	src := `
rules {
  deck_sets         = 6
  initial_pot       = 500
  hit_on_twenty_one = false
  dealer_delay_ms   = 250
}

ui {
  mode      = "plain"
  clear     = false
  log_level = "debug"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	rules := cfg.GameRules()
	assert.Equal(t, 6, rules.DeckSets)
	assert.Equal(t, 500, rules.InitialPot)
	assert.Equal(t, 17, rules.DealerStandsOn, "unset values keep their defaults")
	assert.False(t, rules.HitOnTwentyOne)
	assert.Equal(t, 250*time.Millisecond, rules.DealerDelay)

	assert.Equal(t, ModePlain, cfg.UI.Mode)
	assert.False(t, cfg.ShouldClear())
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "blackjack.log", cfg.UI.LogFile)
	assert.Equal(t, "Player", cfg.UI.PlayerName)
}

func TestParseOnlyUIBlock(t *testing.T) {
	cfg, err := Parse([]byte(`ui { player_name = "Sam" }`), "inline.hcl")
	require.NoError(t, err)
	assert.Equal(t, "Sam", cfg.UI.PlayerName)
	assert.Equal(t, game.DefaultRules(), cfg.GameRules())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `rules {`},
		{"unknown attribute", `rules { jokers = true }`},
		{"wrong type", `rules { deck_sets = "six" }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"dealer threshold", func(c *Config) { c.Rules.DealerStandsOn = intPtr(30) }},
		{"negative pot", func(c *Config) { c.Rules.InitialPot = intPtr(-1) }},
		{"zero pot", func(c *Config) { c.Rules.InitialPot = intPtr(0) }},
		{"zero decks", func(c *Config) { c.Rules.DeckSets = intPtr(0) }},
		{"negative delay", func(c *Config) { c.Rules.DealerDelayMS = -5 }},
		{"mode", func(c *Config) { c.UI.Mode = "gui" }},
		{"log level", func(c *Config) { c.UI.LogLevel = "trace" }},
		{"player name", func(c *Config) { c.UI.PlayerName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseExplicitZeroIsRejected(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"deck sets", `rules { deck_sets = 0 }`},
		{"initial pot", `rules { initial_pot = 0 }`},
		{"dealer stands on", `rules { dealer_stands_on = 0 }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.src), "zero.hcl")
			require.NoError(t, err)
			assert.Error(t, cfg.Validate(), "an explicit zero must not fall back to the default")
		})
	}
}
