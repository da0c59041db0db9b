package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/game"
)

// Config represents the complete blackjack configuration
type Config struct {
	Rules RulesSettings `hcl:"rules,block"`
	UI    UISettings    `hcl:"ui,block"`
}

// RulesSettings contains the table rules
type RulesSettings struct {
	DeckSets       *int  `hcl:"deck_sets,optional"`
	InitialPot     *int  `hcl:"initial_pot,optional"`
	DealerStandsOn *int  `hcl:"dealer_stands_on,optional"`
	HitOnTwentyOne *bool `hcl:"hit_on_twenty_one,optional"`
	DealerDelayMS  int   `hcl:"dealer_delay_ms,optional"`
}

// UISettings contains terminal and logging settings
type UISettings struct {
	Mode       string `hcl:"mode,optional"`
	Clear      *bool  `hcl:"clear,optional"`
	PlayerName string `hcl:"player_name,optional"`
	LogLevel   string `hcl:"log_level,optional"`
	LogFile    string `hcl:"log_file,optional"`
}

// UI modes
const (
	ModePrompt = "prompt"
	ModePlain  = "plain"
)

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(n int) *int {
	return &n
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	rules := game.DefaultRules()
	return &Config{
		Rules: RulesSettings{
			DeckSets:       intPtr(rules.DeckSets),
			InitialPot:     intPtr(rules.InitialPot),
			DealerStandsOn: intPtr(rules.DealerStandsOn),
			HitOnTwentyOne: boolPtr(rules.HitOnTwentyOne),
			DealerDelayMS:  int(rules.DealerDelay / time.Millisecond),
		},
		UI: UISettings{
			Mode:       ModePrompt,
			Clear:      boolPtr(true),
			PlayerName: "Player",
			LogLevel:   "info",
			LogFile:    "blackjack.log",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills unset values from the defaults
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config struct {
		Rules *RulesSettings `hcl:"rules,block"`
		UI    *UISettings    `hcl:"ui,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := DefaultConfig()
	if config.Rules != nil {
		cfg.Rules.merge(*config.Rules)
	}
	if config.UI != nil {
		cfg.UI.merge(*config.UI)
	}
	return cfg, nil
}

func (r *RulesSettings) merge(o RulesSettings) {
	if o.DeckSets != nil {
		r.DeckSets = o.DeckSets
	}
	if o.InitialPot != nil {
		r.InitialPot = o.InitialPot
	}
	if o.DealerStandsOn != nil {
		r.DealerStandsOn = o.DealerStandsOn
	}
	if o.HitOnTwentyOne != nil {
		r.HitOnTwentyOne = o.HitOnTwentyOne
	}
	if o.DealerDelayMS != 0 {
		r.DealerDelayMS = o.DealerDelayMS
	}
}

func (u *UISettings) merge(o UISettings) {
	if o.Mode != "" {
		u.Mode = o.Mode
	}
	if o.Clear != nil {
		u.Clear = o.Clear
	}
	if o.PlayerName != "" {
		u.PlayerName = o.PlayerName
	}
	if o.LogLevel != "" {
		u.LogLevel = o.LogLevel
	}
	if o.LogFile != "" {
		u.LogFile = o.LogFile
	}
}

// GameRules converts the rules block into game.Rules. Unset fields take
// the default rules.
func (c *Config) GameRules() game.Rules {
	rules := game.DefaultRules()
	if c.Rules.DeckSets != nil {
		rules.DeckSets = *c.Rules.DeckSets
	}
	if c.Rules.InitialPot != nil {
		rules.InitialPot = *c.Rules.InitialPot
	}
	if c.Rules.DealerStandsOn != nil {
		rules.DealerStandsOn = *c.Rules.DealerStandsOn
	}
	if c.Rules.HitOnTwentyOne != nil {
		rules.HitOnTwentyOne = *c.Rules.HitOnTwentyOne
	}
	rules.DealerDelay = time.Duration(c.Rules.DealerDelayMS) * time.Millisecond
	return rules
}

// ShouldClear returns whether the screen is cleared before each render
func (c *Config) ShouldClear() bool {
	return c.UI.Clear == nil || *c.UI.Clear
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Rules.DealerDelayMS < 0 {
		return fmt.Errorf("dealer delay cannot be negative")
	}
	if err := c.GameRules().Validate(); err != nil {
		return err
	}

	validModes := map[string]bool{
		ModePrompt: true,
		ModePlain:  true,
	}
	if !validModes[c.UI.Mode] {
		return fmt.Errorf("invalid ui mode: %s", c.UI.Mode)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	if c.UI.PlayerName == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
