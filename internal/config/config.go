package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultPath is the config file looked up when none is given
const DefaultPath = "blackjack.hcl"

// Config represents the complete game configuration
type Config struct {
	Game     *GameSettings     `hcl:"game,block"`
	Log      *LogSettings      `hcl:"log,block"`
	Keys     *KeySettings      `hcl:"keys,block"`
	Autoplay *AutoplaySettings `hcl:"autoplay,block"`
}

// GameSettings controls the host loop
type GameSettings struct {
	TickRate int   `hcl:"tick_rate,optional"`
	Seed     int64 `hcl:"seed,optional"`
}

// LogSettings controls the debug log written while the TUI owns the terminal
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// KeySettings maps terminal keys onto game keys
type KeySettings struct {
	Hit     []string `hcl:"hit,optional"`
	Stand   []string `hcl:"stand,optional"`
	Restart []string `hcl:"restart,optional"`
	Quit    []string `hcl:"quit,optional"`
}

// AutoplaySettings configures the self-play simulator
type AutoplaySettings struct {
	StandOn int `hcl:"stand_on,optional"`
	Rounds  int `hcl:"rounds,optional"`
	Workers int `hcl:"workers,optional"`
}

// Default returns the default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Parse decodes configuration from HCL source held in memory.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.TickRate == 0 {
		c.Game.TickRate = 60
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = "blackjack.log"
	}

	if c.Keys == nil {
		c.Keys = &KeySettings{}
	}
	if len(c.Keys.Hit) == 0 {
		c.Keys.Hit = []string{"f"}
	}
	if len(c.Keys.Stand) == 0 {
		c.Keys.Stand = []string{"e"}
	}
	if len(c.Keys.Restart) == 0 {
		c.Keys.Restart = []string{"n"}
	}
	if len(c.Keys.Quit) == 0 {
		c.Keys.Quit = []string{"esc", "ctrl+c"}
	}

	if c.Autoplay == nil {
		c.Autoplay = &AutoplaySettings{}
	}
	if c.Autoplay.StandOn == 0 {
		c.Autoplay.StandOn = 17
	}
	if c.Autoplay.Rounds == 0 {
		c.Autoplay.Rounds = 10000
	}
	if c.Autoplay.Workers == 0 {
		c.Autoplay.Workers = 4
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.TickRate < 1 || c.Game.TickRate > 1000 {
		return fmt.Errorf("invalid tick rate: %d", c.Game.TickRate)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	seen := make(map[string]string)
	for action, keys := range map[string][]string{
		"hit":     c.Keys.Hit,
		"stand":   c.Keys.Stand,
		"restart": c.Keys.Restart,
		"quit":    c.Keys.Quit,
	} {
		for _, k := range keys {
			if k == "" {
				return fmt.Errorf("keys: empty binding for %s", action)
			}
			if other, ok := seen[k]; ok {
				return fmt.Errorf("keys: %q bound to both %s and %s", k, other, action)
			}
			seen[k] = action
		}
	}

	if c.Autoplay.StandOn < 2 || c.Autoplay.StandOn > 21 {
		return fmt.Errorf("autoplay: stand_on must be between 2 and 21, got %d", c.Autoplay.StandOn)
	}
	if c.Autoplay.Rounds < 1 {
		return fmt.Errorf("autoplay: rounds must be positive")
	}
	if c.Autoplay.Workers < 1 {
		return fmt.Errorf("autoplay: workers must be positive")
	}

	return nil
}

// LogLevel returns the parsed log level, falling back to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
