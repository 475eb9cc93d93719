// Package config loads blackjack settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/game"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// DefaultFile is the config file read when none is given
const DefaultFile = "blackjack.hcl"

// Config represents the complete blackjack configuration
type Config struct {
	Table      TableSettings
	Log        LogSettings
	Simulation SimulationSettings
}

// TableSettings configures the interactive table
type TableSettings struct {
	PlayerName string
	AINames    []string // left seat, then right seat
	Seed       int64    // 0 picks a time-based seed
	Speed      float64  // pacing multiplier; 0 disables delays
}

// LogSettings configures logging
type LogSettings struct {
	Level string
	File  string // used by the interactive table, which owns the terminal
}

// SimulationSettings configures headless runs
type SimulationSettings struct {
	Rounds   int
	Tables   int
	Bet      int
	Strategy string
}

// fileConfig mirrors the HCL layout; every block and attribute is optional
type fileConfig struct {
	Table      *fileTable      `hcl:"table,block"`
	Log        *fileLog        `hcl:"log,block"`
	Simulation *fileSimulation `hcl:"simulation,block"`
}

type fileTable struct {
	PlayerName *string  `hcl:"player_name,optional"`
	AINames    []string `hcl:"ai_names,optional"`
	Seed       *int64   `hcl:"seed,optional"`
	Speed      *float64 `hcl:"speed,optional"`
}

type fileLog struct {
	Level *string `hcl:"level,optional"`
	File  *string `hcl:"file,optional"`
}

type fileSimulation struct {
	Rounds   *int    `hcl:"rounds,optional"`
	Tables   *int    `hcl:"tables,optional"`
	Bet      *int    `hcl:"bet,optional"`
	Strategy *string `hcl:"strategy,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Table: TableSettings{
			PlayerName: "You",
			AINames:    []string{"Sophia (AI)", "Marcus (AI)"},
			Speed:      1.0,
		},
		Log: LogSettings{
			Level: "info",
			File:  "blackjack.log",
		},
		Simulation: SimulationSettings{
			Rounds:   1000,
			Tables:   1,
			Bet:      100,
			Strategy: bot.StrategyPolicy,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; values present in the file override them.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source over the defaults
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if t := fc.Table; t != nil {
		setIf(&config.Table.PlayerName, t.PlayerName)
		setIf(&config.Table.Seed, t.Seed)
		setIf(&config.Table.Speed, t.Speed)
		if t.AINames != nil {
			config.Table.AINames = t.AINames
		}
	}
	if l := fc.Log; l != nil {
		setIf(&config.Log.Level, l.Level)
		setIf(&config.Log.File, l.File)
	}
	if s := fc.Simulation; s != nil {
		setIf(&config.Simulation.Rounds, s.Rounds)
		setIf(&config.Simulation.Tables, s.Tables)
		setIf(&config.Simulation.Bet, s.Bet)
		setIf(&config.Simulation.Strategy, s.Strategy)
	}
	return config, nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Table.PlayerName == "" {
		return fmt.Errorf("%w: player_name must not be empty", ErrInvalidConfig)
	}
	if len(c.Table.AINames) != 2 {
		return fmt.Errorf("%w: ai_names needs exactly 2 names, got %d", ErrInvalidConfig, len(c.Table.AINames))
	}
	names := append([]string{c.Table.PlayerName, "Dealer"}, c.Table.AINames...)
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%w: ai_names must not contain empty names", ErrInvalidConfig)
		}
		if slices.Contains(names[:i], name) {
			return fmt.Errorf("%w: seat name %q is used twice", ErrInvalidConfig, name)
		}
	}
	if c.Table.Speed < 0 {
		return fmt.Errorf("%w: speed must not be negative, got %v", ErrInvalidConfig, c.Table.Speed)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}

	sim := c.Simulation
	if sim.Rounds <= 0 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, sim.Rounds)
	}
	if sim.Tables < 1 || sim.Tables > 64 {
		return fmt.Errorf("%w: tables must be between 1 and 64, got %d", ErrInvalidConfig, sim.Tables)
	}
	if sim.Bet <= 0 || sim.Bet > game.PlayerStartingBankroll {
		return fmt.Errorf("%w: bet must be between 1 and %d, got %d", ErrInvalidConfig, game.PlayerStartingBankroll, sim.Bet)
	}
	if !slices.Contains(bot.Strategies(), sim.Strategy) {
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, sim.Strategy)
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
