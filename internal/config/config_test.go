package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.NoError(t, config.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
table {
  player_name = "Ada"
  ai_names    = ["Left", "Right"]
  seed        = 42
  speed       = 0
}

log {
  level = "debug"
}

simulation {
  rounds   = 250
  strategy = "doubler"
}
`)

	config, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, "Ada", config.Table.PlayerName)
	assert.Equal(t, []string{"Left", "Right"}, config.Table.AINames)
	assert.Equal(t, int64(42), config.Table.Seed)
	assert.Zero(t, config.Table.Speed, "an explicit zero speed is kept")
	assert.Equal(t, log.DebugLevel, config.LogLevel())
	assert.Equal(t, "blackjack.log", config.Log.File, "unset values keep their default")
	assert.Equal(t, 250, config.Simulation.Rounds)
	assert.Equal(t, 1, config.Simulation.Tables)
	assert.Equal(t, 100, config.Simulation.Bet)
	assert.Equal(t, "doubler", config.Simulation.Strategy)
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, `table {`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse HCL file")
}

func TestLoadDecodeError(t *testing.T) {
	path := writeConfig(t, `table { seats = 7 }`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"empty player name", func(c *Config) { c.Table.PlayerName = "" }},
		{"one ai name", func(c *Config) { c.Table.AINames = []string{"Solo"} }},
		{"empty ai name", func(c *Config) { c.Table.AINames = []string{"", "Right"} }},
		{"duplicate names", func(c *Config) { c.Table.AINames = []string{"You", "Right"} }},
		{"dealer name taken", func(c *Config) { c.Table.AINames = []string{"Dealer", "Right"} }},
		{"negative speed", func(c *Config) { c.Table.Speed = -1 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"zero rounds", func(c *Config) { c.Simulation.Rounds = 0 }},
		{"too many tables", func(c *Config) { c.Simulation.Tables = 65 }},
		{"bet above bankroll", func(c *Config) { c.Simulation.Bet = 5001 }},
		{"unknown strategy", func(c *Config) { c.Simulation.Strategy = "martingale" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modify(config)
			err := config.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLogLevelFallback(t *testing.T) {
	config := Default()
	config.Log.Level = "loud"
	assert.Equal(t, log.InfoLevel, config.LogLevel())
}
