package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// SimulateCmd plays rounds headlessly
type SimulateCmd struct {
	Rounds   *int          `short:"n" help:"Rounds per table"`
	Tables   *int          `short:"t" help:"Independent tables to run in parallel"`
	Bet      *int          `short:"b" help:"Flat bet per round"`
	Strategy string        `short:"s" help:"Bot strategy: ${strategies}"`
	Seed     *int64        `help:"RNG seed (0 for time-based)"`
	Timeout  time.Duration `default:"5s" help:"Per-round hang detection"`
	Out      string        `short:"o" type:"path" help:"Also write a JSON summary to this file"`

	stdout io.Writer
	stderr io.Writer
}

func (c *SimulateCmd) apply(cfg *config.Config) {
	if c.Rounds != nil {
		cfg.Simulation.Rounds = *c.Rounds
	}
	if c.Tables != nil {
		cfg.Simulation.Tables = *c.Tables
	}
	if c.Bet != nil {
		cfg.Simulation.Bet = *c.Bet
	}
	if c.Strategy != "" {
		cfg.Simulation.Strategy = c.Strategy
	}
	if c.Seed != nil {
		cfg.Table.Seed = *c.Seed
	}
}

func (c *SimulateCmd) Run(globals *Globals) error {
	stdout, stderr := c.stdout, c.stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cfg, err := loadConfig(globals, c.apply)
	if err != nil {
		return err
	}

	logger := setupLogger(stderr, cfg.LogLevel())
	seed := randutil.Seed(cfg.Table.Seed)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	fmt.Fprintln(stdout, titleStyle.Render(" ♠ ♥ Blackjack Simulator ♦ ♣ "))
	logger.Info("Starting simulation",
		"rounds", cfg.Simulation.Rounds,
		"tables", cfg.Simulation.Tables,
		"bet", cfg.Simulation.Bet,
		"strategy", cfg.Simulation.Strategy,
		"seed", seed)

	start := time.Now()
	sim := simulator.New(simulator.Config{
		Rounds:   cfg.Simulation.Rounds,
		Tables:   cfg.Simulation.Tables,
		Bet:      cfg.Simulation.Bet,
		Strategy: cfg.Simulation.Strategy,
		Seed:     seed,
		Timeout:  c.Timeout,
		Logger:   logger,
	})
	report, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	simulator.PrintSummary(stdout, report)
	if c.Out != "" {
		if err := fileutil.WriteJSONAtomic(c.Out, report.Summary(), 0o644); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		logger.Info("Wrote summary", "path", c.Out)
	}
	logger.Info("Simulation finished", "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// strategyHelp lists the strategies for the --strategy flag help
func strategyHelp() string {
	return fmt.Sprint(bot.Strategies())
}
