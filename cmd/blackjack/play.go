package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
)

// PlayCmd runs the interactive table
type PlayCmd struct {
	Name    string   `help:"Your display name"`
	Seed    *int64   `help:"Deterministic RNG seed (0 for time-based)"`
	Speed   *float64 `help:"Pacing multiplier; 0 disables delays, 2 is half speed"`
	LogFile string   `help:"Log file (the table owns the terminal)"`
}

func (c *PlayCmd) apply(cfg *config.Config) {
	if c.Name != "" {
		cfg.Table.PlayerName = c.Name
	}
	if c.Seed != nil {
		cfg.Table.Seed = *c.Seed
	}
	if c.Speed != nil {
		cfg.Table.Speed = *c.Speed
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := loadConfig(globals, c.apply)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		_ = logFile.Close()
	}()

	logger := setupLogger(logFile, cfg.LogLevel())
	seed := randutil.Seed(cfg.Table.Seed)
	logger.Info("Starting table", "seed", seed, "speed", cfg.Table.Speed, "player", cfg.Table.PlayerName)

	clock := quartz.NewReal()
	model := tui.NewTUIModel(logger)
	g := game.NewGame(randutil.New(seed), logger,
		game.WithClock(clock),
		game.WithPacer(game.NewClockPacer(clock, cfg.Table.Speed)),
		game.WithNames(cfg.Table.PlayerName, cfg.Table.AINames[0], cfg.Table.AINames[1]),
		game.WithCelebration(model.Celebrate),
	)
	model.Attach(g)
	defer model.Close()

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("table UI failed: %w", err)
	}

	if rec, ok := g.LastRound(); ok {
		logger.Info("Leaving table", "last_round", rec.RoundID, "bankroll", g.Snapshot().Player().Bankroll)
	}
	return nil
}
