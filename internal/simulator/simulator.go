package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/gameid"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// ErrBankrupt is returned when the simulated player can no longer cover the bet
var ErrBankrupt = errors.New("player bankrupt")

// Config holds configuration for running simulations
type Config struct {
	Rounds   int           // rounds per table
	Tables   int           // independent tables, run in parallel
	Bet      int           // flat bet placed every round
	Strategy string        // bot strategy driving the human seat
	Seed     int64         // table i uses Seed+i
	Timeout  time.Duration // per-round hang detection; zero disables it
	Logger   *log.Logger
}

// TableResult summarises one simulated table
type TableResult struct {
	Table    int
	Seed     int64
	Rounds   int
	Shoes    int
	Bankroll int
	Bankrupt bool
	Stats    *statistics.Statistics
}

// Report is the outcome of a whole simulation
type Report struct {
	Strategy string
	Tables   []TableResult
	Stats    *statistics.Statistics // merged across tables
}

// Reshuffles returns how many replacement shoes were built across all tables
func (r *Report) Reshuffles() int {
	n := 0
	for _, t := range r.Tables {
		n += t.Shoes - 1
	}
	return n
}

// Bankrupt returns the tables that stopped early
func (r *Report) Bankrupt() []int {
	var out []int
	for _, t := range r.Tables {
		if t.Bankrupt {
			out = append(out, t.Table)
		}
	}
	return out
}

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Tables <= 0 {
		config.Tables = 1
	}
	logger := config.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Simulator{config: config, logger: logger.WithPrefix("simulator")}
}

// Validate checks the configuration before any table runs
func (c Config) Validate() error {
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	if c.Bet <= 0 || c.Bet > game.PlayerStartingBankroll {
		return fmt.Errorf("bet must be between 1 and %d, got %d", game.PlayerStartingBankroll, c.Bet)
	}
	if !slices.Contains(bot.Strategies(), c.Strategy) {
		return fmt.Errorf("unknown strategy %q (want one of %v)", c.Strategy, bot.Strategies())
	}
	return nil
}

// Run plays every table concurrently and merges their statistics. Tables
// that go bankrupt stop early and are reported, not treated as failures.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	results := make([]TableResult, s.config.Tables)
	g, ctx := errgroup.WithContext(ctx)
	for i := range s.config.Tables {
		g.Go(func() error {
			res, err := s.RunTable(ctx, i)
			if err != nil && !errors.Is(err, ErrBankrupt) {
				return fmt.Errorf("table %d: %w", i, err)
			}
			if err != nil {
				s.logger.Warn("Table stopped early", "table", i, "err", err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Strategy: s.config.Strategy, Tables: results, Stats: &statistics.Statistics{}}
	for _, res := range results {
		report.Stats.Merge(res.Stats)
	}
	if report.Stats.Rounds > 0 {
		if err := report.Stats.Validate(); err != nil {
			return nil, fmt.Errorf("statistics validation failed: %w", err)
		}
	}

	s.logger.Info("Simulation complete",
		"tables", len(results),
		"rounds", report.Stats.Rounds,
		"reshuffles", report.Reshuffles(),
		"net", report.Stats.NetChips)
	return report, nil
}

// RunTable plays up to Rounds rounds on a fresh table. It returns an error
// wrapping ErrBankrupt, along with the partial result, if the player runs
// out of chips first.
func (s *Simulator) RunTable(ctx context.Context, table int) (result TableResult, err error) {
	seed := s.config.Seed + int64(table)
	logger := s.logger.With("table", table)
	rng := randutil.New(seed)

	agent, err := bot.New(s.config.Strategy, rng, logger)
	if err != nil {
		return TableResult{}, err
	}
	g := game.NewGame(rng, logger, game.WithIDGenerator(gameid.NewGenerator(randutil.Reader(rng))))

	result = TableResult{Table: table, Seed: seed, Stats: &statistics.Statistics{}}
	defer func() {
		state := g.Snapshot()
		result.Shoes = state.Shoes
		result.Bankroll = state.Player().Bankroll
	}()

	name := g.Snapshot().Player().Name
	for round := range s.config.Rounds {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if g.Snapshot().Player().Bankroll < s.config.Bet {
			result.Bankrupt = true
			return result, fmt.Errorf("table %d after %d rounds: %w", table, round, ErrBankrupt)
		}

		rr, err := s.playRoundWithTimeout(ctx, g, agent, name)
		if err != nil {
			return result, fmt.Errorf("round %d: %w", round+1, err)
		}
		result.Rounds++
		result.Stats.Add(rr)
	}
	return result, nil
}

// playRoundWithTimeout runs a single round with hang protection
func (s *Simulator) playRoundWithTimeout(ctx context.Context, g *game.Game, agent game.Agent, name string) (statistics.RoundResult, error) {
	if s.config.Timeout <= 0 {
		return s.playRound(g, agent, name)
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	type outcome struct {
		result statistics.RoundResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		r, err := s.playRound(g, agent, name)
		done <- outcome{r, err}
	}()

	select {
	case o := <-done:
		return o.result, o.err
	case <-ctx.Done():
		return statistics.RoundResult{}, fmt.Errorf("round timed out after %v: %w", s.config.Timeout, ctx.Err())
	}
}

// playRound bets, deals, lets the agent act and reads the settled record
func (s *Simulator) playRound(g *game.Game, agent game.Agent, name string) (statistics.RoundResult, error) {
	g.PlaceBet(s.config.Bet)
	g.StartRound()
	actions := g.Drive(agent)

	if phase := g.Phase(); phase != game.PhaseBetting {
		return statistics.RoundResult{}, fmt.Errorf("round did not settle, phase %s", phase)
	}
	record, ok := g.LastRound()
	if !ok {
		return statistics.RoundResult{}, errors.New("no round recorded")
	}
	if err := gameid.Validate(record.RoundID); err != nil {
		return statistics.RoundResult{}, fmt.Errorf("round record: %w", err)
	}
	seat, ok := record.Seat(name)
	if !ok {
		return statistics.RoundResult{}, fmt.Errorf("seat %q missing from round %s", name, record.RoundID)
	}

	return statistics.RoundResult{
		Bet:     seat.Bet,
		Net:     seat.Net(),
		Result:  seat.Result,
		Doubled: slices.Contains(actions, game.Double),
		Busted:  seat.Score > game.BlackjackScore,
	}, nil
}
