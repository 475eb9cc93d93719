// Package bot provides scripted agents that can drive the human seat in
// headless simulations.
package bot

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

// Strategy names accepted by New
const (
	StrategyPolicy  = "policy"
	StrategyDealer  = "dealer"
	StrategyDoubler = "doubler"
	StrategyRandom  = "random"
)

var constructors = map[string]func(rng *rand.Rand, logger *log.Logger) game.Agent{
	StrategyPolicy:  func(_ *rand.Rand, l *log.Logger) game.Agent { return NewPolicyBot(l) },
	StrategyDealer:  func(_ *rand.Rand, l *log.Logger) game.Agent { return NewDealerBot(l) },
	StrategyDoubler: func(_ *rand.Rand, l *log.Logger) game.Agent { return NewDoublerBot(l) },
	StrategyRandom:  func(r *rand.Rand, l *log.Logger) game.Agent { return NewRandBot(r, l) },
}

// Strategies returns the known strategy names, sorted
func Strategies() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the agent registered under strategy
func New(strategy string, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	ctor, ok := constructors[strategy]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", strategy, Strategies())
	}
	if logger == nil {
		logger = log.Default()
	}
	return ctor(rng, logger.WithPrefix("bot").With("strategy", strategy)), nil
}

// dealerUpCard returns the value of the dealer's face-up card, or 0 when
// no card is showing
func dealerUpCard(state game.TableState) int {
	for _, c := range state.Dealer().Hand {
		if !c.Hidden {
			return c.Value()
		}
	}
	return 0
}

func hasAction(valid []game.Action, a game.Action) bool {
	return slices.Contains(valid, a)
}
