package bot

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

// RandBot is a simple bot that picks a uniform random valid action
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) MakeDecision(_ game.TableState, valid []game.Action) game.Decision {
	if len(valid) == 0 {
		r.logger.Debug("No valid actions, standing")
		return game.Decision{Action: game.Stand, Reasoning: "rand-bot no valid actions"}
	}
	action := valid[r.rng.IntN(len(valid))]
	r.logger.Debug("Decision", "action", action, "choices", len(valid))
	return game.Decision{Action: action, Reasoning: "rand-bot random action"}
}
