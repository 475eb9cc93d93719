package bot

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

// PolicyBot plays the same hit/stand rule as the AI seats
type PolicyBot struct {
	logger *log.Logger
}

// NewPolicyBot creates a new PolicyBot instance
func NewPolicyBot(logger *log.Logger) *PolicyBot {
	return &PolicyBot{logger: logger}
}

func (p *PolicyBot) MakeDecision(state game.TableState, valid []game.Action) game.Decision {
	score := state.Player().Score
	up := dealerUpCard(state)

	decision := game.Decision{Action: game.Stand, Reasoning: fmt.Sprintf("policy stands on %d against %d", score, up)}
	if game.AIShouldHit(score, up) && hasAction(valid, game.Hit) {
		decision = game.Decision{Action: game.Hit, Reasoning: fmt.Sprintf("policy hits %d against %d", score, up)}
	}
	p.logger.Debug("Decision", "action", decision.Action, "score", score, "up", up)
	return decision
}

// DealerBot mimics the house: hit below 17, stand otherwise
type DealerBot struct {
	logger *log.Logger
}

// NewDealerBot creates a new DealerBot instance
func NewDealerBot(logger *log.Logger) *DealerBot {
	return &DealerBot{logger: logger}
}

func (d *DealerBot) MakeDecision(state game.TableState, valid []game.Action) game.Decision {
	score := state.Player().Score

	decision := game.Decision{Action: game.Stand, Reasoning: "dealer-bot stands"}
	if game.DealerShouldHit(score) && hasAction(valid, game.Hit) {
		decision = game.Decision{Action: game.Hit, Reasoning: "dealer-bot hits below 17"}
	}
	d.logger.Debug("Decision", "action", decision.Action, "score", score)
	return decision
}

// DoublerBot doubles 9 to 11 against a lower dealer up card and
// otherwise plays like PolicyBot
type DoublerBot struct {
	logger *log.Logger
	policy *PolicyBot
}

// NewDoublerBot creates a new DoublerBot instance
func NewDoublerBot(logger *log.Logger) *DoublerBot {
	return &DoublerBot{logger: logger, policy: NewPolicyBot(logger)}
}

func (d *DoublerBot) MakeDecision(state game.TableState, valid []game.Action) game.Decision {
	score := state.Player().Score
	up := dealerUpCard(state)
	if score >= 9 && score <= 11 && up < score && hasAction(valid, game.Double) {
		d.logger.Debug("Decision", "action", game.Double, "score", score, "up", up)
		return game.Decision{Action: game.Double, Reasoning: fmt.Sprintf("doubler doubles %d against %d", score, up)}
	}
	return d.policy.MakeDecision(state, valid)
}
