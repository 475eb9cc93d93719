package game

import "slices"

// Decision represents a seat's decision with reasoning
type Decision struct {
	Action    Action
	Reasoning string // Human-readable explanation
}

// Agent represents anything that can drive the human seat: a bot in
// simulations or a scripted player in tests. Agents receive an immutable
// snapshot and return a decision; they never touch the Game directly.
type Agent interface {
	MakeDecision(state TableState, validActions []Action) Decision
}

// ValidActions lists the actions the human seat may take in this state.
// It is empty unless the seat is awaiting input.
func (s TableState) ValidActions() []Action {
	if s.Phase != PhasePlaying || !s.AwaitingInput || s.TurnIndex != PlayerSeat {
		return nil
	}
	actions := []Action{Hit, Stand}
	if s.Player().CanDouble {
		actions = append(actions, Double)
	}
	return actions
}

// Drive asks agent for decisions and applies them until the human seat
// no longer awaits input. It returns the actions taken.
func (g *Game) Drive(agent Agent) []Action {
	var taken []Action
	for {
		state := g.Snapshot()
		valid := state.ValidActions()
		if len(valid) == 0 {
			return taken
		}
		d := agent.MakeDecision(state, valid)
		if !slices.Contains(valid, d.Action) {
			g.logger.Debug("Agent chose invalid action, standing", "action", d.Action, "reasoning", d.Reasoning)
			d.Action = Stand
		}
		g.logger.Debug("Agent decision", "action", d.Action, "reasoning", d.Reasoning)
		taken = append(taken, d.Action)
		g.Act(d.Action)
	}
}
