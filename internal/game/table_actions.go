package game

// playerCanAct must be called with g.mu held. Actions are only taken while
// the human seat's turn is suspended waiting for input, so a second call that
// arrives while a previous one is still pacing is ignored.
func (g *Game) playerCanAct() bool {
	return g.phase == PhasePlaying && g.turn == PlayerSeat && g.awaitingInput
}

// beginPlayerAction claims the awaiting-input state. extra runs under the
// same lock and may veto the action.
func (g *Game) beginPlayerAction(extra func(p *Participant) bool) bool {
	return g.update(func() bool {
		if !g.playerCanAct() {
			return false
		}
		if extra != nil && !extra(g.seats[PlayerSeat]) {
			return false
		}
		g.awaitingInput = false
		return true
	})
}

// finishPlayerTurn ends the human seat's turn and runs the rest of the round
func (g *Game) finishPlayerTurn() {
	g.advanceTurn()
	g.playTurns()
}

// PlayerHit deals the human seat one card. On a bust the turn ends;
// otherwise the seat keeps the turn.
func (g *Game) PlayerHit() {
	if !g.beginPlayerAction(nil) {
		g.logger.Debug("Ignoring hit")
		return
	}

	g.dealTo(PlayerSeat, false)
	if g.inspect(PlayerSeat).busted {
		g.setMessage(PlayerSeat, "Bust!")
		g.pacer.Pause(PlayerResultPause)
		g.finishPlayerTurn()
		return
	}

	g.update(func() bool {
		g.awaitingInput = true
		return true
	})
}

// PlayerStand ends the human seat's turn
func (g *Game) PlayerStand() {
	if !g.beginPlayerAction(func(p *Participant) bool {
		p.Message = "Stand"
		return true
	}) {
		g.logger.Debug("Ignoring stand")
		return
	}
	g.finishPlayerTurn()
}

// PlayerDouble doubles the bet and deals exactly one more card, then ends
// the turn. Ignored unless the seat holds two cards and can cover the bet.
func (g *Game) PlayerDouble() {
	if !g.beginPlayerAction(func(p *Participant) bool {
		if len(p.Hand) != 2 || p.Bankroll < p.Bet {
			return false
		}
		p.Bankroll -= p.Bet
		p.Bet *= 2
		return true
	}) {
		g.logger.Debug("Ignoring double")
		return
	}

	g.dealTo(PlayerSeat, false)
	if g.inspect(PlayerSeat).busted {
		g.setMessage(PlayerSeat, "Bust!")
	} else {
		g.setMessage(PlayerSeat, "Stand")
	}
	g.pacer.Pause(PlayerResultPause)
	g.finishPlayerTurn()
}

// Act dispatches an action to the matching entry point
func (g *Game) Act(a Action) {
	switch a {
	case Hit:
		g.PlayerHit()
	case Stand:
		g.PlayerStand()
	case Double:
		g.PlayerDouble()
	}
}
