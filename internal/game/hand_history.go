package game

import "time"

// historyLimit bounds how many settled rounds are kept
const historyLimit = 100

// RoundRecord summarises one settled round
type RoundRecord struct {
	RoundID         string
	StartedAt       time.Time
	SettledAt       time.Time
	DealerHand      string
	DealerScore     int
	DealerBusted    bool
	DealerBlackjack bool
	Seats           []SeatRecord
}

// SeatRecord is one non-dealer seat's part of a RoundRecord
type SeatRecord struct {
	Name   string
	Role   Role
	Hand   string
	Score  int
	Bet    int
	Payout int
	Result Result
}

// Net returns the seat's bankroll change over the round
func (r SeatRecord) Net() int {
	return r.Payout - r.Bet
}

// Seat finds a seat record by name
func (r RoundRecord) Seat(name string) (SeatRecord, bool) {
	for _, s := range r.Seats {
		if s.Name == name {
			return s, true
		}
	}
	return SeatRecord{}, false
}

// History returns settled rounds, oldest first
func (g *Game) History() []RoundRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]RoundRecord, len(g.history))
	copy(out, g.history)
	return out
}

// LastRound returns the most recently settled round
func (g *Game) LastRound() (RoundRecord, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.history) == 0 {
		return RoundRecord{}, false
	}
	return g.history[len(g.history)-1], true
}

// recordRound must be called with g.mu held
func (g *Game) recordRound(r RoundRecord) {
	g.history = append(g.history, r)
	if len(g.history) > historyLimit {
		g.history = append(g.history[:0:0], g.history[len(g.history)-historyLimit:]...)
	}
}
