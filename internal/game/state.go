package game

import "github.com/lox/blackjack/internal/deck"

// SeatState is a read-only view of one seat
type SeatState struct {
	Index       int
	ID          string
	Name        string
	Role        Role
	Hand        []deck.Card
	Score       int
	Bankroll    int
	Bet         int
	IsTurn      bool
	Result      Result
	Message     string
	IsBusted    bool
	IsBlackjack bool

	// CanDouble mirrors the PlayerDouble guard. The engine enforces the
	// two-card rule itself too, so ignoring this flag cannot double late.
	CanDouble bool
}

// TableState is a read-only view of the whole table
type TableState struct {
	Phase         Phase
	TurnIndex     int
	AwaitingInput bool // the human seat's turn is suspended waiting for an action
	RoundID       string
	ShoeRemaining int
	Shoes         int // shoes built so far, including the current one
	Pot           int
	Seats         []SeatState
}

// Player returns the human seat
func (s TableState) Player() SeatState {
	return s.Seats[PlayerSeat]
}

// Dealer returns the dealer seat
func (s TableState) Dealer() SeatState {
	return s.Seats[DealerSeat]
}

// Snapshot copies the current table state
func (g *Game) Snapshot() TableState {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := TableState{
		Phase:         g.phase,
		TurnIndex:     g.turn,
		AwaitingInput: g.awaitingInput,
		RoundID:       g.roundID,
		ShoeRemaining: g.shoe.Remaining(),
		Shoes:         g.shoes,
		Seats:         make([]SeatState, len(g.seats)),
	}
	for i := range g.seats {
		state.Seats[i] = g.seatState(i)
		state.Pot += g.seats[i].Bet
	}
	return state
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// TurnIndex returns the active seat, or -1 outside Playing
func (g *Game) TurnIndex() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn
}

// seatState must be called with g.mu held
func (g *Game) seatState(i int) SeatState {
	p := g.seats[i]
	hand := make([]deck.Card, len(p.Hand))
	copy(hand, p.Hand)

	isTurn := g.phase == PhasePlaying && g.turn == i
	return SeatState{
		Index:       i,
		ID:          p.ID,
		Name:        p.Name,
		Role:        p.Role,
		Hand:        hand,
		Score:       p.Score(),
		Bankroll:    p.Bankroll,
		Bet:         p.Bet,
		IsTurn:      isTurn,
		Result:      p.Result,
		Message:     p.Message,
		IsBusted:    p.IsBusted(),
		IsBlackjack: p.IsBlackjack(),
		CanDouble:   i == PlayerSeat && g.playerCanAct() && len(p.Hand) == 2 && p.Bankroll >= p.Bet,
	}
}
