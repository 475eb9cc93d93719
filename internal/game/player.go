package game

import "github.com/lox/blackjack/internal/deck"

const (
	// PlayerStartingBankroll is the human seat's bankroll at table setup
	PlayerStartingBankroll = 5000
	// AIStartingBankroll is each AI seat's bankroll at table setup
	AIStartingBankroll = 2000
)

// Participant is one seat at the table. Role decides who makes the seat's
// decisions; everything else is shared by all three roles.
type Participant struct {
	ID       string
	Name     string
	Role     Role
	Hand     Hand
	Bankroll int
	Bet      int
	Result   Result
	Message  string
}

// NewParticipant creates a seat with an empty hand
func NewParticipant(id, name string, role Role, bankroll int) *Participant {
	return &Participant{
		ID:       id,
		Name:     name,
		Role:     role,
		Bankroll: bankroll,
	}
}

// Score returns the visible hand score; it is never cached
func (p *Participant) Score() int {
	return p.Hand.Score()
}

// IsBusted returns true when the visible hand is over 21
func (p *Participant) IsBusted() bool {
	return p.Hand.IsBusted()
}

// IsBlackjack returns true for a visible two-card 21
func (p *Participant) IsBlackjack() bool {
	return p.Hand.IsBlackjack()
}

// Reset clears every per-round field: hand, bet, result and message.
// Calling it repeatedly leaves the same state.
func (p *Participant) Reset() {
	p.clearHand()
	p.Bet = 0
}

// clearHand is the start-of-round reset. The bet is left alone because it
// was placed before the deal and is needed for settlement.
func (p *Participant) clearHand() {
	p.Hand = nil
	p.Result = ResultNone
	p.Message = ""
}

func (p *Participant) receive(card deck.Card) {
	p.Hand = append(p.Hand, card)
}

// revealHoleCard turns the first hidden card face up and reports whether
// there was one
func (p *Participant) revealHoleCard() bool {
	for i := range p.Hand {
		if p.Hand[i].Hidden {
			p.Hand[i].Flip()
			return true
		}
	}
	return false
}
