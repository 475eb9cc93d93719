package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettle(t *testing.T) {
	twenty := houseHand{score: 20}
	dealerBust := houseHand{score: 24, busted: true}
	dealerNatural := houseHand{score: 21, blackjack: true}

	tests := []struct {
		name    string
		hand    string
		house   houseHand
		result  Result
		message string
		payout  int
		party   bool
	}{
		{"push on equal score", "KsQh", twenty, ResultPush, "Push", 100, false},
		{"lose on lower score", "Ks9h", twenty, ResultLoss, "Lose", 0, false},
		{"win on higher score", "Ks5h6d", twenty, ResultWin, "Win", 200, true},
		{"blackjack pays three to two", "AsKh", twenty, ResultBlackjack, "Blackjack!", 250, true},
		{"bust loses to dealer bust", "KsQh5d", dealerBust, ResultLoss, "Busted", 0, false},
		{"bust loses to dealer blackjack", "KsQh5d", dealerNatural, ResultLoss, "Busted", 0, false},
		{"dealer bust pays even money", "Ks2h", dealerBust, ResultWin, "Dealer Busted", 200, true},
		{"dealer blackjack beats twenty one", "Ks5h6d", dealerNatural, ResultLoss, "Dealer has Blackjack", 0, false},
		{"blackjack pushes dealer blackjack", "AsQh", dealerNatural, ResultPush, "Push", 100, false},
		{"blackjack beats dealer bust as blackjack", "AsQh", dealerBust, ResultBlackjack, "Blackjack!", 250, true},
		{"three card twenty one is not blackjack", "7s7h7d", houseHand{score: 21}, ResultPush, "Push", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := settle(handOf(tt.hand), 100, tt.house)
			assert.Equal(t, tt.result, s.result)
			assert.Equal(t, tt.message, s.message)
			assert.Equal(t, tt.payout, s.payout)
			assert.Equal(t, tt.party, s.celebrate)
		})
	}
}

func TestSettleOddBlackjackRoundsDown(t *testing.T) {
	s := settle(handOf("AsKh"), 75, houseHand{score: 18})
	assert.Equal(t, 75+112, s.payout)
}
