package game

// houseHand is the dealer's final position, captured once and applied to
// every seat
type houseHand struct {
	score     int
	busted    bool
	blackjack bool
}

type settlement struct {
	result    Result
	message   string
	payout    int // credited to the bankroll; the bet was already taken
	celebrate bool
}

// settle decides one seat's outcome. Rules are checked in priority order:
// seat bust, dealer blackjack, seat blackjack, dealer bust, then score.
func settle(hand Hand, bet int, house houseHand) settlement {
	switch {
	case hand.IsBusted():
		return settlement{result: ResultLoss, message: "Busted"}

	case house.blackjack:
		if hand.IsBlackjack() {
			return settlement{result: ResultPush, message: "Push", payout: bet}
		}
		return settlement{result: ResultLoss, message: "Dealer has Blackjack"}

	case hand.IsBlackjack():
		// 3:2, rounded down for odd bets
		return settlement{result: ResultBlackjack, message: "Blackjack!", payout: bet + bet*3/2, celebrate: true}

	case house.busted:
		return settlement{result: ResultWin, message: "Dealer Busted", payout: 2 * bet, celebrate: true}
	}

	score := hand.Score()
	switch {
	case score > house.score:
		return settlement{result: ResultWin, message: "Win", payout: 2 * bet, celebrate: true}
	case score == house.score:
		return settlement{result: ResultPush, message: "Push", payout: bet}
	default:
		return settlement{result: ResultLoss, message: "Lose"}
	}
}
