package game

const (
	// DealerStandScore is the total at which the dealer stops drawing.
	// The dealer hits soft totals exactly like hard ones.
	DealerStandScore = 17

	aiAlwaysHitBelow  = 12
	aiAlwaysStandFrom = 17
	aiDealerStrongUp  = 7
)

// AIShouldHit is the scripted opponent policy: always hit below 12, always
// stand on 17 or more, and in between hit only against a dealer up card
// worth 7 or more.
func AIShouldHit(score, dealerUpCard int) bool {
	switch {
	case score < aiAlwaysHitBelow:
		return true
	case score >= aiAlwaysStandFrom:
		return false
	default:
		return dealerUpCard >= aiDealerStrongUp
	}
}

// DealerShouldHit is the house rule: draw below 17
func DealerShouldHit(score int) bool {
	return score < DealerStandScore
}

// shouldHit dispatches to the policy for the seat's role. The human seat has
// no automatic policy.
func shouldHit(role Role, score, dealerUpCard int) bool {
	switch role {
	case RoleAI:
		return AIShouldHit(score, dealerUpCard)
	case RoleDealer:
		return DealerShouldHit(score)
	default:
		return false
	}
}
