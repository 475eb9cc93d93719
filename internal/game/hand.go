package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

const (
	// BlackjackScore is the best possible hand total
	BlackjackScore   = 21
	softAceReduction = 10
)

// Hand is an ordered sequence of cards. Order matters for display only.
type Hand []deck.Card

// Score sums the visible cards, counting an Ace as 1 instead of 11 as many
// times as needed to stay at or below 21. Hidden cards contribute nothing.
func (h Hand) Score() int {
	score, aces := 0, 0
	for _, c := range h {
		if c.Hidden {
			continue
		}
		score += c.Value()
		if c.IsAce() {
			aces++
		}
	}

	for score > BlackjackScore && aces > 0 {
		score -= softAceReduction
		aces--
	}
	return score
}

// IsBusted returns true when the visible score exceeds 21
func (h Hand) IsBusted() bool {
	return h.Score() > BlackjackScore
}

// IsBlackjack returns true for a two-card hand whose visible score is 21
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Score() == BlackjackScore
}

// String renders the hand, masking hidden cards
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		if c.Hidden {
			parts[i] = "??"
		} else {
			parts[i] = c.String()
		}
	}
	return strings.Join(parts, " ")
}
