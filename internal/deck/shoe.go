package deck

import (
	"fmt"
	"math/rand/v2"
)

const (
	// DecksPerShoe is the number of 52-card decks combined into one shoe
	DecksPerShoe = 6
	// CardsPerDeck is the size of a single standard deck
	CardsPerDeck = 52
	// ShoeSize is the number of cards in a fresh shoe
	ShoeSize = DecksPerShoe * CardsPerDeck
	// LowWaterMark is the remaining-card threshold below which the shoe is replaced
	LowWaterMark = 20
)

// Shoe is the multi-deck draw pile. Cards are drawn from the top; the shoe
// only ever shrinks and is replaced wholesale rather than reshuffled in place.
type Shoe struct {
	cards []Card
	next  int
}

// NewShoe builds DecksPerShoe full decks and shuffles them with rng.
// serial distinguishes card ids between successive shoes of one table.
func NewShoe(rng *rand.Rand, serial int) *Shoe {
	cards := make([]Card, 0, ShoeSize)
	for range DecksPerShoe {
		for _, suit := range Suits {
			for rank := Two; rank <= Ace; rank++ {
				c := NewCard(suit, rank)
				c.ID = fmt.Sprintf("%s-%d-%d", c, serial, len(cards))
				cards = append(cards, c)
			}
		}
	}

	s := &Shoe{cards: cards}
	s.shuffle(rng)
	return s
}

// NewShoeFromCards returns an unshuffled shoe that deals cards in the given
// order. Cards without an id are assigned one.
func NewShoeFromCards(cards []Card) *Shoe {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	for i := range stacked {
		if stacked[i].ID == "" {
			stacked[i].ID = fmt.Sprintf("%s-s-%d", stacked[i], i)
		}
	}
	return &Shoe{cards: stacked}
}

// shuffle applies an unbiased Fisher-Yates shuffle
func (s *Shoe) shuffle(rng *rand.Rand) {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the top card. The second result is false when
// the shoe is empty.
func (s *Shoe) Draw() (Card, bool) {
	if s.next >= len(s.cards) {
		return Card{}, false
	}
	card := s.cards[s.next]
	s.next++
	return card, true
}

// Remaining returns the number of cards not yet drawn
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.next
}

// NeedsReplacing reports whether the shoe has fallen below the low-water mark
func (s *Shoe) NeedsReplacing() bool {
	return s.Remaining() < LowWaterMark
}
