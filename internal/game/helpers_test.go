package game

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// stackedShoe deals the given cards first, in order, followed by tens. The
// padding keeps the shoe above the low-water mark so every draw in a test
// is predictable.
func stackedShoe(top string) *deck.Shoe {
	cards := deck.MustParseCards(top)
	cards = append(cards, deck.MustParseCards(strings.Repeat("Ts", 100))...)
	return deck.NewShoeFromCards(cards)
}

// newTestGame creates a game whose first deals come from top. Deal order is
// left AI, player, right AI, dealer, twice; the dealer's second card is the
// hole card.
func newTestGame(t *testing.T, top string, opts ...Option) *Game {
	t.Helper()
	all := append([]Option{WithShoe(stackedShoe(top))}, opts...)
	return NewGame(randutil.New(42), testLogger(), all...)
}

// recordingPacer remembers every requested pause without waiting
type recordingPacer struct {
	mu     sync.Mutex
	pauses []time.Duration
}

func (p *recordingPacer) Pause(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauses = append(p.pauses, d)
}

func (p *recordingPacer) count(d time.Duration) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, got := range p.pauses {
		if got == d {
			n++
		}
	}
	return n
}

// phaseRecorder tracks distinct phases and turn indices as notifications arrive
type phaseRecorder struct {
	phases []Phase
	turns  []int
}

func (r *phaseRecorder) attach(g *Game) func() {
	return g.Subscribe(func() {
		s := g.Snapshot()
		if len(r.phases) == 0 || r.phases[len(r.phases)-1] != s.Phase {
			r.phases = append(r.phases, s.Phase)
		}
		if s.Phase == PhasePlaying && (len(r.turns) == 0 || r.turns[len(r.turns)-1] != s.TurnIndex) {
			r.turns = append(r.turns, s.TurnIndex)
		}
	})
}
