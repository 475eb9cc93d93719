package game

import (
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/gameid"
)

// Fixed seating: left AI, human, right AI, dealer
const (
	PlayerSeat = 1
	DealerSeat = 3
	seatCount  = 4

	// AI seats bet one of aiBetLevels amounts, stepping by aiBetStep from aiBetStep
	aiBetStep   = 50
	aiBetLevels = 5
)

// Option configures a Game during creation
type Option func(*gameConfig)

type gameConfig struct {
	pacer      Pacer
	clock      quartz.Clock
	shoe       *deck.Shoe
	ids        *gameid.Generator
	playerName string
	aiNames    [2]string
	celebrate  func(SeatState)
}

// WithPacer sets the pacing strategy. Defaults to NoDelay.
func WithPacer(p Pacer) Option {
	return func(c *gameConfig) { c.pacer = p }
}

// WithClock sets the clock used for round timestamps. Defaults to the real clock.
func WithClock(clock quartz.Clock) Option {
	return func(c *gameConfig) { c.clock = clock }
}

// WithShoe sets the first shoe. Replacements are always fresh shuffled shoes.
func WithShoe(s *deck.Shoe) Option {
	return func(c *gameConfig) { c.shoe = s }
}

// WithIDGenerator sets the generator for seat and round ids
func WithIDGenerator(g *gameid.Generator) Option {
	return func(c *gameConfig) { c.ids = g }
}

// WithNames sets the display names of the human seat and the two AI seats
func WithNames(player, leftAI, rightAI string) Option {
	return func(c *gameConfig) {
		c.playerName = player
		c.aiNames = [2]string{leftAI, rightAI}
	}
}

// WithCelebration registers a hook fired after settlement when the human
// seat wins or hits a blackjack
func WithCelebration(fn func(SeatState)) Option {
	return func(c *gameConfig) { c.celebrate = fn }
}

// Game is the round engine. It owns the shoe and the four seats and is the
// only thing that mutates them.
//
// Entry points block the calling goroutine until the engine reaches its next
// suspension point: the human seat awaiting input, or the table back in
// Betting. The state lock is never held during a pause or while subscribers
// run, so snapshots and other (no-op) calls proceed concurrently.
type Game struct {
	mu            sync.Mutex
	shoe          *deck.Shoe
	shoes         int
	seats         []*Participant
	phase         Phase
	turn          int
	awaitingInput bool
	roundID       string
	roundStart    time.Time
	history       []RoundRecord

	rng       *rand.Rand
	ids       *gameid.Generator
	pacer     Pacer
	clock     quartz.Clock
	logger    *log.Logger
	celebrate func(SeatState)
	observers observers
}

// NewGame creates a table in the Betting phase. The RNG is required to make
// shuffling and AI bets explicit and reproducible.
func NewGame(rng *rand.Rand, logger *log.Logger, opts ...Option) *Game {
	if rng == nil {
		panic("rng is required for game creation")
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	cfg := &gameConfig{
		pacer:      NoDelay,
		clock:      quartz.NewReal(),
		ids:        gameid.NewGenerator(nil),
		playerName: "You",
		aiNames:    [2]string{"Sophia (AI)", "Marcus (AI)"},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	g := &Game{
		shoe:      cfg.shoe,
		phase:     PhaseBetting,
		turn:      -1,
		rng:       rng,
		ids:       cfg.ids,
		pacer:     cfg.pacer,
		clock:     cfg.clock,
		logger:    logger.WithPrefix("game"),
		celebrate: cfg.celebrate,
	}
	if g.shoe == nil {
		g.shoe = deck.NewShoe(rng, g.shoes)
	}
	g.shoes = 1

	g.seats = []*Participant{
		NewParticipant(g.ids.Generate(), cfg.aiNames[0], RoleAI, AIStartingBankroll),
		NewParticipant(g.ids.Generate(), cfg.playerName, RolePlayer, PlayerStartingBankroll),
		NewParticipant(g.ids.Generate(), cfg.aiNames[1], RoleAI, AIStartingBankroll),
		NewParticipant(g.ids.Generate(), "Dealer", RoleDealer, 0),
	}
	return g
}

// Subscribe registers a change callback and returns its unsubscribe function.
// Callbacks run synchronously, in subscription order, once per state change.
func (g *Game) Subscribe(fn func()) func() {
	return g.observers.subscribe(fn)
}

// update runs fn under the state lock and, if fn reports a change, notifies
// subscribers after the lock is released
func (g *Game) update(fn func() bool) bool {
	g.mu.Lock()
	changed := fn()
	g.mu.Unlock()

	if changed {
		g.observers.notify()
	}
	return changed
}

// PlaceBet moves amount from the human seat's bankroll to its bet. Ignored
// outside Betting or when the bankroll cannot cover it.
func (g *Game) PlaceBet(amount int) {
	placed := g.update(func() bool {
		p := g.seats[PlayerSeat]
		if g.phase != PhaseBetting || amount <= 0 || p.Bankroll < amount {
			return false
		}
		p.Bankroll -= amount
		p.Bet += amount
		return true
	})
	g.logger.Debug("Place bet", "amount", amount, "accepted", placed)
}

// ClearBet returns the human seat's whole bet to its bankroll
func (g *Game) ClearBet() {
	g.update(func() bool {
		p := g.seats[PlayerSeat]
		if g.phase != PhaseBetting || p.Bet == 0 {
			return false
		}
		p.Bankroll += p.Bet
		p.Bet = 0
		return true
	})
}

// StartRound deals a new round. Ignored unless the table is in Betting and
// the human seat has a bet out. Returns once the human seat must act, or
// after the round settles if it never has to.
func (g *Game) StartRound() {
	var roundID string
	var bet int
	started := g.update(func() bool {
		if g.phase != PhaseBetting || g.seats[PlayerSeat].Bet == 0 {
			return false
		}
		for _, seat := range g.seats {
			if seat.Role == RoleAI {
				g.placeAIBet(seat)
			}
			seat.clearHand()
		}
		g.phase = PhaseDealing
		g.roundID = g.ids.Generate()
		g.roundStart = g.clock.Now()
		roundID, bet = g.roundID, g.seats[PlayerSeat].Bet
		return true
	})
	if !started {
		g.logger.Debug("Ignoring start round", "phase", g.Phase())
		return
	}
	g.logger.Info("Starting round", "round", roundID, "bet", bet)

	// Two round-robin passes; the dealer's second card is the hole card
	for pass := range 2 {
		for i := range seatCount {
			g.dealTo(i, pass == 1 && i == DealerSeat)
		}
	}

	g.update(func() bool {
		g.phase = PhasePlaying
		g.turn = 0
		return true
	})
	g.playTurns()
}

// placeAIBet must be called with g.mu held
func (g *Game) placeAIBet(seat *Participant) {
	bet := (g.rng.IntN(aiBetLevels) + 1) * aiBetStep
	if bet > seat.Bankroll {
		bet = seat.Bankroll / aiBetStep * aiBetStep
	}
	seat.Bankroll -= bet
	seat.Bet = bet
}

// dealTo gives seat i one card, replacing the shoe first if it is below the
// low-water mark, then pauses for the deal animation
func (g *Game) dealTo(i int, hidden bool) {
	var card deck.Card
	dealt := g.update(func() bool {
		if g.shoe.NeedsReplacing() {
			g.replaceShoe()
		}
		var ok bool
		card, ok = g.shoe.Draw()
		if !ok {
			return false
		}
		card.Hidden = hidden
		g.seats[i].receive(card)
		return true
	})
	if !dealt {
		g.logger.Error("Shoe empty after low-water check", "seat", i)
		return
	}

	if hidden {
		g.logger.Debug("Dealt hole card", "seat", i)
	} else {
		g.logger.Debug("Dealt card", "seat", i, "card", card.String())
	}
	g.pacer.Pause(DealPause)
}

// replaceShoe must be called with g.mu held
func (g *Game) replaceShoe() {
	g.logger.Warn("Replacing shoe", "remaining", g.shoe.Remaining(), "shoe", g.shoes+1)
	g.shoe = deck.NewShoe(g.rng, g.shoes)
	g.shoes++
}

// playTurns drives the turn loop until the human seat has to act or the
// round is resolved
func (g *Game) playTurns() {
	for {
		g.mu.Lock()
		if g.phase != PhasePlaying {
			g.mu.Unlock()
			return
		}
		if g.turn >= len(g.seats) {
			g.mu.Unlock()
			g.resolve()
			return
		}
		i := g.turn
		seat := g.seats[i]
		role := seat.Role
		natural := seat.IsBlackjack()
		g.mu.Unlock()

		g.logger.Debug("Turn", "seat", i, "name", seat.Name, "role", role)

		switch role {
		case RolePlayer:
			if !natural {
				g.update(func() bool {
					g.awaitingInput = true
					return true
				})
				return
			}
		case RoleAI:
			g.playAI(i)
		case RoleDealer:
			g.playDealer(i)
		}
		g.advanceTurn()
	}
}

// advanceTurn moves to the next seat. Moving past the dealer is reported by
// the settlement notification instead.
func (g *Game) advanceTurn() {
	g.update(func() bool {
		g.awaitingInput = false
		g.turn++
		return g.turn < len(g.seats)
	})
}

type seatView struct {
	score     int
	busted    bool
	blackjack bool
}

func (g *Game) inspect(i int) seatView {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.seats[i]
	return seatView{
		score:     p.Score(),
		busted:    p.IsBusted(),
		blackjack: p.IsBlackjack(),
	}
}

func (g *Game) setMessage(i int, msg string) {
	g.update(func() bool {
		g.seats[i].Message = msg
		return true
	})
}

// dealerUpCard is the value of the dealer's first card, which is never hidden
func (g *Game) dealerUpCard() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	dealer := g.seats[DealerSeat]
	if len(dealer.Hand) == 0 {
		return 0
	}
	return dealer.Hand[0].Value()
}

func (g *Game) playAI(i int) {
	g.pacer.Pause(AIThinkPause)

	if g.inspect(i).blackjack {
		g.setMessage(i, "Blackjack!")
		g.pacer.Pause(AIBlackjackPause)
		return
	}

	upCard := g.dealerUpCard()
	busted := false
	for shouldHit(RoleAI, g.inspect(i).score, upCard) {
		g.setMessage(i, "Hit")
		g.dealTo(i, false)
		if g.inspect(i).busted {
			busted = true
			g.setMessage(i, "Bust")
			break
		}
	}
	if !busted {
		g.setMessage(i, "Stand")
	}
	g.pacer.Pause(AIFinishPause)
}

func (g *Game) playDealer(i int) {
	revealed := g.update(func() bool {
		return g.seats[i].revealHoleCard()
	})
	if revealed {
		g.pacer.Pause(RevealPause)
	}

	for shouldHit(RoleDealer, g.inspect(i).score, 0) {
		g.dealTo(i, false)
	}
	g.pacer.Pause(DealerFinishPause)
}

// resolve settles every non-dealer seat against one snapshot of the
// dealer's hand, holds for the settlement pause, then returns the table to
// Betting with all per-round fields cleared
func (g *Game) resolve() {
	var (
		record      RoundRecord
		celebrating []SeatState
	)
	g.update(func() bool {
		g.phase = PhaseResolving
		g.awaitingInput = false

		dealer := g.seats[DealerSeat]
		house := houseHand{
			score:     dealer.Score(),
			busted:    dealer.IsBusted(),
			blackjack: dealer.IsBlackjack(),
		}
		record = RoundRecord{
			RoundID:         g.roundID,
			StartedAt:       g.roundStart,
			SettledAt:       g.clock.Now(),
			DealerHand:      dealer.Hand.String(),
			DealerScore:     house.score,
			DealerBusted:    house.busted,
			DealerBlackjack: house.blackjack,
		}

		for i, seat := range g.seats {
			if seat.Role == RoleDealer {
				continue
			}
			s := settle(seat.Hand, seat.Bet, house)
			seat.Result = s.result
			seat.Message = s.message
			seat.Bankroll += s.payout

			record.Seats = append(record.Seats, SeatRecord{
				Name:   seat.Name,
				Role:   seat.Role,
				Hand:   seat.Hand.String(),
				Score:  seat.Score(),
				Bet:    seat.Bet,
				Payout: s.payout,
				Result: s.result,
			})
			if s.celebrate && seat.Role == RolePlayer {
				celebrating = append(celebrating, g.seatState(i))
			}
		}
		g.recordRound(record)
		return true
	})

	for _, s := range record.Seats {
		g.logger.Info("Settled seat", "round", record.RoundID, "seat", s.Name, "result", s.Result, "bet", s.Bet, "payout", s.Payout)
	}
	g.logger.Info("Round settled", "round", record.RoundID, "dealer", record.DealerHand, "dealerScore", record.DealerScore)

	if g.celebrate != nil {
		for _, s := range celebrating {
			g.celebrate(s)
		}
	}

	g.pacer.Pause(SettlePause)

	g.update(func() bool {
		g.phase = PhaseBetting
		g.turn = -1
		g.roundID = ""
		for _, seat := range g.seats {
			seat.Reset()
		}
		return true
	})
}
