package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Player holds 14 (9c 5d) against a dealer 9 + hole 8; both AIs stand.
const playerFourteen = "Ts 9c Th 9s 8h 5d 7c 8d"

func TestPlayerHitWithoutBustKeepsTurn(t *testing.T) {
	g := newTestGame(t, playerFourteen+" 2c")
	g.PlaceBet(100)
	g.StartRound()

	g.PlayerHit()

	s := g.Snapshot()
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, PlayerSeat, s.TurnIndex)
	assert.True(t, s.AwaitingInput)
	assert.Equal(t, 16, s.Player().Score)
	assert.False(t, s.Player().CanDouble, "double needs exactly two cards")

	g.PlayerStand()

	last, ok := g.LastRound()
	require.True(t, ok)
	player, _ := last.Seat("You")
	assert.Equal(t, ResultLoss, player.Result)
	assert.Equal(t, PlayerStartingBankroll-100, g.Snapshot().Player().Bankroll)
}

func TestPlayerHitBustEndsTurn(t *testing.T) {
	pacer := &recordingPacer{}
	g := newTestGame(t, playerFourteen+" Kc", WithPacer(pacer))
	g.PlaceBet(100)
	g.StartRound()

	var messages []string
	g.Subscribe(func() {
		if m := g.Snapshot().Player().Message; m != "" && (len(messages) == 0 || messages[len(messages)-1] != m) {
			messages = append(messages, m)
		}
	})

	g.PlayerHit()

	assert.Equal(t, PhaseBetting, g.Phase(), "the round runs to completion after the bust")
	assert.Equal(t, []string{"Bust!", "Busted"}, messages)
	assert.Equal(t, PlayerStartingBankroll-100, g.Snapshot().Player().Bankroll)
	assert.Positive(t, pacer.count(PlayerResultPause))

	last, _ := g.LastRound()
	player, _ := last.Seat("You")
	assert.Equal(t, ResultLoss, player.Result)
	assert.Equal(t, 24, player.Score)
}

func TestPlayerStand(t *testing.T) {
	g := newTestGame(t, playerFourteen)
	g.PlaceBet(100)
	g.StartRound()

	var sawStand bool
	g.Subscribe(func() {
		if g.Snapshot().Player().Message == "Stand" {
			sawStand = true
		}
	})
	g.PlayerStand()

	assert.True(t, sawStand)
	assert.Equal(t, PhaseBetting, g.Phase())
}

func TestPlayerDoubleDealsExactlyOneCard(t *testing.T) {
	// Player 11 (6c 5d) doubles into a ten
	g := newTestGame(t, "Ts 6c Th 9s 8h 5d 7c 8d Tc")
	g.PlaceBet(100)
	g.StartRound()
	require.True(t, g.Snapshot().Player().CanDouble)

	g.PlayerDouble()

	last, ok := g.LastRound()
	require.True(t, ok)
	player, _ := last.Seat("You")
	assert.Equal(t, 200, player.Bet)
	assert.Equal(t, ResultWin, player.Result)
	assert.Equal(t, 21, player.Score)
	assert.Equal(t, "6♣ 5♦ 10♣", player.Hand)
	assert.Equal(t, PlayerStartingBankroll+200, g.Snapshot().Player().Bankroll)
}

func TestPlayerDoubleBust(t *testing.T) {
	// Player 12 (7c 5d) doubles into a king
	g := newTestGame(t, "Ts 7c Th 9s 8h 5d 7c 8d Kc")
	g.PlaceBet(100)
	g.StartRound()

	var sawBust bool
	g.Subscribe(func() {
		if g.Snapshot().Player().Message == "Bust!" {
			sawBust = true
		}
	})
	g.PlayerDouble()

	assert.True(t, sawBust)
	assert.Equal(t, PlayerStartingBankroll-200, g.Snapshot().Player().Bankroll)
}

func TestPlayerDoubleIgnoredAfterHit(t *testing.T) {
	g := newTestGame(t, playerFourteen+" 2c")
	g.PlaceBet(100)
	g.StartRound()
	g.PlayerHit()
	require.False(t, g.Snapshot().Player().CanDouble)

	g.PlayerDouble()

	s := g.Snapshot()
	assert.Equal(t, 100, s.Player().Bet)
	assert.Len(t, s.Player().Hand, 3)
	assert.True(t, s.AwaitingInput)
}

func TestPlayerDoubleIgnoredWithoutBankroll(t *testing.T) {
	g := newTestGame(t, playerFourteen)
	g.PlaceBet(3000)
	g.StartRound()

	s := g.Snapshot()
	require.False(t, s.Player().CanDouble)

	notified := 0
	g.Subscribe(func() { notified++ })
	g.PlayerDouble()

	assert.Zero(t, notified)
	s = g.Snapshot()
	assert.Equal(t, 3000, s.Player().Bet)
	assert.Equal(t, 2000, s.Player().Bankroll)
	assert.True(t, s.AwaitingInput)
}

func TestActionsIgnoredOutsidePlayerTurn(t *testing.T) {
	g := newTestGame(t, playerFourteen)
	notified := 0
	g.Subscribe(func() { notified++ })

	g.PlayerHit()
	g.PlayerStand()
	g.PlayerDouble()
	assert.Zero(t, notified)
	assert.Equal(t, PhaseBetting, g.Phase())

	g.PlaceBet(100)
	g.StartRound()
	g.PlayerStand()

	before := g.Snapshot()
	notified = 0
	g.PlayerHit()
	g.PlayerStand()
	g.ClearBet()
	assert.Zero(t, notified)
	assert.Equal(t, before, g.Snapshot())
}

func TestBettingIgnoredDuringRound(t *testing.T) {
	g := newTestGame(t, playerFourteen)
	g.PlaceBet(100)
	g.StartRound()

	g.PlaceBet(100)
	g.ClearBet()
	g.StartRound()

	s := g.Snapshot()
	assert.Equal(t, 100, s.Player().Bet)
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Len(t, s.Player().Hand, 2)
}

func TestReentrantCallsDuringPausesAreIgnored(t *testing.T) {
	var g *Game
	pacer := PacerFunc(func(time.Duration) {
		if g == nil {
			return
		}
		_ = g.Snapshot()
		g.PlayerHit()
		g.PlayerStand()
		g.PlayerDouble()
		g.PlaceBet(5)
		g.ClearBet()
		g.StartRound()
	})
	g = newTestGame(t, allStand, WithPacer(pacer))

	g.PlaceBet(100)
	g.StartRound()
	require.True(t, g.Snapshot().AwaitingInput)
	assert.Len(t, g.Snapshot().Player().Hand, 2)

	g.PlayerStand()

	s := g.Snapshot()
	assert.Equal(t, PhaseBetting, s.Phase)
	assert.Equal(t, PlayerStartingBankroll+100, s.Player().Bankroll)
	assert.Len(t, g.History(), 1)
}

func TestAct(t *testing.T) {
	g := newTestGame(t, playerFourteen+" 2c")
	g.PlaceBet(100)
	g.StartRound()

	g.Act(Hit)
	assert.Equal(t, 16, g.Snapshot().Player().Score)

	g.Act(Stand)
	assert.Equal(t, PhaseBetting, g.Phase())
}
