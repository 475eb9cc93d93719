package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/randutil"
)

func TestSubscribersRunInOrder(t *testing.T) {
	g := NewGame(randutil.New(1), testLogger())

	var calls []string
	g.Subscribe(func() { calls = append(calls, "a") })
	g.Subscribe(func() { calls = append(calls, "b") })
	g.Subscribe(func() { calls = append(calls, "c") })

	g.PlaceBet(10)
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestUnsubscribe(t *testing.T) {
	g := NewGame(randutil.New(1), testLogger())

	var a, b int
	unsubA := g.Subscribe(func() { a++ })
	g.Subscribe(func() { b++ })

	g.PlaceBet(10)
	unsubA()
	unsubA()
	g.PlaceBet(10)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 1, g.observers.len())
}

func TestUnsubscribeFromInsideCallback(t *testing.T) {
	g := NewGame(randutil.New(1), testLogger())

	calls := 0
	var unsub func()
	unsub = g.Subscribe(func() {
		calls++
		unsub()
	})

	g.PlaceBet(10)
	g.PlaceBet(10)
	assert.Equal(t, 1, calls)
}

func TestSubscriberCanReadSnapshot(t *testing.T) {
	g := NewGame(randutil.New(1), testLogger())

	var bets []int
	g.Subscribe(func() { bets = append(bets, g.Snapshot().Player().Bet) })

	g.PlaceBet(10)
	g.PlaceBet(15)
	g.ClearBet()
	assert.Equal(t, []int{10, 25, 0}, bets)
}
