// Package game implements the blackjack round engine.
//
// The main type is Game, which owns the shoe and four fixed seats (left AI,
// human player, right AI, dealer) and drives each round through
// Betting → Dealing → Playing → Resolving → Betting.
//
// # Basic Usage
//
//	g := game.NewGame(randutil.New(42), logger)
//	unsubscribe := g.Subscribe(func() { render(g.Snapshot()) })
//	defer unsubscribe()
//
//	g.PlaceBet(100)
//	g.StartRound() // returns once the human seat must act
//	g.PlayerStand() // returns once the round is settled
//
// Every entry point is safe to call at any time: calls in the wrong phase or
// on the wrong turn are silently ignored, so front-ends gate their controls
// with the snapshot instead of handling errors.
//
// # Pacing
//
// The engine pauses between observable steps so a front-end can animate
// deals and decisions. Pauses go through the Pacer interface: NoDelay runs a
// round instantly (tests, simulation), ClockPacer waits on a quartz clock.
//
// # Seats
//
// Seats share one Participant record and differ only by Role. The AI policy
// (AIShouldHit) and the dealer rule (DealerShouldHit) are pure functions
// selected by role; the human seat is driven by PlayerHit, PlayerStand and
// PlayerDouble.
//
// # Agents
//
// Anything implementing Agent can play the human seat: Drive asks it for a
// decision from a snapshot and the legal actions, applies it, and repeats
// until the seat stops awaiting input. The simulator drives bots this way.
package game
