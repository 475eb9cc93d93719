package game

import (
	"time"

	"github.com/coder/quartz"
)

// Presentation pacing between observable steps. None of these carry game
// meaning; they only give a front-end time to animate.
const (
	DealPause         = 600 * time.Millisecond
	RevealPause       = 600 * time.Millisecond
	AIThinkPause      = 1000 * time.Millisecond
	AIBlackjackPause  = 1000 * time.Millisecond
	AIFinishPause     = 800 * time.Millisecond
	PlayerResultPause = 1000 * time.Millisecond
	DealerFinishPause = 800 * time.Millisecond
	SettlePause       = 4000 * time.Millisecond
)

// Pacer blocks the engine between observable steps
type Pacer interface {
	Pause(d time.Duration)
}

// PacerFunc adapts a function to the Pacer interface
type PacerFunc func(d time.Duration)

// Pause calls f(d)
func (f PacerFunc) Pause(d time.Duration) { f(d) }

// NoDelay never waits. Tests and the simulator use it to run rounds instantly.
var NoDelay Pacer = PacerFunc(func(time.Duration) {})

// ClockPacer waits on timers from a quartz clock, scaled by a speed factor
type ClockPacer struct {
	clock quartz.Clock
	speed float64
}

// NewClockPacer creates a pacer. speed 1 keeps the nominal durations, 0.5
// halves them and 0 disables pacing altogether.
func NewClockPacer(clock quartz.Clock, speed float64) *ClockPacer {
	if speed < 0 {
		speed = 0
	}
	return &ClockPacer{clock: clock, speed: speed}
}

// Pause waits for d scaled by the speed factor
func (p *ClockPacer) Pause(d time.Duration) {
	scaled := time.Duration(float64(d) * p.speed)
	if scaled <= 0 {
		return
	}
	timer := p.clock.NewTimer(scaled, "game", "pause")
	<-timer.C
}
