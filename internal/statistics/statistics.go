package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack/internal/game"
)

// RoundResult is the human seat's outcome for one round
type RoundResult struct {
	Bet     int         // final bet, including any double
	Net     int         // chips won (positive) or lost (negative)
	Result  game.Result // settled outcome
	Doubled bool        // the seat doubled down
	Busted  bool        // the seat went over 21
}

// NetUnits returns the net result in units of the base bet
func (r RoundResult) NetUnits() float64 {
	base := r.Bet
	if r.Doubled {
		base /= 2
	}
	if base == 0 {
		return 0
	}
	return float64(r.Net) / float64(base)
}

// Statistics tracks blackjack simulation statistics
type Statistics struct {
	Rounds int
	SumU   float64
	SumU2  float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	// Outcome counts
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	Busts      int // losses caused by the seat busting
	Doubles    int

	// Chip accounting
	NetChips   int
	Wagered    int
	BiggestWin int
	WorstLoss  int
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	units := result.NetUnits()
	s.Rounds++
	s.SumU += units
	s.SumU2 += units * units
	s.Values = append(s.Values, units)

	switch result.Result {
	case game.ResultWin:
		s.Wins++
	case game.ResultLoss:
		s.Losses++
	case game.ResultPush:
		s.Pushes++
	case game.ResultBlackjack:
		s.Blackjacks++
	}
	if result.Busted {
		s.Busts++
	}
	if result.Doubled {
		s.Doubles++
	}

	s.NetChips += result.Net
	s.Wagered += result.Bet
	if result.Net > s.BiggestWin {
		s.BiggestWin = result.Net
	}
	if result.Net < s.WorstLoss {
		s.WorstLoss = result.Net
	}
}

// Merge folds other into s. Used to combine tables simulated in parallel.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.SumU += other.SumU
	s.SumU2 += other.SumU2
	s.Values = append(s.Values, other.Values...)
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.Busts += other.Busts
	s.Doubles += other.Doubles
	s.NetChips += other.NetChips
	s.Wagered += other.Wagered
	s.BiggestWin = max(s.BiggestWin, other.BiggestWin)
	s.WorstLoss = min(s.WorstLoss, other.WorstLoss)
}

// Mean returns the average result in bet units per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumU / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumU2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the share of rounds won outright (wins and blackjacks)
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins+s.Blackjacks) / float64(s.Rounds)
}

// HouseEdge returns the player's loss per chip wagered
func (s *Statistics) HouseEdge() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return -float64(s.NetChips) / float64(s.Wagered)
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)", len(s.Values), s.Rounds)
	}

	outcomes := s.Wins + s.Losses + s.Pushes + s.Blackjacks
	if outcomes != s.Rounds {
		return fmt.Errorf("outcome total (%d) does not match rounds count (%d)", outcomes, s.Rounds)
	}

	if s.Busts > s.Losses {
		return fmt.Errorf("busts (%d) exceed losses (%d)", s.Busts, s.Losses)
	}

	return nil
}
