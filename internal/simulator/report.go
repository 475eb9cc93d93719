package simulator

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func signed(v float64, format string) string {
	s := fmt.Sprintf(format, v)
	if v < 0 {
		return badStyle.Render(s)
	}
	return goodStyle.Render(s)
}

// PrintSummary writes a human-readable summary of a simulation report
func PrintSummary(w io.Writer, report *Report) {
	stats := report.Stats
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("=== RESULTS: %s strategy ===", report.Strategy)))
	fmt.Fprintf(w, "Tables: %d, rounds played: %d, reshuffles: %d\n", len(report.Tables), stats.Rounds, report.Reshuffles())
	if bankrupt := report.Bankrupt(); len(bankrupt) > 0 {
		fmt.Fprintf(w, "Bankrupt tables: %v\n", bankrupt)
	}

	fmt.Fprintln(w, headerStyle.Render("=== OUTCOMES ==="))
	pct := func(n int) float64 {
		if stats.Rounds == 0 {
			return 0
		}
		return float64(n) / float64(stats.Rounds) * 100
	}
	fmt.Fprintf(w, "Wins: %d (%.1f%%)  Blackjacks: %d (%.1f%%)\n", stats.Wins, pct(stats.Wins), stats.Blackjacks, pct(stats.Blackjacks))
	fmt.Fprintf(w, "Losses: %d (%.1f%%)  Busts: %d (%.1f%%)\n", stats.Losses, pct(stats.Losses), stats.Busts, pct(stats.Busts))
	fmt.Fprintf(w, "Pushes: %d (%.1f%%)  Doubles: %d\n", stats.Pushes, pct(stats.Pushes), stats.Doubles)
	fmt.Fprintf(w, "Win rate: %.1f%%\n", stats.WinRate()*100)

	fmt.Fprintln(w, headerStyle.Render("=== STATISTICAL RESULTS ==="))
	fmt.Fprintf(w, "Net: %s chips on %d wagered\n", signed(float64(stats.NetChips), "%+.0f"), stats.Wagered)
	fmt.Fprintf(w, "Mean: %s bets/round\n", signed(stats.Mean(), "%+.4f"))
	fmt.Fprintf(w, "Median: %.4f  Std Dev: %.4f  Std Error: %.4f\n", stats.Median(), stats.StdDev(), stats.StdError())
	fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] bets/round\n", low, high)
	fmt.Fprintf(w, "House edge: %.2f%%\n", stats.HouseEdge()*100)
	fmt.Fprintf(w, "Biggest win: %d  Worst loss: %d\n", stats.BiggestWin, stats.WorstLoss)

	if len(report.Tables) > 1 {
		fmt.Fprintln(w, headerStyle.Render("=== TABLES ==="))
		for _, t := range report.Tables {
			fmt.Fprintf(w, "Table %d (seed %d): %d rounds, bankroll %d\n", t.Table, t.Seed, t.Rounds, t.Bankroll)
		}
	}
}

// Summary is the machine-readable form of a report
type Summary struct {
	Strategy   string  `json:"strategy"`
	Tables     int     `json:"tables"`
	Rounds     int     `json:"rounds"`
	Reshuffles int     `json:"reshuffles"`
	Bankrupt   []int   `json:"bankrupt_tables,omitempty"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Pushes     int     `json:"pushes"`
	Blackjacks int     `json:"blackjacks"`
	Busts      int     `json:"busts"`
	Doubles    int     `json:"doubles"`
	WinRate    float64 `json:"win_rate"`
	NetChips   int     `json:"net_chips"`
	Wagered    int     `json:"wagered"`
	Mean       float64 `json:"mean_bets_per_round"`
	StdDev     float64 `json:"std_dev"`
	CILow      float64 `json:"ci95_low"`
	CIHigh     float64 `json:"ci95_high"`
	HouseEdge  float64 `json:"house_edge"`
}

// Summary condenses the report for export
func (r *Report) Summary() Summary {
	s := r.Stats
	low, high := s.ConfidenceInterval95()
	return Summary{
		Strategy:   r.Strategy,
		Tables:     len(r.Tables),
		Rounds:     s.Rounds,
		Reshuffles: r.Reshuffles(),
		Bankrupt:   r.Bankrupt(),
		Wins:       s.Wins,
		Losses:     s.Losses,
		Pushes:     s.Pushes,
		Blackjacks: s.Blackjacks,
		Busts:      s.Busts,
		Doubles:    s.Doubles,
		WinRate:    s.WinRate(),
		NetChips:   s.NetChips,
		Wagered:    s.Wagered,
		Mean:       s.Mean(),
		StdDev:     s.StdDev(),
		CILow:      low,
		CIHigh:     high,
		HouseEdge:  s.HouseEdge(),
	}
}
