package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// Player 9c 5d (14) against dealer 9s + hole 8d; both AIs stand.
const playerFourteen = "Ts 9c Th 9s 8h 5d 7c 8d"

func newTestModel(t *testing.T, top string) (*TUIModel, *game.Game) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	cards := deck.MustParseCards(top + strings.Repeat(" Ts", 100))
	model := NewTUIModel(logger)
	g := game.NewGame(randutil.New(42), logger,
		game.WithShoe(deck.NewShoeFromCards(cards)),
		game.WithCelebration(model.Celebrate))
	model.Attach(g)
	t.Cleanup(model.Close)

	model.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return model, g
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and runs the resulting engine call synchronously
func press(t *testing.T, m *TUIModel, msg tea.KeyMsg) {
	t.Helper()
	cmd := m.handleKey(msg)
	require.NotNil(t, cmd, "key %q produced no command", msg.String())
	done := cmd()
	m.Update(done)
}

func TestViewBeforeSizing(t *testing.T) {
	model := NewTUIModel(log.NewWithOptions(io.Discard, log.Options{}))
	assert.Equal(t, "Loading...", model.View())
}

func TestViewShowsSeats(t *testing.T) {
	model, _ := newTestModel(t, playerFourteen)

	view := model.View()
	assert.Contains(t, view, "ROYALE BLACKJACK")
	assert.Contains(t, view, "Sophia (AI)")
	assert.Contains(t, view, "You")
	assert.Contains(t, view, "Marcus (AI)")
	assert.Contains(t, view, "Dealer")
	assert.Contains(t, view, "Place your bets")
	assert.Contains(t, view, "$5000")
}

func TestBetKeysPlaceBets(t *testing.T) {
	model, g := newTestModel(t, playerFourteen)

	press(t, model, runeKey("2"))
	press(t, model, runeKey("1"))

	assert.Equal(t, 150, g.Snapshot().Player().Bet)
	assert.Equal(t, 150, model.state.Player().Bet)
	assert.Contains(t, model.View(), "Bet: $150")

	press(t, model, runeKey("c"))
	assert.Zero(t, g.Snapshot().Player().Bet)
}

func TestDealIgnoredWithoutBet(t *testing.T) {
	model, _ := newTestModel(t, playerFourteen)
	assert.Nil(t, model.handleKey(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestPlayThroughRound(t *testing.T) {
	model, g := newTestModel(t, playerFourteen)

	press(t, model, runeKey("2"))
	press(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, g.Snapshot().AwaitingInput)
	view := model.View()
	assert.Contains(t, view, "Your move: 14")
	assert.Contains(t, view, "??", "dealer hole card stays hidden")

	press(t, model, runeKey("s"))

	assert.Equal(t, game.PhaseBetting, g.Phase())
	require.Len(t, model.gameLog, 1)
	assert.Contains(t, model.gameLog[0], "Dealer 17")
	assert.Contains(t, model.gameLog[0], "You 14 loss -100")
}

func TestActionKeysIgnoredWhileBusy(t *testing.T) {
	model, _ := newTestModel(t, playerFourteen)
	model.busy = true

	assert.Nil(t, model.handleKey(runeKey("1")))
	assert.Nil(t, model.handleKey(runeKey("h")))
}

func TestHitKeyDisabledOutsideTurn(t *testing.T) {
	model, _ := newTestModel(t, playerFourteen)
	assert.Nil(t, model.handleKey(runeKey("h")))
	assert.Nil(t, model.handleKey(runeKey("d")))
}

func TestQuit(t *testing.T) {
	model, _ := newTestModel(t, playerFourteen)

	cmd := model.handleKey(runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, model.View())
}

func TestEngineChangesWakeTheModel(t *testing.T) {
	model, g := newTestModel(t, playerFourteen)
	wait := model.waitForChange()

	g.PlaceBet(500)

	msg := wait()
	assert.Equal(t, stateChangedMsg{}, msg)
	model.Update(msg)
	assert.Equal(t, 500, model.state.Player().Bet)
}

func TestCelebrationBanner(t *testing.T) {
	// player natural against a dealer 19
	model, _ := newTestModel(t, "Ts As Th 9s 8h Kd 7c Ts")

	press(t, model, runeKey("2"))
	press(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	msg := model.waitForCelebration()()
	model.Update(msg)
	assert.Contains(t, model.View(), "BLACKJACK! You")

	model.Update(clearBannerMsg{})
	assert.NotContains(t, model.View(), "BLACKJACK!")
}
