package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

// bannerDuration is how long a celebration stays on screen
const bannerDuration = 3 * time.Second

// TUIModel represents the Bubble Tea model for the blackjack table. It only
// reads engine snapshots; every mutation goes through the engine's own
// entry points, run off the UI goroutine.
type TUIModel struct {
	game   *game.Game
	logger *log.Logger

	// UI components
	keys        keyMap
	help        help.Model
	logViewport viewport.Model

	// State
	state     game.TableState
	gameLog   []string
	lastRound string // id of the last round written to the log
	banner    string
	busy      bool // an engine call is still running
	quitting  bool

	changes      chan struct{}
	celebrations chan game.SeatState
	unsubscribe  func()

	// Dimensions
	width  int
	height int
}

// stateChangedMsg signals that the engine notified its subscribers
type stateChangedMsg struct{}

// actionDoneMsg signals that an engine call has returned
type actionDoneMsg struct{ action string }

// celebrationMsg carries a winning human seat
type celebrationMsg struct{ seat game.SeatState }

// clearBannerMsg removes the celebration banner
type clearBannerMsg struct{}

// NewTUIModel creates a model that is not yet attached to a game. Pass
// Celebrate to game.WithCelebration, then call Attach.
func NewTUIModel(logger *log.Logger) *TUIModel {
	vp := viewport.New(10, 5)
	vp.SetContent("")
	// letters drive the table, so the log scrolls on arrows and paging keys only
	vp.KeyMap = viewport.KeyMap{
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	return &TUIModel{
		logger:       logger.WithPrefix("tui"),
		keys:         newKeyMap(),
		help:         help.New(),
		logViewport:  vp,
		changes:      make(chan struct{}, 1),
		celebrations: make(chan game.SeatState, 4),
	}
}

// Attach subscribes the model to g's change notifications
func (m *TUIModel) Attach(g *game.Game) *TUIModel {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.game = g
	m.unsubscribe = g.Subscribe(func() {
		// coalesce: one pending wake-up is enough, the view reads a fresh snapshot
		select {
		case m.changes <- struct{}{}:
		default:
		}
	})
	m.sync()
	return m
}

// Close unsubscribes from the game
func (m *TUIModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Celebrate queues a celebration banner. It is safe to call from the
// engine's goroutine and never blocks.
func (m *TUIModel) Celebrate(seat game.SeatState) {
	select {
	case m.celebrations <- seat:
	default:
		m.logger.Debug("Dropping celebration", "seat", seat.Name)
	}
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return tea.Batch(m.waitForChange(), m.waitForCelebration())
}

func (m *TUIModel) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return stateChangedMsg{}
	}
}

func (m *TUIModel) waitForCelebration() tea.Cmd {
	return func() tea.Msg {
		return celebrationMsg{seat: <-m.celebrations}
	}
}

// run calls an engine entry point off the UI goroutine. Entry points block
// until the engine next waits for input, so the model stays busy until then.
func (m *TUIModel) run(name string, fn func()) tea.Cmd {
	m.busy = true
	m.logger.Debug("Running action", "action", name)
	return func() tea.Msg {
		fn()
		return actionDoneMsg{action: name}
	}
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case stateChangedMsg:
		m.sync()
		cmds = append(cmds, m.waitForChange())

	case actionDoneMsg:
		m.busy = false
		m.sync()

	case celebrationMsg:
		m.banner = celebrationText(msg.seat)
		cmds = append(cmds,
			tea.Tick(bannerDuration, func(time.Time) tea.Msg { return clearBannerMsg{} }),
			m.waitForCelebration())

	case clearBannerMsg:
		m.banner = ""

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *TUIModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	if m.busy || m.game == nil {
		return nil
	}
	g := m.game

	for i, b := range m.keys.Bets {
		if key.Matches(msg, b) {
			amount := chipValues[i]
			return m.run("bet", func() { g.PlaceBet(amount) })
		}
	}

	switch {
	case key.Matches(msg, m.keys.Clear):
		return m.run("clear", g.ClearBet)
	case key.Matches(msg, m.keys.Deal):
		return m.run("deal", g.StartRound)
	case key.Matches(msg, m.keys.Hit):
		return m.run("hit", g.PlayerHit)
	case key.Matches(msg, m.keys.Stand):
		return m.run("stand", g.PlayerStand)
	case key.Matches(msg, m.keys.Double):
		return m.run("double", g.PlayerDouble)
	}
	return nil
}

// sync pulls a fresh snapshot and updates everything derived from it
func (m *TUIModel) sync() {
	if m.game == nil {
		return
	}
	m.state = m.game.Snapshot()

	player := m.state.Player()
	betting := m.state.Phase == game.PhaseBetting
	canAct := len(m.state.ValidActions()) > 0
	m.keys.setPhase(betting, canAct, player.CanDouble, player.Bet > 0, player.Bankroll)

	if rec, ok := m.game.LastRound(); ok && rec.RoundID != m.lastRound {
		m.lastRound = rec.RoundID
		m.addLogEntry(formatRound(rec))
	}
}

func (m *TUIModel) addLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

func celebrationText(seat game.SeatState) string {
	if seat.Result == game.ResultBlackjack {
		return "BLACKJACK! " + seat.Name
	}
	return fmt.Sprintf("WINNER! %s: %s", seat.Name, seat.Message)
}

// formatRound renders a settled round as one log entry
func formatRound(rec game.RoundRecord) string {
	var b strings.Builder
	id := rec.RoundID
	if len(id) > 8 {
		id = id[:8]
	}
	fmt.Fprintf(&b, "%s Dealer %d", InfoStyle.Render("#"+id), rec.DealerScore)
	if rec.DealerBusted {
		b.WriteString(" (bust)")
	}
	for _, s := range rec.Seats {
		if s.Bet == 0 {
			continue
		}
		net := s.Net()
		style := ErrorStyle
		if net >= 0 {
			style = SuccessStyle
		}
		fmt.Fprintf(&b, "\n  %s %d %s %s", s.Name, s.Score, s.Result, style.Render(fmt.Sprintf("%+d", net)))
	}
	return b.String()
}
