package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

const (
	seatWidth   = 24
	logMinWidth = 30
)

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.game == nil {
		return "No table attached"
	}

	header := HeaderStyle.Render("ROYALE BLACKJACK")
	if m.banner != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, "  ", BannerStyle.Render(m.banner))
	}

	table := m.renderTable()
	tableWidth := lipgloss.Width(table)

	actionPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(max(m.width-2, 1)).
		Render(m.renderActionPane())

	logWidth := max(m.width-tableWidth-4, logMinWidth)
	logHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(actionPane)-2, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(idleBorder).
		Width(logWidth).
		Height(logHeight).
		Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, table, logPane)
	return lipgloss.JoinVertical(lipgloss.Left, header, topRow, actionPane)
}

// renderTable lays out the dealer above the three betting seats
func (m *TUIModel) renderTable() string {
	seats := m.state.Seats
	dealer := m.renderSeat(seats[game.DealerSeat])

	var row []string
	for i, s := range seats {
		if i == game.DealerSeat {
			continue
		}
		row = append(row, m.renderSeat(s))
	}
	players := lipgloss.JoinHorizontal(lipgloss.Bottom, row...)

	dealer = lipgloss.PlaceHorizontal(lipgloss.Width(players), lipgloss.Center, dealer)
	return lipgloss.JoinVertical(lipgloss.Left, dealer, "", players)
}

func (m *TUIModel) renderSeat(s game.SeatState) string {
	border := idleBorder
	switch {
	case s.IsTurn:
		border = activeBorder
	case s.Result == game.ResultWin || s.Result == game.ResultBlackjack:
		border = winBorder
	case s.Result == game.ResultLoss:
		border = lossBorder
	}

	var b strings.Builder
	name := s.Name
	if s.IsTurn {
		name = ActionsStyle.Render(name)
	}
	b.WriteString(name)
	b.WriteString("\n")
	b.WriteString(formatCards(s.Hand))
	b.WriteString("\n")

	score := fmt.Sprintf("%d", s.Score)
	if len(s.Hand) == 0 {
		score = "-"
	}
	if s.Role == game.RoleDealer {
		b.WriteString(HandInfoStyle.Render(score))
	} else {
		b.WriteString(fmt.Sprintf("%s  %s", HandInfoStyle.Render(score), SuccessStyle.Render(fmt.Sprintf("$%d", s.Bankroll))))
		if s.Bet > 0 {
			b.WriteString("\n")
			b.WriteString(WarningStyle.Render(fmt.Sprintf("Bet: $%d", s.Bet)))
		}
	}
	if s.Message != "" {
		b.WriteString("\n")
		b.WriteString(MessageStyle.Render(s.Message))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(seatWidth).
		Padding(0, 1).
		Render(b.String())
}

// renderActionPane shows what the human can do right now
func (m *TUIModel) renderActionPane() string {
	var content strings.Builder
	player := m.state.Player()

	switch m.state.Phase {
	case game.PhaseBetting:
		content.WriteString(HandInfoStyle.Render("Place your bets"))
		fmt.Fprintf(&content, "  Bet: $%d  Bankroll: $%d", player.Bet, player.Bankroll)
	case game.PhaseDealing:
		content.WriteString(HandInfoStyle.Render("Dealing..."))
	case game.PhasePlaying:
		if len(m.state.ValidActions()) > 0 {
			content.WriteString(ActionsStyle.Render(fmt.Sprintf("Your move: %d", player.Score)))
		} else {
			content.WriteString(InfoStyle.Render("Waiting for other players..."))
		}
	case game.PhaseResolving:
		content.WriteString(HandInfoStyle.Render("Round over. Preparing next hand..."))
	}
	fmt.Fprintf(&content, "  %s", InfoStyle.Render(fmt.Sprintf("Shoe: %d cards", m.state.ShoeRemaining)))
	content.WriteString("\n")
	content.WriteString(m.help.View(m.keys))

	return content.String()
}

// formatCards renders a hand with suit colours; face-down cards show as ??
func formatCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return InfoStyle.Render("--")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		switch {
		case c.Hidden:
			parts[i] = HiddenCardStyle.Render("??")
		case c.IsRed():
			parts[i] = RedCardStyle.Render(c.String())
		default:
			parts[i] = BlackCardStyle.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}
