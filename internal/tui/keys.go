package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
)

// chipValues are the bet increments offered during Betting, in key order
var chipValues = []int{50, 100, 500, 1000}

type keyMap struct {
	Bets   []key.Binding
	Clear  key.Binding
	Deal   key.Binding
	Hit    key.Binding
	Stand  key.Binding
	Double key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	k := keyMap{
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear bet")),
		Deal:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "deal")),
		Hit:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hit")),
		Stand:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stand")),
		Double: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "double")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
	for i, v := range chipValues {
		n := string(rune('1' + i))
		k.Bets = append(k.Bets, key.NewBinding(key.WithKeys(n), key.WithHelp(n, "bet $"+strconv.Itoa(v))))
	}
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	out := append([]key.Binding{}, k.Bets...)
	return append(out, k.Clear, k.Deal, k.Hit, k.Stand, k.Double, k.Help, k.Quit)
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Bets,
		{k.Clear, k.Deal},
		{k.Hit, k.Stand, k.Double},
		{k.Help, k.Quit},
	}
}

// setPhase toggles which bindings are live for the current phase
func (k *keyMap) setPhase(betting, canAct, canDouble, hasBet bool, bankroll int) {
	for i := range k.Bets {
		k.Bets[i].SetEnabled(betting && bankroll >= chipValues[i])
	}
	k.Clear.SetEnabled(betting && hasBet)
	k.Deal.SetEnabled(betting && hasBet)
	k.Hit.SetEnabled(canAct)
	k.Stand.SetEnabled(canAct)
	k.Double.SetEnabled(canAct && canDouble)
}
