package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/rantify/internal/rant"
)

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	rate   key.Binding
	roast  key.Binding
	rhyme  key.Binding
	open   key.Binding
	up     key.Binding
	down   key.Binding
	filter key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		rate:   actionBinding(rant.Rate),
		roast:  actionBinding(rant.Roast),
		rhyme:  actionBinding(rant.Rhyme),
		open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open playlist")),
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func actionBinding(a rant.Action) key.Binding {
	return key.NewBinding(key.WithKeys(a.Key()), key.WithHelp(a.Key(), a.String()))
}

// action returns the [rant.Action] bound to msg, if any.
func (k keyMap) action(msg tea.KeyMsg) (rant.Action, bool) {
	switch {
	case key.Matches(msg, k.rate):
		return rant.Rate, true
	case key.Matches(msg, k.roast):
		return rant.Roast, true
	case key.Matches(msg, k.rhyme):
		return rant.Rhyme, true
	}
	return 0, false
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.rate, k.roast, k.rhyme, k.open, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.rate, k.roast, k.rhyme},
		{k.up, k.down, k.filter},
		{k.open, k.quit},
	}
}
