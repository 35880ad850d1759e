package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	back       key.Binding
	login      key.Binding
	logout     key.Binding
	sync       key.Binding
	sortCycle  key.Binding
	diffCycle  key.Binding
	hideSolved key.Binding
	hideTags   key.Binding
	stats      key.Binding
	heatmap    key.Binding
	topics     key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle solved")),
		back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		login:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "login")),
		logout:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
		sync:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "sync solved")),
		sortCycle:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle sort")),
		diffCycle:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "cycle difficulty")),
		hideSolved: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide solved")),
		hideTags:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "hide tags")),
		stats:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile stats")),
		heatmap:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "calendar")),
		topics:     key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "topic stats")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.enter, k.sortCycle, k.diffCycle, k.login, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.login, k.logout, k.sync},
		{k.sortCycle, k.diffCycle, k.hideSolved, k.hideTags},
		{k.stats, k.heatmap, k.topics, k.quit},
	}
}
