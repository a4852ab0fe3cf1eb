package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	newNote   key.Binding
	edit      key.Binding
	save      key.Binding
	delete    key.Binding
	analyze   key.Binding
	insights  key.Binding
	copy      key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	newNote:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e", "enter")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	analyze:   key.NewBinding(key.WithKeys("a")),
	insights:  key.NewBinding(key.WithKeys("i")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
