package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	unlock    key.Binding
	edit      key.Binding
	rename    key.Binding
	copy      key.Binding
	reveal    key.Binding
	generate  key.Binding
	save      key.Binding
	delete    key.Binding
	attach    key.Binding
	remove    key.Binding
	download  key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	unlock:    key.NewBinding(key.WithKeys("u")),
	edit:      key.NewBinding(key.WithKeys("e")),
	rename:    key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	reveal:    key.NewBinding(key.WithKeys("v")),
	generate:  key.NewBinding(key.WithKeys("g")),
	save:      key.NewBinding(key.WithKeys("s", "ctrl+s")),
	delete:    key.NewBinding(key.WithKeys("d")),
	attach:    key.NewBinding(key.WithKeys("a")),
	remove:    key.NewBinding(key.WithKeys("x")),
	download:  key.NewBinding(key.WithKeys("o")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
