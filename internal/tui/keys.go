package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up           key.Binding
	down         key.Binding
	enter        key.Binding
	esc          key.Binding
	save         key.Binding
	quit         key.Binding
	newNote      key.Binding
	newFolder    key.Binding
	edit         key.Binding
	title        key.Binding
	delete       key.Binding
	pin          key.Binding
	hide         key.Binding
	showHidden   key.Binding
	sortMode     key.Binding
	share        key.Binding
	collaborate  key.Binding
	cancelShare  key.Binding
	openShared   key.Binding
	copySyncCode key.Binding
	export       key.Binding
	buildInfo    key.Binding
	yes          key.Binding
	no           key.Binding
}

var keys = keyMap{
	up:           key.NewBinding(key.WithKeys("up", "k")),
	down:         key.NewBinding(key.WithKeys("down", "j")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	save:         key.NewBinding(key.WithKeys("ctrl+s")),
	quit:         key.NewBinding(key.WithKeys("q")),
	newNote:      key.NewBinding(key.WithKeys("n")),
	newFolder:    key.NewBinding(key.WithKeys("f")),
	edit:         key.NewBinding(key.WithKeys("e", "enter")),
	title:        key.NewBinding(key.WithKeys("t")),
	delete:       key.NewBinding(key.WithKeys("d")),
	pin:          key.NewBinding(key.WithKeys("p")),
	hide:         key.NewBinding(key.WithKeys("h")),
	showHidden:   key.NewBinding(key.WithKeys(".")),
	sortMode:     key.NewBinding(key.WithKeys("m")),
	share:        key.NewBinding(key.WithKeys("s")),
	collaborate:  key.NewBinding(key.WithKeys("S")),
	cancelShare:  key.NewBinding(key.WithKeys("c")),
	openShared:   key.NewBinding(key.WithKeys("o")),
	copySyncCode: key.NewBinding(key.WithKeys("y")),
	export:       key.NewBinding(key.WithKeys("x")),
	buildInfo:    key.NewBinding(key.WithKeys("v")),
	yes:          key.NewBinding(key.WithKeys("y")),
	no:           key.NewBinding(key.WithKeys("n", "esc")),
}
