package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the tag input key bindings.
type KeyMap struct {
	Backspace, Delete key.Binding
	Enter             key.Binding

	// Popup navigation. Accept activates the highlighted option; Enter does
	// not.
	Next, Prev key.Binding
	Accept     key.Binding
	Dismiss    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "no-op")),

		Next:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next suggestion")),
		Prev:    key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev suggestion")),
		Accept:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "add tag")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close suggestions")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Accept, km.Next, km.Prev, km.Backspace, km.Dismiss}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Accept, km.Next, km.Prev, km.Dismiss},
		{km.Backspace, km.Delete, km.Enter},
	}
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}
