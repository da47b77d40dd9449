package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	km := m.cfg.KeyMap
	p := m.ctl.Presenter()

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		m.typeText(string(msg.Runes))
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Backspace):
		if !m.ctl.OnDelete(true) {
			// Default deletion, then the input event it causes.
			if m.surf.DeleteBackward() {
				m.ctl.OnTextInput()
			}
		}
	case key.Matches(msg, km.Delete):
		// The caret is always at the end of the field, so the default
		// forward deletion has nothing to remove.
		m.ctl.OnDelete(true)
	case key.Matches(msg, km.Enter):
		m.ctl.OnEnter()

	case p.Visible() && key.Matches(msg, km.Next):
		p.Next()
	case p.Visible() && key.Matches(msg, km.Prev):
		p.Prev()
	case p.Visible() && key.Matches(msg, km.Accept):
		p.ActivateSelected()
	case p.Visible() && key.Matches(msg, km.Dismiss):
		p.Hide()

	default:
		switch {
		case msg.Type == tea.KeySpace:
			m.typeText(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.typeText(string(msg.Runes))
		}
	}
	return m, nil
}

// typeText applies default typing to the surface and raises the input event.
func (m Model) typeText(s string) {
	s = sanitizeSingleLine(s)
	if s == "" {
		return
	}
	if m.surf.Type(s) {
		m.ctl.OnTextInput()
	}
}

func sanitizeSingleLine(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ").Replace(s)
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
