package editor

import tea "github.com/charmbracelet/bubbletea"

// updateMouse activates a popup option on left click. Coordinates are
// relative to the component's top-left cell.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if idx, ok := m.popupHit(msg.X, msg.Y); ok {
		m.ctl.Presenter().Activate(idx)
	}
	return m, nil
}

// popupHit maps a cell to the option drawn there.
func (m Model) popupHit(x, y int) (int, bool) {
	l, ok := m.popupLayout()
	if !ok {
		return 0, false
	}
	if x < l.X || x >= l.X+l.Width {
		return 0, false
	}
	row := y - l.Y
	if row < 0 || row >= len(l.Rows) {
		return 0, false
	}
	return l.Rows[row], true
}
