package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/taginput/internal/grapheme"
)

// popupLayout is where the popup lands inside the component, in cells.
type popupLayout struct {
	X, Y  int
	Width int
	// Rows are the option indices drawn, top to bottom.
	Rows []int
}

func (m Model) View() string {
	base := m.renderBase()
	popup, ok := m.popupLayout()
	if !ok {
		return base
	}
	return overlay.Composite(
		m.renderPopup(popup),
		base,
		overlay.Left,
		overlay.Top,
		popup.X,
		popup.Y,
	)
}

// renderField renders the single editable line.
func (m Model) renderField() string {
	st := m.cfg.Style

	var sb strings.Builder
	if m.cfg.Prompt != "" {
		sb.WriteString(st.Prompt.Render(m.cfg.Prompt))
	}
	for _, t := range m.surf.Tags() {
		sb.WriteString(st.Tag.Render(sanitizeSingleLine(t.Label)))
	}
	if text := m.surf.Fragment() + m.surf.Stray(); text != "" {
		sb.WriteString(st.Text.Render(text))
	}
	if m.focused {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// renderBase renders the field line followed by blank rows the popup can be
// drawn over. Without a size the base is as tall as the field plus a full
// popup.
func (m Model) renderBase() string {
	field := m.renderField()
	height := m.viewHeight()
	width := m.width

	lines := make([]string, 0, height)
	if width > 0 {
		field = lipgloss.NewStyle().MaxWidth(width).Render(field)
		if w := lipgloss.Width(field); w < width {
			field += strings.Repeat(" ", width-w)
		}
	}
	lines = append(lines, field)
	blank := strings.Repeat(" ", maxInt(width, m.popupWidth()))
	for len(lines) < height {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewHeight() int {
	if m.height > 0 {
		return m.height
	}
	return 1 + m.cfg.MaxVisibleRows
}

func (m Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return maxInt(lipgloss.Width(m.renderField()), m.popupWidth())
}

func (m Model) popupWidth() int {
	return maxInt(m.cfg.Placement.PopupWidth, 1)
}

// popupLayout clamps the presenter's anchor into the component and decides
// how many rows fit below it.
func (m Model) popupLayout() (popupLayout, bool) {
	p := m.ctl.Presenter()
	if !p.Visible() {
		return popupLayout{}, false
	}
	options := p.Options()
	if len(options) == 0 {
		return popupLayout{}, false
	}

	viewW, viewH := m.viewWidth(), m.viewHeight()
	width := minInt(m.popupWidth(), viewW)
	anchor := p.Anchor()

	y := clampInt(anchor.Y, 0, viewH)
	rowCount := minInt(minInt(m.cfg.MaxVisibleRows, len(options)), viewH-y)
	if rowCount <= 0 || width <= 0 {
		return popupLayout{}, false
	}

	// Keep the highlighted row on screen.
	first := 0
	if sel := p.Selected(); sel >= rowCount {
		first = sel - rowCount + 1
	}
	rows := make([]int, 0, rowCount)
	for i := first; i < first+rowCount && i < len(options); i++ {
		rows = append(rows, i)
	}

	x := clampInt(anchor.X, 0, maxInt(viewW-width, 0))
	return popupLayout{X: x, Y: y, Width: width, Rows: rows}, true
}

func (m Model) renderPopup(l popupLayout) string {
	p := m.ctl.Presenter()
	options := p.Options()
	selected := p.Selected()

	rendered := make([]string, 0, len(l.Rows))
	for _, idx := range l.Rows {
		st := m.cfg.Style.Option
		if idx == selected {
			st = m.cfg.Style.OptionSelected
		}
		inner := maxInt(l.Width-st.GetHorizontalFrameSize(), 0)
		label := grapheme.Truncate(sanitizeSingleLine(options[idx].Label), inner)
		if w := grapheme.Width(label); w < inner {
			label += strings.Repeat(" ", inner-w)
		}
		rendered = append(rendered, st.Render(label))
	}
	return strings.Join(rendered, "\n")
}
