package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/taginput/buffer"
	"github.com/iw2rmb/taginput/catalog"
	"github.com/iw2rmb/taginput/internal/grapheme"
	"github.com/iw2rmb/taginput/surface"
)

// Model is a Bubble Tea component hosting a Controller on a single terminal
// line. It plays the part of the native editable region: it applies default
// deletion and typing to its surface, and forwards each event to the
// controller in the order a browser would.
type Model struct {
	cfg  Config
	ctl  *Controller
	surf *surface.Headless

	focused bool
	width   int
	height  int
}

func New(cfg Config) Model {
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	cfg.Style = normalizeStyle(cfg.Style)
	cfg.MaxVisibleRows = normalizeMaxVisibleRows(cfg.MaxVisibleRows)
	cfg.Placement = normalizeTermPlacement(cfg.Placement)

	surf := surface.NewHeadless(fieldGeometry(cfg.Style, cfg.Prompt))
	cfg.Surface = surf

	return Model{
		cfg:     cfg,
		ctl:     NewController(cfg),
		surf:    surf,
		focused: true,
	}
}

// fieldGeometry places the caret after the prompt, the tag chips and the
// typed text, on row 0.
func fieldGeometry(st Style, prompt string) surface.Geometry {
	promptWidth := 0
	if prompt != "" {
		promptWidth = grapheme.Width(prompt) + st.Prompt.GetHorizontalFrameSize()
	}
	chipFrame := st.Tag.GetHorizontalFrameSize()
	return func(l surface.Layout) (surface.Rect, bool) {
		x := promptWidth
		for _, t := range l.Tags {
			x += grapheme.Width(t.Label) + chipFrame
		}
		x += grapheme.Width(l.Fragment) + grapheme.Width(l.Stray)
		return surface.Rect{Left: x, Top: 0, Width: 1, Height: 1}, true
	}
}

func (m Model) Controller() *Controller { return m.ctl }

func (m Model) Tags() []buffer.Tag { return m.ctl.Tags() }

func (m Model) Values() []string { return m.ctl.Values() }

// Suggestions returns the options on screen, or nil when the popup is hidden.
func (m Model) Suggestions() []catalog.Entry { return m.ctl.Presenter().Options() }

// MaxVisibleRows is the popup row cap after defaults are applied.
func (m Model) MaxVisibleRows() int { return m.cfg.MaxVisibleRows }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.surf.Focus()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.surf.Blur()
		m.ctl.Presenter().Hide()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}
