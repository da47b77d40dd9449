package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/taginput/catalog"
	"github.com/iw2rmb/taginput/editor"
	"github.com/iw2rmb/taginput/form"
)

const panelChrome = 2 // border rows around the values panel

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

type appKeys struct {
	editor.KeyMap
	Submit key.Binding
	Quit   key.Binding
}

func (k appKeys) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Submit, k.Quit}, k.KeyMap.ShortHelp()...)
}

func (k appKeys) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(), []key.Binding{k.Submit, k.Quit})
}

// changeLog collects editor change events. The editor holds the callback, so
// the state lives behind a pointer shared by every copy of app.
type changeLog struct {
	count int
	last  editor.ChangeEvent
}

func (l *changeLog) record(ev editor.ChangeEvent) {
	l.count++
	l.last = ev
}

type app struct {
	editor editor.Model
	panel  viewport.Model
	help   help.Model
	keys   appKeys
	format form.Format

	changes   *changeLog
	log       *zap.Logger
	submitted bool
	width     int

	// editorHeight is the field row plus room for a full popup.
	editorHeight int
}

func newApp(cat *catalog.Catalog, opts options, log *zap.Logger) app {
	changes := &changeLog{}
	keys := appKeys{
		KeyMap: editor.DefaultKeyMap(),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}

	ed := editor.New(editor.Config{
		Catalog:        cat,
		Placement:      opts.placement(),
		MaxVisibleRows: opts.maxRows,
		Prompt:         "tags ",
		KeyMap:         keys.KeyMap,
		Style:          editor.DefaultStyle(),
		Logger:         log,
		OnChange:       changes.record,
	})

	a := app{
		editor:  ed,
		panel:   viewport.New(0, 0),
		help:    help.New(),
		keys:    keys,
		format:  opts.format,
		changes: changes,
		log:     log,

		editorHeight: 1 + ed.MaxVisibleRows(),
	}
	a.refreshPanel()
	return a
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.log.Debug("quit without submitting")
			return a, tea.Quit
		case key.Matches(msg, a.keys.Submit):
			a.submitted = true
			a.log.Info("submit", zap.Strings("values", a.editor.Values()))
			return a, tea.Quit
		}
	case tea.MouseMsg:
		if tea.MouseEvent(msg).IsWheel() {
			var cmd tea.Cmd
			a.panel, cmd = a.panel.Update(msg)
			return a, cmd
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	a.refreshPanel()
	return a, cmd
}

func (a *app) resize(width, height int) {
	a.width = width
	a.help.Width = width

	a.editor = a.editor.SetSize(width, a.editorHeight)

	panelHeight := height - a.editorHeight - panelChrome - 1
	if panelHeight < 1 {
		panelHeight = 1
	}
	a.panel.Width = maxInt(width-panelStyle.GetHorizontalFrameSize(), 1)
	a.panel.Height = panelHeight
	a.refreshPanel()
}

// refreshPanel renders the committed tags and their encoded submission.
func (a *app) refreshPanel() {
	tags := a.editor.Tags()

	var sb strings.Builder
	fmt.Fprintf(&sb, "tags: %d  changes: %d  version: %d\n", len(tags), a.changes.count, a.changes.last.Version)
	for i, t := range tags {
		fmt.Fprintf(&sb, "%2d. %s (%s)\n", i+1, t.Label, t.ID)
	}
	data, err := form.Encode(a.format, tags)
	switch {
	case err != nil:
		fmt.Fprintf(&sb, "\nencode %s: %v\n", a.format, err)
	case a.format == form.FormatMsgpack:
		fmt.Fprintf(&sb, "\n%s: %d bytes\n", a.format, len(data))
	default:
		fmt.Fprintf(&sb, "\n%s:\n%s\n", a.format, data)
	}
	a.panel.SetContent(sb.String())
}

func (a app) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.editor.View(),
		panelStyle.Render(a.panel.View()),
		statusStyle.Render(a.help.View(a.keys)),
	)
}

// Submission encodes the committed tags. ok is false when the user quit
// without submitting.
func (a app) Submission() ([]byte, bool, error) {
	if !a.submitted {
		return nil, false, nil
	}
	data, err := form.Encode(a.format, a.editor.Tags())
	if err != nil {
		return nil, true, err
	}
	return data, true, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
