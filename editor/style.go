package editor

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
)

// Style controls the Model's rendering.
type Style struct {
	Prompt lipgloss.Style
	// Tag renders one committed tag. Its horizontal frame (margin, border,
	// padding) counts toward caret geometry.
	Tag    lipgloss.Style
	Text   lipgloss.Style
	Cursor lipgloss.Style

	Option         lipgloss.Style
	OptionSelected lipgloss.Style
}

func DefaultStyle() Style {
	option := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("236")).
		Padding(0, 1)
	return Style{
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1).
			MarginRight(1),
		Text:           lipgloss.NewStyle(),
		Cursor:         lipgloss.NewStyle().Reverse(true),
		Option:         option,
		OptionSelected: option.Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Bold(true),
	}
}

func normalizeStyle(st Style) Style {
	if reflect.DeepEqual(st, Style{}) {
		return DefaultStyle()
	}
	return st
}
