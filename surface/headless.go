package surface

import (
	"strings"

	"github.com/iw2rmb/taginput/buffer"
	"github.com/iw2rmb/taginput/internal/grapheme"
)

type caretNode uint8

const (
	caretNone caretNode = iota
	caretFragment
	caretStray
	caretContainer
)

type fragmentNode struct {
	text   string
	isText bool
}

// Layout is the rendered state handed to a Geometry function.
type Layout struct {
	Tags     []buffer.Tag
	Fragment string
	// Stray is text typed outside the pending region, rendered after it.
	Stray string
}

// Geometry maps a layout to the caret rectangle. The caret is always at the
// end of the rendered text.
type Geometry func(Layout) (Rect, bool)

// MonospaceGeometry lays tags out as chips of label width plus chipPadding
// cells, followed by the fragment, on row 0. It reports no rectangle while
// nothing is rendered.
func MonospaceGeometry(chipPadding int) Geometry {
	return func(l Layout) (Rect, bool) {
		if len(l.Tags) == 0 && l.Fragment == "" && l.Stray == "" {
			return Rect{}, false
		}
		x := 0
		for _, t := range l.Tags {
			x += grapheme.Width(t.Label) + chipPadding
		}
		x += grapheme.Width(l.Fragment) + grapheme.Width(l.Stray)
		return Rect{Left: x, Top: 0, Width: 0, Height: 1}, true
	}
}

// Headless is an in-memory Surface.
//
// Typing follows native editable behavior: when the pending region is empty
// the caret sits on the container and a typed character lands in a new text
// node next to the region rather than inside it.
type Headless struct {
	tags     []buffer.Tag
	fragment []fragmentNode
	stray    string
	caret    caretNode
	focused  bool
	geometry Geometry
}

// NewHeadless returns a focused surface with the caret on the container.
// A nil geometry uses MonospaceGeometry(0).
func NewHeadless(geometry Geometry) *Headless {
	if geometry == nil {
		geometry = MonospaceGeometry(0)
	}
	return &Headless{
		caret:    caretContainer,
		focused:  true,
		geometry: geometry,
	}
}

func (h *Headless) Caret() (Caret, bool) {
	switch h.caret {
	case caretFragment:
		return Caret{Text: h.fragmentText(), InFragment: true}, true
	case caretStray:
		return Caret{Text: h.stray, InContainer: true}, true
	case caretContainer:
		return Caret{InContainer: true}, true
	default:
		return Caret{}, false
	}
}

func (h *Headless) CaretRect() (Rect, bool) {
	if h.caret == caretNone || h.geometry == nil {
		return Rect{}, false
	}
	return h.geometry(h.Layout())
}

func (h *Headless) SetFragment(text string) {
	h.stray = ""
	if text == "" {
		h.fragment = nil
	} else {
		h.fragment = []fragmentNode{{text: text, isText: true}}
	}
	if h.caret != caretNone {
		h.MoveCaretToEnd()
	}
}

func (h *Headless) MoveCaretToEnd() {
	for i := len(h.fragment) - 1; i >= 0; i-- {
		if h.fragment[i].isText {
			h.caret = caretFragment
			return
		}
	}
	h.caret = caretContainer
}

func (h *Headless) SetTags(tags []buffer.Tag) {
	h.tags = append(h.tags[:0], tags...)
}

func (h *Headless) Focus() {
	h.focused = true
	if h.caret == caretNone {
		h.MoveCaretToEnd()
	}
}

// Blur drops focus and the selection.
func (h *Headless) Blur() {
	h.focused = false
	h.caret = caretNone
}

// ClearSelection removes the selection while keeping focus.
func (h *Headless) ClearSelection() { h.caret = caretNone }

// SetGeometry replaces the caret geometry. nil makes geometry unavailable.
func (h *Headless) SetGeometry(g Geometry) { h.geometry = g }

// Type inserts text at the caret the way a native editable region would. It
// reports false when there is no selection to type into.
func (h *Headless) Type(text string) bool {
	if text == "" {
		return true
	}
	switch h.caret {
	case caretFragment:
		for i := len(h.fragment) - 1; i >= 0; i-- {
			if h.fragment[i].isText {
				h.fragment[i].text += text
				return true
			}
		}
		h.fragment = append(h.fragment, fragmentNode{text: text, isText: true})
	case caretContainer:
		h.stray = text
		h.caret = caretStray
	case caretStray:
		h.stray += text
	default:
		return false
	}
	return true
}

// DeleteBackward applies native backspace inside the node holding the caret:
// the last grapheme cluster is removed. The caret falls back to the container
// once the pending region has no text left.
func (h *Headless) DeleteBackward() bool {
	switch h.caret {
	case caretFragment:
		for i := len(h.fragment) - 1; i >= 0; i-- {
			if !h.fragment[i].isText {
				continue
			}
			h.fragment[i].text = grapheme.DropLast(h.fragment[i].text)
			if h.fragment[i].text == "" {
				h.fragment = append(h.fragment[:i], h.fragment[i+1:]...)
			}
			break
		}
		if h.fragmentText() == "" {
			h.caret = caretContainer
		}
	case caretStray:
		h.stray = grapheme.DropLast(h.stray)
		if h.stray == "" {
			h.caret = caretContainer
		}
	case caretContainer:
	default:
		return false
	}
	return true
}

// AppendBreak appends a non-text node to the pending region, as browsers do
// when a region is emptied.
func (h *Headless) AppendBreak() {
	h.fragment = append(h.fragment, fragmentNode{})
}

// Fragment returns the text of the pending region.
func (h *Headless) Fragment() string { return h.fragmentText() }

// Stray returns text typed outside the pending region and not yet folded in.
func (h *Headless) Stray() string { return h.stray }

func (h *Headless) Tags() []buffer.Tag {
	return append([]buffer.Tag(nil), h.tags...)
}

func (h *Headless) Focused() bool { return h.focused }

// Layout returns the rendered state.
func (h *Headless) Layout() Layout {
	return Layout{
		Tags:     h.Tags(),
		Fragment: h.fragmentText(),
		Stray:    h.stray,
	}
}

func (h *Headless) fragmentText() string {
	if len(h.fragment) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, n := range h.fragment {
		if n.isText {
			sb.WriteString(n.text)
		}
	}
	return sb.String()
}

var _ Surface = (*Headless)(nil)
