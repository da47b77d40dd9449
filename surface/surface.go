package surface

import "github.com/iw2rmb/taginput/buffer"

// Rect is the bounding box of the collapsed caret in host coordinates.
type Rect struct {
	Left, Top     int
	Width, Height int
}

// Caret describes the node holding the text cursor.
type Caret struct {
	// Text is the content of the text node holding the caret.
	Text string
	// InFragment reports whether that node belongs to the pending region.
	InFragment bool
	// InContainer reports whether the caret sits directly in the editor
	// container: either on the container itself or on a node that is its
	// direct child rather than part of the pending region.
	InContainer bool
}

// Surface is the editable host.
type Surface interface {
	// Caret reports the caret. ok is false when the host has no selection.
	Caret() (c Caret, ok bool)
	// Fragment returns the pending region's current text.
	Fragment() string
	// CaretRect returns the first rectangle of the collapsed selection. ok is
	// false when nothing is rendered at the caret yet.
	CaretRect() (r Rect, ok bool)
	// SetFragment replaces the pending region's text and removes any text
	// node typed outside it.
	SetFragment(text string)
	// MoveCaretToEnd collapses the caret at the end of the pending region's
	// last text node, skipping trailing non-text nodes.
	MoveCaretToEnd()
	// SetTags re-renders the committed tags.
	SetTags(tags []buffer.Tag)
	// Focus gives the editor keyboard focus.
	Focus()
}
