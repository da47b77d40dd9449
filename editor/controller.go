package editor

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/taginput/buffer"
	"github.com/iw2rmb/taginput/catalog"
	"github.com/iw2rmb/taginput/internal/grapheme"
	"github.com/iw2rmb/taginput/surface"
)

// State is the fragment-side state of the editor. Tags accumulate
// independently of it.
type State uint8

const (
	// StateEmpty means the pending fragment is empty.
	StateEmpty State = iota
	// StateTyping means the fragment has text, possibly only the caret
	// anchor, and no popup is open.
	StateTyping
	// StateSuggestionsOpen means at least one match is on screen.
	StateSuggestionsOpen
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateTyping:
		return "typing"
	case StateSuggestionsOpen:
		return "suggestions-open"
	default:
		return "unknown"
	}
}

// Controller is the tag input state machine for one editor surface. It owns
// the buffer and the presenter; the surface and the presenter only signal
// back through its methods.
//
// A Controller is not safe for concurrent use. Hosts deliver events one at a
// time, keydown before the input event of the same keystroke.
type Controller struct {
	catalog   *catalog.Catalog
	surface   surface.Surface
	placement Placement
	buf       *buffer.Buffer
	presenter *Presenter

	log      *zap.Logger
	onChange func(ChangeEvent)
	onEnter  func(EnterEvent)
}

// NewController builds a controller over cfg.Surface, or over a fresh
// surface.Headless when none is given.
func NewController(cfg Config) *Controller {
	surf := cfg.Surface
	if surf == nil {
		surf = surface.NewHeadless(nil)
	}
	c := &Controller{
		catalog:   cfg.Catalog,
		surface:   surf,
		placement: normalizePlacement(cfg.Placement),
		buf:       buffer.New(),
		log:       normalizeLogger(cfg.Logger),
		onChange:  cfg.OnChange,
		onEnter:   cfg.OnEnter,
	}
	c.presenter = NewPresenter(c.CommitTag)
	return c
}

func (c *Controller) Buffer() *buffer.Buffer { return c.buf }

func (c *Controller) Presenter() *Presenter { return c.presenter }

func (c *Controller) Surface() surface.Surface { return c.surface }

func (c *Controller) Tags() []buffer.Tag { return c.buf.Tags() }

// Values returns the committed tag IDs in order.
func (c *Controller) Values() []string { return c.buf.Values() }

// Fragment returns the pending fragment as last normalized.
func (c *Controller) Fragment() string { return c.buf.Pending() }

func (c *Controller) State() State {
	switch {
	case c.presenter.Visible():
		return StateSuggestionsOpen
	case c.buf.Pending() == "":
		return StateEmpty
	default:
		return StateTyping
	}
}

// OnTextInput handles a text-changed notification. The fragment is re-derived
// from the node holding the caret every time, so repeated or coalesced events
// converge on the same state.
//
// Text the host placed outside the pending region is moved into it and the
// caret is restored to the region's end.
func (c *Controller) OnTextInput() {
	caret, ok := c.surface.Caret()
	if !ok {
		c.log.Debug("text input without selection")
		return
	}

	text := caret.Text
	if !caret.InFragment {
		c.surface.SetFragment(text)
		c.surface.MoveCaretToEnd()
	}
	c.buf.SetPending(text)

	if buffer.IsBlank(text) {
		c.presenter.Hide()
		return
	}
	c.present(c.catalog.Match(text))
}

// OnDelete handles backspace and delete. It reports whether the host must
// suppress its default deletion; other keys are never handled.
//
// While the fragment is longer than two clusters deletion is left to the
// host. At one cluster, or with the caret directly on the container, the
// keystroke deletes through the fragment: with at most one tag the fragment
// is cleared, and the right-most tag is removed if there is one.
func (c *Controller) OnDelete(isBackspaceOrDelete bool) bool {
	if !isBackspaceOrDelete {
		return false
	}
	fragment := c.surface.Fragment()
	n := grapheme.Count(fragment)
	if n > 2 {
		return false
	}

	caret, ok := c.surface.Caret()
	if !ok {
		c.log.Debug("delete without selection")
		return false
	}
	if n != 1 && !caret.InContainer {
		return false
	}

	tags := c.buf.TagCount()
	if tags < 2 {
		c.buf.ClearPending()
		c.surface.SetFragment("")
		c.surface.Focus()
		c.presenter.Hide()
	}
	if tags > 0 {
		c.removeLastTag()
	}
	return true
}

// OnEnter handles the Enter key. It always reports true: Enter must neither
// insert a newline nor submit the surrounding form. Beyond notifying
// Config.OnEnter it does nothing.
func (c *Controller) OnEnter() bool {
	c.log.Debug("enter", zap.String("fragment", c.buf.Pending()), zap.Stringer("state", c.State()))
	if c.onEnter != nil {
		c.onEnter(EnterEvent{
			Fragment: c.buf.Pending(),
			Options:  c.presenter.Options(),
		})
	}
	return true
}

// CommitTag turns entry into a tag. It only applies while suggestions are
// open and reports whether it did.
func (c *Controller) CommitTag(entry catalog.Entry) bool {
	if !c.presenter.Visible() {
		c.log.Debug("commit without open suggestions", zap.String("id", entry.ID))
		return false
	}

	c.buf.Commit(buffer.Tag{ID: entry.ID, Label: entry.Label})
	c.surface.SetTags(c.buf.Tags())
	c.surface.SetFragment(buffer.CaretAnchor)
	c.surface.MoveCaretToEnd()
	c.presenter.Hide()

	c.log.Debug("commit tag", zap.String("id", entry.ID), zap.Int("tags", c.buf.TagCount()))
	c.emitChange()
	return true
}

func (c *Controller) removeLastTag() {
	t, ok := c.buf.PopTag()
	if !ok {
		return
	}
	c.surface.SetTags(c.buf.Tags())
	c.log.Debug("remove tag", zap.String("id", t.ID), zap.Int("tags", c.buf.TagCount()))
	c.emitChange()
}

// present shows entries. The caret is only located when the popup opens.
func (c *Controller) present(entries []catalog.Entry) {
	if len(entries) == 0 {
		c.presenter.Hide()
		return
	}
	if c.presenter.Visible() {
		c.presenter.Show(entries, c.presenter.Anchor())
		return
	}

	rect, ok := c.surface.CaretRect()
	anchor, ok := Locate(rect, ok, c.placement)
	if !ok {
		c.log.Debug("caret geometry unavailable; popup suppressed")
		c.presenter.Hide()
		return
	}
	c.presenter.Show(entries, anchor)
}

func (c *Controller) emitChange() {
	if c.onChange == nil {
		return
	}
	if ev, ok := buildChangeEvent(c.buf); ok {
		c.onChange(ev)
	}
}
