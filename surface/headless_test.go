package surface

import (
	"testing"

	"github.com/iw2rmb/taginput/buffer"
)

func TestHeadless_TypingIntoEmptyRegionCreatesStrayNode(t *testing.T) {
	h := NewHeadless(nil)

	c, ok := h.Caret()
	if !ok || !c.InContainer || c.InFragment {
		t.Fatalf("initial caret: got %+v ok=%v, want container", c, ok)
	}

	h.Type("r")
	if got := h.Fragment(); got != "" {
		t.Fatalf("fragment after first keystroke: got %q, want empty", got)
	}
	if got := h.Stray(); got != "r" {
		t.Fatalf("stray text: got %q, want %q", got, "r")
	}
	c, _ = h.Caret()
	if c.InFragment || c.Text != "r" {
		t.Fatalf("caret should sit on the stray node: got %+v", c)
	}

	h.SetFragment("r")
	h.MoveCaretToEnd()
	if got := h.Stray(); got != "" {
		t.Fatalf("SetFragment should drop stray text: got %q", got)
	}
	h.Type("e")
	c, _ = h.Caret()
	if !c.InFragment || c.Text != "re" {
		t.Fatalf("caret after normalization: got %+v, want fragment %q", c, "re")
	}
}

func TestHeadless_MoveCaretToEndSkipsNonTextNodes(t *testing.T) {
	h := NewHeadless(nil)
	h.SetFragment(" ")
	h.AppendBreak()
	h.MoveCaretToEnd()

	c, ok := h.Caret()
	if !ok || !c.InFragment || c.Text != " " {
		t.Fatalf("caret: got %+v ok=%v, want inside fragment text", c, ok)
	}
	h.Type("a")
	if got := h.Fragment(); got != " a" {
		t.Fatalf("typing after break: got %q, want %q", got, " a")
	}
}

func TestHeadless_OnlyBreakLeavesCaretOnContainer(t *testing.T) {
	h := NewHeadless(nil)
	h.AppendBreak()
	h.MoveCaretToEnd()
	if c, _ := h.Caret(); !c.InContainer {
		t.Fatalf("caret with no text nodes: got %+v, want container", c)
	}
}

func TestHeadless_DeleteBackward(t *testing.T) {
	h := NewHeadless(nil)
	h.SetFragment("ab")
	h.MoveCaretToEnd()

	h.DeleteBackward()
	if got := h.Fragment(); got != "a" {
		t.Fatalf("after one delete: got %q, want %q", got, "a")
	}
	h.DeleteBackward()
	if got := h.Fragment(); got != "" {
		t.Fatalf("after two deletes: got %q, want empty", got)
	}
	if c, _ := h.Caret(); !c.InContainer {
		t.Fatalf("caret after emptying region: got %+v, want container", c)
	}
}

func TestHeadless_NoSelection(t *testing.T) {
	h := NewHeadless(nil)
	h.ClearSelection()

	if _, ok := h.Caret(); ok {
		t.Fatalf("caret should be unavailable without a selection")
	}
	if _, ok := h.CaretRect(); ok {
		t.Fatalf("rect should be unavailable without a selection")
	}
	if h.Type("x") {
		t.Fatalf("typing without a selection should fail")
	}

	h.Focus()
	if _, ok := h.Caret(); !ok {
		t.Fatalf("focus should restore a caret")
	}

	h.Blur()
	if h.Focused() {
		t.Fatalf("blur should drop focus")
	}
}

func TestMonospaceGeometry(t *testing.T) {
	g := MonospaceGeometry(2)
	if _, ok := g(Layout{}); ok {
		t.Fatalf("empty layout should have no rect")
	}

	r, ok := g(Layout{
		Tags:     []buffer.Tag{{ID: "1", Label: "React.js"}},
		Fragment: " no",
	})
	if !ok {
		t.Fatalf("expected rect")
	}
	if got, want := r.Left, 8+2+3; got != want {
		t.Fatalf("left: got %d, want %d", got, want)
	}
}

func TestHeadless_SetTagsDoesNotAlias(t *testing.T) {
	h := NewHeadless(nil)
	tags := []buffer.Tag{{ID: "1", Label: "A"}}
	h.SetTags(tags)
	tags[0].Label = "mutated"
	if got := h.Tags()[0].Label; got != "A" {
		t.Fatalf("tags alias caller slice: got %q", got)
	}
}
