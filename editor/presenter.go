package editor

import "github.com/iw2rmb/taginput/catalog"

// Presenter is the suggestion popup: a visibility flag, an anchor and the
// option list.
//
// The anchor is fixed when the popup goes from hidden to visible. While it
// stays visible, Show only replaces the options so the popup does not jump
// around as the match list changes under typing.
type Presenter struct {
	visible  bool
	anchor   Point
	options  []catalog.Entry
	selected int

	onActivate func(catalog.Entry) bool
}

// NewPresenter returns a hidden presenter. onActivate receives the option an
// activation picked.
func NewPresenter(onActivate func(catalog.Entry) bool) *Presenter {
	return &Presenter{onActivate: onActivate}
}

// Show replaces the options with entries in order. Empty entries hide the
// popup. anchor is only used when the popup was hidden.
func (p *Presenter) Show(entries []catalog.Entry, anchor Point) {
	if len(entries) == 0 {
		p.Hide()
		return
	}
	p.options = append(p.options[:0:0], entries...)
	if !p.visible {
		p.visible = true
		p.anchor = anchor
		p.selected = 0
		return
	}
	p.selected = clampInt(p.selected, 0, len(p.options)-1)
}

func (p *Presenter) Hide() {
	p.visible = false
	p.options = nil
	p.selected = 0
}

func (p *Presenter) Visible() bool { return p.visible }

func (p *Presenter) Anchor() Point { return p.anchor }

// Options returns a copy of the displayed options.
func (p *Presenter) Options() []catalog.Entry {
	if len(p.options) == 0 {
		return nil
	}
	return append([]catalog.Entry(nil), p.options...)
}

// Selected is the index of the highlighted option.
func (p *Presenter) Selected() int { return p.selected }

func (p *Presenter) Next() {
	if !p.visible {
		return
	}
	p.selected = clampInt(p.selected+1, 0, len(p.options)-1)
}

func (p *Presenter) Prev() {
	if !p.visible {
		return
	}
	p.selected = clampInt(p.selected-1, 0, len(p.options)-1)
}

// Activate picks option i. It reports whether the activation was consumed,
// in which case the host must suppress the event's default behavior.
func (p *Presenter) Activate(i int) bool {
	if !p.visible || i < 0 || i >= len(p.options) {
		return false
	}
	e := p.options[i]
	if p.onActivate != nil {
		p.onActivate(e)
	}
	return true
}

// ActivateSelected activates the highlighted option.
func (p *Presenter) ActivateSelected() bool { return p.Activate(p.selected) }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
