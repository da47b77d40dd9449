package editor

import (
	"github.com/iw2rmb/taginput/buffer"
	"github.com/iw2rmb/taginput/catalog"
)

// ChangeEvent reports a change to the committed tag sequence. Hosts use it to
// keep submitted values in sync.
type ChangeEvent struct {
	Version uint64
	Kind    buffer.ChangeKind
	// Tag is the tag that was committed or removed.
	Tag buffer.Tag

	Tags     []buffer.Tag
	Values   []string
	Fragment string
}

// EnterEvent is passed to Config.OnEnter.
type EnterEvent struct {
	Fragment string
	Options  []catalog.Entry
}

func buildChangeEvent(b *buffer.Buffer) (ChangeEvent, bool) {
	ch, ok := b.LastChange()
	if !ok || ch.Kind == buffer.ChangePending {
		return ChangeEvent{}, false
	}
	return ChangeEvent{
		Version:  ch.VersionAfter,
		Kind:     ch.Kind,
		Tag:      ch.Tag,
		Tags:     ch.TagsAfter,
		Values:   b.Values(),
		Fragment: b.Pending(),
	}, true
}
