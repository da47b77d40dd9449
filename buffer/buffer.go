package buffer

// Buffer is the tag input document: committed tags plus the trailing pending
// fragment. The zero value is an empty buffer.
type Buffer struct {
	tags    []Tag
	pending string
	version uint64

	lastChange    Change
	hasLastChange bool
}

func New() *Buffer { return &Buffer{} }

// Tags returns a copy of the committed tags in insertion order.
func (b *Buffer) Tags() []Tag { return cloneTags(b.tags) }

func (b *Buffer) TagCount() int { return len(b.tags) }

// LastTag returns the right-most tag.
func (b *Buffer) LastTag() (Tag, bool) {
	if len(b.tags) == 0 {
		return Tag{}, false
	}
	return b.tags[len(b.tags)-1], true
}

// Pending returns the text of the pending fragment.
func (b *Buffer) Pending() string { return b.pending }

func (b *Buffer) Version() uint64 { return b.version }

// Values returns the tag IDs in order, one per tag.
func (b *Buffer) Values() []string {
	if len(b.tags) == 0 {
		return nil
	}
	out := make([]string, len(b.tags))
	for i, t := range b.tags {
		out[i] = t.ID
	}
	return out
}

// SetPending replaces the pending fragment. It reports whether the text
// changed.
func (b *Buffer) SetPending(s string) bool {
	if s == b.pending {
		return false
	}
	change := b.beginChange(ChangePending)
	b.pending = s
	b.version++
	b.commitChange(change, Tag{})
	return true
}

// ClearPending empties the pending fragment.
func (b *Buffer) ClearPending() bool { return b.SetPending("") }

// Commit appends t and resets the pending fragment to CaretAnchor in one
// change.
func (b *Buffer) Commit(t Tag) {
	change := b.beginChange(ChangeCommit)
	b.tags = append(b.tags, t)
	b.pending = CaretAnchor
	b.version++
	b.commitChange(change, t)
}

// PopTag removes the right-most tag.
func (b *Buffer) PopTag() (Tag, bool) {
	if len(b.tags) == 0 {
		return Tag{}, false
	}
	change := b.beginChange(ChangeRemove)
	last := b.tags[len(b.tags)-1]
	b.tags = b.tags[:len(b.tags)-1]
	b.version++
	b.commitChange(change, last)
	return last, true
}
