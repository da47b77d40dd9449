package buffer

// ChangeKind identifies the mutation a Change records.
type ChangeKind uint8

const (
	ChangePending ChangeKind = iota
	ChangeCommit
	ChangeRemove
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePending:
		return "pending"
	case ChangeCommit:
		return "commit"
	case ChangeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64

	// Tag is the committed or removed tag. Zero for pending edits.
	Tag Tag

	PendingBefore string
	PendingAfter  string
	TagsAfter     []Tag
}

type changeBuilder struct {
	kind          ChangeKind
	versionBefore uint64
	pendingBefore string
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return cloneChange(b.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.TagsAfter = cloneTags(in.TagsAfter)
	return out
}

func (b *Buffer) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:          kind,
		versionBefore: b.version,
		pendingBefore: b.pending,
	}
}

func (b *Buffer) commitChange(cb changeBuilder, tag Tag) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Kind:          cb.kind,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		Tag:           tag,
		PendingBefore: cb.pendingBefore,
		PendingAfter:  b.pending,
		TagsAfter:     cloneTags(b.tags),
	}
	b.hasLastChange = true
}
