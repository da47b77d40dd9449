package buffer

// CaretAnchor is the fragment text left behind by a commit. It keeps the
// caret outside the tag that was just inserted.
const CaretAnchor = " "

// Tag is one committed suggestion.
type Tag struct {
	ID    string `json:"id" yaml:"id" msgpack:"id"`
	Label string `json:"label" yaml:"label" msgpack:"label"`
}

// IsBlank reports whether fragment carries nothing to match against: it is
// empty or only the caret anchor.
func IsBlank(fragment string) bool {
	return fragment == "" || fragment == CaretAnchor
}

func cloneTags(in []Tag) []Tag {
	if len(in) == 0 {
		return nil
	}
	out := make([]Tag, len(in))
	copy(out, in)
	return out
}
