package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrMissingID    = errors.New("catalog: entry has no id")
	ErrMissingLabel = errors.New("catalog: entry has no label")
	ErrDuplicateID  = errors.New("catalog: duplicate entry id")
)

// Entry is one suggestion candidate. ID is the hidden value submitted with a
// committed tag; Label is what the user sees and types against.
type Entry struct {
	ID    string `json:"id" yaml:"id" toml:"id" msgpack:"id"`
	Label string `json:"label" yaml:"label" toml:"label" msgpack:"label"`
}

// Catalog is an immutable, ordered list of entries.
type Catalog struct {
	entries []Entry
}

// New validates entries and returns a catalog preserving their order.
func New(entries ...Entry) (*Catalog, error) {
	seen := make(map[string]int, len(entries))
	out := make([]Entry, 0, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrMissingID)
		}
		if e.Label == "" {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.ID, ErrMissingLabel)
		}
		if prev, ok := seen[e.ID]; ok {
			return nil, fmt.Errorf("entry %d (%s), first seen at %d: %w", i, e.ID, prev, ErrDuplicateID)
		}
		seen[e.ID] = i
		out = append(out, e)
	}
	return &Catalog{entries: out}, nil
}

// MustNew is New for statically known entries. It panics on invalid input.
func MustNew(entries ...Entry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Entries returns a copy of the catalog entries in order.
func (c *Catalog) Entries() []Entry {
	if c == nil || len(c.entries) == 0 {
		return nil
	}
	return append([]Entry(nil), c.entries...)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Lookup returns the entry with the given id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Match filters the catalog with Match.
func (c *Catalog) Match(query string) []Entry {
	if c == nil {
		return nil
	}
	return Match(query, c.entries)
}
