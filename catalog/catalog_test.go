package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_RejectsMalformedEntries(t *testing.T) {
	cases := []struct {
		name    string
		entries []Entry
		want    error
	}{
		{name: "missing id", entries: []Entry{{Label: "React.js"}}, want: ErrMissingID},
		{name: "missing label", entries: []Entry{{ID: "1"}}, want: ErrMissingLabel},
		{name: "duplicate id", entries: []Entry{{ID: "1", Label: "a"}, {ID: "1", Label: "b"}}, want: ErrDuplicateID},
	}
	for _, tc := range cases {
		_, err := New(tc.entries...)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestNew_PreservesOrderAndCopies(t *testing.T) {
	entries := techEntries()
	c, err := New(entries...)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	entries[0].Label = "mutated"

	want := techEntries()
	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Fatalf("entries (-want +got):\n%s", diff)
	}
	if got, want := c.Len(), 2; got != want {
		t.Fatalf("len: got %d, want %d", got, want)
	}

	out := c.Entries()
	out[1].Label = "mutated"
	if got, _ := c.Lookup("2"); got.Label != "Node.js" {
		t.Fatalf("Entries should return a copy: got %q", got.Label)
	}
}

func TestLookup(t *testing.T) {
	c := MustNew(techEntries()...)
	if e, ok := c.Lookup("2"); !ok || e.Label != "Node.js" {
		t.Fatalf("lookup 2: got %v %v", e, ok)
	}
	if _, ok := c.Lookup("9"); ok {
		t.Fatalf("lookup of unknown id should fail")
	}
}

func TestMustNew_PanicsOnInvalidEntries(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustNew should panic on a missing id")
		}
	}()
	MustNew(Entry{Label: "x"})
}
