package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func techEntries() []Entry {
	return []Entry{
		{ID: "1", Label: "React.js"},
		{ID: "2", Label: "Node.js"},
	}
}

func TestMatch_EmptyQueryReturnsEverythingInOrder(t *testing.T) {
	entries := techEntries()
	got := Match("", entries)
	if diff := cmp.Diff(entries, got); diff != "" {
		t.Fatalf("empty query (-want +got):\n%s", diff)
	}
}

func TestMatch_IsRepeatable(t *testing.T) {
	entries := techEntries()
	first := Match("n", entries)
	second := Match("n", entries)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated match differs (-first +second):\n%s", diff)
	}
}

func TestMatch_CaseInsensitivePrefix(t *testing.T) {
	entries := techEntries()
	want := []Entry{{ID: "1", Label: "React.js"}}

	cases := []struct {
		query string
		want  []Entry
	}{
		{query: "re", want: want},
		{query: "RE", want: want},
		{query: "React.JS", want: want},
		{query: "x", want: []Entry{}},
		{query: "js", want: []Entry{}},
	}
	for _, tc := range cases {
		got := Match(tc.query, entries)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("Match(%q) (-want +got):\n%s", tc.query, diff)
		}
	}
}

func TestMatch_DropsOneLeadingSpace(t *testing.T) {
	entries := techEntries()
	if diff := cmp.Diff(Match("re", entries), Match(" re", entries)); diff != "" {
		t.Fatalf("leading space (-plain +spaced):\n%s", diff)
	}
	if got := Match("  re", entries); len(got) != 0 {
		t.Fatalf("two leading spaces should not match: got %v", got)
	}
}

func TestMatch_QueryIsLiteral(t *testing.T) {
	entries := []Entry{
		{ID: "1", Label: "C++"},
		{ID: "2", Label: "C#"},
		{ID: "3", Label: "Crystal"},
	}
	got := Match("c+", entries)
	want := []Entry{{ID: "1", Label: "C++"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("literal query (-want +got):\n%s", diff)
	}
	if got := Match(".*", entries); len(got) != 0 {
		t.Fatalf("pattern syntax should not match: got %v", got)
	}
}

func TestMatch_UnicodeFolding(t *testing.T) {
	entries := []Entry{{ID: "1", Label: "Émile"}, {ID: "2", Label: "Straße"}}
	if got := Match("é", entries); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("folded accent match: got %v", got)
	}
	if got := Match("STRASSE", entries); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("full case folding: got %v", got)
	}
}

func TestMatch_ResultDoesNotAliasInput(t *testing.T) {
	entries := techEntries()
	got := Match("", entries)
	got[0].Label = "mutated"
	if entries[0].Label != "React.js" {
		t.Fatalf("match result aliases input: %q", entries[0].Label)
	}
}

func TestCatalogMatch_NilCatalog(t *testing.T) {
	var c *Catalog
	if got := c.Match("re"); got != nil {
		t.Fatalf("nil catalog match: got %v, want nil", got)
	}
}
