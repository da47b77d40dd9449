package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/iw2rmb/taginput/internal/grapheme"
)

// Match returns the entries whose label starts with query, ignoring case.
//
// A single leading whitespace cluster is dropped from query first; it is the
// caret anchor left behind by a tag commit. The query is literal text. An
// empty query matches every entry. The result keeps input order and never
// aliases entries.
func Match(query string, entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	q := fold(normalizeQuery(query))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if q == "" || strings.HasPrefix(fold(e.Label), q) {
			out = append(out, e)
		}
	}
	return out
}

func normalizeQuery(query string) string {
	clusters := grapheme.Split(query)
	if len(clusters) == 0 || !grapheme.IsSpace(clusters[0]) {
		return query
	}
	return grapheme.DropFirst(query)
}

func fold(s string) string {
	if s == "" {
		return ""
	}
	// cases.Caser is not safe for concurrent use.
	return cases.Fold().String(s)
}
