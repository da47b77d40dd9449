package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// DropLast removes the last grapheme cluster of text.
func DropLast(text string) string {
	clusters := Split(text)
	if len(clusters) == 0 {
		return ""
	}
	return strings.Join(clusters[:len(clusters)-1], "")
}

// DropFirst removes the first grapheme cluster of text.
func DropFirst(text string) string {
	clusters := Split(text)
	if len(clusters) == 0 {
		return ""
	}
	return strings.Join(clusters[1:], "")
}

// Width returns the terminal cell width of text. Clusters that runewidth
// reports as zero-width fall back to uniseg.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		cw := runewidth.StringWidth(c)
		if cw == 0 {
			cw = uniseg.StringWidth(c)
		}
		w += cw
	}
	return w
}

// Truncate cuts text to at most width cells without splitting a cluster.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		cw := Width(c)
		if used+cw > width {
			break
		}
		sb.WriteString(c)
		used += cw
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
