package richtext

import (
	"strings"
)

// StorageToText down-converts Confluence's XHTML "storage" format to plain
// text. It understands only the one shape this layer ever writes itself
// (<p>...</p> paragraphs with entities escaped) plus tolerates arbitrary
// tags elsewhere by stripping them, since Confluence pages are frequently
// hand-edited and richer than anything we produce.
func StorageToText(storage string) string {
	var out strings.Builder
	inTag := false
	for i := 0; i < len(storage); i++ {
		c := storage[i]
		switch {
		case c == '<':
			inTag = true
		case c == '>':
			inTag = false
			if strings.HasPrefix(storage[clampLeft(i-3):i+1], "</p>") {
				out.WriteByte('\n')
			}
		case !inTag:
			out.WriteByte(c)
		}
	}
	return unescapeHTML(strings.TrimRight(out.String(), "\n"))
}

func clampLeft(i int) int {
	if i < 0 {
		return 0
	}
	return i
}

// TextToStorage wraps plain text as <p>...</p> with & < > " escaped (spec
// §4.C.5). Each line becomes its own paragraph.
func TextToStorage(text string) string {
	var b strings.Builder
	for _, line := range splitLines(text) {
		b.WriteString("<p>")
		b.WriteString(escapeHTML(line))
		b.WriteString("</p>")
	}
	return b.String()
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

func unescapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}
