// Package richtext down-converts and up-converts the rich-text payloads of
// Jira (Atlassian Document Format) and Confluence (storage-format XHTML)
// to and from the plain text the canonical domain model carries (spec
// §4.C.5). Both directions are intentionally lossy in the same places the
// spec calls out: block structure is discarded on read and reconstructed
// as the simplest possible wrapper on write.
package richtext

import "encoding/json"

// adfNode is the minimal subset of ADF this layer understands: enough to
// walk any document depth-first and collect text leaves.
type adfNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text,omitempty"`
	Content []adfNode `json:"content,omitempty"`
}

type adfDoc struct {
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Content []adfNode `json:"content,omitempty"`
}

// ADFToText walks an ADF document depth-first, concatenating every text
// leaf, ignoring block structure (spec §4.C.5). Top-level blocks are
// separated by a newline and each hardBreak node contributes one, so
// multi-paragraph documents don't collapse into one line; blocks nested
// inside another block are not separated.
func ADFToText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	var doc adfDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", err
	}

	var out []byte
	for i, n := range doc.Content {
		if i > 0 {
			out = append(out, '\n')
		}
		out = collectText(n, out)
	}
	return string(out), nil
}

func collectText(n adfNode, out []byte) []byte {
	if n.Text != "" {
		out = append(out, n.Text...)
	}
	if n.Type == "hardBreak" {
		out = append(out, '\n')
	}
	for _, c := range n.Content {
		out = collectText(c, out)
	}
	return out
}

// TextToADF wraps plain text as a single doc -> paragraph -> text node
// (spec §4.C.5). Multi-line input becomes one paragraph per line.
func TextToADF(text string) json.RawMessage {
	lines := splitLines(text)
	content := make([]adfNode, 0, len(lines))
	for _, line := range lines {
		p := adfNode{Type: "paragraph"}
		if line != "" {
			p.Content = []adfNode{{Type: "text", Text: line}}
		}
		content = append(content, p)
	}
	doc := adfDoc{Type: "doc", Version: 1, Content: content}
	raw, _ := json.Marshal(doc)
	return raw
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
