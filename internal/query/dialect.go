// Package query translates the tiny common query dialect of spec §4.C.3
// into each backend's native query language. Each adapter calls Translate
// with its own Dialect; the mapping table itself lives here so the four
// adapters can't drift from each other on the shared tokens.
package query

import "strings"

// Dialect names which backend's translation rules to apply.
type Dialect string

const (
	DialectYouTrack Dialect = "youtrack"
	DialectJira     Dialect = "jira"
	DialectGitHub   Dialect = "github"
	DialectGitLab   Dialect = "gitlab"
)

// GitLabParams is the decomposed result of translating for GitLab, whose
// query dialect is request parameters rather than a query string (spec
// §4.C.3: "project: X" is dropped because the client is already
// project-scoped, and state/search become separate query params).
type GitLabParams struct {
	State  string // "opened" or "closed", empty if unspecified
	Search string // free-text search= param
	Labels string // labels= param
}

// Translate converts the common dialect token stream in q into the target
// backend's query string. For GitLab use TranslateGitLab instead, since
// GitLab's "query" is several distinct request parameters, not one string.
func Translate(d Dialect, q string) string {
	tokens := tokenize(q)
	if len(tokens) == 0 {
		return translateEmpty(d)
	}

	var parts []string
	for _, tok := range tokens {
		parts = append(parts, translateToken(d, tok))
	}
	return strings.Join(parts, joinSep(d))
}

func translateEmpty(d Dialect) string {
	if d == DialectGitHub {
		return "is:issue"
	}
	return ""
}

func joinSep(d Dialect) string {
	switch d {
	case DialectJira:
		return " AND "
	case DialectGitHub:
		return " "
	default:
		return " "
	}
}

// token is one piece of the common dialect: either a recognised directive
// (project:, #Unresolved, label:) or literal free text.
type token struct {
	kind  string // "project", "unresolved", "resolved", "label", "text"
	value string
}

// tokenize splits q into whitespace-separated words. A bare "project:" or
// "label:" word takes the following word as its value, so both
// "project:X" and "project: X" (space after the colon, the form spec
// §4.C.3's examples use) yield the same directive rather than leaving the
// directive empty and the value stranded as free text.
func tokenize(q string) []token {
	var out []token
	fields := strings.Fields(q)
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		switch {
		case field == "project:" && i+1 < len(fields):
			i++
			out = append(out, token{kind: "project", value: fields[i]})
		case strings.HasPrefix(field, "project:"):
			out = append(out, token{kind: "project", value: strings.TrimPrefix(field, "project:")})
		case field == "label:" && i+1 < len(fields):
			i++
			out = append(out, token{kind: "label", value: fields[i]})
		case strings.HasPrefix(field, "label:"):
			out = append(out, token{kind: "label", value: strings.TrimPrefix(field, "label:")})
		case field == "#Unresolved" || field == "#Open":
			out = append(out, token{kind: "unresolved"})
		case field == "#Resolved" || field == "#Closed":
			out = append(out, token{kind: "resolved"})
		default:
			out = append(out, token{kind: "text", value: field})
		}
	}
	return out
}

func translateToken(d Dialect, t token) string {
	switch d {
	case DialectYouTrack:
		switch t.kind {
		case "project":
			return "project: " + t.value
		case "label":
			return "tag: " + t.value
		case "unresolved":
			return "#Unresolved"
		case "resolved":
			return "#Resolved"
		default:
			return t.value
		}
	case DialectJira:
		switch t.kind {
		case "project":
			return "project = " + t.value
		case "label":
			return "labels = " + t.value
		case "unresolved":
			return "resolution IS EMPTY"
		case "resolved":
			return "resolution IS NOT EMPTY"
		default:
			return t.value
		}
	case DialectGitHub:
		switch t.kind {
		case "project":
			return "repo:" + t.value
		case "label":
			return "label:" + t.value
		case "unresolved":
			return "is:open is:issue"
		case "resolved":
			return "is:closed is:issue"
		default:
			return t.value
		}
	}
	return t.value
}

// TranslateGitHub is Translate for GitHub plus the mandatory is:issue
// exclusion of pull requests (spec §4.C.3: "GitHub queries always append
// is:issue").
func TranslateGitHub(q string) string {
	translated := Translate(DialectGitHub, q)
	if translated == "" {
		return "is:issue"
	}
	if !strings.Contains(translated, "is:issue") {
		translated += " is:issue"
	}
	return translated
}

// TranslateGitLab decomposes the common dialect into GitLab's request
// parameters. GitLab drops "project: X" entirely because its client is
// already scoped to one project (spec §4.C.3).
func TranslateGitLab(q string) GitLabParams {
	var p GitLabParams
	var text []string
	for _, tok := range tokenize(q) {
		switch tok.kind {
		case "project":
			// dropped; client is project-scoped
		case "label":
			p.Labels = tok.value
		case "unresolved":
			p.State = "opened"
		case "resolved":
			p.State = "closed"
		default:
			text = append(text, tok.value)
		}
	}
	p.Search = strings.Join(text, " ")
	return p
}
