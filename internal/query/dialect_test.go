package query

import "testing"

func TestTranslateYouTrack(t *testing.T) {
	got := Translate(DialectYouTrack, "project:DEMO #Unresolved label:bug")
	want := "project: DEMO #Unresolved tag: bug"
	if got != want {
		t.Errorf("Translate(youtrack) = %q, want %q", got, want)
	}
}

func TestTranslateJiraProjectTokenWithSpaceAfterColon(t *testing.T) {
	got := Translate(DialectJira, "project: DEMO #Unresolved")
	want := "project = DEMO AND resolution IS EMPTY"
	if got != want {
		t.Errorf("Translate(jira) = %q, want %q", got, want)
	}
}

func TestTranslateJiraJoinsWithAND(t *testing.T) {
	got := Translate(DialectJira, "project:DEMO #Resolved")
	want := "project = DEMO AND resolution IS NOT EMPTY"
	if got != want {
		t.Errorf("Translate(jira) = %q, want %q", got, want)
	}
}

func TestTranslateGitHubAlwaysAppendsIsIssue(t *testing.T) {
	got := TranslateGitHub("project:demo/repo #Unresolved")
	if got != "repo:demo/repo is:open is:issue" {
		t.Errorf("TranslateGitHub = %q", got)
	}

	// Token translation already includes is:issue; TranslateGitHub must not
	// duplicate it.
	got = TranslateGitHub("#Unresolved")
	if got != "is:open is:issue" {
		t.Errorf("TranslateGitHub(#Unresolved) = %q", got)
	}
}

func TestTranslateGitHubEmptyQuery(t *testing.T) {
	if got := TranslateGitHub(""); got != "is:issue" {
		t.Errorf("TranslateGitHub(\"\") = %q, want is:issue", got)
	}
}

func TestTranslateGitLabDropsProjectToken(t *testing.T) {
	p := TranslateGitLab("project:demo/repo #Resolved label:bug search text")
	if p.State != "closed" {
		t.Errorf("State = %q, want closed", p.State)
	}
	if p.Labels != "bug" {
		t.Errorf("Labels = %q, want bug", p.Labels)
	}
	if p.Search != "search text" {
		t.Errorf("Search = %q, want %q", p.Search, "search text")
	}
}

func TestTranslateEmptyQueryPerDialect(t *testing.T) {
	if got := Translate(DialectYouTrack, ""); got != "" {
		t.Errorf("Translate(youtrack, \"\") = %q, want empty", got)
	}
	if got := Translate(DialectGitHub, ""); got != "is:issue" {
		t.Errorf("Translate(github, \"\") = %q, want is:issue", got)
	}
}

// TestTranslateIdempotenceOnFreeText reproduces the round-trip property that
// a single free-text token with no directive prefix passes through
// untouched, which is what makes re-translating an already-translated
// single-token query a no-op regardless of a dialect's join separator.
func TestTranslateIdempotenceOnFreeText(t *testing.T) {
	for _, d := range []Dialect{DialectYouTrack, DialectJira, DialectGitHub} {
		once := Translate(d, "hello")
		twice := Translate(d, once)
		if once != twice {
			t.Errorf("dialect %s: Translate not idempotent on free text: %q != %q", d, once, twice)
		}
	}
}
