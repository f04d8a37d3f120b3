package github

import (
	"context"
	"net/http"
	"testing"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/testutil"
	"github.com/jra3/unitrack/internal/trackererr"
)

func TestGetIssue(t *testing.T) {
	t.Parallel()
	srv := testutil.NewMockServer()
	defer srv.Close()

	srv.Stub(http.MethodGet, "/repos/acme/widgets/issues/1", http.StatusOK, map[string]any{
		"id":         1001,
		"number":     1,
		"title":      "Fix the thing",
		"body":       "details",
		"state":      "open",
		"labels":     []map[string]any{{"name": "bug"}},
		"created_at": "2023-11-14T10:20:30Z",
		"updated_at": "2023-11-14T10:20:30Z",
	})

	c := NewClient(srv.URL(), "token", "acme", "widgets")
	issue, err := c.GetIssue(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetIssue() error = %v", err)
	}
	if issue.IDReadable != "acme/widgets#1" {
		t.Errorf("IDReadable = %q, want acme/widgets#1", issue.IDReadable)
	}
	status, ok := issue.Field("status")
	if !ok || status.Kind != domain.FieldState || status.IsResolved {
		t.Errorf("Status field = %+v, want unresolved open state", status)
	}
}

func TestGetIssueFiltersPullRequest(t *testing.T) {
	t.Parallel()
	srv := testutil.NewMockServer()
	defer srv.Close()

	srv.Stub(http.MethodGet, "/repos/acme/widgets/issues/99", http.StatusOK, map[string]any{
		"id":           2002,
		"number":       99,
		"title":        "A PR",
		"state":        "open",
		"pull_request": map[string]any{"url": "https://api.github.com/repos/acme/widgets/pulls/99"},
	})

	c := NewClient(srv.URL(), "token", "acme", "widgets")
	_, err := c.GetIssue(context.Background(), "99")
	if _, ok := err.(trackererr.IssueNotFound); !ok {
		t.Errorf("error = %v (%T), want trackererr.IssueNotFound for a PR", err, err)
	}
}

func TestSearchIssuesFiltersPullRequests(t *testing.T) {
	t.Parallel()
	srv := testutil.NewMockServer()
	defer srv.Close()

	srv.Stub(http.MethodGet, "/search/issues", http.StatusOK, map[string]any{
		"total_count": 2,
		"items": []map[string]any{
			{"id": 1, "number": 1, "title": "an issue", "state": "open"},
			{"id": 2, "number": 99, "title": "a pr", "state": "open", "pull_request": map[string]any{"url": "x"}},
		},
	})

	c := NewClient(srv.URL(), "token", "acme", "widgets")
	issues, err := c.SearchIssues(context.Background(), "", 100, 0)
	if err != nil {
		t.Fatalf("SearchIssues() error = %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("len(issues) = %d, want 1 (PR excluded)", len(issues))
	}
	if issues[0].IDReadable != "acme/widgets#1" {
		t.Errorf("issues[0].IDReadable = %q, want acme/widgets#1", issues[0].IDReadable)
	}
}

func TestClassifyStatusRateLimit(t *testing.T) {
	t.Parallel()
	header := http.Header{"X-Ratelimit-Remaining": {"0"}}
	err := classifyStatus(http.StatusForbidden, header, []byte(`{"message":"rate limited"}`))
	if _, ok := err.(trackererr.RateLimited); !ok {
		t.Errorf("error = %v (%T), want trackererr.RateLimited", err, err)
	}
}

func TestClassifyStatusForbiddenNonRateLimit(t *testing.T) {
	t.Parallel()
	header := http.Header{"X-Ratelimit-Remaining": {"42"}}
	err := classifyStatus(http.StatusForbidden, header, []byte(`{"message":"forbidden"}`))
	api, ok := err.(trackererr.API)
	if !ok || api.Status != http.StatusForbidden {
		t.Errorf("error = %v (%T), want trackererr.API{403,...}", err, err)
	}
}

func TestLinkIssuesUnsupported(t *testing.T) {
	t.Parallel()
	c := NewClient("http://unused", "token", "acme", "widgets")
	err := c.LinkIssues(context.Background(), "1", "2", "relates", domain.DirectionBoth)
	if _, ok := err.(trackererr.InvalidInput); !ok {
		t.Errorf("error = %v (%T), want trackererr.InvalidInput", err, err)
	}
}

func TestParseIDLastHash(t *testing.T) {
	t.Parallel()
	c := NewClient("http://unused", "token", "acme", "widgets")
	ref := c.parseID("other-owner/repo#42")
	if ref.owner != "other-owner" || ref.repo != "repo" || ref.number != "42" {
		t.Errorf("parseID = %+v, want owner=other-owner repo=repo number=42", ref)
	}
}
