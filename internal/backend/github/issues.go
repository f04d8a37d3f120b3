package github

import (
	"context"
	"net/url"
	"strings"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/query"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

// GetIssue fetches one issue, accepting either a bare number (scoped to
// c's default repo) or a fully-qualified "owner/repo#42" (spec §4.C.1).
// A pull request fetched through this path is reported IssueNotFound
// (spec §4.B.1: "GitHub PRs are reported as not-found through this
// method").
func (c *Client) GetIssue(ctx context.Context, id string) (domain.Issue, error) {
	ref := c.parseID(id)
	var w wireIssue
	err := c.doRequest(ctx, "GET", ref.path(""), nil, nil, &w)
	if err != nil {
		if _, ok := err.(trackererr.NotFound); ok {
			return domain.Issue{}, trackererr.IssueNotFound{ID: id}
		}
		return domain.Issue{}, err
	}
	if w.IsPullRequest() {
		return domain.Issue{}, trackererr.IssueNotFound{ID: id}
	}
	return toDomainIssue(ref.owner, ref.repo, w), nil
}

// SearchIssues translates the common dialect and issues a GitHub issue
// search query (spec §4.C.3: "is:issue" is always appended to exclude
// PRs). When the translated query carries no repo: scope, it is scoped to
// c's default repo.
func (c *Client) SearchIssues(ctx context.Context, q string, limit, skip int) ([]domain.Issue, error) {
	translated := query.TranslateGitHub(q)
	if !strings.Contains(translated, "repo:") && c.owner != "" && c.repo != "" {
		translated += " repo:" + c.owner + "/" + c.repo
	}

	params := pageParams(limit, skip)
	params.Set("q", translated)

	var result wireSearchResult
	if err := c.doRequest(ctx, "GET", "/search/issues", params, nil, &result); err != nil {
		return nil, err
	}

	out := make([]domain.Issue, 0, len(result.Items))
	for _, w := range result.Items {
		if w.IsPullRequest() {
			continue
		}
		out = append(out, toDomainIssue(c.owner, c.repo, w))
	}
	return out, nil
}

// CountIssues uses the search endpoint's total_count, unlike YouTrack
// (spec §4.B.1 Option<u64>).
func (c *Client) CountIssues(ctx context.Context, q string) (*uint64, error) {
	translated := query.TranslateGitHub(q)
	if !strings.Contains(translated, "repo:") && c.owner != "" && c.repo != "" {
		translated += " repo:" + c.owner + "/" + c.repo
	}
	params := url.Values{"q": {translated}, "per_page": {"1"}}

	var result wireSearchResult
	if err := c.doRequest(ctx, "GET", "/search/issues", params, nil, &result); err != nil {
		return nil, err
	}
	n := uint64(result.TotalCount)
	return &n, nil
}

func (c *Client) CreateIssue(ctx context.Context, in tracker.CreateIssue) (domain.Issue, error) {
	body := fromCreateIssue(in)
	path := "/repos/" + url.PathEscape(c.owner) + "/" + url.PathEscape(c.repo) + "/issues"
	var w wireIssue
	if err := c.doRequest(ctx, "POST", path, nil, body, &w); err != nil {
		return domain.Issue{}, err
	}
	return toDomainIssue(c.owner, c.repo, w), nil
}

func (c *Client) UpdateIssue(ctx context.Context, id string, in tracker.UpdateIssue) (domain.Issue, error) {
	if in.IsEmpty() {
		return domain.Issue{}, trackererr.NewInvalidInput("update_issue: no fields supplied")
	}
	ref := c.parseID(id)
	body := fromUpdateIssue(in)
	var w wireIssue
	if err := c.doRequest(ctx, "PATCH", ref.path(""), nil, body, &w); err != nil {
		return domain.Issue{}, err
	}
	return toDomainIssue(ref.owner, ref.repo, w), nil
}

// DeleteIssue is unsupported: GitHub has no issue-deletion REST endpoint
// for non-admin tokens; closing is the nearest equivalent (spec §7).
func (c *Client) DeleteIssue(ctx context.Context, id string) error {
	return trackererr.NewInvalidInput("github: issues cannot be deleted via the REST API; close the issue instead")
}

func (c *Client) AddComment(ctx context.Context, id, text string) (domain.Comment, error) {
	ref := c.parseID(id)
	body := map[string]any{"body": text}
	var w wireComment
	if err := c.doRequest(ctx, "POST", ref.path("/comments"), nil, body, &w); err != nil {
		return domain.Comment{}, err
	}
	return toDomainComment(w), nil
}

func (c *Client) GetComments(ctx context.Context, id string) ([]domain.Comment, error) {
	ref := c.parseID(id)
	var wires []wireComment
	if err := c.doRequest(ctx, "GET", ref.path("/comments"), nil, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomainComment(w))
	}
	return out, nil
}
