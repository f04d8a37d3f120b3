package gitlab

import (
	"context"
	"net/url"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/query"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

// GetIssue fetches one issue by iid, accepting either "42" or "#42" (spec
// §4.C.1, §8 Boundary behaviours).
func (c *Client) GetIssue(ctx context.Context, id string) (domain.Issue, error) {
	var w wireIssue
	err := c.doRequest(ctx, "GET", c.projectPath("/issues/"+url.PathEscape(parseIID(id))), nil, nil, &w)
	if err != nil {
		if _, ok := err.(trackererr.NotFound); ok {
			return domain.Issue{}, trackererr.IssueNotFound{ID: id}
		}
		return domain.Issue{}, err
	}
	return toDomainIssue(w), nil
}

// SearchIssues translates the common dialect into GitLab's request
// parameters (spec §4.C.3: "project: X" is dropped since c is already
// project-scoped) and pages per spec §4.C.7.
func (c *Client) SearchIssues(ctx context.Context, q string, limit, skip int) ([]domain.Issue, error) {
	params := query.TranslateGitLab(q)
	qs := pageParams(limit, skip)
	if params.State != "" {
		qs.Set("state", params.State)
	}
	if params.Search != "" {
		qs.Set("search", params.Search)
	}
	if params.Labels != "" {
		qs.Set("labels", params.Labels)
	}

	var wires []wireIssue
	if err := c.doRequest(ctx, "GET", c.projectPath("/issues"), qs, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Issue, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomainIssue(w))
	}
	return out, nil
}

// CountIssues is not directly answerable on GitLab without enumerating, so
// this returns nil per the Option<u64> contract (spec §4.B.1); the
// X-Total header on the list endpoint would require exposing HTTP headers
// through doRequest, which this adapter does not do.
func (c *Client) CountIssues(ctx context.Context, q string) (*uint64, error) {
	return nil, nil
}

func (c *Client) CreateIssue(ctx context.Context, in tracker.CreateIssue) (domain.Issue, error) {
	body := fromCreateIssue(in)
	var w wireIssue
	if err := c.doRequest(ctx, "POST", c.projectPath("/issues"), nil, body, &w); err != nil {
		return domain.Issue{}, err
	}
	return toDomainIssue(w), nil
}

// UpdateIssue applies a partial update via PUT, not PATCH (spec §6.1).
func (c *Client) UpdateIssue(ctx context.Context, id string, in tracker.UpdateIssue) (domain.Issue, error) {
	if in.IsEmpty() {
		return domain.Issue{}, trackererr.NewInvalidInput("update_issue: no fields supplied")
	}
	body := fromUpdateIssue(in)
	var w wireIssue
	if err := c.doRequest(ctx, "PUT", c.projectPath("/issues/"+url.PathEscape(parseIID(id))), nil, body, &w); err != nil {
		return domain.Issue{}, err
	}
	return toDomainIssue(w), nil
}

func (c *Client) DeleteIssue(ctx context.Context, id string) error {
	return c.doRequest(ctx, "DELETE", c.projectPath("/issues/"+url.PathEscape(parseIID(id))), nil, nil, nil)
}

func (c *Client) AddComment(ctx context.Context, id, text string) (domain.Comment, error) {
	body := map[string]any{"body": text}
	var w wireNote
	path := c.projectPath("/issues/" + url.PathEscape(parseIID(id)) + "/notes")
	if err := c.doRequest(ctx, "POST", path, nil, body, &w); err != nil {
		return domain.Comment{}, err
	}
	return toDomainComment(w), nil
}

// GetComments returns comments, filtering out system-generated notes (spec
// §4.B.1: "GitLab system: true").
func (c *Client) GetComments(ctx context.Context, id string) ([]domain.Comment, error) {
	var wires []wireNote
	path := c.projectPath("/issues/" + url.PathEscape(parseIID(id)) + "/notes")
	if err := c.doRequest(ctx, "GET", path, nil, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(wires))
	for _, w := range wires {
		if w.System {
			continue
		}
		out = append(out, toDomainComment(w))
	}
	return out, nil
}
