package github

import (
	"context"
	"net/url"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

// ListTags enumerates c's default repo's labels. Like GitLab, GitHub
// labels are first-class repo resources with their own CRUD API (spec
// §4.B.1).
func (c *Client) ListTags(ctx context.Context) ([]domain.Tag, error) {
	var wires []wireLabel
	path := "/repos/" + url.PathEscape(c.owner) + "/" + url.PathEscape(c.repo) + "/labels"
	q := url.Values{"per_page": {"100"}}
	if err := c.doRequest(ctx, "GET", path, q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Tag, 0, len(wires))
	for _, w := range wires {
		out = append(out, domain.Tag{ID: w.Name, Name: w.Name})
	}
	return out, nil
}

func (c *Client) CreateTag(ctx context.Context, in tracker.CreateTag) (domain.Tag, error) {
	body := map[string]any{"name": in.Name}
	if in.Color != "" {
		body["color"] = in.Color
	}
	var w wireLabel
	path := "/repos/" + url.PathEscape(c.owner) + "/" + url.PathEscape(c.repo) + "/labels"
	if err := c.doRequest(ctx, "POST", path, nil, body, &w); err != nil {
		return domain.Tag{}, err
	}
	return domain.Tag{ID: w.Name, Name: w.Name}, nil
}

func (c *Client) UpdateTag(ctx context.Context, currentName string, in tracker.CreateTag) (domain.Tag, error) {
	body := map[string]any{"new_name": in.Name}
	if in.Color != "" {
		body["color"] = in.Color
	}
	var w wireLabel
	path := "/repos/" + url.PathEscape(c.owner) + "/" + url.PathEscape(c.repo) + "/labels/" + url.PathEscape(currentName)
	if err := c.doRequest(ctx, "PATCH", path, nil, body, &w); err != nil {
		return domain.Tag{}, err
	}
	return domain.Tag{ID: w.Name, Name: w.Name}, nil
}

func (c *Client) DeleteTag(ctx context.Context, name string) error {
	path := "/repos/" + url.PathEscape(c.owner) + "/" + url.PathEscape(c.repo) + "/labels/" + url.PathEscape(name)
	return c.doRequest(ctx, "DELETE", path, nil, nil, nil)
}

// ListLinkTypes returns empty: GitHub has no formal issue-link concept
// (spec §4.C.4).
func (c *Client) ListLinkTypes(ctx context.Context) ([]domain.IssueLinkType, error) {
	return nil, nil
}

func (c *Client) GetIssueLinks(ctx context.Context, id string) ([]domain.IssueLink, error) {
	return nil, nil
}

// LinkIssues is unsupported: GitHub has no formal issue links, only
// #number references inside comment text (spec §4.C.4, §7).
func (c *Client) LinkIssues(ctx context.Context, source, target, linkType string, direction domain.LinkDirection) error {
	return trackererr.NewInvalidInput("github: does not support formal issue links. Reference issues via #number in comments instead.")
}

// LinkSubtask is unsupported on GitHub (spec §4.C.4).
func (c *Client) LinkSubtask(ctx context.Context, child, parent string) error {
	return trackererr.NewInvalidInput("github: does not support subtask relationships. Reference the parent via #number in a comment instead.")
}
