package gitlab

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

// ListTags enumerates c's project's labels. Unlike Jira, GitLab labels are
// first-class project resources with their own create/rename/delete API
// (spec §4.B.1).
func (c *Client) ListTags(ctx context.Context) ([]domain.Tag, error) {
	var wires []wireLabel
	if err := c.doRequest(ctx, "GET", c.projectPath("/labels"), nil, nil, &wires); err != nil {
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
	} else {
		body["color"] = "#428BCA"
	}
	var w wireLabel
	if err := c.doRequest(ctx, "POST", c.projectPath("/labels"), nil, body, &w); err != nil {
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
	path := c.projectPath("/labels/" + url.PathEscape(currentName))
	if err := c.doRequest(ctx, "PUT", path, nil, body, &w); err != nil {
		return domain.Tag{}, err
	}
	return domain.Tag{ID: w.Name, Name: w.Name}, nil
}

func (c *Client) DeleteTag(ctx context.Context, name string) error {
	return c.doRequest(ctx, "DELETE", c.projectPath("/labels/"+url.PathEscape(name)), nil, nil, nil)
}

// ListLinkTypes returns GitLab's fixed, non-extensible set of link verbs
// (spec §4.C.4).
func (c *Client) ListLinkTypes(ctx context.Context) ([]domain.IssueLinkType, error) {
	return []domain.IssueLinkType{
		{ID: "relates_to", Name: "relates_to", Directed: false},
		{ID: "blocks", Name: "blocks", SourceToTarget: "blocks", TargetToSource: "is_blocked_by", Directed: true},
	}, nil
}

func (c *Client) GetIssueLinks(ctx context.Context, id string) ([]domain.IssueLink, error) {
	var wires []wireIssueLink
	path := c.projectPath("/issues/" + url.PathEscape(parseIID(id)) + "/links")
	if err := c.doRequest(ctx, "GET", path, nil, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.IssueLink, 0, len(wires))
	for _, w := range wires {
		out = append(out, domain.IssueLink{
			LinkType: domain.IssueLinkType{ID: w.LinkType, Name: w.LinkType},
			Issues:   []domain.IssueRef{{IDReadable: "#" + strconv.FormatInt(w.IID, 10), Summary: w.Title}},
		})
	}
	return out, nil
}

// LinkIssues creates a link of the given type between two issues in the
// same project (spec §4.C.4: "relates_to, blocks, is_blocked_by").
func (c *Client) LinkIssues(ctx context.Context, source, target, linkType string, direction domain.LinkDirection) error {
	body := map[string]any{
		"target_project_id": c.projectID,
		"target_issue_iid":  parseIID(target),
		"link_type":         linkType,
	}
	path := c.projectPath("/issues/" + url.PathEscape(parseIID(source)) + "/links")
	return c.doRequest(ctx, "POST", path, nil, body, nil)
}

// LinkSubtask is unsupported: GitLab issues have no native parent/subtask
// relationship, only the generic relates_to/blocks links (spec §4.C.4).
func (c *Client) LinkSubtask(ctx context.Context, child, parent string) error {
	return trackererr.NewInvalidInput("gitlab: issues have no native subtask relationship; use link_issues with relates_to instead")
}
