package gitlab

import (
	"context"
	"net/url"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

// ListProjects lists projects visible to the token, not just c's bound
// project (spec §4.B.1 is backend-wide here, distinct from the per-issue
// project scoping described in client.go).
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var wires []wireProject
	q := url.Values{"membership": {"true"}, "per_page": {"100"}}
	if err := c.doRequest(ctx, "GET", "/projects", q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomainProject(w))
	}
	return out, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (domain.Project, error) {
	var w wireProject
	err := c.doRequest(ctx, "GET", "/projects/"+url.PathEscape(id), nil, nil, &w)
	if err != nil {
		if _, ok := err.(trackererr.NotFound); ok {
			return domain.Project{}, trackererr.ProjectNotFound{ID: id}
		}
		return domain.Project{}, err
	}
	return toDomainProject(w), nil
}

func (c *Client) CreateProject(ctx context.Context, in tracker.CreateProject) (domain.Project, error) {
	body := map[string]any{
		"name":        in.Name,
		"path":        in.ShortName,
		"description": in.Description,
	}
	var w wireProject
	if err := c.doRequest(ctx, "POST", "/projects", nil, body, &w); err != nil {
		return domain.Project{}, err
	}
	return toDomainProject(w), nil
}

// ResolveProjectID maps a numeric id or "group/project" path to the
// canonical numeric id GitLab expects on writes (spec §4.B.1). GitLab's
// API accepts a URL-encoded path directly wherever a project id is
// expected, so the identifier itself is usually already sufficient; this
// still round-trips through GetProject to validate it resolves.
func (c *Client) ResolveProjectID(ctx context.Context, identifier string) (string, error) {
	p, err := c.GetProject(ctx, identifier)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// GetProjectCustomFields describes the fixed set of fields this adapter
// synthesises on every issue (spec §4.C.2). GitLab has no per-project
// custom-field schema analogous to YouTrack's bundles.
func (c *Client) GetProjectCustomFields(ctx context.Context, projectID string) ([]domain.ProjectCustomField, error) {
	return []domain.ProjectCustomField{
		{ID: "status", Name: "Status", Type: "state", Required: true,
			StateValues: []domain.StateValue{{Name: "opened", Ordinal: 0}, {Name: "closed", IsResolved: true, Ordinal: 1}}},
		{ID: "assignee", Name: "Assignee", Type: "user"},
		{ID: "label", Name: "Label", Type: "enum"},
	}, nil
}

func (c *Client) ListProjectUsers(ctx context.Context, projectID string) ([]domain.User, error) {
	var wires []wireUser
	path := "/projects/" + url.PathEscape(projectID) + "/members/all"
	if err := c.doRequest(ctx, "GET", path, nil, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(wires))
	for _, w := range wires {
		out = append(out, domain.User{Login: w.Username, DisplayName: w.Name})
	}
	return out, nil
}
