package github

import (
	"context"
	"net/url"
	"strings"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

// "Project" maps to a GitHub repository throughout this adapter (spec
// §3.1 "GitHub uses owner/repo").

func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var wires []wireRepo
	q := url.Values{"per_page": {"100"}}
	if err := c.doRequest(ctx, "GET", "/user/repos", q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomainProject(w))
	}
	return out, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (domain.Project, error) {
	owner, repo, ok := splitOwnerRepo(id, c.owner, c.repo)
	if !ok {
		return domain.Project{}, trackererr.NewInvalidInput("github: project id must be \"owner/repo\"")
	}
	var w wireRepo
	err := c.doRequest(ctx, "GET", "/repos/"+url.PathEscape(owner)+"/"+url.PathEscape(repo), nil, nil, &w)
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
		"name":        in.ShortName,
		"description": in.Description,
	}
	var w wireRepo
	if err := c.doRequest(ctx, "POST", "/user/repos", nil, body, &w); err != nil {
		return domain.Project{}, err
	}
	return toDomainProject(w), nil
}

// ResolveProjectID maps "owner/repo" (or a bare repo name, defaulting to
// c's owner) to the canonical "owner/repo" form GitHub expects everywhere
// (spec §4.B.1).
func (c *Client) ResolveProjectID(ctx context.Context, identifier string) (string, error) {
	p, err := c.GetProject(ctx, identifier)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// GetProjectCustomFields describes the fixed set of fields this adapter
// synthesises on every issue (spec §4.C.2). GitHub has no per-repo
// custom-field schema analogous to YouTrack's bundles.
func (c *Client) GetProjectCustomFields(ctx context.Context, projectID string) ([]domain.ProjectCustomField, error) {
	return []domain.ProjectCustomField{
		{ID: "state", Name: "Status", Type: "state", Required: true,
			StateValues: []domain.StateValue{{Name: "open", Ordinal: 0}, {Name: "closed", IsResolved: true, Ordinal: 1}}},
		{ID: "assignee", Name: "Assignee", Type: "user"},
		{ID: "label", Name: "Label", Type: "enum"},
	}, nil
}

func (c *Client) ListProjectUsers(ctx context.Context, projectID string) ([]domain.User, error) {
	owner, repo, ok := splitOwnerRepo(projectID, c.owner, c.repo)
	if !ok {
		return nil, trackererr.NewInvalidInput("github: project id must be \"owner/repo\"")
	}
	var wires []wireCollaborator
	path := "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo) + "/collaborators"
	if err := c.doRequest(ctx, "GET", path, nil, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(wires))
	for _, w := range wires {
		out = append(out, domain.User{Login: w.Login, DisplayName: w.Name})
	}
	return out, nil
}

func splitOwnerRepo(id, defaultOwner, defaultRepo string) (owner, repo string, ok bool) {
	if id == "" {
		return defaultOwner, defaultRepo, defaultOwner != "" && defaultRepo != ""
	}
	if idx := strings.Index(id, "/"); idx >= 0 {
		return id[:idx], id[idx+1:], true
	}
	return defaultOwner, id, defaultOwner != ""
}
