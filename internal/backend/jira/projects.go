package jira

import (
	"context"
	"net/url"
	"strings"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var result struct {
		Values []wireProject `json:"values"`
	}
	if err := c.jiraRequest(ctx, "GET", "/project/search", nil, nil, &result); err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(result.Values))
	for _, w := range result.Values {
		out = append(out, toDomainProject(w))
	}
	return out, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (domain.Project, error) {
	var w wireProject
	err := c.jiraRequest(ctx, "GET", "/project/"+url.PathEscape(id), nil, nil, &w)
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
		"key":            in.ShortName,
		"name":           in.Name,
		"description":    in.Description,
		"projectTypeKey": "software",
	}
	var w wireProject
	if err := c.jiraRequest(ctx, "POST", "/project", nil, body, &w); err != nil {
		return domain.Project{}, err
	}
	return c.GetProject(ctx, w.Key)
}

// ResolveProjectID maps a project key (PROJ) or numeric id to the
// canonical internal id the backend expects on writes (spec §4.B.1),
// memoized per client instance for five minutes (see projectIDs in client.go).
func (c *Client) ResolveProjectID(ctx context.Context, identifier string) (string, error) {
	if id, ok := c.projectIDs.Get(identifier); ok {
		return id, nil
	}

	projects, err := c.ListProjects(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range projects {
		if p.ID == identifier || strings.EqualFold(p.ShortName, identifier) {
			c.projectIDs.Set(identifier, p.ID)
			return p.ID, nil
		}
	}
	return "", trackererr.ProjectNotFound{ID: identifier}
}

// GetProjectCustomFields returns the fixed set of fields this adapter
// synthesises on every issue (spec §4.C.2). Jira's real custom-field schema
// (createmeta) is project- and screen-specific and out of scope here.
func (c *Client) GetProjectCustomFields(ctx context.Context, projectID string) ([]domain.ProjectCustomField, error) {
	return syntheticProjectCustomFields(), nil
}

func (c *Client) ListProjectUsers(ctx context.Context, projectID string) ([]domain.User, error) {
	var wires []wireUser
	q := url.Values{"projectKeys": {projectID}}
	if err := c.jiraRequest(ctx, "GET", "/user/assignable/search", q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(wires))
	for _, w := range wires {
		out = append(out, domain.User{Login: w.AccountID, DisplayName: w.DisplayName})
	}
	return out, nil
}
