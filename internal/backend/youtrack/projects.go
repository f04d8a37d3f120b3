package youtrack

import (
	"context"
	"net/url"
	"strings"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

const projectFields = "id,name,shortName,description"

func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var wires []wireProject
	q := url.Values{"fields": {projectFields}}
	if err := c.doRequest(ctx, "GET", "/api/admin/projects", q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(wires))
	for _, w := range wires {
		out = append(out, domain.Project{ID: w.ID, Name: w.Name, ShortName: w.ShortName, Description: w.Description})
	}
	return out, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (domain.Project, error) {
	var w wireProject
	q := url.Values{"fields": {projectFields}}
	err := c.doRequest(ctx, "GET", "/api/admin/projects/"+url.PathEscape(id), q, nil, &w)
	if err != nil {
		if _, ok := err.(trackererr.NotFound); ok {
			return domain.Project{}, trackererr.ProjectNotFound{ID: id}
		}
		return domain.Project{}, err
	}
	return domain.Project{ID: w.ID, Name: w.Name, ShortName: w.ShortName, Description: w.Description}, nil
}

func (c *Client) CreateProject(ctx context.Context, in tracker.CreateProject) (domain.Project, error) {
	body := map[string]any{
		"name":        in.Name,
		"shortName":   in.ShortName,
		"description": in.Description,
	}
	var w wireProject
	q := url.Values{"fields": {projectFields}}
	if err := c.doRequest(ctx, "POST", "/api/admin/projects", q, body, &w); err != nil {
		return domain.Project{}, err
	}
	return domain.Project{ID: w.ID, Name: w.Name, ShortName: w.ShortName, Description: w.Description}, nil
}

// ResolveProjectID maps a short name (PROJ) or internal id (0-2) to the
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

func (c *Client) GetProjectCustomFields(ctx context.Context, projectID string) ([]domain.ProjectCustomField, error) {
	var wires []wireProjectCustomField
	q := url.Values{"fields": {"id,field(name,fieldType(id)),canBeEmpty,bundle(values(name,isResolved,ordinal))"}}
	if err := c.doRequest(ctx, "GET", "/api/admin/projects/"+url.PathEscape(projectID)+"/customFields", q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.ProjectCustomField, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomainProjectCustomField(w))
	}
	return out, nil
}

func (c *Client) ListProjectUsers(ctx context.Context, projectID string) ([]domain.User, error) {
	var wires []wireUser
	q := url.Values{"fields": {"login,fullName"}}
	if err := c.doRequest(ctx, "GET", "/api/admin/projects/"+url.PathEscape(projectID)+"/team/users", q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(wires))
	for _, w := range wires {
		out = append(out, domain.User{Login: w.Login, DisplayName: w.FullName})
	}
	return out, nil
}
