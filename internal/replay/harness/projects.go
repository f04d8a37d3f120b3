package harness

import (
	"context"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
)

func (h *Harness) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	err := decodeInto(h, "list_projects", map[string]string{}, nil, &out)
	return out, err
}

func (h *Harness) GetProject(ctx context.Context, id string) (domain.Project, error) {
	var out domain.Project
	err := decodeInto(h, "get_project", map[string]string{"id": id}, nil, &out)
	return out, err
}

func (h *Harness) CreateProject(ctx context.Context, in tracker.CreateProject) (domain.Project, error) {
	body := mustJSON(in)
	args := map[string]string{"name": in.Name, "short_name": in.ShortName}
	var out domain.Project
	err := decodeInto(h, "create_project", args, body, &out)
	return out, err
}

func (h *Harness) ResolveProjectID(ctx context.Context, identifier string) (string, error) {
	var out string
	err := decodeInto(h, "resolve_project_id", map[string]string{"identifier": identifier}, nil, &out)
	return out, err
}

func (h *Harness) GetProjectCustomFields(ctx context.Context, projectID string) ([]domain.ProjectCustomField, error) {
	var out []domain.ProjectCustomField
	err := decodeInto(h, "get_project_custom_fields", map[string]string{"project_id": projectID}, nil, &out)
	return out, err
}

func (h *Harness) ListProjectUsers(ctx context.Context, projectID string) ([]domain.User, error) {
	var out []domain.User
	err := decodeInto(h, "list_project_users", map[string]string{"project_id": projectID}, nil, &out)
	return out, err
}
