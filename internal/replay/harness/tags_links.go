package harness

import (
	"context"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
)

func (h *Harness) ListTags(ctx context.Context) ([]domain.Tag, error) {
	var out []domain.Tag
	err := decodeInto(h, "list_tags", map[string]string{}, nil, &out)
	return out, err
}

func (h *Harness) CreateTag(ctx context.Context, in tracker.CreateTag) (domain.Tag, error) {
	body := mustJSON(in)
	var out domain.Tag
	err := decodeInto(h, "create_tag", map[string]string{"name": in.Name}, body, &out)
	return out, err
}

func (h *Harness) UpdateTag(ctx context.Context, currentName string, in tracker.CreateTag) (domain.Tag, error) {
	body := mustJSON(in)
	args := map[string]string{"current_name": currentName, "name": in.Name}
	var out domain.Tag
	err := decodeInto(h, "update_tag", args, body, &out)
	return out, err
}

func (h *Harness) DeleteTag(ctx context.Context, name string) error {
	return decodeInto[struct{}](h, "delete_tag", map[string]string{"name": name}, nil, nil)
}

func (h *Harness) ListLinkTypes(ctx context.Context) ([]domain.IssueLinkType, error) {
	var out []domain.IssueLinkType
	err := decodeInto(h, "list_link_types", map[string]string{}, nil, &out)
	return out, err
}

func (h *Harness) GetIssueLinks(ctx context.Context, id string) ([]domain.IssueLink, error) {
	var out []domain.IssueLink
	err := decodeInto(h, "get_issue_links", map[string]string{"id": id}, nil, &out)
	return out, err
}

func (h *Harness) LinkIssues(ctx context.Context, source, target, linkType string, direction domain.LinkDirection) error {
	args := map[string]string{
		"source": source, "target": target, "type": linkType, "direction": string(direction),
	}
	return decodeInto[struct{}](h, "link_issues", args, nil, nil)
}

func (h *Harness) LinkSubtask(ctx context.Context, child, parent string) error {
	args := map[string]string{"child": child, "parent": parent}
	return decodeInto[struct{}](h, "link_subtask", args, nil, nil)
}
