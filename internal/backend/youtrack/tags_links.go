package youtrack

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

func (c *Client) ListTags(ctx context.Context) ([]domain.Tag, error) {
	var wires []wireTag
	q := url.Values{"fields": {"id,name"}}
	if err := c.doRequest(ctx, "GET", "/api/issueTags", q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Tag, 0, len(wires))
	for _, w := range wires {
		out = append(out, domain.Tag{ID: w.ID, Name: w.Name})
	}
	return out, nil
}

func (c *Client) CreateTag(ctx context.Context, in tracker.CreateTag) (domain.Tag, error) {
	body := map[string]any{"name": in.Name}
	var w wireTag
	q := url.Values{"fields": {"id,name"}}
	if err := c.doRequest(ctx, "POST", "/api/issueTags", q, body, &w); err != nil {
		return domain.Tag{}, err
	}
	return domain.Tag{ID: w.ID, Name: w.Name}, nil
}

func (c *Client) UpdateTag(ctx context.Context, currentName string, in tracker.CreateTag) (domain.Tag, error) {
	id, err := c.resolveTagID(ctx, currentName)
	if err != nil {
		return domain.Tag{}, err
	}
	body := map[string]any{"name": in.Name}
	var w wireTag
	q := url.Values{"fields": {"id,name"}}
	if err := c.doRequest(ctx, "POST", "/api/issueTags/"+url.PathEscape(id), q, body, &w); err != nil {
		return domain.Tag{}, err
	}
	return domain.Tag{ID: w.ID, Name: w.Name}, nil
}

func (c *Client) DeleteTag(ctx context.Context, name string) error {
	id, err := c.resolveTagID(ctx, name)
	if err != nil {
		return err
	}
	return c.doRequest(ctx, "DELETE", "/api/issueTags/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) resolveTagID(ctx context.Context, name string) (string, error) {
	tags, err := c.ListTags(ctx)
	if err != nil {
		return "", err
	}
	for _, t := range tags {
		if t.Name == name {
			return t.ID, nil
		}
	}
	return "", trackererr.NotFound{What: "tag " + name}
}

func (c *Client) ListLinkTypes(ctx context.Context) ([]domain.IssueLinkType, error) {
	var wires []wireLinkType
	q := url.Values{"fields": {"id,name,sourceToTarget,targetToSource,directed"}}
	if err := c.doRequest(ctx, "GET", "/api/issueLinkTypes", q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.IssueLinkType, 0, len(wires))
	for _, w := range wires {
		out = append(out, domain.IssueLinkType{
			ID: w.ID, Name: w.Name,
			SourceToTarget: w.SourceToTarget, TargetToSource: w.TargetToSource,
			Directed: w.Directed,
		})
	}
	return out, nil
}

func (c *Client) GetIssueLinks(ctx context.Context, id string) ([]domain.IssueLink, error) {
	var wires []struct {
		ID            string     `json:"id"`
		Direction     string     `json:"direction"`
		LinkType      wireLinkType `json:"linkType"`
		IssuesDetails []wireIssue `json:"issues"`
	}
	q := url.Values{"fields": {"id,direction,linkType(id,name,sourceToTarget,targetToSource,directed),issues(id,idReadable,summary)"}}
	if err := c.doRequest(ctx, "GET", fmt.Sprintf("/api/issues/%s/links", url.PathEscape(id)), q, nil, &wires); err != nil {
		return nil, err
	}

	out := make([]domain.IssueLink, 0, len(wires))
	for _, w := range wires {
		refs := make([]domain.IssueRef, 0, len(w.IssuesDetails))
		for _, iss := range w.IssuesDetails {
			refs = append(refs, domain.IssueRef{ID: iss.ID, IDReadable: iss.IDReadable, Summary: iss.Summary})
		}
		out = append(out, domain.IssueLink{
			ID:        w.ID,
			Direction: domain.LinkDirection(w.Direction),
			LinkType: domain.IssueLinkType{
				ID: w.LinkType.ID, Name: w.LinkType.Name,
				SourceToTarget: w.LinkType.SourceToTarget, TargetToSource: w.LinkType.TargetToSource,
				Directed: w.LinkType.Directed,
			},
			Issues: refs,
		})
	}
	return out, nil
}

// LinkIssues creates a link between two issues of the given type and
// direction (spec §4.C.4).
func (c *Client) LinkIssues(ctx context.Context, source, target, linkType string, direction domain.LinkDirection) error {
	linkTypeID, err := c.resolveLinkTypeID(ctx, linkType)
	if err != nil {
		return err
	}
	body := map[string]any{"id": target}
	path := fmt.Sprintf("/api/issues/%s/links/%s/issues", url.PathEscape(source), url.PathEscape(linkTypeID))
	return c.doRequest(ctx, "POST", path, nil, body, nil)
}

// LinkSubtask finds the inward "Subtask" link on the child and adds the
// parent (spec §4.C.4).
func (c *Client) LinkSubtask(ctx context.Context, child, parent string) error {
	linkTypeID, err := c.resolveLinkTypeID(ctx, "Subtask")
	if err != nil {
		return err
	}
	body := map[string]any{"id": parent}
	path := fmt.Sprintf("/api/issues/%s/links/%s/issues", url.PathEscape(child), url.PathEscape(linkTypeID))
	return c.doRequest(ctx, "POST", path, nil, body, nil)
}

func (c *Client) resolveLinkTypeID(ctx context.Context, name string) (string, error) {
	types, err := c.ListLinkTypes(ctx)
	if err != nil {
		return "", err
	}
	for _, t := range types {
		if t.Name == name {
			return t.ID, nil
		}
	}
	return "", trackererr.NotFound{What: "link type " + name}
}
