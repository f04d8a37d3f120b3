package jira

import (
	"context"
	"net/url"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

// ListTags enumerates Jira's global label namespace (spec §4.B.1). Labels
// have no id distinct from their name.
func (c *Client) ListTags(ctx context.Context) ([]domain.Tag, error) {
	var result wireLabelsResult
	q := url.Values{"maxResults": {"1000"}}
	if err := c.jiraRequest(ctx, "GET", "/label", q, nil, &result); err != nil {
		return nil, err
	}
	out := make([]domain.Tag, 0, len(result.Values))
	for _, name := range result.Values {
		out = append(out, domain.Tag{ID: name, Name: name})
	}
	return out, nil
}

// CreateTag, UpdateTag, and DeleteTag are not supported: Jira labels are a
// free-text field on each issue with no standalone create/rename/delete API
// (spec §4.B.1 "tag mutation is optional capability").
func (c *Client) CreateTag(ctx context.Context, in tracker.CreateTag) (domain.Tag, error) {
	return domain.Tag{}, trackererr.NewInvalidInput("jira: labels cannot be created independently of an issue")
}

func (c *Client) UpdateTag(ctx context.Context, currentName string, in tracker.CreateTag) (domain.Tag, error) {
	return domain.Tag{}, trackererr.NewInvalidInput("jira: labels cannot be renamed; update each issue's labels instead")
}

func (c *Client) DeleteTag(ctx context.Context, name string) error {
	return trackererr.NewInvalidInput("jira: labels cannot be deleted independently of the issues carrying them")
}

func (c *Client) ListLinkTypes(ctx context.Context) ([]domain.IssueLinkType, error) {
	var result wireIssueLinkTypesResult
	if err := c.jiraRequest(ctx, "GET", "/issueLinkType", nil, nil, &result); err != nil {
		return nil, err
	}
	out := make([]domain.IssueLinkType, 0, len(result.IssueLinkTypes))
	for _, w := range result.IssueLinkTypes {
		out = append(out, toDomainLinkType(w))
	}
	return out, nil
}

func toDomainLinkType(w wireIssueLinkType) domain.IssueLinkType {
	return domain.IssueLinkType{
		ID: w.ID, Name: w.Name,
		SourceToTarget: w.Outward, TargetToSource: w.Inward,
		Directed: true,
	}
}

// GetIssueLinks fetches the issuelinks field of an issue.
func (c *Client) GetIssueLinks(ctx context.Context, id string) ([]domain.IssueLink, error) {
	var w struct {
		Fields struct {
			IssueLinks []wireIssueLink `json:"issuelinks"`
		} `json:"fields"`
	}
	q := url.Values{"fields": {"issuelinks"}}
	if err := c.jiraRequest(ctx, "GET", "/issue/"+url.PathEscape(id), q, nil, &w); err != nil {
		return nil, err
	}

	out := make([]domain.IssueLink, 0, len(w.Fields.IssueLinks))
	for _, link := range w.Fields.IssueLinks {
		linkType := toDomainLinkType(link.Type)
		il := domain.IssueLink{LinkType: linkType}
		switch {
		case link.OutwardIssue != nil:
			il.Direction = domain.DirectionOutward
			il.Issues = []domain.IssueRef{{IDReadable: link.OutwardIssue.Key}}
		case link.InwardIssue != nil:
			il.Direction = domain.DirectionInward
			il.Issues = []domain.IssueRef{{IDReadable: link.InwardIssue.Key}}
		}
		out = append(out, il)
	}
	return out, nil
}

// LinkIssues creates a native Jira issue link (spec §4.C.4). direction
// determines which side is the "inward"/"outward" issue of the link type.
func (c *Client) LinkIssues(ctx context.Context, source, target, linkType string, direction domain.LinkDirection) error {
	body := map[string]any{"type": map[string]any{"name": linkType}}
	if direction == domain.DirectionInward {
		body["inwardIssue"] = map[string]any{"key": target}
		body["outwardIssue"] = map[string]any{"key": source}
	} else {
		body["inwardIssue"] = map[string]any{"key": source}
		body["outwardIssue"] = map[string]any{"key": target}
	}
	return c.jiraRequest(ctx, "POST", "/issueLink", nil, body, nil)
}

// LinkSubtask is unsupported: Jira requires subtask parentage to be set at
// creation time, not retrofitted onto an existing issue (spec §4.C.4).
func (c *Client) LinkSubtask(ctx context.Context, child, parent string) error {
	return trackererr.NewInvalidInput("jira: subtask parentage cannot be set on an existing issue")
}
