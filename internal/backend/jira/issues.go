package jira

import (
	"net/url"
	"strconv"

	"context"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/query"
	"github.com/jra3/unitrack/internal/richtext"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

const issueFieldsParam = "summary,description,project,status,labels,assignee,priority,issuetype,created,updated"

// GetIssue fetches one issue by key or numeric id (spec §4.C.1: Jira
// accepts either on /rest/api/3/issue/{idOrKey}).
func (c *Client) GetIssue(ctx context.Context, id string) (domain.Issue, error) {
	var w wireIssue
	q := url.Values{"fields": {issueFieldsParam}}
	err := c.jiraRequest(ctx, "GET", "/issue/"+url.PathEscape(id), q, nil, &w)
	if err != nil {
		if _, ok := err.(trackererr.NotFound); ok {
			return domain.Issue{}, trackererr.IssueNotFound{ID: id}
		}
		return domain.Issue{}, err
	}
	return toDomainIssue(w), nil
}

// SearchIssues translates the common dialect to JQL and queries the
// GET-based /rest/api/3/search/jql endpoint (spec §6.1: GET, not the
// deprecated POST /search).
func (c *Client) SearchIssues(ctx context.Context, q string, limit, skip int) ([]domain.Issue, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	jql := query.Translate(query.DialectJira, q)

	params := url.Values{
		"jql":        {jql},
		"fields":     {issueFieldsParam},
		"startAt":    {strconv.Itoa(skip)},
		"maxResults": {strconv.Itoa(limit)},
	}

	var result wireSearchResult
	if err := c.jiraRequest(ctx, "GET", "/search/jql", params, nil, &result); err != nil {
		return nil, err
	}

	out := make([]domain.Issue, 0, len(result.Issues))
	for _, w := range result.Issues {
		out = append(out, toDomainIssue(w))
	}
	return out, nil
}

// CountIssues is answerable on Jira via the search endpoint's total field,
// unlike YouTrack (spec §4.B.1 Option<u64>).
func (c *Client) CountIssues(ctx context.Context, q string) (*uint64, error) {
	jql := query.Translate(query.DialectJira, q)
	params := url.Values{"jql": {jql}, "maxResults": {"0"}}

	var result wireSearchResult
	if err := c.jiraRequest(ctx, "GET", "/search/jql", params, nil, &result); err != nil {
		return nil, err
	}
	n := uint64(result.Total)
	return &n, nil
}

// CreateIssue creates an issue from the recognised fields of CreateIssue.
func (c *Client) CreateIssue(ctx context.Context, in tracker.CreateIssue) (domain.Issue, error) {
	body := fromCreateIssue(in)
	var created wireIssue
	if err := c.jiraRequest(ctx, "POST", "/issue", nil, body, &created); err != nil {
		return domain.Issue{}, err
	}
	return c.GetIssue(ctx, created.Key)
}

// UpdateIssue applies a partial update. Jira's PUT returns 204 No Content,
// so the adapter re-fetches afterward to return the updated Issue (spec
// §4.C.6, §8).
func (c *Client) UpdateIssue(ctx context.Context, id string, in tracker.UpdateIssue) (domain.Issue, error) {
	if in.IsEmpty() {
		return domain.Issue{}, trackererr.NewInvalidInput("update_issue: no fields supplied")
	}
	body := fromUpdateIssue(in)
	if err := c.jiraRequest(ctx, "PUT", "/issue/"+url.PathEscape(id), nil, body, nil); err != nil {
		return domain.Issue{}, err
	}
	return c.GetIssue(ctx, id)
}

// DeleteIssue removes an issue.
func (c *Client) DeleteIssue(ctx context.Context, id string) error {
	return c.jiraRequest(ctx, "DELETE", "/issue/"+url.PathEscape(id), nil, nil, nil)
}

// AddComment posts a plain-text comment, wrapped as ADF (spec §4.C.5).
func (c *Client) AddComment(ctx context.Context, id, text string) (domain.Comment, error) {
	body := map[string]any{"body": richtext.TextToADF(text)}
	var w wireComment
	if err := c.jiraRequest(ctx, "POST", "/issue/"+url.PathEscape(id)+"/comment", nil, body, &w); err != nil {
		return domain.Comment{}, err
	}
	return toDomainComment(w), nil
}

// GetComments returns all comments on an issue. Jira has no
// system-generated notes to filter (that concern is GitLab-specific,
// spec §4.B.1).
func (c *Client) GetComments(ctx context.Context, id string) ([]domain.Comment, error) {
	var result wireCommentsResult
	if err := c.jiraRequest(ctx, "GET", "/issue/"+url.PathEscape(id)+"/comment", nil, nil, &result); err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(result.Comments))
	for _, w := range result.Comments {
		out = append(out, toDomainComment(w))
	}
	return out, nil
}
