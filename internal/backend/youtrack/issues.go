package youtrack

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/query"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

const issueFields = "id,idReadable,summary,description,project(id,shortName)," +
	"customFields($type,name,value(name,isResolved,login,fullName)),tags(id,name),created,updated"

// GetIssue fetches one issue. YouTrack's REST API accepts either the
// readable id (PROJ-123) or the internal id (2-45) interchangeably on
// /api/issues/{id} (spec §4.C.1), so no parsing is required here.
func (c *Client) GetIssue(ctx context.Context, id string) (domain.Issue, error) {
	var w wireIssue
	q := url.Values{"fields": {issueFields}}
	err := c.doRequest(ctx, "GET", "/api/issues/"+url.PathEscape(id), q, nil, &w)
	if err != nil {
		if _, ok := err.(trackererr.NotFound); ok {
			return domain.Issue{}, trackererr.IssueNotFound{ID: id}
		}
		return domain.Issue{}, err
	}
	if w.ID == "" {
		return domain.Issue{}, trackererr.IssueNotFound{ID: id}
	}
	return toDomainIssue(w), nil
}

// SearchIssues translates the common dialect and fetches matching issues,
// capped at 100 per wire call (spec §4.B.1, §4.C.7).
func (c *Client) SearchIssues(ctx context.Context, q string, limit, skip int) ([]domain.Issue, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	translated := query.Translate(query.DialectYouTrack, q)

	params := url.Values{
		"fields": {issueFields},
		"query":  {translated},
		"$top":   {strconv.Itoa(limit)},
		"$skip":  {strconv.Itoa(skip)},
	}

	var wires []wireIssue
	if err := c.doRequest(ctx, "GET", "/api/issues", params, nil, &wires); err != nil {
		return nil, err
	}

	out := make([]domain.Issue, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomainIssue(w))
	}
	return out, nil
}

// CountIssues is not directly answerable without enumerating on YouTrack's
// REST API, so this returns nil per the Option<u64> contract (spec
// §4.B.1).
func (c *Client) CountIssues(ctx context.Context, q string) (*uint64, error) {
	return nil, nil
}

// CreateIssue creates an issue from the recognised fields of CreateIssue.
func (c *Client) CreateIssue(ctx context.Context, in tracker.CreateIssue) (domain.Issue, error) {
	body := fromCreateIssue(in)
	var w wireIssue
	q := url.Values{"fields": {issueFields}}
	if err := c.doRequest(ctx, "POST", "/api/issues", q, body, &w); err != nil {
		return domain.Issue{}, err
	}
	return toDomainIssue(w), nil
}

// UpdateIssue applies a partial update. An empty UpdateIssue is rejected
// with InvalidInput (spec §4.B.1, §4.C "Configuration objects").
func (c *Client) UpdateIssue(ctx context.Context, id string, in tracker.UpdateIssue) (domain.Issue, error) {
	if in.IsEmpty() {
		return domain.Issue{}, trackererr.NewInvalidInput("update_issue: no fields supplied")
	}
	body := fromUpdateIssue(in)
	q := url.Values{"fields": {issueFields}}
	var w wireIssue
	if err := c.doRequest(ctx, "POST", "/api/issues/"+url.PathEscape(id), q, body, &w); err != nil {
		return domain.Issue{}, err
	}
	return toDomainIssue(w), nil
}

// DeleteIssue removes an issue. YouTrack permits issue deletion, unlike
// some backends (spec §7).
func (c *Client) DeleteIssue(ctx context.Context, id string) error {
	return c.doRequest(ctx, "DELETE", "/api/issues/"+url.PathEscape(id), nil, nil, nil)
}

// AddComment posts a plain-text comment.
func (c *Client) AddComment(ctx context.Context, id, text string) (domain.Comment, error) {
	body := map[string]any{"text": text}
	var w wireComment
	q := url.Values{"fields": {"id,text,author(login,fullName),created"}}
	if err := c.doRequest(ctx, "POST", fmt.Sprintf("/api/issues/%s/comments", url.PathEscape(id)), q, body, &w); err != nil {
		return domain.Comment{}, err
	}
	return toDomainComment(w), nil
}

// GetComments returns all comments on an issue. YouTrack has no
// system-generated notes to filter out (that concern is GitLab-specific,
// spec §4.B.1).
func (c *Client) GetComments(ctx context.Context, id string) ([]domain.Comment, error) {
	var wires []wireComment
	q := url.Values{"fields": {"id,text,author(login,fullName),created"}}
	if err := c.doRequest(ctx, "GET", fmt.Sprintf("/api/issues/%s/comments", url.PathEscape(id)), q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomainComment(w))
	}
	return out, nil
}

func toDomainComment(w wireComment) domain.Comment {
	c := domain.Comment{ID: w.ID, Text: w.Text}
	if w.Author != nil {
		u := domain.User{Login: w.Author.Login, DisplayName: w.Author.FullName}
		c.Author = &u
	}
	if w.Created != 0 {
		t := millisToTime(w.Created)
		c.Created = &t
	}
	return c
}
