package github

import (
	"strconv"
	"time"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
)

func parseGitHubTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// toDomainIssue performs the lossy mapping from GitHub's native shape to
// the canonical model (spec §4.C.2): state=="closed" drives is_resolved,
// assignee synthesises a SingleUser field, and the first label or
// milestone (whichever is present) synthesises the closest SingleEnum
// analogue. Callers MUST check IsPullRequest first (spec §4.B.1, §8).
func toDomainIssue(owner, repo string, w wireIssue) domain.Issue {
	fields := []domain.CustomField{
		domain.StateField("Status", w.State, w.State == "closed"),
	}
	if w.Assignee != nil {
		fields = append(fields, domain.SingleUserField("Assignee", w.Assignee.Login, w.Assignee.Name))
	}
	switch {
	case len(w.Labels) > 0:
		fields = append(fields, domain.SingleEnumField("Label", w.Labels[0].Name))
	case w.Milestone != nil:
		fields = append(fields, domain.SingleEnumField("Milestone", w.Milestone.Title))
	}

	tags := make([]domain.Tag, 0, len(w.Labels))
	for _, l := range w.Labels {
		tags = append(tags, domain.Tag{ID: l.Name, Name: l.Name})
	}

	return domain.Issue{
		ID:          strconv.FormatInt(w.ID, 10),
		IDReadable:  owner + "/" + repo + "#" + strconv.FormatInt(w.Number, 10),
		Summary:     w.Title,
		Description: w.Body,
		Project:     domain.ProjectRef{ID: owner + "/" + repo, ShortName: owner + "/" + repo},
		Fields:      fields,
		Tags:        tags,
		Created:     parseGitHubTime(w.CreatedAt),
		Updated:     parseGitHubTime(w.UpdatedAt),
	}
}

// fromCreateIssue builds the GitHub create-issue request body.
func fromCreateIssue(in tracker.CreateIssue) map[string]any {
	body := map[string]any{
		"title": in.Summary,
		"body":  in.Description,
	}
	if len(in.Tags) > 0 {
		body["labels"] = in.Tags
	}
	return body
}

// fromUpdateIssue builds the GitHub update-issue request body. GitHub
// writes the "state" field directly rather than a transition event (spec
// §4.C.2).
func fromUpdateIssue(in tracker.UpdateIssue) map[string]any {
	body := map[string]any{}
	if in.Summary != nil {
		body["title"] = *in.Summary
	}
	if in.Description != nil {
		body["body"] = *in.Description
	}
	for _, f := range in.Fields {
		if f.Name == "Status" {
			body["state"] = f.Value
		}
	}
	return body
}

func toDomainProject(w wireRepo) domain.Project {
	return domain.Project{ID: w.FullName, Name: w.Name, ShortName: w.FullName, Description: w.Description}
}

func toDomainComment(w wireComment) domain.Comment {
	c := domain.Comment{ID: strconv.FormatInt(w.ID, 10), Text: w.Body}
	if w.User != nil {
		u := domain.User{Login: w.User.Login, DisplayName: w.User.Name}
		c.Author = &u
	}
	if created := parseGitHubTime(w.CreatedAt); !created.IsZero() {
		c.Created = &created
	}
	return c
}
