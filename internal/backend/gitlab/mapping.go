package gitlab

import (
	"strconv"
	"strings"
	"time"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
)

func parseGitLabTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

// toDomainIssue performs the lossy mapping from GitLab's native shape to
// the canonical model (spec §4.C.2): state=="closed" drives is_resolved,
// assignee synthesises a SingleUser field, and the first label or
// milestone (whichever is present) synthesises the closest SingleEnum
// analogue.
func toDomainIssue(w wireIssue) domain.Issue {
	fields := []domain.CustomField{
		domain.StateField("Status", w.State, w.State == "closed"),
	}
	if w.Assignee != nil {
		fields = append(fields, domain.SingleUserField("Assignee", w.Assignee.Username, w.Assignee.Name))
	}
	switch {
	case len(w.Labels) > 0:
		fields = append(fields, domain.SingleEnumField("Label", w.Labels[0]))
	case w.Milestone != nil:
		fields = append(fields, domain.SingleEnumField("Milestone", w.Milestone.Title))
	}

	tags := make([]domain.Tag, 0, len(w.Labels))
	for _, label := range w.Labels {
		tags = append(tags, domain.Tag{ID: label, Name: label})
	}

	return domain.Issue{
		ID:          strconv.FormatInt(w.ID, 10),
		IDReadable:  "#" + strconv.FormatInt(w.IID, 10),
		Summary:     w.Title,
		Description: w.Description,
		Project:     domain.ProjectRef{ID: strconv.FormatInt(w.ProjectID, 10)},
		Fields:      fields,
		Tags:        tags,
		Created:     parseGitLabTime(w.CreatedAt),
		Updated:     parseGitLabTime(w.UpdatedAt),
	}
}

// fromCreateIssue builds the GitLab create-issue request body.
func fromCreateIssue(in tracker.CreateIssue) map[string]any {
	body := map[string]any{
		"title":       in.Summary,
		"description": in.Description,
	}
	if len(in.Tags) > 0 {
		body["labels"] = strings.Join(in.Tags, ",")
	}
	return body
}

// fromUpdateIssue builds the GitLab update-issue request body. GitLab uses
// PUT (not PATCH) and a state_event of "close"/"reopen" to transition
// status rather than writing the state field directly (spec §4.C.6, §6.1).
func fromUpdateIssue(in tracker.UpdateIssue) map[string]any {
	body := map[string]any{}
	if in.Summary != nil {
		body["title"] = *in.Summary
	}
	if in.Description != nil {
		body["description"] = *in.Description
	}
	for _, f := range in.Fields {
		if f.Name == "Status" {
			switch strings.ToLower(f.Value) {
			case "closed":
				body["state_event"] = "close"
			case "opened", "open", "reopened":
				body["state_event"] = "reopen"
			}
		}
	}
	return body
}

func toDomainProject(w wireProject) domain.Project {
	return domain.Project{
		ID:          strconv.FormatInt(w.ID, 10),
		Name:        w.Name,
		ShortName:   w.PathWithNamespace,
		Description: w.Description,
	}
}

func toDomainComment(w wireNote) domain.Comment {
	c := domain.Comment{ID: strconv.FormatInt(w.ID, 10), Text: w.Body}
	if w.Author != nil {
		u := domain.User{Login: w.Author.Username, DisplayName: w.Author.Name}
		c.Author = &u
	}
	if created := parseGitLabTime(w.CreatedAt); !created.IsZero() {
		c.Created = &created
	}
	return c
}
