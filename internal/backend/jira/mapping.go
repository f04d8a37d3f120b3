package jira

import (
	"encoding/json"
	"time"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/richtext"
	"github.com/jra3/unitrack/internal/tracker"
)

// jiraTimeLayout matches Jira Cloud's non-colon timezone offset, e.g.
// "2023-11-14T10:20:30.000+0000".
const jiraTimeLayout = "2006-01-02T15:04:05.000-0700"

func parseJiraTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(jiraTimeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// toDomainIssue performs the lossy mapping from Jira's native shape to the
// canonical model (spec §4.C.2): status synthesises a State field keyed on
// statusCategory.key == "done", assignee/priority/issuetype synthesise
// further fields, and labels become Tags.
func toDomainIssue(w wireIssue) domain.Issue {
	f := w.Fields
	fields := []domain.CustomField{
		domain.StateField("Status", f.Status.Name, f.Status.StatusCategory.Key == "done"),
	}
	if f.Assignee != nil {
		fields = append(fields, domain.SingleUserField("Assignee", f.Assignee.AccountID, f.Assignee.DisplayName))
	}
	if f.Priority != nil {
		fields = append(fields, domain.SingleEnumField("Priority", f.Priority.Name))
	}
	if f.IssueType != nil {
		fields = append(fields, domain.SingleEnumField("Type", f.IssueType.Name))
	}

	tags := make([]domain.Tag, 0, len(f.Labels))
	for _, label := range f.Labels {
		tags = append(tags, domain.Tag{ID: label, Name: label})
	}

	description, _ := richtext.ADFToText(f.Description)

	return domain.Issue{
		ID:          w.ID,
		IDReadable:  w.Key,
		Summary:     f.Summary,
		Description: description,
		Project:     domain.ProjectRef{ID: f.Project.ID, ShortName: f.Project.Key},
		Fields:      fields,
		Tags:        tags,
		Created:     parseJiraTime(f.Created),
		Updated:     parseJiraTime(f.Updated),
	}
}

// fromCreateIssue builds the Jira create-issue request body.
func fromCreateIssue(in tracker.CreateIssue) map[string]any {
	fields := map[string]any{
		"project":     map[string]any{"id": in.ProjectID},
		"summary":     in.Summary,
		"issuetype":   map[string]any{"name": "Task"},
		"description": json.RawMessage(richtext.TextToADF(in.Description)),
	}
	applyCustomFields(fields, in.Fields)
	return map[string]any{"fields": fields}
}

// fromUpdateIssue builds the Jira update-issue request body. Jira's PUT
// returns 204 No Content; the caller must re-fetch (spec §4.C.6, §8).
func fromUpdateIssue(in tracker.UpdateIssue) map[string]any {
	fields := map[string]any{}
	if in.Summary != nil {
		fields["summary"] = *in.Summary
	}
	if in.Description != nil {
		fields["description"] = json.RawMessage(richtext.TextToADF(*in.Description))
	}
	applyCustomFields(fields, in.Fields)
	return map[string]any{"fields": fields}
}

func applyCustomFields(fields map[string]any, cfs []domain.CustomField) {
	for _, f := range cfs {
		switch f.Name {
		case "Status":
			// status transitions go through /transitions, not a field PUT; skip.
		case "Assignee":
			fields["assignee"] = map[string]any{"accountId": f.Login}
		case "Priority":
			fields["priority"] = map[string]any{"name": f.Value}
		case "Type":
			fields["issuetype"] = map[string]any{"name": f.Value}
		}
	}
}

func toDomainProject(w wireProject) domain.Project {
	return domain.Project{ID: w.ID, ShortName: w.Key, Name: w.Name, Description: w.Description}
}

// syntheticProjectCustomFields describes the fields this adapter synthesises
// on every issue (spec §4.C.2); Jira exposes no equivalent to YouTrack's
// bundle-backed custom field schema for these derived fields.
func syntheticProjectCustomFields() []domain.ProjectCustomField {
	return []domain.ProjectCustomField{
		{ID: "status", Name: "Status", Type: "state", Required: true},
		{ID: "assignee", Name: "Assignee", Type: "user"},
		{ID: "priority", Name: "Priority", Type: "enum"},
		{ID: "issuetype", Name: "Type", Type: "enum"},
	}
}

func toDomainComment(w wireComment) domain.Comment {
	text, _ := richtext.ADFToText(w.Body)
	c := domain.Comment{ID: w.ID, Text: text}
	if w.Author != nil {
		u := domain.User{Login: w.Author.AccountID, DisplayName: w.Author.DisplayName}
		c.Author = &u
	}
	if created := parseJiraTime(w.Created); !created.IsZero() {
		c.Created = &created
	}
	return c
}
