package jira

import (
	"context"
	"net/http"
	"testing"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/testutil"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

func TestGetIssue(t *testing.T) {
	t.Parallel()
	srv := testutil.NewMockServer()
	defer srv.Close()

	srv.Stub(http.MethodGet, "/rest/api/3/issue/PROJ-1", http.StatusOK, map[string]any{
		"id":  "10001",
		"key": "PROJ-1",
		"fields": map[string]any{
			"summary":     "Fix the thing",
			"description": map[string]any{"type": "doc", "content": []any{map[string]any{"type": "paragraph", "content": []any{map[string]any{"type": "text", "text": "details"}}}}},
			"project":     map[string]any{"id": "1", "key": "PROJ"},
			"status":      map[string]any{"name": "Done", "statusCategory": map[string]any{"key": "done"}},
			"labels":      []string{"bug"},
			"created":     "2023-11-14T10:20:30.000+0000",
			"updated":     "2023-11-14T10:20:30.000+0000",
		},
	})

	c := NewClient(srv.URL(), "user@example.com", "token")
	issue, err := c.GetIssue(context.Background(), "PROJ-1")
	if err != nil {
		t.Fatalf("GetIssue() error = %v", err)
	}
	if issue.IDReadable != "PROJ-1" {
		t.Errorf("IDReadable = %q, want PROJ-1", issue.IDReadable)
	}
	if issue.Description != "details" {
		t.Errorf("Description = %q, want %q", issue.Description, "details")
	}
	status, ok := issue.Field("status")
	if !ok {
		t.Fatal("expected Status field (case-insensitive lookup)")
	}
	if status.Kind != domain.FieldState || status.Value != "Done" || !status.IsResolved {
		t.Errorf("Status field = %+v, want resolved Done state", status)
	}
	if len(issue.Tags) != 1 || issue.Tags[0].Name != "bug" {
		t.Errorf("Tags = %v, want [bug]", issue.Tags)
	}
}

func TestGetIssueNotFound(t *testing.T) {
	t.Parallel()
	srv := testutil.NewMockServer()
	defer srv.Close()
	srv.Stub(http.MethodGet, "/rest/api/3/issue/MISSING-1", http.StatusNotFound, map[string]any{
		"errorMessages": []string{"Issue does not exist"},
	})

	c := NewClient(srv.URL(), "user@example.com", "token")
	_, err := c.GetIssue(context.Background(), "MISSING-1")
	if _, ok := err.(trackererr.IssueNotFound); !ok {
		t.Errorf("error = %v (%T), want trackererr.IssueNotFound", err, err)
	}
}

func TestUpdateIssueRejectsEmpty(t *testing.T) {
	t.Parallel()
	c := NewClient("http://unused", "user@example.com", "token")
	_, err := c.UpdateIssue(context.Background(), "PROJ-1", tracker.UpdateIssue{})
	if _, ok := err.(trackererr.InvalidInput); !ok {
		t.Errorf("error = %v (%T), want trackererr.InvalidInput", err, err)
	}
}

func TestCreateTagRejected(t *testing.T) {
	t.Parallel()
	c := NewClient("http://unused", "user@example.com", "token")
	_, err := c.CreateTag(context.Background(), tracker.CreateTag{Name: "bug"})
	if _, ok := err.(trackererr.InvalidInput); !ok {
		t.Errorf("error = %v (%T), want trackererr.InvalidInput", err, err)
	}
}

func TestExtractMessageFlattensErrors(t *testing.T) {
	t.Parallel()
	body := []byte(`{"errorMessages":["bad request"],"errors":{"summary":"is required"}}`)
	msg := extractMessage(body)
	want := "bad request; summary: is required"
	if msg != want {
		t.Errorf("extractMessage() = %q, want %q", msg, want)
	}
}
