package gitlab

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

	srv.Stub(http.MethodGet, "/api/v4/projects/7/issues/42", http.StatusOK, map[string]any{
		"id":          1001,
		"iid":         42,
		"project_id":  7,
		"title":       "Fix the thing",
		"description": "details",
		"state":       "closed",
		"labels":      []string{"bug"},
		"created_at":  "2023-11-14T10:20:30.000Z",
		"updated_at":  "2023-11-14T10:20:30.000Z",
	})

	c := NewClient(srv.URL(), "token", "7")
	issue, err := c.GetIssue(context.Background(), "#42")
	if err != nil {
		t.Fatalf("GetIssue() error = %v", err)
	}
	if issue.IDReadable != "#42" {
		t.Errorf("IDReadable = %q, want #42", issue.IDReadable)
	}
	status, ok := issue.Field("status")
	if !ok {
		t.Fatal("expected Status field (case-insensitive lookup)")
	}
	if status.Kind != domain.FieldState || status.Value != "closed" || !status.IsResolved {
		t.Errorf("Status field = %+v, want resolved closed state", status)
	}
}

func TestGetIssueNotFound(t *testing.T) {
	t.Parallel()
	srv := testutil.NewMockServer()
	defer srv.Close()
	srv.Stub(http.MethodGet, "/api/v4/projects/7/issues/99", http.StatusNotFound, map[string]string{"message": "404 Not found"})

	c := NewClient(srv.URL(), "token", "7")
	_, err := c.GetIssue(context.Background(), "99")
	if _, ok := err.(trackererr.IssueNotFound); !ok {
		t.Errorf("error = %v (%T), want trackererr.IssueNotFound", err, err)
	}
}

func TestUpdateIssueStateEvent(t *testing.T) {
	t.Parallel()
	closed := "closed"
	in := tracker.UpdateIssue{Fields: []domain.CustomField{domain.StateField("Status", closed, true)}}
	body := fromUpdateIssue(in)
	if body["state_event"] != "close" {
		t.Errorf("state_event = %v, want close", body["state_event"])
	}
}

func TestGetCommentsFiltersSystemNotes(t *testing.T) {
	t.Parallel()
	srv := testutil.NewMockServer()
	defer srv.Close()
	srv.Stub(http.MethodGet, "/api/v4/projects/7/issues/42/notes", http.StatusOK, []map[string]any{
		{"id": 1, "body": "changed the description", "system": true, "created_at": "2023-11-14T10:20:30.000Z"},
		{"id": 2, "body": "looks good", "system": false, "created_at": "2023-11-14T10:21:30.000Z"},
	})

	c := NewClient(srv.URL(), "token", "7")
	comments, err := c.GetComments(context.Background(), "42")
	if err != nil {
		t.Fatalf("GetComments() error = %v", err)
	}
	if len(comments) != 1 || comments[0].Text != "looks good" {
		t.Errorf("comments = %+v, want only the non-system note", comments)
	}
}

func TestLinkSubtaskUnsupported(t *testing.T) {
	t.Parallel()
	c := NewClient("http://unused", "token", "7")
	err := c.LinkSubtask(context.Background(), "1", "2")
	if _, ok := err.(trackererr.InvalidInput); !ok {
		t.Errorf("error = %v (%T), want trackererr.InvalidInput", err, err)
	}
}
