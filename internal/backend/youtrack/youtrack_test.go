package youtrack

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

	srv.Stub(http.MethodGet, "/api/issues/DEMO-1", http.StatusOK, map[string]any{
		"id":         "2-1",
		"idReadable": "DEMO-1",
		"summary":    "Fix the thing",
		"project":    map[string]any{"id": "0-1", "shortName": "DEMO"},
		"customFields": []map[string]any{
			{"$type": "StateIssueCustomField", "name": "Status", "value": map[string]any{"name": "Open", "isResolved": false}},
		},
		"created": 1700000000000,
		"updated": 1700000001000,
	})

	c := NewClient(srv.URL(), "token")
	issue, err := c.GetIssue(context.Background(), "DEMO-1")
	if err != nil {
		t.Fatalf("GetIssue() error = %v", err)
	}
	if issue.IDReadable != "DEMO-1" {
		t.Errorf("IDReadable = %q, want DEMO-1", issue.IDReadable)
	}
	status, ok := issue.Field("status")
	if !ok {
		t.Fatal("expected Status field (case-insensitive lookup)")
	}
	if status.Kind != domain.FieldState || status.Value != "Open" || status.IsResolved {
		t.Errorf("Status field = %+v, want unresolved Open state", status)
	}
}

func TestGetIssueNotFound(t *testing.T) {
	t.Parallel()
	srv := testutil.NewMockServer()
	defer srv.Close()
	srv.Stub(http.MethodGet, "/api/issues/MISSING-1", http.StatusNotFound, map[string]string{"error_description": "not found"})

	c := NewClient(srv.URL(), "token")
	_, err := c.GetIssue(context.Background(), "MISSING-1")
	if _, ok := err.(trackererr.IssueNotFound); !ok {
		t.Errorf("error = %v (%T), want trackererr.IssueNotFound", err, err)
	}
}

func TestUpdateIssueRejectsEmpty(t *testing.T) {
	t.Parallel()
	c := NewClient("http://unused", "token")
	_, err := c.UpdateIssue(context.Background(), "DEMO-1", tracker.UpdateIssue{})
	if _, ok := err.(trackererr.InvalidInput); !ok {
		t.Errorf("error = %v (%T), want trackererr.InvalidInput", err, err)
	}
}

func TestDecodeMultiEnum(t *testing.T) {
	t.Parallel()
	w := wireCustomField{
		Type:  "MultiEnumIssueCustomField",
		Name:  "Platform",
		Value: []byte(`[{"name":"iOS"},{"name":"Android"}]`),
	}
	f := toDomainField(w)
	if f.Kind != domain.FieldMultiEnum {
		t.Fatalf("Kind = %v, want FieldMultiEnum", f.Kind)
	}
	if len(f.Values) != 2 || f.Values[0] != "iOS" || f.Values[1] != "Android" {
		t.Errorf("Values = %v, want [iOS Android]", f.Values)
	}
}
