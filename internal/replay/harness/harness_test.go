package harness

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jra3/unitrack/internal/replay/fixture"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestDir(t *testing.T) *fixture.Directory {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "scenario.toml"), `
[scenario]
name = "harness test"

[setup]
prompt = "test"

[expected_outcomes]
ok = true
`)

	writeFile(t, filepath.Join(dir, "manifest.toml"), `
[[responses]]
method = "get_issue"
file = "issue.json"

[responses.args]
id = "DEMO-1"

[[responses]]
method = "search_issues"
sequence = ["search_1.json", "search_2.json"]

[responses.args]
query = "*"

[[responses]]
method = "get_issue"
status = 404

[responses.args]
id = "MISSING-1"

[responses.when]
body_contains = ""

[[responses]]
method = "create_issue"
file = "created_no_id.json"

[responses.args]
project_id = "*"
`)

	writeFile(t, filepath.Join(dir, "responses", "issue.json"),
		`{"id":"1-1","idReadable":"DEMO-1","summary":"hello"}`)
	writeFile(t, filepath.Join(dir, "responses", "search_1.json"), `[{"id":"1-1","idReadable":"DEMO-1"}]`)
	writeFile(t, filepath.Join(dir, "responses", "search_2.json"), `[{"id":"1-2","idReadable":"DEMO-2"}]`)
	writeFile(t, filepath.Join(dir, "responses", "created_no_id.json"), `{"summary":"new issue"}`)

	d, err := fixture.Load(dir)
	if err != nil {
		t.Fatalf("fixture.Load() error = %v", err)
	}
	return d
}

func TestHarnessResolvesMappingAndLogs(t *testing.T) {
	dir := newTestDir(t)
	h, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer h.Close()

	issue, err := h.GetIssue(context.Background(), "DEMO-1")
	if err != nil {
		t.Fatalf("GetIssue() error = %v", err)
	}
	if issue.IDReadable != "DEMO-1" {
		t.Errorf("IDReadable = %q, want DEMO-1", issue.IDReadable)
	}

	log, err := ReadCallLog(dir.CallLogPath())
	if err != nil {
		t.Fatalf("ReadCallLog() error = %v", err)
	}
	if len(log) != 1 || log[0].Method != "get_issue" {
		t.Fatalf("log = %+v, want one get_issue entry", log)
	}
}

func TestHarnessSequenceResolutionIsSticky(t *testing.T) {
	dir := newTestDir(t)
	h, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer h.Close()

	first, err := h.SearchIssues(context.Background(), "anything", 10, 0)
	if err != nil {
		t.Fatalf("SearchIssues() #1 error = %v", err)
	}
	if len(first) != 1 || first[0].IDReadable != "DEMO-1" {
		t.Fatalf("first result = %+v, want DEMO-1", first)
	}

	second, err := h.SearchIssues(context.Background(), "anything", 10, 0)
	if err != nil {
		t.Fatalf("SearchIssues() #2 error = %v", err)
	}
	if len(second) != 1 || second[0].IDReadable != "DEMO-2" {
		t.Fatalf("second result = %+v, want DEMO-2", second)
	}

	third, err := h.SearchIssues(context.Background(), "anything", 10, 0)
	if err != nil {
		t.Fatalf("SearchIssues() #3 error = %v", err)
	}
	if len(third) != 1 || third[0].IDReadable != "DEMO-2" {
		t.Fatalf("third result = %+v, want sticky DEMO-2", third)
	}
}

func TestHarnessStatusAboveThresholdBecomesAPIError(t *testing.T) {
	dir := newTestDir(t)
	h, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer h.Close()

	_, err = h.GetIssue(context.Background(), "MISSING-1")
	if err == nil {
		t.Fatal("expected error for MISSING-1")
	}
	var apiErr trackererr.API
	if !asAPI(err, &apiErr) {
		t.Fatalf("error = %v, want trackererr.API", err)
	}
	if apiErr.Status != 404 {
		t.Errorf("Status = %d, want 404", apiErr.Status)
	}
}

func asAPI(err error, out *trackererr.API) bool {
	if e, ok := err.(trackererr.API); ok {
		*out = e
		return true
	}
	return false
}

func TestHarnessMintsIDWhenFixtureOmitsOne(t *testing.T) {
	dir := newTestDir(t)
	h, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer h.Close()

	issue, err := h.CreateIssue(context.Background(), tracker.CreateIssue{ProjectID: "DEMO", Summary: "new issue"})
	if err != nil {
		t.Fatalf("CreateIssue() error = %v", err)
	}
	if issue.ID == "" {
		t.Error("expected a minted ID, got empty string")
	}
	if issue.IDReadable != issue.ID {
		t.Errorf("IDReadable = %q, want it to fall back to ID %q", issue.IDReadable, issue.ID)
	}
}

func TestHarnessNoMatchingMappingIsNotFoundStyleAPIError(t *testing.T) {
	dir := newTestDir(t)
	h, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer h.Close()

	_, err = h.GetIssue(context.Background(), "NOPE-1")
	if err == nil {
		t.Fatal("expected error for unmapped id")
	}
	var apiErr trackererr.API
	if !asAPI(err, &apiErr) || apiErr.Status != 404 {
		t.Fatalf("error = %v, want trackererr.API{Status:404,...}", err)
	}
}

func TestNewTruncatesExistingCallLog(t *testing.T) {
	dir := newTestDir(t)
	writeFile(t, dir.CallLogPath(), `{"method":"stale_entry_from_prior_run"}`+"\n")

	h, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer h.Close()

	log, err := ReadCallLog(dir.CallLogPath())
	if err != nil {
		t.Fatalf("ReadCallLog() error = %v", err)
	}
	if len(log) != 0 {
		t.Fatalf("log = %+v, want empty immediately after New()", log)
	}
}
