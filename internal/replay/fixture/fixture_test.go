package fixture

import (
	"os"
	"path/filepath"
	"testing"
)

const scenarioTOML = `
[scenario]
name = "basic workflow"
difficulty = "easy"
target_backend = "youtrack"

[setup]
prompt = "Start working on DEMO-1"
default_project = "DEMO"

[expected_outcomes]
issue_fetched = "DEMO-1"
used_cache = false

[expected_outcomes.comment_added]
method_called = "add_comment"
issue = "DEMO-1"
contains = "start"

[scoring]
min_commands = 1
optimal_commands = 3
max_commands = 5
base_score = 100

[scoring.penalties]
extra_command = -5
redundant_fetch = -5
command_error = -10

[scoring.bonuses]
under_optimal = 2
cache_use = 5
`

const manifestTOML = `
[[responses]]
method = "get_issue"
file = "get_issue.json"
status = 200

[responses.args]
id = "DEMO-1"

[[responses]]
method = "add_comment"
sequence = ["comment_1.json", "comment_2.json"]

[responses.args]
issue_id = "*"
`

func writeScenarioDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "scenario.toml"), []byte(scenarioTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.toml"), []byte(manifestTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "responses"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "responses", "get_issue.json"), []byte(`{"id":"1-1","idReadable":"DEMO-1","summary":"x"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadScenarioOutcomeKinds(t *testing.T) {
	dir := writeScenarioDir(t)
	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if d.Scenario.Meta.Name != "basic workflow" {
		t.Errorf("Meta.Name = %q", d.Scenario.Meta.Name)
	}

	fetched, ok := d.Scenario.ExpectedOutcome["issue_fetched"]
	if !ok || fetched.String == nil || *fetched.String != "DEMO-1" {
		t.Errorf("issue_fetched = %+v, want string DEMO-1", fetched)
	}

	used, ok := d.Scenario.ExpectedOutcome["used_cache"]
	if !ok || used.Bool == nil || *used.Bool != false {
		t.Errorf("used_cache = %+v, want bool false", used)
	}

	added, ok := d.Scenario.ExpectedOutcome["comment_added"]
	if !ok || added.Struct == nil {
		t.Fatalf("comment_added = %+v, want structured outcome", added)
	}
	if added.Struct.MethodCalled != "add_comment" || added.Struct.Contains != "start" {
		t.Errorf("comment_added.Struct = %+v", added.Struct)
	}
}

func TestLoadManifestDefaultsStatus(t *testing.T) {
	dir := writeScenarioDir(t)
	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(d.Manifest.Responses) != 2 {
		t.Fatalf("len(Responses) = %d, want 2", len(d.Manifest.Responses))
	}
	if d.Manifest.Responses[1].Status != 200 {
		t.Errorf("second response Status = %d, want default 200", d.Manifest.Responses[1].Status)
	}
	if len(d.Manifest.Responses[1].Sequence) != 2 {
		t.Errorf("sequence length = %d, want 2", len(d.Manifest.Responses[1].Sequence))
	}
}

func TestResponseBody(t *testing.T) {
	dir := writeScenarioDir(t)
	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	data, err := d.ResponseBody("get_issue.json")
	if err != nil {
		t.Fatalf("ResponseBody() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty response body")
	}
}
