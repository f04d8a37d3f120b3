package score

import (
	"testing"

	"github.com/jra3/unitrack/internal/replay/fixture"
	"github.com/jra3/unitrack/internal/replay/harness"
)

func boolOutcome(v bool) fixture.Outcome { return fixture.Outcome{Bool: &v} }
func stringOutcome(v string) fixture.Outcome { return fixture.Outcome{String: &v} }
func structOutcome(s fixture.StructuredOutcome) fixture.Outcome { return fixture.Outcome{Struct: &s} }

func basicScenario() *fixture.Scenario {
	return &fixture.Scenario{
		Meta: fixture.Meta{Name: "basic workflow"},
		ExpectedOutcome: map[string]fixture.Outcome{
			"issue_fetched": stringOutcome("DEMO-1"),
			"comment_added": structOutcome(fixture.StructuredOutcome{
				MethodCalled: "add_comment", Issue: "DEMO-1", Contains: "start",
			}),
			"state_changed": structOutcome(fixture.StructuredOutcome{MethodCalled: "update_issue"}),
		},
		Scoring: fixture.Scoring{
			MinCommands: 1, OptimalCommands: 3, MaxCommands: 5, BaseScore: 100,
			Penalties: fixture.Penalties{RedundantFetch: -5},
		},
	}
}

// TestScenario1BasicWorkflowPassing reproduces spec §8 Scenario 1 verbatim.
func TestScenario1BasicWorkflowPassing(t *testing.T) {
	log := []harness.CallLogEntry{
		{Method: "get_issue", Args: map[string]string{"id": "DEMO-1"}},
		{Method: "add_comment", Args: map[string]string{"issue_id": "DEMO-1", "text": "Starting work"}},
		{Method: "update_issue", Args: map[string]string{"id": "DEMO-1"}},
	}
	result := Score(basicScenario(), log)

	if !result.Success {
		t.Errorf("Success = false, want true")
	}
	if result.Score != 100 {
		t.Errorf("Score = %v, want 100", result.Score)
	}
	if result.Efficiency != Optimal {
		t.Errorf("Efficiency = %s, want Optimal", result.Efficiency)
	}
}

// TestScenario2RedundantFetchPenalty reproduces spec §8 Scenario 2.
func TestScenario2RedundantFetchPenalty(t *testing.T) {
	log := []harness.CallLogEntry{
		{Method: "get_issue", Args: map[string]string{"id": "DEMO-1"}},
		{Method: "get_issue", Args: map[string]string{"id": "DEMO-1"}},
		{Method: "add_comment", Args: map[string]string{"issue_id": "DEMO-1", "text": "x"}},
		{Method: "update_issue", Args: map[string]string{"id": "DEMO-1"}},
	}
	result := Score(basicScenario(), log)

	if !result.Success {
		t.Errorf("Success = false, want true")
	}
	if result.RedundantFetch != 1 {
		t.Fatalf("RedundantFetch = %d, want 1", result.RedundantFetch)
	}
	if want := 100 + 1*-5.0; result.Score != want {
		t.Errorf("Score = %v, want %v", result.Score, want)
	}
	if result.Efficiency != Acceptable {
		t.Errorf("Efficiency = %s, want Acceptable", result.Efficiency)
	}
}

// TestScenario3MissingOutcome reproduces spec §8 Scenario 3.
func TestScenario3MissingOutcome(t *testing.T) {
	log := []harness.CallLogEntry{
		{Method: "get_issue", Args: map[string]string{"id": "DEMO-1"}},
		{Method: "add_comment", Args: map[string]string{"issue_id": "DEMO-1", "text": "Starting work"}},
	}
	result := Score(basicScenario(), log)

	if result.Success {
		t.Errorf("Success = true, want false (update_issue missing)")
	}
	for _, o := range result.Outcomes {
		if o.Name == "state_changed" && o.Achieved {
			t.Errorf("state_changed.Achieved = true, want false")
		}
	}
	if result.Score > 75 {
		t.Errorf("Score = %v, want <= 75", result.Score)
	}
}

func TestCountRedundantFetchesIgnoresNonGetMethods(t *testing.T) {
	log := []harness.CallLogEntry{
		{Method: "update_issue", Args: map[string]string{"id": "DEMO-1"}},
		{Method: "update_issue", Args: map[string]string{"id": "DEMO-1"}},
	}
	if n := countRedundantFetches(log); n != 0 {
		t.Errorf("countRedundantFetches = %d, want 0 for non-get_ methods", n)
	}
}

func TestAnyCallUsesCacheBonus(t *testing.T) {
	log := []harness.CallLogEntry{{Method: "cache_lookup"}}
	if !anyCallUsesCache(log) {
		t.Error("expected cache bonus method to be detected")
	}
}
