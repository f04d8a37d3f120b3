package cache

import (
	"testing"
	"time"

	"github.com/jra3/unitrack/internal/domain"
)

// TestWorkflowHintsSixTransitions reproduces spec §8 Scenario 6 verbatim:
// Open/Doing/Done produces exactly 6 transitions with the literal kinds
// named in the scenario.
func TestWorkflowHintsSixTransitions(t *testing.T) {
	c := New(BackendMetadata{Type: domain.BackendYouTrack})
	c.ProjectFields["0-1"] = []domain.ProjectCustomField{
		{
			ID:   "state-field",
			Name: "Status",
			Type: "state[1]",
			StateValues: []domain.StateValue{
				{Name: "Open", Ordinal: 0, IsResolved: false},
				{Name: "Doing", Ordinal: 1, IsResolved: false},
				{Name: "Done", Ordinal: 2, IsResolved: true},
			},
		},
	}
	c.DeriveWorkflowHints()

	if len(c.WorkflowHints) != 6 {
		t.Fatalf("len(WorkflowHints) = %d, want 6", len(c.WorkflowHints))
	}

	want := map[[2]string]TransitionKind{
		{"Open", "Doing"}:  TransitionForward,
		{"Doing", "Open"}:  TransitionBackward,
		{"Open", "Done"}:   TransitionToResolved,
		{"Doing", "Done"}:  TransitionToResolved,
		{"Done", "Open"}:   TransitionReopen,
		{"Done", "Doing"}:  TransitionReopen,
	}
	for _, h := range c.WorkflowHints {
		key := [2]string{h.From, h.To}
		k, ok := want[key]
		if !ok {
			t.Errorf("unexpected transition %s->%s", h.From, h.To)
			continue
		}
		if h.Kind != k {
			t.Errorf("transition %s->%s kind = %s, want %s", h.From, h.To, h.Kind, k)
		}
		if h.From == h.To {
			t.Errorf("self-transition %s->%s should not be emitted", h.From, h.To)
		}
	}
}

func TestWorkflowHintCountInvariant(t *testing.T) {
	for n := 1; n <= 5; n++ {
		states := make([]domain.StateValue, n)
		for i := range states {
			states[i] = domain.StateValue{Name: string(rune('A' + i)), Ordinal: i}
		}
		f := domain.ProjectCustomField{ID: "f", StateValues: states}
		hints := deriveFieldHints(f)
		want := n * (n - 1)
		if len(hints) != want {
			t.Errorf("n=%d: len(hints) = %d, want %d", n, len(hints), want)
		}
		for _, h := range hints {
			if h.From == h.To {
				t.Errorf("n=%d: self-transition emitted", n)
			}
		}
	}
}

func TestIsStale(t *testing.T) {
	c := New(BackendMetadata{})
	if !c.IsStale(time.Hour) {
		t.Error("zero-value UpdatedAt should be stale")
	}
	c.UpdatedAt = time.Now()
	if c.IsStale(time.Hour) {
		t.Error("freshly updated cache should not be stale")
	}
	c.UpdatedAt = time.Now().Add(-2 * time.Hour)
	if !c.IsStale(time.Hour) {
		t.Error("cache older than maxAge should be stale")
	}
}

func TestAgeStringUnits(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30 seconds"},
		{1 * time.Second, "1 second"},
		{90 * time.Second, "1 minute"},
		{2 * time.Hour, "2 hours"},
		{25 * time.Hour, "1 day"},
	}
	for _, tc := range cases {
		if got := AgeString(tc.d); got != tc.want {
			t.Errorf("AgeString(%s) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestTouchRecentIssueMovesToFrontAndCaps(t *testing.T) {
	c := New(BackendMetadata{})
	now := time.Now()
	for i := 0; i < 55; i++ {
		c.TouchRecentIssue(string(rune('A'+i%26))+itoa(i), "summary", now.Add(time.Duration(i)*time.Second))
	}
	if len(c.RecentIssues) != 50 {
		t.Fatalf("len(RecentIssues) = %d, want 50 (cap)", len(c.RecentIssues))
	}

	c2 := New(BackendMetadata{})
	c2.TouchRecentIssue("DEMO-1", "first", now)
	c2.TouchRecentIssue("DEMO-2", "second", now.Add(time.Second))
	c2.TouchRecentIssue("DEMO-1", "first again", now.Add(2*time.Second))
	if c2.RecentIssues[0].IDReadable != "DEMO-1" {
		t.Errorf("re-accessed issue should move to front, got %q", c2.RecentIssues[0].IDReadable)
	}
	if len(c2.RecentIssues) != 2 {
		t.Errorf("len(RecentIssues) = %d, want 2 (re-access should not duplicate)", len(c2.RecentIssues))
	}
}
