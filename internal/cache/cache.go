// Package cache implements the Context Cache of spec §3.2/§4.E: a persisted
// JSON snapshot of projects, fields, link types, users, and derived
// workflow-transition hints, plus a recent-issue LRU. It is advisory — a
// hint store, not an authority (spec §1 Non-goals) — and is unrelated to
// internal/ttlcache, which memoizes pure per-adapter lookups rather than
// surviving process restarts.
package cache

import (
	"time"

	"github.com/jra3/unitrack/internal/domain"
)

// BackendMetadata identifies which backend and base URL a snapshot was
// refreshed against (spec §3.2 Cache.backend_metadata).
type BackendMetadata struct {
	Type    domain.BackendKind `json:"type"`
	BaseURL string             `json:"baseUrl"`
}

// TransitionKind classifies one (from, to) state pair (spec §4.E.3).
type TransitionKind string

const (
	TransitionForward    TransitionKind = "forward"
	TransitionBackward   TransitionKind = "backward"
	TransitionToResolved TransitionKind = "to_resolved"
	TransitionReopen     TransitionKind = "reopen"
)

// WorkflowHint is one derived (from, to, kind) triple for a state field
// (spec §4.E.3).
type WorkflowHint struct {
	FieldID string         `json:"fieldId"`
	From    string         `json:"from"`
	To      string         `json:"to"`
	Kind    TransitionKind `json:"kind"`
}

// RecentIssue is one entry of the recent-issue LRU (spec §4.E.4).
type RecentIssue struct {
	IDReadable string    `json:"idReadable"`
	Summary    string    `json:"summary"`
	AccessedAt time.Time `json:"accessedAt"`
}

// ArticleRef is a minimal article reference used by the article tree.
type ArticleRef struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	ParentID   string   `json:"parentId,omitempty"`
	ChildIDs   []string `json:"childIds,omitempty"`
}

// Cache is the persisted snapshot of spec §3.2. Field names are
// snake_case-equivalent in JSON (recommended by spec §6.3); Go field names
// stay idiomatic Go, tags carry the wire casing.
type Cache struct {
	UpdatedAt       time.Time                       `json:"updated_at"`
	BackendMetadata BackendMetadata                 `json:"backend_metadata"`
	DefaultProject  string                           `json:"default_project,omitempty"`
	Projects        []domain.Project                `json:"projects"`
	ProjectFields   map[string][]domain.ProjectCustomField `json:"project_fields"`
	Tags            []domain.Tag                     `json:"tags"`
	LinkTypes       []domain.IssueLinkType           `json:"link_types"`
	QueryTemplates  map[string]string                `json:"query_templates"`
	ProjectUsers    map[string][]domain.User          `json:"project_users"`
	WorkflowHints   []WorkflowHint                   `json:"workflow_hints"`
	RecentIssues    []RecentIssue                    `json:"recent_issues"`
	Articles        []domain.Article                 `json:"articles,omitempty"`
	ArticleTree     map[string]ArticleRef             `json:"article_tree,omitempty"`
}

// New returns an empty cache for the given backend.
func New(meta BackendMetadata) *Cache {
	return &Cache{
		BackendMetadata: meta,
		ProjectFields:   make(map[string][]domain.ProjectCustomField),
		QueryTemplates:  make(map[string]string),
		ProjectUsers:    make(map[string][]domain.User),
		ArticleTree:     make(map[string]ArticleRef),
	}
}

// IsStale reports whether the snapshot is older than maxAge, or has never
// been populated (spec §4.E.5).
func (c *Cache) IsStale(maxAge time.Duration) bool {
	if c.UpdatedAt.IsZero() {
		return true
	}
	return time.Since(c.UpdatedAt) > maxAge
}

// AgeString formats the snapshot's age in the largest unit for which the
// value is >= 1, with correct singular/plural forms (spec §4.E.5). The
// spec's exact wording is a rule go-humanize's Time doesn't expose directly
// (it always picks a fixed granularity relative to "ago"/"from now"
// phrasing), so this is hand-rolled; go-humanize itself is exercised
// elsewhere (count display, see DESIGN.md).
func (c *Cache) AgeString(now time.Time) string {
	if c.UpdatedAt.IsZero() {
		return "never"
	}
	return AgeString(now.Sub(c.UpdatedAt))
}

// AgeString formats a duration using the largest unit for which the value
// is >= 1, e.g. "1 hour", "2 hours", "3 days".
func AgeString(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	units := []struct {
		name string
		size time.Duration
	}{
		{"day", 24 * time.Hour},
		{"hour", time.Hour},
		{"minute", time.Minute},
		{"second", time.Second},
	}
	for _, u := range units {
		if n := int(d / u.size); n >= 1 {
			return pluralize(n, u.name)
		}
	}
	return "0 seconds"
}

func pluralize(n int, unit string) string {
	s := unit
	if n != 1 {
		s += "s"
	}
	return itoa(n) + " " + s
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// TouchRecentIssue moves id_readable to the front of the recent-issue LRU,
// inserting it if absent, and truncates at 50 entries (spec §4.E.4).
func (c *Cache) TouchRecentIssue(idReadable, summary string, now time.Time) {
	const cap50 = 50
	filtered := make([]RecentIssue, 0, len(c.RecentIssues)+1)
	filtered = append(filtered, RecentIssue{IDReadable: idReadable, Summary: summary, AccessedAt: now})
	for _, r := range c.RecentIssues {
		if r.IDReadable == idReadable {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) > cap50 {
		filtered = filtered[:cap50]
	}
	c.RecentIssues = filtered
}

// DeriveWorkflowHints rebuilds WorkflowHints from the current ProjectFields
// (spec §4.E.3). For every ProjectCustomField with nonempty StateValues,
// states are sorted by Ordinal ascending and every ordered pair (from, to)
// with from != to is classified and emitted. Invariant: no self-transitions;
// count is exactly n*(n-1) for n states (spec §8 property 3).
func (c *Cache) DeriveWorkflowHints() {
	var hints []WorkflowHint
	for _, fields := range c.ProjectFields {
		for _, f := range fields {
			if len(f.StateValues) == 0 {
				continue
			}
			hints = append(hints, deriveFieldHints(f)...)
		}
	}
	c.WorkflowHints = hints
}

func deriveFieldHints(f domain.ProjectCustomField) []WorkflowHint {
	states := make([]domain.StateValue, len(f.StateValues))
	copy(states, f.StateValues)
	sortStateValues(states)

	hints := make([]WorkflowHint, 0, len(states)*(len(states)-1))
	for _, from := range states {
		for _, to := range states {
			if from.Name == to.Name {
				continue
			}
			hints = append(hints, WorkflowHint{
				FieldID: f.ID,
				From:    from.Name,
				To:      to.Name,
				Kind:    classifyTransition(from, to),
			})
		}
	}
	return hints
}

func classifyTransition(from, to domain.StateValue) TransitionKind {
	switch {
	case from.IsResolved && !to.IsResolved:
		return TransitionReopen
	case !from.IsResolved && to.IsResolved:
		return TransitionToResolved
	case to.Ordinal > from.Ordinal:
		return TransitionForward
	default:
		return TransitionBackward
	}
}

func sortStateValues(states []domain.StateValue) {
	for i := 1; i < len(states); i++ {
		for j := i; j > 0 && states[j].Ordinal < states[j-1].Ordinal; j-- {
			states[j], states[j-1] = states[j-1], states[j]
		}
	}
}
