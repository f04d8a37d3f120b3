package harness

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jra3/unitrack/internal/replay/fixture"
	"github.com/jra3/unitrack/internal/trackererr"
)

// matchMapping reports whether mapping m applies to an invocation (spec
// §4.D.2 steps 2-4).
func matchMapping(m fixture.ResponseMapping, method string, args map[string]string, body []byte) bool {
	if m.Method != method {
		return false
	}
	for k, want := range m.Args {
		if want == "*" {
			continue
		}
		if args[k] != want {
			return false
		}
	}
	if m.When != nil {
		if m.When.BodyContains != "" && !strings.Contains(string(body), m.When.BodyContains) {
			return false
		}
		if len(m.When.BodyJSON) > 0 && !bodyJSONSubset(body, m.When.BodyJSON) {
			return false
		}
	}
	return true
}

// bodyJSONSubset checks that every key in want appears in body's decoded
// JSON object with an equal value (spec §4.D.2 step 4: "a structural subset
// match").
func bodyJSONSubset(body []byte, want map[string]any) bool {
	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		return false
	}
	for k, v := range want {
		gv, ok := got[k]
		if !ok {
			return false
		}
		if fmt.Sprint(gv) != fmt.Sprint(v) {
			return false
		}
	}
	return true
}

// resolveFile picks the response filename for this invocation, given the
// prior call count for this (method, args) key (spec §4.D.2 step 5): if
// Sequence is set, index min(priorCount, len(Sequence)-1) — the last entry
// is sticky; otherwise use File.
func resolveFile(m fixture.ResponseMapping, priorCount int) string {
	if len(m.Sequence) > 0 {
		idx := priorCount
		if idx >= len(m.Sequence) {
			idx = len(m.Sequence) - 1
		}
		return m.Sequence[idx]
	}
	return m.File
}

// findMapping walks dir's manifest in order and returns the first matching
// mapping (spec §4.D.2 step 1).
func findMapping(dir *fixture.Directory, method string, args map[string]string, body []byte) (fixture.ResponseMapping, bool) {
	for _, m := range dir.Manifest.Responses {
		if matchMapping(m, method, args, body) {
			return m, true
		}
	}
	return fixture.ResponseMapping{}, false
}

// errorMessageFromBody attempts to parse a {message: string} object out of
// body to populate an Api error's message (spec §4.D.2 step 7).
func errorMessageFromBody(body []byte) string {
	var shape struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &shape); err == nil && shape.Message != "" {
		return shape.Message
	}
	return string(body)
}

// noMatchError is the Api{404,...} returned when no mapping matches an
// invocation (spec §4.D.2, final paragraph).
func noMatchError(method string, args map[string]string) error {
	return trackererr.NewAPI(404, fmt.Sprintf("no matching response for method=%s args=%v", method, args))
}
