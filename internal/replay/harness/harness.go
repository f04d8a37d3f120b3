// Package harness implements the Deterministic Replay Harness of spec §4.D:
// a fixture-driven mock that implements the same capability contracts as a
// real backend adapter, resolves which canned response to serve from a
// declarative manifest, and records every invocation to call_log.jsonl for
// later scoring (internal/replay/score).
package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jra3/unitrack/internal/replay/fixture"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

var (
	_ tracker.IssueTracker  = (*Harness)(nil)
	_ tracker.KnowledgeBase = (*Harness)(nil)
)

// Harness serves a tracker.IssueTracker/tracker.KnowledgeBase pair entirely
// from a fixture.Directory. Internal mutable state — the per-key call
// counter and the call-log file handle — is protected by a single mutex,
// per spec §4.B.3/§5/§9.
type Harness struct {
	dir *fixture.Directory

	mu      sync.Mutex
	counts  map[string]int
	logFile *os.File
}

// New opens a Harness against a loaded fixture directory, truncating
// call_log.jsonl for this run (spec §4.D.1: "created/appended at runtime;
// cleared per run").
func New(dir *fixture.Directory) (*Harness, error) {
	f, err := newCallLogFile(dir.CallLogPath())
	if err != nil {
		return nil, err
	}
	return &Harness{dir: dir, counts: make(map[string]int), logFile: f}, nil
}

// Close closes the call log file handle.
func (h *Harness) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.logFile.Close()
}

// invoke resolves one (method, args, body) call against the manifest,
// records it to the call log, and returns the raw response body to decode
// (spec §4.D.2). args values must already be the caller's scalar
// representation of each named argument.
func (h *Harness) invoke(method string, args map[string]string, body []byte) ([]byte, error) {
	start := time.Now()

	h.mu.Lock()
	defer h.mu.Unlock()

	key := countKey(method, args)
	priorCount := h.counts[key]
	h.counts[key] = priorCount + 1

	mapping, ok := findMapping(h.dir, method, args, body)
	if !ok {
		err := noMatchError(method, args)
		h.logCall(start, method, args, "", 404, err)
		return nil, err
	}

	if mapping.DelayMs > 0 {
		time.Sleep(time.Duration(mapping.DelayMs) * time.Millisecond)
	}

	file := resolveFile(mapping, priorCount)
	var respBody []byte
	var err error
	if file != "" {
		respBody, err = h.dir.ResponseBody(file)
		if err != nil {
			ioErr := trackererr.IO{Message: err.Error()}
			h.logCall(start, method, args, file, mapping.Status, ioErr)
			return nil, ioErr
		}
	}

	if mapping.Status >= 400 {
		apiErr := trackererr.API{Status: mapping.Status, Message: errorMessageFromBody(respBody)}
		h.logCall(start, method, args, file, mapping.Status, apiErr)
		return nil, apiErr
	}

	h.logCall(start, method, args, file, mapping.Status, nil)
	return respBody, nil
}

// logCall appends one CallLogEntry. Must be called with h.mu held.
func (h *Harness) logCall(start time.Time, method string, args map[string]string, file string, status int, callErr error) {
	entry := CallLogEntry{
		Timestamp:    start,
		Method:       method,
		Args:         args,
		ResponseFile: file,
		Status:       status,
		DurationMs:   time.Since(start).Milliseconds(),
	}
	if callErr != nil {
		entry.Error = callErr.Error()
	}
	if err := appendCallLog(h.logFile, entry); err != nil {
		// The call log is diagnostic, not authoritative for the call's own
		// result — a write failure here must not mask the underlying
		// response/error the caller already has.
		fmt.Fprintf(os.Stderr, "replay: append call log: %v\n", err)
	}
}

// decodeInto is a small helper shared by every interface method: invoke,
// then unmarshal into out (skipped when body is empty and out is nil).
func decodeInto[T any](h *Harness, method string, args map[string]string, body []byte, out *T) error {
	respBody, err := h.invoke(method, args, body)
	if err != nil {
		return err
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return trackererr.Parse{Message: fmt.Sprintf("%s response: %v", method, err)}
	}
	return nil
}

// mustJSON marshals v for use as an invocation body. Every caller passes a
// struct literal built from this package's own typed inputs, so a marshal
// failure here would indicate a programming error, not a runtime condition.
func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("replay: marshal invocation body: %v", err))
	}
	return data
}

// newID mints a mock id when a fixture's response omits one, so
// create_issue/create_article remain usable against hand-written fixtures
// that only specify the fields under test (DOMAIN STACK: github.com/google/uuid).
func newID() string {
	return uuid.NewString()
}
