package harness

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// CallLogEntry is one line of call_log.jsonl (spec §3.2).
type CallLogEntry struct {
	Timestamp    time.Time         `json:"timestamp"`
	Method       string            `json:"method"`
	Args         map[string]string `json:"args"`
	ResponseFile string            `json:"response_file,omitempty"`
	Error        string            `json:"error,omitempty"`
	Status       int               `json:"status"`
	DurationMs   int64             `json:"duration_ms"`
}

func newCallLogFile(path string) (*os.File, error) {
	f, err := os.Create(path) // truncates/creates: "cleared per run" (spec §4.D.1)
	if err != nil {
		return nil, fmt.Errorf("create call log %s: %w", path, err)
	}
	return f, nil
}

// appendCallLog writes one line-buffered, flushed JSON entry (spec §5: "the
// call log file is append-only; writes are line-buffered and flushed after
// every entry").
func appendCallLog(f *os.File, entry CallLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal call log entry: %w", err)
	}
	data = append(data, '\n')
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write call log entry: %w", err)
	}
	return f.Sync()
}

// ReadCallLog reads and decodes every line of a call_log.jsonl file,
// producing the detached snapshot the scorer consumes post-hoc (spec §9:
// "Scoring reads a detached snapshot taken after the run completes").
// Spec §8 property 5: after N calls, len(ReadCallLog()) == N unless the log
// was externally truncated.
func ReadCallLog(path string) ([]CallLogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open call log %s: %w", path, err)
	}
	defer f.Close()

	var entries []CallLogEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e CallLogEntry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("decode call log line in %s: %w", path, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan call log %s: %w", path, err)
	}
	return entries, nil
}

// countKey builds the "method:sorted(args)" key used for sequence
// indexing (spec §4.D.2 step 5). The scorer's redundant-fetch count builds
// its own method:id key instead.
func countKey(method string, args map[string]string) string {
	names := make([]string, 0, len(args))
	for k := range args {
		names = append(names, k)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString(method)
	for _, n := range names {
		b.WriteString(":")
		b.WriteString(n)
		b.WriteString("=")
		b.WriteString(args[n])
	}
	return b.String()
}
