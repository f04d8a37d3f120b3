package jira

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/jra3/unitrack/internal/trackererr"
)

// classifyStatus normalises a Jira/Confluence HTTP response into the shared
// error taxonomy (spec §4.A). nil means 2xx.
func classifyStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	msg := extractMessage(body)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return trackererr.Unauthorized{}
	case http.StatusNotFound:
		return trackererr.NotFound{What: msg}
	case http.StatusTooManyRequests:
		return trackererr.RateLimited{}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return trackererr.InvalidInput{Message: msg}
	default:
		return trackererr.API{Status: status, Message: msg}
	}
}

// extractMessage flattens Jira's {errorMessages: [...], errors: {field:
// message}} error body into a single "; "-joined string (spec §4.C.6).
func extractMessage(body []byte) string {
	var v struct {
		ErrorMessages []string          `json:"errorMessages"`
		Errors        map[string]string `json:"errors"`
		Message       string            `json:"message"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}

	var parts []string
	parts = append(parts, v.ErrorMessages...)
	fields := make([]string, 0, len(v.Errors))
	for field := range v.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		parts = append(parts, field+": "+v.Errors[field])
	}
	if v.Message != "" {
		parts = append(parts, v.Message)
	}
	if len(parts) == 0 {
		return string(body)
	}
	return strings.Join(parts, "; ")
}

func classifyTransportError(err error) error {
	return trackererr.HTTP{Message: err.Error()}
}

func classifyIOError(err error) error {
	return trackererr.IO{Message: err.Error()}
}

func classifyParseError(err error) error {
	return trackererr.Parse{Message: err.Error()}
}
