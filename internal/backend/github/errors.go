package github

import (
	"encoding/json"
	"net/http"

	"github.com/jra3/unitrack/internal/trackererr"
)

// classifyStatus normalises a GitHub HTTP response into the shared error
// taxonomy (spec §4.A, §8 Boundary behaviours). A 403 with
// x-ratelimit-remaining: 0 is RateLimited; a 403 with nonzero remaining
// (e.g. a permissions failure) is Api{403,…}. nil means 2xx.
func classifyStatus(status int, header http.Header, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	msg := extractMessage(body)

	switch status {
	case http.StatusUnauthorized:
		return trackererr.Unauthorized{}
	case http.StatusNotFound:
		return trackererr.NotFound{What: msg}
	case http.StatusForbidden:
		if header.Get("x-ratelimit-remaining") == "0" {
			return trackererr.RateLimited{RetryAfter: header.Get("retry-after")}
		}
		return trackererr.API{Status: status, Message: msg}
	case http.StatusTooManyRequests:
		return trackererr.RateLimited{RetryAfter: header.Get("retry-after")}
	case http.StatusUnprocessableEntity:
		return trackererr.InvalidInput{Message: msg}
	default:
		return trackererr.API{Status: status, Message: msg}
	}
}

func extractMessage(body []byte) string {
	var v struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &v); err == nil && v.Message != "" {
		return v.Message
	}
	return string(body)
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
