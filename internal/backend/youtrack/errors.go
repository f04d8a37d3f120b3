package youtrack

import (
	"encoding/json"
	"net/http"

	"github.com/jra3/unitrack/internal/trackererr"
)

// classifyStatus normalises a YouTrack HTTP response into the shared error
// taxonomy (spec §4.A). nil means 2xx.
func classifyStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	msg := extractMessage(body)

	switch status {
	case http.StatusUnauthorized:
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

func extractMessage(body []byte) string {
	var v struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &v); err == nil {
		if v.ErrorDescription != "" {
			return v.ErrorDescription
		}
		if v.Error != "" {
			return v.Error
		}
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
