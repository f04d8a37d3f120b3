// Package youtrack implements the IssueTracker and KnowledgeBase contracts
// against the YouTrack REST API (spec §6.1). It follows the HTTP-shaped
// translator design of §4.C: the only non-trivial engineering is in
// mapping.go, not in this file's request plumbing.
package youtrack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jra3/unitrack/internal/ttlcache"
)

var debugAPI = os.Getenv("UNITRACK_DEBUG_API") != ""

// Client is a YouTrack REST API client implementing tracker.IssueTracker
// and tracker.KnowledgeBase. Safe for concurrent use once constructed: the
// token and base URL are read-only after NewClient returns (spec §4.B.3).
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter

	projectIDs *ttlcache.Cache[string]
}

// NewClient builds a YouTrack client. baseURL is the instance root, e.g.
// "https://example.youtrack.cloud".
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
		projectIDs: ttlcache.New[string](5*time.Minute, 1000),
	}
}

// doRequest issues an authenticated request and decodes a JSON response
// into out (which may be nil for responses with no body, e.g. DELETE).
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if debugAPI {
		log.Printf("[youtrack] %s %s", method, path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyIOError(fmt.Errorf("failed to read response: %w", err))
	}

	if err := classifyStatus(resp.StatusCode, respBody); err != nil {
		return err
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return classifyParseError(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}
