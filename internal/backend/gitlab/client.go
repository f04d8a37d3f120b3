// Package gitlab implements tracker.IssueTracker against the GitLab REST
// API v4 (spec §6.1). GitLab has no native knowledge-base pairing in this
// system (wikis are git-backed, the same out-of-scope collaborator as
// GitHub's); see knowledgebase.go for the empty/InvalidInput stub.
//
// A Client is scoped to one project: the dialect translation drops
// "project: X" tokens entirely (spec §4.C.3) because every issue operation
// already targets c.projectID.
package gitlab

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
)

var debugAPI = os.Getenv("UNITRACK_DEBUG_API") != ""

// Client is a GitLab REST v4 client scoped to one project.
type Client struct {
	baseURL   string
	token     string
	projectID string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a GitLab client bound to projectID (numeric id or plain
// "group/subgroup/project" path; projectPath URL-encodes it for GitLab's API).
func NewClient(baseURL, token, projectID string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		projectID:  projectID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	fullURL := c.baseURL + "/api/v4" + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, merr := json.Marshal(body)
		if merr != nil {
			return fmt.Errorf("failed to marshal request: %w", merr)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("PRIVATE-TOKEN", c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if debugAPI {
		log.Printf("[gitlab] %s %s", method, fullURL)
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

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return classifyParseError(fmt.Errorf("failed to decode response: %w", err))
		}
	}
	return nil
}

func (c *Client) projectPath(suffix string) string {
	return "/projects/" + url.PathEscape(c.projectID) + suffix
}

// parseIID strips one leading '#' from a GitLab issue reference (spec §4.C.1,
// §8 Boundary behaviours).
func parseIID(id string) string {
	return strings.TrimPrefix(id, "#")
}

func pageParams(limit, skip int) url.Values {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	page := skip/limit + 1
	return url.Values{
		"per_page": {fmt.Sprintf("%d", limit)},
		"page":     {fmt.Sprintf("%d", page)},
	}
}
