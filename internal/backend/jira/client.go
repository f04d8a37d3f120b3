// Package jira implements tracker.IssueTracker against the Jira Cloud REST
// API (spec §6.1) and tracker.KnowledgeBase against its natural pairing,
// Confluence (see confluence.go). Authentication is HTTP Basic with
// base64(email:token) per spec §4.C.6.
package jira

import (
	"bytes"
	"context"
	"encoding/base64"
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

// Client is a Jira + Confluence REST API client.
type Client struct {
	baseURL       string // Jira site root, e.g. https://example.atlassian.net
	confluenceURL string // baseURL + "/wiki" for Atlassian-hosted Confluence
	authHeader    string
	httpClient    *http.Client
	limiter       *rate.Limiter

	projectIDs *ttlcache.Cache[string]
}

// NewClient builds a Jira client. email+apiToken are combined into the
// Basic auth header at construction time and never logged (spec §4.C.6).
func NewClient(baseURL, email, apiToken string) *Client {
	base := strings.TrimRight(baseURL, "/")
	creds := base64.StdEncoding.EncodeToString([]byte(email + ":" + apiToken))
	return &Client{
		baseURL:       base,
		confluenceURL: base + "/wiki",
		authHeader:    "Basic " + creds,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		limiter:       rate.NewLimiter(rate.Limit(10), 20),
		projectIDs:    ttlcache.New[string](5*time.Minute, 1000),
	}
}

// doRequest issues an HTTP request against root+path?query and decodes the
// response body into out (if non-nil). A 204 No Content response leaves out
// untouched; callers that need the updated resource must refetch (spec
// §4.C.6 update_issue semantics).
func (c *Client) doRequest(ctx context.Context, root, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	fullURL := root + path
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
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if debugAPI {
		log.Printf("[jira] %s %s", method, fullURL)
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

func (c *Client) jiraRequest(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.doRequest(ctx, c.baseURL+"/rest/api/3", method, path, query, body, out)
}

func (c *Client) confluenceV2Request(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.doRequest(ctx, c.confluenceURL+"/api/v2", method, path, query, body, out)
}

func (c *Client) confluenceV1Request(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.doRequest(ctx, c.confluenceURL+"/rest/api", method, path, query, body, out)
}
