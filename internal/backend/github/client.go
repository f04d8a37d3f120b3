// Package github implements tracker.IssueTracker against the GitHub REST
// API (spec §6.1: /repos/{owner}/{repo}/issues). A Client defaults to one
// owner/repo but GetIssue/UpdateIssue/etc. also accept a fully-qualified
// "owner/repo#42" identifier addressing a different repo (spec §4.C.1).
//
// KnowledgeBase is a stub: the GitHub wiki is itself git-backed storage,
// the explicitly out-of-scope external collaborator (see knowledgebase.go).
package github

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

const apiVersion = "2022-11-28"

// Client is a GitHub REST API client defaulting to one owner/repo.
type Client struct {
	baseURL    string
	token      string
	owner      string
	repo       string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a GitHub client scoped by default to owner/repo. The
// rate limiter approximates GitHub's 5000/hr primary rate limit (spec
// §4.A DOMAIN STACK note), not the secondary burst limits.
func NewClient(baseURL, token, owner, repo string) *Client {
	base := baseURL
	if base == "" {
		base = "https://api.github.com"
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		token:      token,
		owner:      owner,
		repo:       repo,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(5000.0/3600.0), 50),
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	fullURL := c.baseURL + path
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
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if debugAPI {
		log.Printf("[github] %s %s", method, fullURL)
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

	if err := classifyStatus(resp.StatusCode, resp.Header, respBody); err != nil {
		return err
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return classifyParseError(fmt.Errorf("failed to decode response: %w", err))
		}
	}
	return nil
}

// issueRef is a parsed identifier: owner/repo#number, falling back to the
// client's default owner/repo when only a bare number is given (spec
// §4.C.1, §8 "the # is the last one, not the first").
type issueRef struct {
	owner  string
	repo   string
	number string
}

func (c *Client) parseID(id string) issueRef {
	if idx := strings.LastIndex(id, "#"); idx >= 0 {
		ownerRepo := id[:idx]
		number := id[idx+1:]
		if slash := strings.Index(ownerRepo, "/"); slash >= 0 {
			return issueRef{owner: ownerRepo[:slash], repo: ownerRepo[slash+1:], number: number}
		}
	}
	return issueRef{owner: c.owner, repo: c.repo, number: id}
}

func (r issueRef) path(suffix string) string {
	return fmt.Sprintf("/repos/%s/%s/issues/%s%s", url.PathEscape(r.owner), url.PathEscape(r.repo), url.PathEscape(r.number), suffix)
}

func (r issueRef) readable() string {
	return fmt.Sprintf("%s/%s#%s", r.owner, r.repo, r.number)
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
