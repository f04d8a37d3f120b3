package github

import "encoding/json"

// Wire shapes for the subset of the GitHub REST API payloads this adapter
// touches (spec §6.1: /repos/{owner}/{repo}/issues, /search/issues).

type wireIssue struct {
	ID          int64           `json:"id"`
	Number      int64           `json:"number"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	State       string          `json:"state"` // "open" or "closed"
	Labels      []wireLabel     `json:"labels"`
	Assignee    *wireUser       `json:"assignee"`
	Milestone   *wireNamed      `json:"milestone"`
	PullRequest json.RawMessage `json:"pull_request"` // non-null means this is a PR, not an issue
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// IsPullRequest reports whether this "issue" is actually a pull request
// (spec §4.C: "PR detection via pull_request != null").
func (w wireIssue) IsPullRequest() bool {
	return len(w.PullRequest) > 0 && string(w.PullRequest) != "null"
}

type wireLabel struct {
	Name string `json:"name"`
}

type wireNamed struct {
	Title string `json:"title"`
}

type wireUser struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

type wireSearchResult struct {
	TotalCount int         `json:"total_count"`
	Items      []wireIssue `json:"items"`
}

type wireRepo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
}

type wireComment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	User      *wireUser `json:"user"`
	CreatedAt string    `json:"created_at"`
}

type wireCollaborator struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}
