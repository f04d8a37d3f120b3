package gitlab

// Wire shapes for the subset of the GitLab REST v4 payloads this adapter
// touches (spec §6.1: /api/v4/projects/{id}/issues, /labels, /members).

type wireIssue struct {
	ID          int64        `json:"id"`
	IID         int64        `json:"iid"`
	ProjectID   int64        `json:"project_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	State       string       `json:"state"` // "opened" or "closed"
	Labels      []string     `json:"labels"`
	Assignee    *wireUser    `json:"assignee"`
	Milestone   *wireNamed   `json:"milestone"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}

type wireNamed struct {
	Title string `json:"title"`
}

type wireUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type wireProject struct {
	ID                int64  `json:"id"`
	Path              string `json:"path"`
	PathWithNamespace string `json:"path_with_namespace"`
	Name              string `json:"name"`
	Description       string `json:"description"`
}

type wireLabel struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type wireNote struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	Author    *wireUser `json:"author"`
	System    bool      `json:"system"`
	CreatedAt string    `json:"created_at"`
}

type wireIssueLink struct {
	IssueLinkID int64  `json:"issue_link_id"`
	ProjectID   int64  `json:"project_id"`
	IID         int64  `json:"iid"`
	Title       string `json:"title"`
	LinkType    string `json:"link_type"` // "relates_to", "blocks", "is_blocked_by"
}
