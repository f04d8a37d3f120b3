package jira

import "github.com/jra3/unitrack/internal/tracker"

var (
	_ tracker.IssueTracker  = (*Client)(nil)
	_ tracker.KnowledgeBase = (*Client)(nil)
)
