// Package backendselect constructs the concrete backend adapter named by a
// runtimeconfig.Config. This is the one place that knows about all four
// backend packages at once; everything else in the module depends only on
// tracker.IssueTracker/KnowledgeBase (spec §9: "callers accept the
// interface; the CLI dispatcher chooses the concrete adapter by backend
// name at startup").
package backendselect

import (
	"fmt"

	"github.com/jra3/unitrack/internal/backend/github"
	"github.com/jra3/unitrack/internal/backend/gitlab"
	"github.com/jra3/unitrack/internal/backend/jira"
	"github.com/jra3/unitrack/internal/backend/youtrack"
	"github.com/jra3/unitrack/internal/cache"
	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/runtimeconfig"
	"github.com/jra3/unitrack/internal/tracker"
)

// New builds the IssueTracker for cfg.Backend, plus the cache.BackendMetadata
// to stamp onto a refreshed snapshot.
func New(cfg *runtimeconfig.Config) (tracker.IssueTracker, cache.BackendMetadata, error) {
	switch cfg.Backend {
	case domain.BackendYouTrack:
		c := cfg.Backends.YouTrack
		return youtrack.NewClient(c.BaseURL, c.Token), cache.BackendMetadata{Type: cfg.Backend, BaseURL: c.BaseURL}, nil
	case domain.BackendJira:
		c := cfg.Backends.Jira
		return jira.NewClient(c.BaseURL, c.Email, c.Token), cache.BackendMetadata{Type: cfg.Backend, BaseURL: c.BaseURL}, nil
	case domain.BackendGitLab:
		c := cfg.Backends.GitLab
		return gitlab.NewClient(c.BaseURL, c.Token, c.Project), cache.BackendMetadata{Type: cfg.Backend, BaseURL: c.BaseURL}, nil
	case domain.BackendGitHub:
		c := cfg.Backends.GitHub
		owner, repo := splitOwnerRepo(c.Project)
		return github.NewClient(c.BaseURL, c.Token, owner, repo), cache.BackendMetadata{Type: cfg.Backend, BaseURL: c.BaseURL}, nil
	default:
		return nil, cache.BackendMetadata{}, fmt.Errorf("unknown backend %q (want youtrack, jira, gitlab, or github)", cfg.Backend)
	}
}

func splitOwnerRepo(project string) (owner, repo string) {
	for i, r := range project {
		if r == '/' {
			return project[:i], project[i+1:]
		}
	}
	return "", project
}
