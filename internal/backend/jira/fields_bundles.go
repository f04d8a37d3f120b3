package jira

import (
	"context"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

// Jira has its own custom-field model (global fields bound to projects
// through field contexts and option sets), but it has no counterpart to
// YouTrack's bundle abstraction this client can translate into without
// inventing a shape the rest of this system never exercises. Reads return
// empty results; writes return InvalidInput (same contract
// KnowledgeBase uses for a capability a backend doesn't have, spec §4.B.2).

func (c *Client) ListCustomFieldDefinitions(ctx context.Context) ([]domain.CustomFieldDefinition, error) {
	return nil, nil
}

func (c *Client) CreateCustomField(ctx context.Context, in tracker.CreateCustomField) (domain.CustomFieldDefinition, error) {
	return domain.CustomFieldDefinition{}, trackererr.NewInvalidInput("jira: field administration is not supported by this client")
}

func (c *Client) ListBundles(ctx context.Context, bundleType domain.BundleType) ([]domain.Bundle, error) {
	return nil, nil
}

func (c *Client) CreateBundle(ctx context.Context, in tracker.CreateBundle) (domain.Bundle, error) {
	return domain.Bundle{}, trackererr.NewInvalidInput("jira: bundle administration is not supported by this client")
}

func (c *Client) AddBundleValues(ctx context.Context, bundleID string, bundleType domain.BundleType, values []tracker.CreateBundleValue) ([]domain.BundleValue, error) {
	return nil, trackererr.NewInvalidInput("jira: bundle administration is not supported by this client")
}

func (c *Client) AttachFieldToProject(ctx context.Context, projectID string, in tracker.AttachFieldToProject) (domain.ProjectCustomField, error) {
	return domain.ProjectCustomField{}, trackererr.NewInvalidInput("jira: field administration is not supported by this client")
}
