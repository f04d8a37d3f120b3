// Package tracker defines the two capability contracts every backend
// adapter and the replay harness implement (spec §4.B). Callers accept
// these interfaces; concrete adapters are chosen by backend name at
// startup — there is no shared base implementation across backends, only
// shared contracts (spec §9).
package tracker

import (
	"context"

	"github.com/jra3/unitrack/internal/domain"
)

// CreateIssue is the set of recognised fields for creating an issue.
// Unknown fields on input are a hard error at the call site that builds
// this struct from untyped input — there is no passthrough "extra" map.
type CreateIssue struct {
	ProjectID   string
	Summary     string
	Description string
	Fields      []domain.CustomField
	Tags        []string
}

// UpdateIssue is the set of recognised fields for updating an issue. A
// nil pointer means "leave unchanged"; an empty UpdateIssue is invalid.
type UpdateIssue struct {
	Summary     *string
	Description *string
	Fields      []domain.CustomField
}

// IsEmpty reports whether the update carries no changes at all.
func (u UpdateIssue) IsEmpty() bool {
	return u.Summary == nil && u.Description == nil && len(u.Fields) == 0
}

// CreateCustomField is the set of recognised fields for creating a global
// custom field definition.
type CreateCustomField struct {
	Name      string
	FieldType domain.CustomFieldType
}

// CreateBundleValue is one value to seed a new bundle with, or to append
// to an existing one via AddBundleValues.
type CreateBundleValue struct {
	Name        string
	Description string
	IsResolved  *bool
	Ordinal     *int
}

// CreateBundle is the set of recognised fields for creating a bundle.
type CreateBundle struct {
	Name       string
	BundleType domain.BundleType
	Values     []CreateBundleValue
}

// AttachFieldToProject is the set of recognised fields for attaching a
// custom field definition to a project, binding it to a bundle.
type AttachFieldToProject struct {
	FieldID        string
	BundleID       string
	CanBeEmpty     bool
	EmptyFieldText string
}

// CreateProject is the set of recognised fields for creating a project.
type CreateProject struct {
	Name        string
	ShortName   string
	Description string
}

// CreateTag is the set of recognised fields for creating/renaming a tag.
type CreateTag struct {
	Name  string
	Color string
}

// CreateArticle is the set of recognised fields for creating an article.
type CreateArticle struct {
	ProjectID     string
	Title         string
	Content       string
	ParentArticle string
}

// UpdateArticle is the set of recognised fields for updating an article.
type UpdateArticle struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether the update carries no changes at all.
func (u UpdateArticle) IsEmpty() bool {
	return u.Title == nil && u.Content == nil
}

// IssueTracker is the operation set of spec §4.B.1. All operations are
// synchronous and may block on network I/O; implementations must be safe
// for concurrent use from multiple goroutines once constructed (spec
// §4.B.3, §5).
type IssueTracker interface {
	GetIssue(ctx context.Context, id string) (domain.Issue, error)
	SearchIssues(ctx context.Context, query string, limit, skip int) ([]domain.Issue, error)
	CountIssues(ctx context.Context, query string) (*uint64, error)
	CreateIssue(ctx context.Context, in CreateIssue) (domain.Issue, error)
	UpdateIssue(ctx context.Context, id string, in UpdateIssue) (domain.Issue, error)
	DeleteIssue(ctx context.Context, id string) error

	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (domain.Project, error)
	CreateProject(ctx context.Context, in CreateProject) (domain.Project, error)
	ResolveProjectID(ctx context.Context, identifier string) (string, error)

	GetProjectCustomFields(ctx context.Context, projectID string) ([]domain.ProjectCustomField, error)
	ListProjectUsers(ctx context.Context, projectID string) ([]domain.User, error)

	// Custom field/bundle administration (spec.md's equivalent of "track
	// field"/"track bundle"): creating the global field and bundle schema
	// objects and attaching them to a project. Backends without a native
	// admin model for this return an empty list from reads and
	// InvalidInput from writes, the same contract KnowledgeBase uses for
	// backends lacking that capability.
	ListCustomFieldDefinitions(ctx context.Context) ([]domain.CustomFieldDefinition, error)
	CreateCustomField(ctx context.Context, in CreateCustomField) (domain.CustomFieldDefinition, error)
	ListBundles(ctx context.Context, bundleType domain.BundleType) ([]domain.Bundle, error)
	CreateBundle(ctx context.Context, in CreateBundle) (domain.Bundle, error)
	AddBundleValues(ctx context.Context, bundleID string, bundleType domain.BundleType, values []CreateBundleValue) ([]domain.BundleValue, error)
	AttachFieldToProject(ctx context.Context, projectID string, in AttachFieldToProject) (domain.ProjectCustomField, error)

	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreateTag(ctx context.Context, in CreateTag) (domain.Tag, error)
	UpdateTag(ctx context.Context, currentName string, in CreateTag) (domain.Tag, error)
	DeleteTag(ctx context.Context, name string) error

	ListLinkTypes(ctx context.Context) ([]domain.IssueLinkType, error)
	GetIssueLinks(ctx context.Context, id string) ([]domain.IssueLink, error)
	LinkIssues(ctx context.Context, source, target, linkType string, direction domain.LinkDirection) error
	LinkSubtask(ctx context.Context, child, parent string) error

	AddComment(ctx context.Context, id, text string) (domain.Comment, error)
	GetComments(ctx context.Context, id string) ([]domain.Comment, error)
}

// KnowledgeBase is the operation set of spec §4.B.2. Backends lacking a
// knowledge base must return empty lists from reads and InvalidInput from
// writes (spec §4.B.2).
type KnowledgeBase interface {
	GetArticle(ctx context.Context, id string) (domain.Article, error)
	ListArticles(ctx context.Context, projectID string) ([]domain.Article, error)
	SearchArticles(ctx context.Context, query string) ([]domain.Article, error)
	CreateArticle(ctx context.Context, in CreateArticle) (domain.Article, error)
	UpdateArticle(ctx context.Context, id string, in UpdateArticle) (domain.Article, error)
	DeleteArticle(ctx context.Context, id string) error

	GetChildArticles(ctx context.Context, parent string) ([]domain.Article, error)
	MoveArticle(ctx context.Context, id string, newParent *string) error
	ListArticleAttachments(ctx context.Context, id string) ([]domain.ArticleAttachment, error)
	GetArticleComments(ctx context.Context, id string) ([]domain.Comment, error)
	AddArticleComment(ctx context.Context, id, text string) (domain.Comment, error)
}
