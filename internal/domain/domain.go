// Package domain holds the canonical, backend-agnostic entity shapes every
// adapter translates into and out of.
package domain

import "time"

// BackendKind names the four supported backends.
type BackendKind string

const (
	BackendYouTrack BackendKind = "youtrack"
	BackendJira     BackendKind = "jira"
	BackendGitLab   BackendKind = "gitlab"
	BackendGitHub   BackendKind = "github"
)

// Project is a backend-agnostic project/repo reference.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	Description string `json:"description,omitempty"`
}

// ProjectRef is the minimal project reference carried on an Issue.
type ProjectRef struct {
	ID        string `json:"id"`
	ShortName string `json:"shortName"`
}

// Tag is a name/id pair attached to an issue.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IssueTag is a Tag enriched with display metadata.
type IssueTag struct {
	Tag
	Color      string `json:"color,omitempty"`
	IssueCount int    `json:"issueCount,omitempty"`
}

// User is a backend user reference.
type User struct {
	Login       string `json:"login,omitempty"`
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// FieldKind discriminates the CustomField tagged union.
type FieldKind string

const (
	FieldSingleEnum FieldKind = "single_enum"
	FieldMultiEnum  FieldKind = "multi_enum"
	FieldState      FieldKind = "state"
	FieldSingleUser FieldKind = "single_user"
	FieldText       FieldKind = "text"
	FieldUnknown    FieldKind = "unknown"
)

// CustomField is the tagged-variant field model of spec §3.1. Exactly one of
// the value-carrying members is meaningful for a given Kind; callers should
// switch on Kind rather than guess from which fields are non-zero.
type CustomField struct {
	Kind FieldKind `json:"kind"`
	Name string    `json:"name"`

	// FieldSingleEnum, FieldState, FieldText
	Value string `json:"value,omitempty"`

	// FieldMultiEnum
	Values []string `json:"values,omitempty"`

	// FieldState
	IsResolved bool `json:"isResolved,omitempty"`

	// FieldSingleUser
	Login       string `json:"login,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// SingleEnumField builds a FieldSingleEnum variant.
func SingleEnumField(name, value string) CustomField {
	return CustomField{Kind: FieldSingleEnum, Name: name, Value: value}
}

// MultiEnumField builds a FieldMultiEnum variant.
func MultiEnumField(name string, values []string) CustomField {
	return CustomField{Kind: FieldMultiEnum, Name: name, Values: values}
}

// StateField builds a FieldState variant.
func StateField(name, value string, isResolved bool) CustomField {
	return CustomField{Kind: FieldState, Name: name, Value: value, IsResolved: isResolved}
}

// SingleUserField builds a FieldSingleUser variant.
func SingleUserField(name, login, displayName string) CustomField {
	return CustomField{Kind: FieldSingleUser, Name: name, Login: login, DisplayName: displayName}
}

// TextField builds a FieldText variant.
func TextField(name, value string) CustomField {
	return CustomField{Kind: FieldText, Name: name, Value: value}
}

// UnknownField preserves an unrecognised shape verbatim for lossless display.
func UnknownField(name string) CustomField {
	return CustomField{Kind: FieldUnknown, Name: name}
}

// StateValue is one legal value of a state-typed ProjectCustomField.
type StateValue struct {
	Name       string `json:"name"`
	IsResolved bool   `json:"isResolved"`
	Ordinal    int    `json:"ordinal"`
}

// ProjectCustomField is the definition of a field on a project.
type ProjectCustomField struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"` // e.g. "state[1]", "enum[*]", "user[1]"
	Required    bool         `json:"required"`
	Values      []string     `json:"values,omitempty"`
	StateValues []StateValue `json:"stateValues,omitempty"`
}

// IssueLinkType describes one kind of link between issues.
type IssueLinkType struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SourceToTarget string `json:"sourceToTarget,omitempty"`
	TargetToSource string `json:"targetToSource,omitempty"`
	Directed       bool   `json:"directed"`
}

// LinkDirection is one of inward/outward/both.
type LinkDirection string

const (
	DirectionInward  LinkDirection = "inward"
	DirectionOutward LinkDirection = "outward"
	DirectionBoth    LinkDirection = "both"
)

// IssueLink is a link from one issue to a set of others.
type IssueLink struct {
	ID        string        `json:"id"`
	Direction LinkDirection `json:"direction,omitempty"`
	LinkType  IssueLinkType `json:"linkType"`
	Issues    []IssueRef    `json:"issues"`
}

// IssueRef is a minimal issue reference used inside links/comments.
type IssueRef struct {
	ID         string `json:"id"`
	IDReadable string `json:"idReadable"`
	Summary    string `json:"summary,omitempty"`
}

// Comment is a free-text comment on an issue or article.
type Comment struct {
	ID      string     `json:"id"`
	Text    string     `json:"text"`
	Author  *User      `json:"author,omitempty"`
	Created *time.Time `json:"created,omitempty"`
}

// Issue is the canonical issue shape of spec §3.1.
type Issue struct {
	ID          string        `json:"id"`
	IDReadable  string        `json:"idReadable"`
	Summary     string        `json:"summary"`
	Description string        `json:"description,omitempty"`
	Project     ProjectRef    `json:"project"`
	Fields      []CustomField `json:"fields"`
	Tags        []Tag         `json:"tags,omitempty"`
	Created     time.Time     `json:"created"`
	Updated     time.Time     `json:"updated"`
}

// Field returns the named custom field, case-insensitive ASCII per spec
// §3.1's comparison invariant, and whether it was found.
func (i Issue) Field(name string) (CustomField, bool) {
	for _, f := range i.Fields {
		if equalFold(f.Name, name) {
			return f, true
		}
	}
	return CustomField{}, false
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for idx := range a {
		ca, cb := a[idx], b[idx]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// Article is the knowledge-base entity, structurally parallel to Issue but
// tree-shaped.
type Article struct {
	ID             string     `json:"id"`
	IDReadable     string     `json:"idReadable,omitempty"`
	Title          string     `json:"title"`
	Content        string     `json:"content,omitempty"`
	ParentArticle  *string    `json:"parentArticle,omitempty"`
	HasChildren    bool       `json:"hasChildren"`
	Project        ProjectRef `json:"project"`
	Created        time.Time  `json:"created"`
	Updated        time.Time  `json:"updated"`
}

// ArticleAttachment is a file attached to an Article.
type ArticleAttachment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// CustomFieldType names the kind of a custom field *definition* (the
// global, project-independent schema object), as distinct from
// CustomField, which carries one issue's *value* for a field.
type CustomFieldType string

const (
	CustomFieldTypeSingleEnum CustomFieldType = "enum"
	CustomFieldTypeMultiEnum  CustomFieldType = "multi-enum"
	CustomFieldTypeState      CustomFieldType = "state"
	CustomFieldTypeText       CustomFieldType = "text"
	CustomFieldTypeDate       CustomFieldType = "date"
	CustomFieldTypeInteger    CustomFieldType = "integer"
	CustomFieldTypeFloat      CustomFieldType = "float"
	CustomFieldTypePeriod     CustomFieldType = "period"
)

// CustomFieldDefinition is a global custom field schema object, created
// once and then attached to one or more projects (via
// ProjectCustomField/AttachFieldToProject), mirroring the backend's own
// field-admin model rather than any one project's view of it.
type CustomFieldDefinition struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	FieldType CustomFieldType `json:"fieldType"`
}

// BundleType names the kind of value set a Bundle holds.
type BundleType string

const (
	BundleEnum       BundleType = "enum"
	BundleState      BundleType = "state"
	BundleOwnedField BundleType = "ownedField"
	BundleVersion    BundleType = "version"
	BundleBuild      BundleType = "build"
)

// BundleValue is one legal value of a Bundle. IsResolved is only
// meaningful for a BundleState bundle.
type BundleValue struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsResolved  *bool  `json:"isResolved,omitempty"`
	Ordinal     int    `json:"ordinal"`
}

// Bundle is a named, reusable set of values (enum options or workflow
// states) that a custom field definition can be attached to a project
// through.
type Bundle struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Type   BundleType    `json:"type"`
	Values []BundleValue `json:"values,omitempty"`
}
