package youtrack

import "encoding/json"

// Wire shapes for the subset of the YouTrack REST API payloads this
// adapter touches (spec §6.1: /api/issues, /api/admin/projects,
// /api/issueTags, /api/issueLinkTypes, /api/articles).

type wireIssue struct {
	ID           string           `json:"id"`
	IDReadable   string           `json:"idReadable"`
	Summary      string           `json:"summary"`
	Description  string           `json:"description"`
	Project      wireProjectRef   `json:"project"`
	Fields       []wireCustomField `json:"customFields"`
	Tags         []wireTag        `json:"tags"`
	Created      int64            `json:"created"`
	Updated      int64            `json:"updated"`
}

type wireProjectRef struct {
	ID        string `json:"id"`
	ShortName string `json:"shortName"`
}

type wireProject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	Description string `json:"description"`
}

// wireCustomField models one YouTrack custom field. Its "value" is
// polymorphic: null, a single object (enum/state/user), an array of
// objects (multi-enum), or a bare string (text). toDomainField in
// mapping.go picks the decoder by the $type discriminator; a field with
// an empty $type is decoded as text, or as unknown when its value is not
// a string.
type wireCustomField struct {
	Type  string          `json:"$type"` // e.g. StateIssueCustomField, SingleEnumIssueCustomField, MultiEnumIssueCustomField, SingleUserIssueCustomField, SimpleIssueCustomField
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type wireFieldValue struct {
	Name       string `json:"name"`     // single enum / state
	IsResolved *bool  `json:"isResolved"` // state
	Login      string `json:"login"`    // user
	FullName   string `json:"fullName"` // user
}

type wireTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type wireProjectCustomField struct {
	ID       string             `json:"id"`
	Field    wireFieldSchema    `json:"field"`
	CanBeEmpty bool             `json:"canBeEmpty"`
	Bundle   *wireBundle        `json:"bundle"`
}

type wireFieldSchema struct {
	Name      string          `json:"name"`
	FieldType wireFieldTypeID `json:"fieldType"`
}

type wireFieldTypeID struct {
	ID string `json:"id"` // e.g. "state[1]", "enum[1]", "enum[*]", "user[1]"
}

type wireBundle struct {
	Values []wireBundleValue `json:"values"`
}

type wireBundleValue struct {
	Name       string `json:"name"`
	IsResolved bool   `json:"isResolved"`
	Ordinal    int    `json:"ordinal"`
}

type wireUser struct {
	Login    string `json:"login"`
	FullName string `json:"fullName"`
}

type wireLinkType struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SourceToTarget string `json:"sourceToTarget"`
	TargetToSource string `json:"targetToSource"`
	Directed       bool   `json:"directed"`
}

type wireComment struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	Author  *wireUser `json:"author"`
	Created int64     `json:"created"`
}

type wireArticle struct {
	ID          string          `json:"id"`
	IDReadable  string          `json:"idReadable"`
	Summary     string          `json:"summary"`
	Content     string          `json:"content"`
	Project     wireProjectRef  `json:"project"`
	ParentArticle *wireArticleRef `json:"parentArticle"`
	ChildArticles []wireArticleRef `json:"childArticles"`
	Created     int64           `json:"created"`
	Updated     int64           `json:"updated"`
}

type wireArticleRef struct {
	ID string `json:"id"`
}

type wireCustomFieldDefinition struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	FieldType wireFieldTypeID `json:"fieldType"`
}

type wireBundleAdmin struct {
	ID     string                 `json:"id"`
	Name   string                 `json:"name"`
	Values []wireBundleValueAdmin `json:"values"`
}

type wireBundleValueAdmin struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsResolved  *bool  `json:"isResolved"`
	Ordinal     int    `json:"ordinal"`
}
