package jira

import "encoding/json"

// Wire shapes for the subset of the Jira Cloud / Confluence REST payloads
// this adapter touches (spec §6.1: /rest/api/3/issue, /rest/api/3/project,
// /rest/api/3/label, /rest/api/3/issueLinkType, /wiki/api/v2/pages).

type wireIssue struct {
	ID     string        `json:"id"`
	Key    string        `json:"key"`
	Fields wireIssueFields `json:"fields"`
}

type wireIssueFields struct {
	Summary     string          `json:"summary"`
	Description json.RawMessage `json:"description"` // ADF document
	Project     wireProjectRef  `json:"project"`
	Status      wireStatus      `json:"status"`
	Labels      []string        `json:"labels"`
	Assignee    *wireUser       `json:"assignee"`
	Priority    *wireNamed      `json:"priority"`
	IssueType   *wireNamed      `json:"issuetype"`
	Created     string          `json:"created"`
	Updated     string          `json:"updated"`
}

type wireStatus struct {
	Name           string             `json:"name"`
	StatusCategory wireStatusCategory `json:"statusCategory"`
}

type wireStatusCategory struct {
	Key string `json:"key"` // "new", "indeterminate", "done"
}

type wireNamed struct {
	Name string `json:"name"`
}

type wireProjectRef struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

type wireProject struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type wireUser struct {
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
}

type wireSearchResult struct {
	Issues     []wireIssue `json:"issues"`
	Total      int         `json:"total"`
	IsLast     *bool       `json:"isLast"`
	StartAt    int         `json:"startAt"`
	MaxResults int         `json:"maxResults"`
}

type wireLabelsResult struct {
	Values []string `json:"values"`
}

type wireIssueLinkType struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Inward  string `json:"inward"`
	Outward string `json:"outward"`
}

type wireIssueLinkTypesResult struct {
	IssueLinkTypes []wireIssueLinkType `json:"issueLinkTypes"`
}

type wireIssueLink struct {
	Type         wireIssueLinkType `json:"type"`
	InwardIssue  *wireIssueRef     `json:"inwardIssue"`
	OutwardIssue *wireIssueRef     `json:"outwardIssue"`
}

type wireIssueRef struct {
	Key string `json:"key"`
}

type wireComment struct {
	ID      string          `json:"id"`
	Body    json.RawMessage `json:"body"`
	Author  *wireUser       `json:"author"`
	Created string          `json:"created"`
}

type wireCommentsResult struct {
	Comments []wireComment `json:"comments"`
}

// Confluence v2 page shape.
type wirePage struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	SpaceID  string        `json:"spaceId"`
	ParentID *string       `json:"parentId"`
	Body     wirePageBody  `json:"body"`
	Version  wirePageVersion `json:"version"`
}

type wirePageBody struct {
	Storage wirePageStorage `json:"storage"`
}

type wirePageStorage struct {
	Value string `json:"value"`
}

type wirePageVersion struct {
	Number int `json:"number"`
}

type wirePagesResult struct {
	Results []wirePage `json:"results"`
}

type wireAttachmentsResult struct {
	Results []wireAttachment `json:"results"`
}

type wireAttachment struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	MediaType string `json:"mediaType"`
	FileSize int64  `json:"fileSize"`
	DownloadLink string `json:"downloadLink"`
}

// Confluence v1 footer-comment shape (v2 comment reads still rely on the
// same storage-format body).
type wireConfluenceComment struct {
	ID   string       `json:"id"`
	Body wirePageBody `json:"body"`
}

type wireConfluenceCommentsResult struct {
	Results []wireConfluenceComment `json:"results"`
}
