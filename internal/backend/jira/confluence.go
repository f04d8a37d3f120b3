package jira

import (
	"context"
	"net/url"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/richtext"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

// Confluence is Jira's natural KnowledgeBase pairing (spec §6.1). Pages use
// XHTML "storage" format; reads/writes go through internal/richtext's
// storage<->text conversion (spec §4.C.5).

const bodyFormatStorage = "body-format"

func (c *Client) GetArticle(ctx context.Context, id string) (domain.Article, error) {
	var w wirePage
	q := url.Values{bodyFormatStorage: {"storage"}}
	err := c.confluenceV2Request(ctx, "GET", "/pages/"+url.PathEscape(id), q, nil, &w)
	if err != nil {
		if _, ok := err.(trackererr.NotFound); ok {
			return domain.Article{}, trackererr.NotFound{What: "article " + id}
		}
		return domain.Article{}, err
	}
	return toDomainArticle(w), nil
}

func (c *Client) ListArticles(ctx context.Context, projectID string) ([]domain.Article, error) {
	var result wirePagesResult
	q := url.Values{"space-id": {projectID}, bodyFormatStorage: {"storage"}}
	if err := c.confluenceV2Request(ctx, "GET", "/pages", q, nil, &result); err != nil {
		return nil, err
	}
	return toDomainArticles(result.Results, projectID), nil
}

// SearchArticles uses Confluence's v1 CQL search, since the v2 API has no
// full-text search endpoint (spec §6.1: "/wiki/rest/api/search?cql=… (v1)").
func (c *Client) SearchArticles(ctx context.Context, q string) ([]domain.Article, error) {
	var result struct {
		Results []struct {
			Content wirePage `json:"content"`
		} `json:"results"`
	}
	query := url.Values{"cql": {"type=page AND text ~ \"" + q + "\""}}
	if err := c.confluenceV1Request(ctx, "GET", "/search", query, nil, &result); err != nil {
		return nil, err
	}
	out := make([]domain.Article, 0, len(result.Results))
	for _, r := range result.Results {
		out = append(out, toDomainArticle(r.Content))
	}
	return out, nil
}

func (c *Client) CreateArticle(ctx context.Context, in tracker.CreateArticle) (domain.Article, error) {
	body := map[string]any{
		"spaceId": in.ProjectID,
		"status":  "current",
		"title":   in.Title,
		"body": map[string]any{
			"representation": "storage",
			"value":          richtext.TextToStorage(in.Content),
		},
	}
	if in.ParentArticle != "" {
		body["parentId"] = in.ParentArticle
	}
	var w wirePage
	if err := c.confluenceV2Request(ctx, "POST", "/pages", nil, body, &w); err != nil {
		return domain.Article{}, err
	}
	return toDomainArticle(w), nil
}

func (c *Client) UpdateArticle(ctx context.Context, id string, in tracker.UpdateArticle) (domain.Article, error) {
	if in.IsEmpty() {
		return domain.Article{}, trackererr.NewInvalidInput("update_article: no fields supplied")
	}
	current, err := c.getPage(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}

	title := current.Title
	if in.Title != nil {
		title = *in.Title
	}
	storage := current.Body.Storage.Value
	if in.Content != nil {
		storage = richtext.TextToStorage(*in.Content)
	}

	body := map[string]any{
		"id":      id,
		"status":  "current",
		"title":   title,
		"spaceId": current.SpaceID,
		"body": map[string]any{
			"representation": "storage",
			"value":          storage,
		},
		"version": map[string]any{"number": current.Version.Number + 1},
	}
	var w wirePage
	if err := c.confluenceV2Request(ctx, "PUT", "/pages/"+url.PathEscape(id), nil, body, &w); err != nil {
		return domain.Article{}, err
	}
	return toDomainArticle(w), nil
}

func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	return c.confluenceV2Request(ctx, "DELETE", "/pages/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) GetChildArticles(ctx context.Context, parent string) ([]domain.Article, error) {
	var result wirePagesResult
	q := url.Values{bodyFormatStorage: {"storage"}}
	if err := c.confluenceV2Request(ctx, "GET", "/pages/"+url.PathEscape(parent)+"/children", q, nil, &result); err != nil {
		return nil, err
	}
	return toDomainArticles(result.Results, ""), nil
}

func (c *Client) MoveArticle(ctx context.Context, id string, newParent *string) error {
	current, err := c.getPage(ctx, id)
	if err != nil {
		return err
	}
	body := map[string]any{
		"id":      id,
		"status":  "current",
		"title":   current.Title,
		"spaceId": current.SpaceID,
		"body": map[string]any{
			"representation": "storage",
			"value":          current.Body.Storage.Value,
		},
		"version":  map[string]any{"number": current.Version.Number + 1},
		"parentId": newParent,
	}
	return c.confluenceV2Request(ctx, "PUT", "/pages/"+url.PathEscape(id), nil, body, nil)
}

func (c *Client) ListArticleAttachments(ctx context.Context, id string) ([]domain.ArticleAttachment, error) {
	var result wireAttachmentsResult
	if err := c.confluenceV2Request(ctx, "GET", "/pages/"+url.PathEscape(id)+"/attachments", nil, nil, &result); err != nil {
		return nil, err
	}
	out := make([]domain.ArticleAttachment, 0, len(result.Results))
	for _, a := range result.Results {
		out = append(out, domain.ArticleAttachment{
			ID: a.ID, Name: a.Title, URL: a.DownloadLink, MimeType: a.MediaType, Size: a.FileSize,
		})
	}
	return out, nil
}

func (c *Client) GetArticleComments(ctx context.Context, id string) ([]domain.Comment, error) {
	var result wireConfluenceCommentsResult
	q := url.Values{bodyFormatStorage: {"storage"}}
	if err := c.confluenceV2Request(ctx, "GET", "/pages/"+url.PathEscape(id)+"/footer-comments", q, nil, &result); err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(result.Results))
	for _, w := range result.Results {
		out = append(out, domain.Comment{ID: w.ID, Text: richtext.StorageToText(w.Body.Storage.Value)})
	}
	return out, nil
}

func (c *Client) AddArticleComment(ctx context.Context, id, text string) (domain.Comment, error) {
	body := map[string]any{
		"pageId": id,
		"body": map[string]any{
			"representation": "storage",
			"value":          richtext.TextToStorage(text),
		},
	}
	var w wireConfluenceComment
	if err := c.confluenceV2Request(ctx, "POST", "/footer-comments", nil, body, &w); err != nil {
		return domain.Comment{}, err
	}
	return domain.Comment{ID: w.ID, Text: richtext.StorageToText(w.Body.Storage.Value)}, nil
}

func (c *Client) getPage(ctx context.Context, id string) (wirePage, error) {
	var w wirePage
	q := url.Values{bodyFormatStorage: {"storage"}}
	if err := c.confluenceV2Request(ctx, "GET", "/pages/"+url.PathEscape(id), q, nil, &w); err != nil {
		return wirePage{}, err
	}
	return w, nil
}

func toDomainArticle(w wirePage) domain.Article {
	a := domain.Article{
		ID:          w.ID,
		Title:       w.Title,
		Content:     richtext.StorageToText(w.Body.Storage.Value),
		HasChildren: false,
		Project:     domain.ProjectRef{ID: w.SpaceID},
	}
	if w.ParentID != nil {
		a.ParentArticle = w.ParentID
	}
	return a
}

func toDomainArticles(wires []wirePage, projectID string) []domain.Article {
	out := make([]domain.Article, 0, len(wires))
	for _, w := range wires {
		a := toDomainArticle(w)
		if projectID != "" {
			a.Project.ID = projectID
		}
		out = append(out, a)
	}
	return out
}
