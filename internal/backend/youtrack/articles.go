package youtrack

import (
	"context"
	"net/url"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

const articleFields = "id,idReadable,summary,content,project(id,shortName),parentArticle(id),created,updated"

func (c *Client) GetArticle(ctx context.Context, id string) (domain.Article, error) {
	var w wireArticle
	q := url.Values{"fields": {articleFields + ",childArticles(id)"}}
	err := c.doRequest(ctx, "GET", "/api/articles/"+url.PathEscape(id), q, nil, &w)
	if err != nil {
		if _, ok := err.(trackererr.NotFound); ok {
			return domain.Article{}, trackererr.NotFound{What: "article " + id}
		}
		return domain.Article{}, err
	}
	return toDomainArticle(w), nil
}

func (c *Client) ListArticles(ctx context.Context, projectID string) ([]domain.Article, error) {
	var wires []wireArticle
	q := url.Values{"fields": {articleFields}, "query": {"project: " + projectID}}
	if err := c.doRequest(ctx, "GET", "/api/articles", q, nil, &wires); err != nil {
		return nil, err
	}
	return toDomainArticles(wires), nil
}

func (c *Client) SearchArticles(ctx context.Context, q string) ([]domain.Article, error) {
	var wires []wireArticle
	qs := url.Values{"fields": {articleFields}, "query": {q}}
	if err := c.doRequest(ctx, "GET", "/api/articles", qs, nil, &wires); err != nil {
		return nil, err
	}
	return toDomainArticles(wires), nil
}

func (c *Client) CreateArticle(ctx context.Context, in tracker.CreateArticle) (domain.Article, error) {
	body := map[string]any{
		"project": map[string]any{"id": in.ProjectID},
		"summary": in.Title,
		"content": in.Content,
	}
	if in.ParentArticle != "" {
		body["parentArticle"] = map[string]any{"id": in.ParentArticle}
	}
	var w wireArticle
	q := url.Values{"fields": {articleFields}}
	if err := c.doRequest(ctx, "POST", "/api/articles", q, body, &w); err != nil {
		return domain.Article{}, err
	}
	return toDomainArticle(w), nil
}

func (c *Client) UpdateArticle(ctx context.Context, id string, in tracker.UpdateArticle) (domain.Article, error) {
	if in.IsEmpty() {
		return domain.Article{}, trackererr.NewInvalidInput("update_article: no fields supplied")
	}
	body := map[string]any{}
	if in.Title != nil {
		body["summary"] = *in.Title
	}
	if in.Content != nil {
		body["content"] = *in.Content
	}
	var w wireArticle
	q := url.Values{"fields": {articleFields}}
	if err := c.doRequest(ctx, "POST", "/api/articles/"+url.PathEscape(id), q, body, &w); err != nil {
		return domain.Article{}, err
	}
	return toDomainArticle(w), nil
}

func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	return c.doRequest(ctx, "DELETE", "/api/articles/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) GetChildArticles(ctx context.Context, parent string) ([]domain.Article, error) {
	var wires []wireArticle
	q := url.Values{"fields": {articleFields}}
	if err := c.doRequest(ctx, "GET", "/api/articles/"+url.PathEscape(parent)+"/childArticles", q, nil, &wires); err != nil {
		return nil, err
	}
	return toDomainArticles(wires), nil
}

func (c *Client) MoveArticle(ctx context.Context, id string, newParent *string) error {
	body := map[string]any{}
	if newParent != nil {
		body["parentArticle"] = map[string]any{"id": *newParent}
	} else {
		body["parentArticle"] = nil
	}
	return c.doRequest(ctx, "POST", "/api/articles/"+url.PathEscape(id), nil, body, nil)
}

func (c *Client) ListArticleAttachments(ctx context.Context, id string) ([]domain.ArticleAttachment, error) {
	var wires []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		URL      string `json:"url"`
		MimeType string `json:"mimeType"`
		Size     int64  `json:"size"`
	}
	q := url.Values{"fields": {"id,name,url,mimeType,size"}}
	if err := c.doRequest(ctx, "GET", "/api/articles/"+url.PathEscape(id)+"/attachments", q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.ArticleAttachment, 0, len(wires))
	for _, w := range wires {
		out = append(out, domain.ArticleAttachment{ID: w.ID, Name: w.Name, URL: w.URL, MimeType: w.MimeType, Size: w.Size})
	}
	return out, nil
}

func (c *Client) GetArticleComments(ctx context.Context, id string) ([]domain.Comment, error) {
	var wires []wireComment
	q := url.Values{"fields": {"id,text,author(login,fullName),created"}}
	if err := c.doRequest(ctx, "GET", "/api/articles/"+url.PathEscape(id)+"/comments", q, nil, &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomainComment(w))
	}
	return out, nil
}

func (c *Client) AddArticleComment(ctx context.Context, id, text string) (domain.Comment, error) {
	body := map[string]any{"text": text}
	var w wireComment
	q := url.Values{"fields": {"id,text,author(login,fullName),created"}}
	if err := c.doRequest(ctx, "POST", "/api/articles/"+url.PathEscape(id)+"/comments", q, body, &w); err != nil {
		return domain.Comment{}, err
	}
	return toDomainComment(w), nil
}

func toDomainArticle(w wireArticle) domain.Article {
	a := domain.Article{
		ID:          w.ID,
		IDReadable:  w.IDReadable,
		Title:       w.Summary,
		Content:     w.Content,
		Project:     domain.ProjectRef{ID: w.Project.ID, ShortName: w.Project.ShortName},
		HasChildren: len(w.ChildArticles) > 0,
		Created:     millisToTime(w.Created),
		Updated:     millisToTime(w.Updated),
	}
	if w.ParentArticle != nil {
		a.ParentArticle = &w.ParentArticle.ID
	}
	return a
}

func toDomainArticles(wires []wireArticle) []domain.Article {
	out := make([]domain.Article, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomainArticle(w))
	}
	return out
}
