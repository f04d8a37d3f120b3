package github

import (
	"context"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

// The GitHub wiki is itself git-backed storage: cloning and rendering a
// wiki.git checkout is the explicitly out-of-scope external collaborator
// (spec §1, §4.C). This adapter's KnowledgeBase stops at reporting that
// boundary rather than reimplementing a git client here.

func (c *Client) GetArticle(ctx context.Context, id string) (domain.Article, error) {
	return domain.Article{}, trackererr.NotFound{What: "article " + id}
}

func (c *Client) ListArticles(ctx context.Context, projectID string) ([]domain.Article, error) {
	return nil, nil
}

func (c *Client) SearchArticles(ctx context.Context, q string) ([]domain.Article, error) {
	return nil, nil
}

func (c *Client) CreateArticle(ctx context.Context, in tracker.CreateArticle) (domain.Article, error) {
	return domain.Article{}, trackererr.NewInvalidInput("github: wiki pages are git-backed and out of scope for this client")
}

func (c *Client) UpdateArticle(ctx context.Context, id string, in tracker.UpdateArticle) (domain.Article, error) {
	return domain.Article{}, trackererr.NewInvalidInput("github: wiki pages are git-backed and out of scope for this client")
}

func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	return trackererr.NewInvalidInput("github: wiki pages are git-backed and out of scope for this client")
}

func (c *Client) GetChildArticles(ctx context.Context, parent string) ([]domain.Article, error) {
	return nil, nil
}

func (c *Client) MoveArticle(ctx context.Context, id string, newParent *string) error {
	return trackererr.NewInvalidInput("github: wiki pages are git-backed and out of scope for this client")
}

func (c *Client) ListArticleAttachments(ctx context.Context, id string) ([]domain.ArticleAttachment, error) {
	return nil, nil
}

func (c *Client) GetArticleComments(ctx context.Context, id string) ([]domain.Comment, error) {
	return nil, nil
}

func (c *Client) AddArticleComment(ctx context.Context, id, text string) (domain.Comment, error) {
	return domain.Comment{}, trackererr.NewInvalidInput("github: wiki pages are git-backed and out of scope for this client")
}
