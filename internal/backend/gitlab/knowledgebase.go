package gitlab

import (
	"context"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
	"github.com/jra3/unitrack/internal/trackererr"
)

// GitLab has no knowledge-base pairing in this system: its wiki is
// git-backed storage, the same out-of-scope external collaborator as
// GitHub's. Reads return empty results; writes return InvalidInput (spec
// §4.B.2).

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
	return domain.Article{}, trackererr.NewInvalidInput("gitlab: no knowledge base; wiki pages are git-backed and out of scope")
}

func (c *Client) UpdateArticle(ctx context.Context, id string, in tracker.UpdateArticle) (domain.Article, error) {
	return domain.Article{}, trackererr.NewInvalidInput("gitlab: no knowledge base; wiki pages are git-backed and out of scope")
}

func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	return trackererr.NewInvalidInput("gitlab: no knowledge base; wiki pages are git-backed and out of scope")
}

func (c *Client) GetChildArticles(ctx context.Context, parent string) ([]domain.Article, error) {
	return nil, nil
}

func (c *Client) MoveArticle(ctx context.Context, id string, newParent *string) error {
	return trackererr.NewInvalidInput("gitlab: no knowledge base; wiki pages are git-backed and out of scope")
}

func (c *Client) ListArticleAttachments(ctx context.Context, id string) ([]domain.ArticleAttachment, error) {
	return nil, nil
}

func (c *Client) GetArticleComments(ctx context.Context, id string) ([]domain.Comment, error) {
	return nil, nil
}

func (c *Client) AddArticleComment(ctx context.Context, id, text string) (domain.Comment, error) {
	return domain.Comment{}, trackererr.NewInvalidInput("gitlab: no knowledge base; wiki pages are git-backed and out of scope")
}
