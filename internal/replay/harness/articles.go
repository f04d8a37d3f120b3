package harness

import (
	"context"

	"github.com/jra3/unitrack/internal/domain"
	"github.com/jra3/unitrack/internal/tracker"
)

func (h *Harness) GetArticle(ctx context.Context, id string) (domain.Article, error) {
	var out domain.Article
	err := decodeInto(h, "get_article", map[string]string{"id": id}, nil, &out)
	return out, err
}

func (h *Harness) ListArticles(ctx context.Context, projectID string) ([]domain.Article, error) {
	var out []domain.Article
	err := decodeInto(h, "list_articles", map[string]string{"project_id": projectID}, nil, &out)
	return out, err
}

func (h *Harness) SearchArticles(ctx context.Context, query string) ([]domain.Article, error) {
	var out []domain.Article
	err := decodeInto(h, "search_articles", map[string]string{"query": query}, nil, &out)
	return out, err
}

func (h *Harness) CreateArticle(ctx context.Context, in tracker.CreateArticle) (domain.Article, error) {
	body := mustJSON(in)
	args := map[string]string{"project_id": in.ProjectID, "title": in.Title}
	var out domain.Article
	if err := decodeInto(h, "create_article", args, body, &out); err != nil {
		return domain.Article{}, err
	}
	if out.ID == "" {
		out.ID = newID()
	}
	return out, nil
}

func (h *Harness) UpdateArticle(ctx context.Context, id string, in tracker.UpdateArticle) (domain.Article, error) {
	body := mustJSON(in)
	var out domain.Article
	if err := decodeInto(h, "update_article", map[string]string{"id": id}, body, &out); err != nil {
		return domain.Article{}, err
	}
	if out.ID == "" {
		out.ID = id
	}
	return out, nil
}

func (h *Harness) DeleteArticle(ctx context.Context, id string) error {
	return decodeInto[struct{}](h, "delete_article", map[string]string{"id": id}, nil, nil)
}

func (h *Harness) GetChildArticles(ctx context.Context, parent string) ([]domain.Article, error) {
	var out []domain.Article
	err := decodeInto(h, "get_child_articles", map[string]string{"parent": parent}, nil, &out)
	return out, err
}

func (h *Harness) MoveArticle(ctx context.Context, id string, newParent *string) error {
	args := map[string]string{"id": id}
	if newParent != nil {
		args["new_parent"] = *newParent
	}
	return decodeInto[struct{}](h, "move_article", args, nil, nil)
}

func (h *Harness) ListArticleAttachments(ctx context.Context, id string) ([]domain.ArticleAttachment, error) {
	var out []domain.ArticleAttachment
	err := decodeInto(h, "list_article_attachments", map[string]string{"id": id}, nil, &out)
	return out, err
}

func (h *Harness) GetArticleComments(ctx context.Context, id string) ([]domain.Comment, error) {
	var out []domain.Comment
	err := decodeInto(h, "get_article_comments", map[string]string{"article_id": id}, nil, &out)
	return out, err
}

func (h *Harness) AddArticleComment(ctx context.Context, id, text string) (domain.Comment, error) {
	body := mustJSON(map[string]string{"text": text})
	args := map[string]string{"article_id": id, "text": text}
	var out domain.Comment
	err := decodeInto(h, "add_article_comment", args, body, &out)
	return out, err
}
