package ports

import (
	"context"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
)

// ArticleInput carries the editable fields of an info-hub article.
type ArticleInput struct {
	Title    string
	Content  string
	Category string
	Date     string
}

// ArticlePage is one page of articles plus the total count.
type ArticlePage struct {
	Items []*domain.Article
	Total int64
	Page  int
	Size  int
}

// ArticleService defines the info-hub use cases. Reads are public;
// mutations are admin-only (enforced at the route layer).
type ArticleService interface {
	List(ctx context.Context, category string, page, size int) (*ArticlePage, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	Create(ctx context.Context, input ArticleInput) (*domain.Article, error)
	Update(ctx context.Context, id string, input ArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
}
