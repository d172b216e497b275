package ports

import (
	"context"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
)

// ArticleRepository defines persistence operations for info-hub articles.
// When category is non-empty, List filters by it case-insensitively.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	Update(ctx context.Context, article *domain.Article) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category string, page, size int) ([]*domain.Article, int64, error)
}
