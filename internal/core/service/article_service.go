package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
	"github.com/legalsheba/legalsheba-api/internal/core/ports"
)

// ArticleService implements the info-hub use cases.
type ArticleService struct {
	articles ports.ArticleRepository
	logger   zerolog.Logger
}

func NewArticleService(articles ports.ArticleRepository, logger zerolog.Logger) *ArticleService {
	return &ArticleService{articles: articles, logger: logger}
}

func (s *ArticleService) List(ctx context.Context, category string, page, size int) (*ports.ArticlePage, error) {
	items, total, err := s.articles.List(ctx, category, page, size)
	if err != nil {
		return nil, err
	}
	return &ports.ArticlePage{Items: items, Total: total, Page: page, Size: size}, nil
}

func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	return s.articles.FindByID(ctx, id)
}

func (s *ArticleService) Create(ctx context.Context, input ports.ArticleInput) (*domain.Article, error) {
	article, err := s.articles.Create(ctx, &domain.Article{
		Title:     input.Title,
		Content:   input.Content,
		Category:  input.Category,
		Date:      input.Date,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("article_id", article.ID).Str("category", article.Category).Msg("article created")
	return article, nil
}

func (s *ArticleService) Update(ctx context.Context, id string, input ports.ArticleInput) (*domain.Article, error) {
	existing, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Content = input.Content
	existing.Category = input.Category
	existing.Date = input.Date

	return s.articles.Update(ctx, existing)
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if _, err := s.articles.FindByID(ctx, id); err != nil {
		return err
	}
	return s.articles.Delete(ctx, id)
}
