package ports

import (
	"context"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
)

// LawyerRepository defines persistence operations for lawyer profiles.
type LawyerRepository interface {
	Create(ctx context.Context, profile *domain.LawyerProfile) (*domain.LawyerProfile, error)
	FindByID(ctx context.Context, id string) (*domain.LawyerProfile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.LawyerProfile, error)
	List(ctx context.Context) ([]*domain.LawyerProfile, error)
}

// DirectoryCache caches the public lawyer directory. A cache miss or a
// cache failure must never fail the request; callers fall through to
// the repository.
type DirectoryCache interface {
	Get(ctx context.Context) ([]*domain.LawyerProfile, bool)
	Set(ctx context.Context, profiles []*domain.LawyerProfile)
	Invalidate(ctx context.Context)
}
