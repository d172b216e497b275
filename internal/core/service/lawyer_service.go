package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
	"github.com/legalsheba/legalsheba-api/internal/core/ports"
)

// LawyerService serves the public lawyer directory and profile lookups.
type LawyerService struct {
	lawyers ports.LawyerRepository
	cache   ports.DirectoryCache
	logger  zerolog.Logger
}

func NewLawyerService(lawyers ports.LawyerRepository, cache ports.DirectoryCache, logger zerolog.Logger) *LawyerService {
	return &LawyerService{lawyers: lawyers, cache: cache, logger: logger}
}

// List returns every lawyer profile. The directory changes only on
// lawyer registration, so the full listing is served from cache when
// possible.
func (s *LawyerService) List(ctx context.Context) ([]*domain.LawyerProfile, error) {
	if profiles, ok := s.cache.Get(ctx); ok {
		return profiles, nil
	}

	profiles, err := s.lawyers.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, profiles)
	return profiles, nil
}

func (s *LawyerService) Get(ctx context.Context, id string) (*domain.LawyerProfile, error) {
	return s.lawyers.FindByID(ctx, id)
}

// ProfileIDByUser resolves the profile id owned by a user id.
func (s *LawyerService) ProfileIDByUser(ctx context.Context, userID string) (string, error) {
	profile, err := s.lawyers.FindByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	return profile.ID, nil
}
