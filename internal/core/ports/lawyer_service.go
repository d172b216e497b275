package ports

import (
	"context"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
)

// LawyerService exposes the public lawyer directory and the profile-id
// bridging lookups used by the booking flow.
type LawyerService interface {
	List(ctx context.Context) ([]*domain.LawyerProfile, error)
	Get(ctx context.Context, id string) (*domain.LawyerProfile, error)
	ProfileIDByUser(ctx context.Context, userID string) (string, error)
}
