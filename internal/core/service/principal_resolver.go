package service

import (
	"context"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
	"github.com/legalsheba/legalsheba-api/internal/core/ports"
)

// PrincipalResolver reconstructs a request principal from token claims.
type PrincipalResolver struct {
	users ports.UserRepository
}

func NewPrincipalResolver(users ports.UserRepository) *PrincipalResolver {
	return &PrincipalResolver{users: users}
}

// Resolve looks the claim subject up in the user store and builds the
// principal from the stored record. Fails with domain.ErrUserNotFound
// when the subject no longer exists.
func (r *PrincipalResolver) Resolve(ctx context.Context, claims *domain.TokenClaims) (domain.Principal, error) {
	user, err := r.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return domain.Principal{}, err
	}
	return domain.Principal{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}
