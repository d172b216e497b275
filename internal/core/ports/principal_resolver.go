package ports

import (
	"context"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
)

// PrincipalResolver turns verified token claims into a request principal.
// Resolution goes back to the user store, so the role in effect is the
// persisted one, not whatever the token was issued with.
type PrincipalResolver interface {
	Resolve(ctx context.Context, claims *domain.TokenClaims) (domain.Principal, error)
}
