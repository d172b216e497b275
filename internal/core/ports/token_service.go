package ports

import "github.com/legalsheba/legalsheba-api/internal/core/domain"

// TokenService mints and verifies signed, time-bounded bearer tokens.
// Verify fails with domain.ErrTokenMalformed, domain.ErrTokenSignatureInvalid
// or domain.ErrTokenExpired; there is no revocation — an issued token is
// valid until natural expiry.
type TokenService interface {
	Issue(subject, role string) (string, error)
	Verify(token string) (*domain.TokenClaims, error)
}

// PasswordHasher is a one-way password hash with verify.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
