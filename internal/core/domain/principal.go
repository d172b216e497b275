package domain

import "errors"

var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")

// TokenClaims is the payload embedded in a signed bearer token.
// The role claim is informational only; authorization always uses the
// role currently stored on the user record.
type TokenClaims struct {
	Subject string // user email
	Role    string
}

// Principal is the identity resolved for a single request. It is built
// once by the auth middleware from the persisted user record and passed
// explicitly; it is never shared across requests.
type Principal struct {
	ID    string
	Email string
	Role  string
}
