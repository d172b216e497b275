package domain

import (
	"errors"
	"time"
)

const (
	RoleClient = "CLIENT"
	RoleLawyer = "LAWYER"
	RoleAdmin  = "ADMIN"
)

var ErrEmailInUse = errors.New("email already in use")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered account: a client, a lawyer, or an admin.
// Email is unique and the role never changes after registration.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
